package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/netease"
)

func newPlaylistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "playlist <PLAYLIST_ID>",
		Short: "Show a playlist and its tracks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return exitErr(exitUserError, err)
			}

			client, err := netease.New()
			if err != nil {
				return exitErr(exitUserError, err)
			}

			pl, err := client.PlaylistDetail(id)
			if err != nil {
				return apiExitErr(err)
			}

			cmd.Printf("%s (%d tracks)\n", pl.Name, pl.TrackCount)
			for _, t := range pl.Tracks {
				cmd.Printf("%d\t%s\t%s\n", t.ID, t.Name, artistNames(t.Artists))
			}
			return nil
		},
	}
}
