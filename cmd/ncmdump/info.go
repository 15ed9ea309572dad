package main

import (
	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/netease"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <TRACK_ID>",
		Short: "Show track metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTrackID(args[0])
			if err != nil {
				return exitErr(exitUserError, err)
			}

			client, err := netease.New()
			if err != nil {
				return exitErr(exitUserError, err)
			}

			track, err := client.TrackDetail(id)
			if err != nil {
				return apiExitErr(err)
			}

			cmd.Printf("title:  %s\n", track.Name)
			cmd.Printf("artist: %s\n", artistNames(track.Artists))
			cmd.Printf("album:  %s\n", track.Album.Name)
			cmd.Printf("length: %dms\n", track.DurationMs)
			return nil
		},
	}
}
