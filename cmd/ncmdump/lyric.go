package main

import (
	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/netease"
)

func newLyricCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lyric <TRACK_ID>",
		Short: "Print a track's LRC lyrics",
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

			lyric, err := client.TrackLyric(id)
			if err != nil {
				return apiExitErr(err)
			}

			if lyric.Lrc == "" {
				cmd.Println("(no lyrics)")
				return nil
			}
			cmd.Println(lyric.Lrc)
			if lyric.TLyric != "" {
				cmd.Println("---")
				cmd.Println(lyric.TLyric)
			}
			return nil
		},
	}
}
