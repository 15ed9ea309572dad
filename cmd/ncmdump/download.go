package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/netease"
)

func newDownloadCmd() *cobra.Command {
	var (
		quality string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "download <TRACK_ID>",
		Short: "Download a track at the requested quality",
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

			dest := output
			if dest == "" {
				dest = fmt.Sprintf("%d.mp3", id)
			} else if info, statErr := os.Stat(dest); statErr == nil && info.IsDir() {
				dest = filepath.Join(dest, fmt.Sprintf("%d.mp3", id))
			}

			n, err := client.DownloadTrack(id, netease.ParseQuality(quality), dest)
			if err != nil {
				return apiExitErr(err)
			}

			cmd.Printf("downloaded %d bytes to %s\n", n, dest)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&quality, "quality", "q", "standard", "standard|higher|exhigh|lossless")
	flags.StringVarP(&output, "output", "o", "", "destination file or directory")
	return cmd
}
