package main

import (
	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/netease"
)

func newMeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Show the logged-in user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := netease.New()
			if err != nil {
				return exitErr(exitUserError, err)
			}

			profile, err := client.UserInfo()
			if err != nil {
				return apiExitErr(err)
			}

			cmd.Printf("%s (uid %d)\n", profile.Nickname, profile.ID)
			return nil
		},
	}
}
