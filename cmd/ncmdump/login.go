package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jdxj/ncmdump/internal/config"
	"github.com/jdxj/ncmdump/internal/netease"
	"github.com/jdxj/ncmdump/internal/session"
)

func newLoginCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "login [MUSIC_U]",
		Short: "Store a MUSIC_U cookie, or check whether the stored one still works",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.SessionPath()
			if err != nil {
				return exitErr(exitUserError, err)
			}

			if check {
				sess, err := session.Load(path)
				if err != nil {
					return exitErr(exitUserError, err)
				}
				if !sess.IsLoggedIn() {
					return exitErr(exitAuth, errors.New("not logged in"))
				}
				client := netease.WithSession(sess)
				profile, err := client.UserInfo()
				if err != nil {
					return exitErr(exitAuth, err)
				}
				cmd.Printf("logged in as %s (uid %d)\n", profile.Nickname, profile.ID)
				return nil
			}

			if len(args) != 1 {
				return exitErr(exitUserError, errors.New("login requires exactly one MUSIC_U argument, or --check"))
			}
			if err := session.Save(path, session.Session{MusicU: args[0]}); err != nil {
				return exitErr(exitUserError, err)
			}
			cmd.Println("session saved")
			return nil
		},
	}
	cmd.Flags().BoolVar(&check, "check", false, "verify the stored session instead of saving a new one")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.SessionPath()
			if err != nil {
				return exitErr(exitUserError, err)
			}
			if err := session.Clear(path); err != nil {
				return exitErr(exitUserError, err)
			}
			cmd.Println("logged out")
			return nil
		},
	}
}
