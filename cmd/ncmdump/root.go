package main

import (
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/spf13/cobra"
)

var gPool *ants.Pool

func init() {
	gPool, _ = ants.NewPool(runtime.NumCPU())
}

// Execute runs the root command, returning any error for main to translate
// into a process exit code.
func Execute() error {
	return NewRootCmd().Execute()
}

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ncmdump",
		Short:         "Decrypt NetEase Cloud Music files and query the web API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		newDumpCmd(),
		newLoginCmd(),
		newLogoutCmd(),
		newSearchCmd(),
		newInfoCmd(),
		newLyricCmd(),
		newDownloadCmd(),
		newPlaylistCmd(),
		newMeCmd(),
	)
	return cmd
}
