package main

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	return newRootCmdFs(afero.NewOsFs())
}

// newRootCmdFs builds the command tree against fs, letting tests swap in
// an in-memory filesystem instead of touching the real one.
func newRootCmdFs(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "minigit",
		Short:         "a minimal, git-compatible object store",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// porcelain
	cmd.AddCommand(newInitCmd(fs))

	// plumbing
	cmd.AddCommand(newHashObjectCmd(fs))
	cmd.AddCommand(newCatFileCmd(fs))
	cmd.AddCommand(newLsTreeCmd(fs))
	cmd.AddCommand(newWriteTreeCmd(fs))
	cmd.AddCommand(newCommitTreeCmd(fs))

	return cmd
}
