package main

import (
	"fmt"
	"io"
	"os"

	"github.com/halvorne/minigit/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newWriteTreeCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "write-tree",
		Short: "create a tree object from the current working directory",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return writeTreeCmd(cmd.OutOrStdout(), fs)
	}
	return cmd
}

func writeTreeCmd(out io.Writer, fs afero.Fs) error {
	s, err := openStore(fs)
	if err != nil {
		return err
	}

	pwd, err := os.Getwd()
	if err != nil {
		return err
	}

	id, err := s.WriteTree(pwd, store.SkipGitDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, id.String())
	return nil
}
