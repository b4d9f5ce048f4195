package main

import (
	"fmt"
	"io"
	"os"

	"github.com/halvorne/minigit/store"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newInitCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "create an empty repository in the current directory",
		Args:  cobra.NoArgs,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return initCmd(cmd.OutOrStdout(), fs)
	}
	return cmd
}

func initCmd(out io.Writer, fs afero.Fs) error {
	pwd, err := os.Getwd()
	if err != nil {
		return err
	}

	if _, err := store.Init(fs, pwd); err != nil {
		return err
	}

	fmt.Fprintf(out, "Initialized empty git repository in %s/.git\n", pwd)
	return nil
}
