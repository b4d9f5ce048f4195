package main

import (
	"fmt"
	"io"

	"github.com/halvorne/minigit/oid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newHashObjectCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hash-object FILE...",
		Short: "compute the object id for file contents, optionally writing it",
		Args:  cobra.MinimumNArgs(1),
	}

	write := cmd.Flags().BoolP("write", "w", false, "write the object into the object database")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return hashObjectCmd(cmd.OutOrStdout(), fs, args, *write)
	}
	return cmd
}

func hashObjectCmd(out io.Writer, fs afero.Fs, paths []string, write bool) error {
	s, err := openStore(fs)
	if err != nil {
		return err
	}

	for _, p := range paths {
		var id oid.Oid
		var err error
		if write {
			id, err = s.WriteBlob(p)
		} else {
			id, err = s.HashBlob(p)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(out, id.String())
	}
	return nil
}
