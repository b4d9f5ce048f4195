package main

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newLsTreeCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls-tree TREE",
		Short: "list the contents of a tree object",
		Args:  cobra.ExactArgs(1),
	}

	nameOnly := cmd.Flags().Bool("name-only", false, "list only the names of the tree's entries")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return lsTreeCmd(cmd.OutOrStdout(), fs, args[0], *nameOnly)
	}
	return cmd
}

func lsTreeCmd(out io.Writer, fs afero.Fs, id string, nameOnly bool) error {
	s, err := openStore(fs)
	if err != nil {
		return err
	}

	tree, err := s.ReadTree(id)
	if err != nil {
		return err
	}

	for _, e := range tree.Entries() {
		if nameOnly {
			fmt.Fprintln(out, e.Name)
			continue
		}
		fmt.Fprintf(out, "%s %s %s\t%s\n", e.Mode, e.Mode.ObjectType(), e.ID, e.Name)
	}
	return nil
}
