package main

import (
	"fmt"
	"io"

	"github.com/halvorne/minigit/object"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newCatFileCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat-file OBJECT",
		Short: "print the contents of a repository object",
		Args:  cobra.ExactArgs(1),
	}

	prettyPrint := cmd.Flags().BoolP("p", "p", false, "pretty-print the object's contents based on its type")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if !*prettyPrint {
			return xerrors.New("cat-file requires -p")
		}
		return catFileCmd(cmd.OutOrStdout(), fs, args[0])
	}
	return cmd
}

// catFileCmd renders an object per its type: blobs are dumped verbatim,
// trees are rendered one entry per line as "<mode> <type> <id>\t<name>",
// and commits print their header fields followed by the message.
func catFileCmd(out io.Writer, fs afero.Fs, id string) error {
	s, err := openStore(fs)
	if err != nil {
		return err
	}

	o, err := s.ReadObject(id)
	if err != nil {
		return err
	}

	switch o.Type() {
	case object.TypeBlob:
		_, err = out.Write(o.Bytes())
		return err
	case object.TypeTree:
		tree, err := o.AsTree()
		if err != nil {
			return err
		}
		for _, e := range tree.Entries() {
			fmt.Fprintf(out, "%s %s %s\t%s\n", e.Mode, e.Mode.ObjectType(), e.ID, e.Name)
		}
		return nil
	case object.TypeCommit:
		commit, err := o.AsCommit()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "tree %s\n", commit.TreeID())
		if !commit.ParentID().IsZero() {
			fmt.Fprintf(out, "parent %s\n", commit.ParentID())
		}
		fmt.Fprintf(out, "author %s\n", commit.Author())
		fmt.Fprintf(out, "committer %s\n", commit.Committer())
		fmt.Fprintln(out)
		fmt.Fprint(out, commit.Message())
		return nil
	default:
		return xerrors.Errorf("pretty-print not supported for type %s", o.Type())
	}
}
