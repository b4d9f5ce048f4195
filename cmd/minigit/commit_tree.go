package main

import (
	"fmt"
	"io"
	"os/user"
	"time"

	"github.com/halvorne/minigit/object"
	"github.com/halvorne/minigit/oid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/xerrors"
)

func newCommitTreeCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit-tree TREE",
		Short: "create a new commit object from a tree",
		Args:  cobra.ExactArgs(1),
	}

	parent := cmd.Flags().StringP("parent", "p", "", "id of the parent commit")
	message := cmd.Flags().StringP("message", "m", "", "commit message")
	_ = cmd.MarkFlagRequired("message")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return commitTreeCmd(cmd.OutOrStdout(), fs, args[0], *parent, *message)
	}
	return cmd
}

func commitTreeCmd(out io.Writer, fs afero.Fs, treeArg, parentArg, message string) error {
	s, err := openStore(fs)
	if err != nil {
		return err
	}

	treeID, err := s.Resolve(treeArg)
	if err != nil {
		return xerrors.Errorf("%s: %w", treeArg, err)
	}

	parentID := oid.Null
	if parentArg != "" {
		parentID, err = s.Resolve(parentArg)
		if err != nil {
			return xerrors.Errorf("%s: %w", parentArg, err)
		}
	}

	sig := currentSignature()
	commitID, err := s.WriteCommit(treeID, parentID, sig, sig, message)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, commitID.String())
	return nil
}

// currentSignature builds a Signature from the local user and the current
// time. The CLI is the only layer that touches the clock or the OS user
// directory: the core always renders the stored offset as +0000, so the
// timestamp carried here is what ends up recorded, not the system's local
// offset.
func currentSignature() object.Signature {
	name := "unknown"
	if u, err := user.Current(); err == nil && u.Username != "" {
		name = u.Username
	}
	email := fmt.Sprintf("%s@localhost", name)
	return object.NewSignature(name, email, time.Now().Unix())
}
