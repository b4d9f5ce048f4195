package store

import (
	"github.com/halvorne/minigit/object"
	"github.com/halvorne/minigit/oid"
	"github.com/pkg/errors"
)

// WriteCommit validates that treeID (and parentID, if non-zero) already
// exist in the store, builds a commit pointing at them, persists it, and
// returns its id. Unlike the underlying object codec, which trusts its
// inputs, this is the boundary where a tree/parent that doesn't actually
// exist, or a tree argument that names an object of the wrong type, gets
// rejected before it's baked into a commit.
func (s *Store) WriteCommit(treeID, parentID oid.Oid, author, committer object.Signature, message string) (oid.Oid, error) {
	if _, err := s.ReadTree(treeID.String()); err != nil {
		return oid.Null, errors.Wrapf(err, "tree %s", treeID)
	}

	if !parentID.IsZero() {
		if found, err := s.HasObject(parentID); err != nil {
			return oid.Null, errors.Wrapf(err, "could not check parent %s", parentID)
		} else if !found {
			return oid.Null, errors.Errorf("parent %s does not exist", parentID)
		}
	}

	commit := object.NewCommit(treeID, parentID, author, committer, message)
	return s.WriteObject(commit.ToObject())
}

// ReadCommit resolves id and returns it as a Commit.
func (s *Store) ReadCommit(id string) (*object.Commit, error) {
	o, err := s.ReadObject(id)
	if err != nil {
		return nil, err
	}
	return o.AsCommit()
}
