package object

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/halvorne/minigit/internal/readutil"
	"github.com/halvorne/minigit/oid"
	"github.com/pkg/errors"
)

// ErrSignatureInvalid is returned when an author/committer line couldn't be
// parsed.
var ErrSignatureInvalid = errors.New("commit signature is invalid")

// ErrCommitInvalid is returned when a commit object's payload can't be
// parsed, or required fields (tree, author) are missing.
var ErrCommitInvalid = errors.New("invalid commit")

// Signature identifies who made a change and when: a name, an email, and a
// timestamp with its UTC offset.
type Signature struct {
	Name  string
	Email string
	Time  time.Time
}

// String renders a Signature the way it's stored in a commit's payload:
// "Name <email> unix-seconds +hhmm".
func (s Signature) String() string {
	return fmt.Sprintf("%s <%s> %d %s", s.Name, s.Email, s.Time.Unix(), s.Time.Format("-0700"))
}

// IsZero returns whether s is the zero-value Signature.
func (s Signature) IsZero() bool {
	return s.Name == "" && s.Email == "" && s.Time.IsZero()
}

// NewSignature builds a Signature for name/email stamped at unixSeconds,
// recorded in UTC (rendered with the literal "+0000" offset).
func NewSignature(name, email string, unixSeconds int64) Signature {
	return Signature{
		Name:  name,
		Email: email,
		Time:  time.Unix(unixSeconds, 0).UTC(),
	}
}

// NewSignatureFromBytes parses a signature line's value, e.g.
// "Ada Lovelace <ada@example.com> 1566115917 +0000".
func NewSignatureFromBytes(b []byte) (Signature, error) {
	var sig Signature

	name := readutil.ReadTo(b, '<')
	if len(name) == 0 {
		return sig, errors.Wrap(ErrSignatureInvalid, "couldn't retrieve the name")
	}
	sig.Name = strings.TrimSpace(string(name))
	offset := len(name) + 1 // +1 to skip "<"
	if offset >= len(b) {
		return sig, errors.Wrap(ErrSignatureInvalid, "signature stopped after the name")
	}

	email := readutil.ReadTo(b[offset:], '>')
	if len(email) == 0 {
		return sig, errors.Wrap(ErrSignatureInvalid, "couldn't retrieve the email")
	}
	sig.Email = string(email)
	offset += len(email) + 2 // +2 to skip "> "
	if offset >= len(b) {
		return sig, errors.Wrap(ErrSignatureInvalid, "signature stopped after the email")
	}

	timestamp := readutil.ReadTo(b[offset:], ' ')
	if len(timestamp) == 0 {
		return sig, errors.Wrap(ErrSignatureInvalid, "couldn't retrieve the timestamp")
	}
	offset += len(timestamp) + 1 // +1 to skip the space
	if offset >= len(b) {
		return sig, errors.Wrap(ErrSignatureInvalid, "signature stopped after the timestamp")
	}

	secs, err := strconv.ParseInt(string(timestamp), 10, 64)
	if err != nil {
		return sig, errors.Wrapf(err, "invalid timestamp %s", timestamp)
	}
	sig.Time = time.Unix(secs, 0)

	tz, err := time.Parse("-0700", string(b[offset:]))
	if err != nil {
		return sig, errors.Wrapf(err, "invalid timezone format %s", b[offset:])
	}
	sig.Time = sig.Time.In(tz.Location())
	return sig, nil
}

// Commit is an object referencing a tree and, optionally, a single parent
// commit, along with author/committer metadata and a free-form message.
type Commit struct {
	rawObject *Object

	treeID   oid.Oid
	parentID oid.Oid // oid.Null when there is no parent

	author    Signature
	committer Signature
	message   string
}

// NewCommit builds a Commit. parentID may be oid.Null for a root commit.
func NewCommit(treeID, parentID oid.Oid, author, committer Signature, message string) *Commit {
	c := &Commit{
		treeID:    treeID,
		parentID:  parentID,
		author:    author,
		committer: committer,
		message:   message,
	}
	c.rawObject = c.encode()
	return c
}

// newCommitFromObject parses o's payload into a Commit.
//
// The payload format is:
//
//	tree <hex>
//	[parent <hex>]
//	author <name> <<email>> <unix-seconds> +0000
//	committer <name> <<email>> <unix-seconds> +0000
//	<blank line>
//	<message>
func newCommitFromObject(o *Object) (*Commit, error) {
	if o.typ != TypeCommit {
		return nil, errors.Wrapf(ErrObjectInvalid, "type %s is not a commit", o.typ)
	}

	c := &Commit{rawObject: o}
	data := o.Bytes()
	offset := 0
	for {
		line := readutil.ReadTo(data[offset:], '\n')
		if line == nil {
			return nil, errors.Wrap(ErrCommitInvalid, "could not find commit first line")
		}
		offset += len(line) + 1 // +1 for the \n

		if len(line) == 0 {
			c.message = string(data[offset:])
			break
		}

		kv := bytes.SplitN(line, []byte{' '}, 2)
		if len(kv) != 2 {
			return nil, errors.Wrap(ErrCommitInvalid, "malformed header line")
		}
		var err error
		switch string(kv[0]) {
		case "tree":
			c.treeID, err = oid.FromHex(string(kv[1]))
			if err != nil {
				return nil, errors.Wrapf(ErrCommitInvalid, "invalid tree id %q", kv[1])
			}
		case "parent":
			c.parentID, err = oid.FromHex(string(kv[1]))
			if err != nil {
				return nil, errors.Wrapf(ErrCommitInvalid, "invalid parent id %q", kv[1])
			}
		case "author":
			c.author, err = NewSignatureFromBytes(kv[1])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid author signature %q", kv[1])
			}
		case "committer":
			c.committer, err = NewSignatureFromBytes(kv[1])
			if err != nil {
				return nil, errors.Wrapf(err, "invalid committer signature %q", kv[1])
			}
		}
	}

	if c.treeID.IsZero() {
		return nil, errors.Wrap(ErrCommitInvalid, "commit has no tree")
	}
	if c.author.IsZero() {
		return nil, errors.Wrap(ErrCommitInvalid, "commit has no author")
	}

	return c, nil
}

// ID returns the commit's identifier.
func (c *Commit) ID() oid.Oid {
	return c.rawObject.ID()
}

// TreeID returns the id of the tree this commit snapshots.
func (c *Commit) TreeID() oid.Oid {
	return c.treeID
}

// ParentID returns the id of this commit's parent, or oid.Null if it has
// none.
func (c *Commit) ParentID() oid.Oid {
	return c.parentID
}

// Author returns the Signature of whoever authored the change.
func (c *Commit) Author() Signature {
	return c.author
}

// Committer returns the Signature of whoever created the commit.
func (c *Commit) Committer() Signature {
	return c.committer
}

// Message returns the commit message.
func (c *Commit) Message() string {
	return c.message
}

// ToObject returns the Commit's underlying Object.
func (c *Commit) ToObject() *Object {
	return c.rawObject
}

// encode serializes the commit into its payload form.
func (c *Commit) encode() *Object {
	buf := new(bytes.Buffer)
	buf.WriteString("tree ")
	buf.WriteString(c.treeID.String())
	buf.WriteByte('\n')

	if !c.parentID.IsZero() {
		buf.WriteString("parent ")
		buf.WriteString(c.parentID.String())
		buf.WriteByte('\n')
	}

	buf.WriteString("author ")
	buf.WriteString(c.author.String())
	buf.WriteByte('\n')

	buf.WriteString("committer ")
	buf.WriteString(c.committer.String())
	buf.WriteByte('\n')

	buf.WriteByte('\n')
	buf.WriteString(c.message)
	if !strings.HasSuffix(c.message, "\n") {
		buf.WriteByte('\n')
	}

	return New(TypeCommit, buf.Bytes())
}
