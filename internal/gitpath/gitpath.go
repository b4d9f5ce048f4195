// Package gitpath contains the constants for the handful of paths inside
// the .git directory this store reads or writes.
package gitpath

// Files and directories inside .git that this store manages. There is no
// config, index, or packed-refs in this core's scope.
const (
	DotGitPath  = ".git"
	HEADPath    = "HEAD"
	ObjectsPath = "objects"
	RefsPath    = "refs"
)

// HEADContents is the exact, literal content written to .git/HEAD by
// bootstrap.
const HEADContents = "ref: refs/heads/master\n"
