// Package git reads committer identity via the git CLI.
package git

// Executor defines the interface for git command execution.
// This abstraction allows for easy testing with fake implementations.
type Executor interface {
	// UserName returns the configured user.name, or "" when unset.
	UserName() (string, error)

	// UserEmail returns the configured user.email, or "" when unset.
	UserEmail() (string, error)
}
