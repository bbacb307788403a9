package schema

import (
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// VersionInfo describes the git provenance of a schema directory, recorded
// into submission records so an audit can establish exactly which schema
// revision a request was validated against.
type VersionInfo struct {
	// CommitSHA is the HEAD commit hash of the schema work tree.
	CommitSHA string `json:"commit_sha"`

	// CommitTime is when the commit was created.
	CommitTime time.Time `json:"commit_time"`

	// Branch is the checked-out branch name, empty for a detached HEAD.
	Branch string `json:"branch"`

	// Author is the commit author (name and email).
	Author string `json:"author"`

	// Message is the first line of the commit message.
	Message string `json:"message,omitempty"`
}

// Version reads provenance from the git work tree containing dir. Only the
// local repository is consulted; no remote is ever contacted. Returns an
// error when dir is not inside a work tree; callers treat that as "no
// provenance available", not as a failure.
func Version(dir string) (*VersionInfo, error) {
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository at %q: %w", dir, err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed to read HEAD commit: %w", err)
	}

	info := &VersionInfo{
		CommitSHA:  head.Hash().String(),
		CommitTime: commit.Author.When,
		Author:     fmt.Sprintf("%s <%s>", commit.Author.Name, commit.Author.Email),
		Message:    firstLine(commit.Message),
	}
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
	}

	return info, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
