// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
)

// SetupTestGitRepo initializes a temporary git repository whose HEAD points at branch
// and, when remoteURL is non-empty, whose origin remote points at remoteURL. It returns
// the repository directory.
func SetupTestGitRepo(t *testing.T, branch, remoteURL string) string {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("failed to initialize git repo: %v", err)
	}
	if branch != "" {
		head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
		if err := repo.Storer.SetReference(head); err != nil {
			t.Fatalf("failed to set HEAD: %v", err)
		}
	}
	if remoteURL != "" {
		if _, err := repo.CreateRemote(&gitconfig.RemoteConfig{Name: "origin", URLs: []string{remoteURL}}); err != nil {
			t.Fatalf("failed to create origin remote: %v", err)
		}
	}
	return dir
}
