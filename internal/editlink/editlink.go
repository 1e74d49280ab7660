// Package editlink derives an "edit this page" URL pattern from the git checkout that
// holds the documentation sources.
package editlink

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// Placeholder is substituted with the page path by the renderer.
const Placeholder = ":path"

// DefaultRemote is the remote consulted by Detect.
const DefaultRemote = "origin"

// ForgeType identifies the web UI flavour of a git host.
type ForgeType string

const (
	ForgeGitHub  ForgeType = "github"
	ForgeGitLab  ForgeType = "gitlab"
	ForgeForgejo ForgeType = "forgejo"
)

// Remote is a parsed clone URL.
type Remote struct {
	Forge    ForgeType
	BaseURL  string // https://host, no trailing slash
	FullName string // owner/repo
}

// ErrUnknownForge is returned for hosts whose edit URL layout cannot be inferred.
var ErrUnknownForge = errors.New("unknown forge")

// ParseRemote understands https, ssh:// and scp-like (git@host:owner/repo.git) clone URLs.
func ParseRemote(raw string) (Remote, error) {
	raw = strings.TrimSpace(raw)
	var host, p string
	switch {
	case strings.Contains(raw, "://"):
		u, err := url.Parse(raw)
		if err != nil {
			return Remote{}, fmt.Errorf("parse remote %q: %w", raw, err)
		}
		if u.Scheme == "file" || u.Host == "" {
			return Remote{}, fmt.Errorf("remote %q: %w", raw, ErrUnknownForge)
		}
		host, p = u.Hostname(), u.Path
	case strings.Contains(raw, "@") && strings.Contains(raw, ":"):
		rest := raw[strings.Index(raw, "@")+1:]
		host, p, _ = strings.Cut(rest, ":")
	default:
		return Remote{}, fmt.Errorf("remote %q: %w", raw, ErrUnknownForge)
	}

	fullName := strings.Trim(strings.TrimSuffix(p, ".git"), "/")
	if strings.Count(fullName, "/") < 1 {
		return Remote{}, fmt.Errorf("remote %q has no owner/repo path", raw)
	}

	forge := detectForge(host)
	if forge == "" {
		return Remote{}, fmt.Errorf("remote host %q: %w", host, ErrUnknownForge)
	}
	return Remote{Forge: forge, BaseURL: "https://" + host, FullName: fullName}, nil
}

func detectForge(host string) ForgeType {
	h := strings.ToLower(host)
	switch {
	case strings.Contains(h, "github."):
		return ForgeGitHub
	case strings.Contains(h, "gitlab."):
		return ForgeGitLab
	case strings.Contains(h, "forgejo"), strings.Contains(h, "gitea"), strings.Contains(h, "codeberg.org"):
		return ForgeForgejo
	default:
		return ""
	}
}

// Pattern builds the edit URL pattern for pages stored under docsDir on branch.
func (r Remote) Pattern(branch, docsDir string) string {
	file := path.Join(strings.Trim(docsDir, "/"), Placeholder)
	switch r.Forge {
	case ForgeGitLab:
		return fmt.Sprintf("%s/%s/-/edit/%s/%s", r.BaseURL, r.FullName, branch, file)
	case ForgeForgejo:
		return fmt.Sprintf("%s/%s/_edit/%s/%s", r.BaseURL, r.FullName, branch, file)
	default:
		return fmt.Sprintf("%s/%s/edit/%s/%s", r.BaseURL, r.FullName, branch, file)
	}
}

// Detect opens the repository containing repoDir and returns the edit pattern for its
// origin remote and current branch. Failures are git-category warnings: callers can
// render without an edit link.
func Detect(repoDir, docsDir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(repoDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", derrors.GitError("failed to open documentation repository").
			WithCause(err).WithContext(derrors.ContextFile, repoDir).Build()
	}

	remote, err := repo.Remote(DefaultRemote)
	if err != nil {
		return "", derrors.GitError("repository has no origin remote").
			WithCause(err).WithContext(derrors.ContextFile, repoDir).Build()
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", derrors.GitError("origin remote has no URL").
			WithContext(derrors.ContextFile, repoDir).Build()
	}
	parsed, err := ParseRemote(urls[0])
	if err != nil {
		return "", derrors.GitError("cannot derive edit link from origin remote").
			WithCause(err).WithContext(derrors.ContextValue, urls[0]).Build()
	}

	branch, err := currentBranch(repo)
	if err != nil {
		return "", derrors.GitError("failed to resolve current branch").
			WithCause(err).WithContext(derrors.ContextFile, repoDir).Build()
	}
	pattern := parsed.Pattern(branch, docsDir)
	slog.Debug("Derived edit link pattern", logfields.Remote(urls[0]), logfields.URL(pattern))
	return pattern, nil
}

// currentBranch reads HEAD without resolving it, so a repository without commits still
// reports its initial branch.
func currentBranch(repo *git.Repository) (string, error) {
	ref, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", err
	}
	if ref.Type() == plumbing.SymbolicReference && ref.Target().IsBranch() {
		return ref.Target().Short(), nil
	}
	return "", errors.New("HEAD is detached")
}
