package editlink

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/testutil"
)

func TestParseRemote(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Remote
		wantErr bool
	}{
		{"github https", "https://github.com/vsmenu/vsmenu-docs.git", Remote{ForgeGitHub, "https://github.com", "vsmenu/vsmenu-docs"}, false},
		{"github scp", "git@github.com:vsmenu/vsmenu-docs.git", Remote{ForgeGitHub, "https://github.com", "vsmenu/vsmenu-docs"}, false},
		{"gitlab ssh subgroup", "ssh://git@gitlab.example.com/group/sub/docs.git", Remote{ForgeGitLab, "https://gitlab.example.com", "group/sub/docs"}, false},
		{"forgejo", "https://forgejo.home.example/inful/docs", Remote{ForgeForgejo, "https://forgejo.home.example", "inful/docs"}, false},
		{"unknown host", "https://git.example.com/a/b.git", Remote{}, true},
		{"local path", "/srv/git/docs.git", Remote{}, true},
		{"no repo path", "https://github.com/vsmenu", Remote{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRemote(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRemote_UnknownForgeSentinel(t *testing.T) {
	_, err := ParseRemote("https://git.example.com/a/b.git")
	assert.True(t, errors.Is(err, ErrUnknownForge))
}

func TestPattern(t *testing.T) {
	gh := Remote{ForgeGitHub, "https://github.com", "vsmenu/vsmenu-docs"}
	assert.Equal(t, "https://github.com/vsmenu/vsmenu-docs/edit/main/docs/:path", gh.Pattern("main", "docs"))
	assert.Equal(t, "https://github.com/vsmenu/vsmenu-docs/edit/main/:path", gh.Pattern("main", ""))

	gl := Remote{ForgeGitLab, "https://gitlab.com", "g/p"}
	assert.Equal(t, "https://gitlab.com/g/p/-/edit/dev/site/docs/:path", gl.Pattern("dev", "/site/docs/"))

	fj := Remote{ForgeForgejo, "https://codeberg.org", "o/r"}
	assert.Equal(t, "https://codeberg.org/o/r/_edit/main/docs/:path", fj.Pattern("main", "docs"))
}

func initRepo(t *testing.T, remoteURL string) string {
	return testutil.SetupTestGitRepo(t, "main", remoteURL)
}

func TestDetect(t *testing.T) {
	dir := initRepo(t, "git@github.com:vsmenu/vsmenu-docs.git")

	pattern, err := Detect(dir, "docs")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/vsmenu/vsmenu-docs/edit/main/docs/:path", pattern)
}

func TestDetect_NoRemote(t *testing.T) {
	dir := initRepo(t, "")

	_, err := Detect(dir, "docs")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryGit))
}

func TestDetect_NotARepository(t *testing.T) {
	_, err := Detect(t.TempDir(), "docs")
	require.Error(t, err)
	assert.True(t, derrors.HasCategory(err, derrors.CategoryGit))
	assert.False(t, derrors.GetSeverity(err) == derrors.SeverityFatal)
}
