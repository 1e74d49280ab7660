package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/sidebarmd"
)

// SidebarFilePaths returns the sidebar outline files referenced by doc, resolved against
// baseDir. The render watcher uses it to know what to watch.
func SidebarFilePaths(doc *Document, baseDir string) []string {
	out := make([]string, 0, len(doc.SidebarFiles))
	for _, f := range doc.SidebarFiles {
		out = append(out, resolvePath(baseDir, f))
	}
	return out
}

func resolvePath(baseDir, file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(baseDir, file)
}

func readSidebarFile(baseDir, file string) ([]nav.Section, error) {
	p := resolvePath(baseDir, file)
	data, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, derrors.NotFoundError("sidebar file not found").
				WithCause(err).WithContext(derrors.ContextFile, p).Build()
		}
		return nil, derrors.FileSystemError("failed to read sidebar file").
			WithCause(err).WithContext(derrors.ContextFile, p).Build()
	}
	secs, err := sidebarmd.Parse(data)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryValidation, fmt.Sprintf("invalid sidebar file %s", file)).
			WithContext(derrors.ContextFile, p).Build()
	}
	return secs, nil
}
