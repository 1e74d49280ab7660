package config

import (
	"errors"
	"log/slog"
	"os"

	"github.com/google/renameio/v2"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/vsmenu"
)

const initHeader = "# docnav configuration\n# Generated by `docnav init`. Edit freely; run `docnav validate` after changes.\n\n"

// Save writes doc to path atomically.
func Save(path string, doc *Document) error {
	data, err := Marshal(doc)
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryInternal, "failed to encode configuration").Build()
	}
	return writeFile(path, data)
}

// Init writes the example configuration (the VSmenu portal) to path. An existing file is
// only replaced when force is set.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return derrors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext(derrors.ContextFile, path).Build()
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return derrors.FileSystemError("failed to inspect configuration file").
			WithCause(err).WithContext(derrors.ContextFile, path).Build()
	}

	data, err := Marshal(FromSpec(vsmenu.Spec()))
	if err != nil {
		return derrors.WrapError(err, derrors.CategoryInternal, "failed to encode example configuration").Build()
	}
	if err := writeFile(path, append([]byte(initHeader), data...)); err != nil {
		return err
	}
	slog.Info("Configuration initialized", logfields.Config(path))
	return nil
}

func writeFile(path string, data []byte) error {
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return derrors.FileSystemError("failed to write configuration file").
			WithCause(err).WithContext(derrors.ContextFile, path).Build()
	}
	return nil
}
