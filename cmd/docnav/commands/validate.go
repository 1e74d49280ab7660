package commands

import (
	"fmt"
	"io"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/foundation"
	"git.home.luguber.info/inful/docnav/internal/logfields"
)

// ValidateCmd implements the 'validate' command. Each file is an alternative
// configuration and is checked on its own.
type ValidateCmd struct {
	Files []string `arg:"" optional:"" type:"path" help:"Configuration files (defaults to --config)"`
}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	files := v.Files
	if len(files) == 0 {
		files = []string{root.Config}
	}

	var firstErr error
	for _, f := range files {
		cfg, err := config.Load(f)
		if err != nil {
			reportInvalid(g.out(), f, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		st := cfg.Store.Stats()
		fmt.Fprintf(g.out(), "%s: OK (%d nav items, %d sidebars, %d sidebar items)\n", f, st.NavItems, st.SidebarPrefixes, st.SidebarItems)
		slog.Debug("Configuration valid", logfields.Config(f), logfields.Count(st.NavItems), logfields.Sections(st.Sections))
	}
	return firstErr
}

func reportInvalid(w io.Writer, file string, err error) {
	fields := foundation.FieldErrorsOf(err)
	if len(fields) == 0 {
		fmt.Fprintf(w, "%s: INVALID\n", file)
		return
	}
	fmt.Fprintf(w, "%s: INVALID (%d problems)\n", file, len(fields))
	for _, fe := range fields {
		fmt.Fprintf(w, "  %s: %s\n", fe.Path, fe.Message)
		slog.Debug("Invalid entry", logfields.Config(file), logfields.Entry(fe.Path), slog.String("code", fe.Code))
	}
}
