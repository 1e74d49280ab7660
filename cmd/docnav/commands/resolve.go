package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// ResolveCmd implements the 'resolve' command.
type ResolveCmd struct {
	Page string `arg:"" help:"Page path, e.g. /guides/api/intro"`
	JSON bool   `help:"Print the sections as JSON"`
}

type resolved struct {
	Page     string        `json:"page"`
	Prefix   string        `json:"prefix"`
	Sections []nav.Section `json:"sections"`
}

func (r *ResolveCmd) Run(g *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return err
	}
	g.applyLogging(cfg)
	s := cfg.Store
	prefix, _ := s.MatchPrefix(r.Page)
	res := resolved{Page: r.Page, Prefix: prefix, Sections: s.Sidebar(r.Page)}
	slog.Debug("Resolved sidebar", logfields.Page(r.Page), logfields.Prefix(prefix), logfields.Sections(len(res.Sections)))

	if r.JSON {
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(res); err != nil {
			return errors.InternalError("failed to encode resolved sidebar").WithCause(err).Build()
		}
		return nil
	}
	printResolved(g.out(), res)
	return nil
}

func printResolved(w io.Writer, res resolved) {
	if res.Prefix == "" {
		fmt.Fprintf(w, "%s: no sidebar\n", res.Page)
		return
	}
	fmt.Fprintf(w, "%s: sidebar %s\n", res.Page, res.Prefix)
	for _, sec := range res.Sections {
		state := ""
		if sec.IsCollapsible() {
			state = " [open]"
			if sec.IsCollapsed() {
				state = " [collapsed]"
			}
		}
		fmt.Fprintf(w, "  %s%s\n", sec.Text, state)
		printItems(w, sec.Items, 2)
	}
}

func printItems(w io.Writer, items []*nav.Item, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, it := range items {
		if it.Link != "" {
			fmt.Fprintf(w, "%s- %s (%s)\n", indent, it.Text, it.Link)
		} else {
			fmt.Fprintf(w, "%s- %s\n", indent, it.Text)
		}
		printItems(w, it.Children, depth+1)
	}
}
