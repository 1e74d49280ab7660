package nav

import (
	"log/slog"
	"maps"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/logfields"
)

const pathPlaceholder = ":path"

// Defaults applied by Build for fields left empty.
const (
	DefaultBaseURL = "/"
	DefaultLang    = "en-US"
)

// Store is the immutable navigation configuration. It is safe for concurrent reads;
// every accessor returns a copy.
type Store struct {
	spec  Spec
	table []sidebarEntry
}

// Build validates spec and returns the store built from a private copy of it. All
// offending entries are reported at once; the error's path is the first of them.
func Build(spec Spec) (*Store, error) {
	applyDefaults(&spec)

	v := newValidator()
	v.validate(&spec)
	if err := v.result.ToError("invalid navigation configuration"); err != nil {
		return nil, err
	}

	if tag, err := language.Parse(spec.Site.Lang); err == nil {
		spec.Site.Lang = tag.String()
	}

	s := &Store{spec: copySpec(spec)}
	s.table = compileSidebar(s.spec.Sidebar)
	return s, nil
}

// MustBuild is Build for literals known to be valid; it panics otherwise.
func MustBuild(spec Spec) *Store {
	s, err := Build(spec)
	if err != nil {
		panic(err)
	}
	return s
}

func applyDefaults(spec *Spec) {
	if spec.Site.BaseURL == "" {
		spec.Site.BaseURL = DefaultBaseURL
	}
	if spec.Site.Lang == "" {
		spec.Site.Lang = DefaultLang
	}
	if spec.Search.Provider == "" {
		spec.Search.Provider = SearchLocal
	}
	if len(spec.Outline.Level) == 0 {
		spec.Outline.Level = []int{2, 3}
	}
}

// Site returns the site metadata.
func (s *Store) Site() Site { return copySite(s.spec.Site) }

// Nav returns the top navigation bar.
func (s *Store) Nav() []*Item { return copyItems(s.spec.Nav) }

// Labels returns all UI labels.
func (s *Store) Labels() Labels { return maps.Clone(s.spec.Labels) }

// Label returns one UI label, or fallback when it is unset.
func (s *Store) Label(key, fallback string) string { return s.spec.Labels.Get(key, fallback) }

// Search returns the search provider settings.
func (s *Store) Search() Search {
	return Search{Provider: s.spec.Search.Provider, Options: copyAnyMap(s.spec.Search.Options)}
}

// Outline returns the outline settings.
func (s *Store) Outline() Outline {
	return Outline{Level: append([]int(nil), s.spec.Outline.Level...)}
}

// Markdown returns the code-block settings.
func (s *Store) Markdown() Markdown { return s.spec.Markdown }

// Spec returns a copy of the input the store was built from, with
// defaults applied.
func (s *Store) Spec() Spec { return copySpec(s.spec) }

// Prefixes returns the sidebar prefixes in lookup order (most specific first).
func (s *Store) Prefixes() []string {
	out := make([]string, len(s.table))
	for i, e := range s.table {
		out[i] = e.prefix
	}
	return out
}

// MatchPrefix returns the longest sidebar prefix selecting pagePath.
func (s *Store) MatchPrefix(pagePath string) (string, bool) {
	e, ok := s.lookup(pagePath)
	return e.prefix, ok
}

// lookup matches the page path as given and, when it carries the site base, the path
// below the base. The more specific match wins; on a tie the path as given does.
func (s *Store) lookup(pagePath string) (sidebarEntry, bool) {
	p := NormalizePagePath(pagePath)
	e, score := match(s.table, p)
	if rel, ok := stripBase(s.spec.Site.BaseURL, p); ok {
		if re, rscore := match(s.table, rel); rscore > score {
			e, score = re, rscore
		}
	}
	return e, score >= 0
}

// Sections returns the sections registered under exactly prefix.
func (s *Store) Sections(prefix string) ([]Section, bool) {
	for _, e := range s.table {
		if e.prefix == prefix {
			if secs := copySections(e.sections); secs != nil {
				return secs, true
			}
			return []Section{}, true
		}
	}
	return nil, false
}

// Sidebar returns the sections rendered for pagePath. A page matching no prefix gets an
// empty, non-nil sidebar.
func (s *Store) Sidebar(pagePath string) []Section {
	e, ok := s.lookup(pagePath)
	if !ok {
		slog.Debug("No sidebar prefix matches page", logfields.Page(pagePath))
		return []Section{}
	}
	if secs := copySections(e.sections); secs != nil {
		return secs
	}
	return []Section{}
}

// EditURL expands the edit-link pattern for a page source path relative to the docs
// root. It returns "" when no edit link is configured.
func (s *Store) EditURL(relPath string) string {
	el := s.spec.Site.EditLink
	if el == nil || el.Pattern == "" {
		return ""
	}
	return strings.ReplaceAll(el.Pattern, pathPlaceholder, strings.TrimPrefix(relPath, "/"))
}

// Stats summarises the shape of the store.
type Stats struct {
	NavItems        int
	SidebarPrefixes int
	Sections        int
	SidebarItems    int
	MaxDepth        int
	Labels          int
}

// Stats counts entries of the store.
func (s *Store) Stats() Stats {
	st := Stats{SidebarPrefixes: len(s.table), Labels: len(s.spec.Labels)}
	_ = s.Walk(func(e Entry) error {
		if e.Sidebar == "" {
			st.NavItems++
		} else {
			st.SidebarItems++
		}
		st.MaxDepth = max(st.MaxDepth, e.Depth)
		return nil
	})
	for _, e := range s.table {
		st.Sections += len(e.sections)
	}
	return st
}

// Entry is one visited item with its location.
type Entry struct {
	Path    string // entry path, e.g. nav[5].items[1]
	Sidebar string // sidebar prefix, empty for the navigation bar
	Depth   int    // 1 for top-level items
	Item    Item   // copy without children
}

// Walk visits every navigation-bar item, then every sidebar item in prefix lookup
// order, depth first. A non-nil error from fn stops the walk and is returned.
func (s *Store) Walk(fn func(Entry) error) error {
	for i, it := range s.spec.Nav {
		if err := walk(fn, "", navPath(i), it, 1); err != nil {
			return err
		}
	}
	for _, e := range s.table {
		for si, sec := range e.sections {
			for ii, it := range sec.Items {
				if err := walk(fn, e.prefix, sectionItemPath(e.prefix, si, ii), it, 1); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func walk(fn func(Entry) error, sidebar, path string, it *Item, depth int) error {
	if err := fn(Entry{Path: path, Sidebar: sidebar, Depth: depth, Item: Item{Text: it.Text, Link: it.Link, ActiveMatch: it.ActiveMatch}}); err != nil {
		return err
	}
	for i, c := range it.Children {
		if err := walk(fn, sidebar, childPath(path, i), c, depth+1); err != nil {
			return err
		}
	}
	return nil
}
