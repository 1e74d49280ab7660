package nav

import (
	"cmp"
	"slices"
	"strings"
)

// sidebarEntry is one row of the compiled prefix table.
type sidebarEntry struct {
	prefix   string
	sections []Section
}

// compileSidebar orders prefixes by specificity: longer keys first, equal lengths
// lexicographically. The first entry that matches a page path is therefore its longest
// matching prefix.
func compileSidebar(m SidebarMap) []sidebarEntry {
	table := make([]sidebarEntry, 0, len(m))
	for prefix, sections := range m {
		table = append(table, sidebarEntry{prefix: prefix, sections: sections})
	}
	slices.SortFunc(table, func(a, b sidebarEntry) int {
		if c := cmp.Compare(len(b.prefix), len(a.prefix)); c != 0 {
			return c
		}
		return strings.Compare(a.prefix, b.prefix)
	})
	return table
}

// match finds the most specific entry for an already normalised path and scores it by
// the number of path bytes the key covers. A key that prefixes p covers all of itself.
// Under the directory-index rule a key equal to p plus a trailing slash ("/guides/" for
// "/guides") covers p, but loses a tie against a key that prefixes p outright.
func match(table []sidebarEntry, p string) (best sidebarEntry, score int) {
	score = -1
	for _, e := range table {
		n := -1
		switch {
		case strings.HasPrefix(p, e.prefix):
			n = 2*len(e.prefix) + 1
		case strings.HasSuffix(e.prefix, "/") && p == strings.TrimSuffix(e.prefix, "/"):
			n = 2 * len(p)
		}
		if n > score {
			best, score = e, n
		}
	}
	return best, score
}

// NormalizePagePath turns what a renderer hands over (a URL path, possibly with a
// query, fragment or a source file extension) into a rooted path.
func NormalizePagePath(pagePath string) string {
	p := pagePath
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	for _, ext := range []string{".md", ".html"} {
		if trimmed, ok := strings.CutSuffix(p, ext); ok {
			return trimmed
		}
	}
	return p
}

// stripBase removes a site base ("/vsmenu-docs/") from a normalised path. It reports
// false when base is the root or does not prefix p.
func stripBase(base, p string) (string, bool) {
	if base == "" || base == "/" || !strings.HasPrefix(base, "/") {
		return "", false
	}
	if rest, ok := strings.CutPrefix(p, base); ok {
		return "/" + rest, true
	}
	if p == strings.TrimSuffix(base, "/") {
		return "/", true
	}
	return "", false
}
