package render

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

// HextraModule is the Hugo module imported for the theme.
const HextraModule = "github.com/imfing/hextra"

// Hugo renders hugo.yaml for a Hextra site. The navigation bar becomes menu.main; the
// per-prefix sidebars are carried under params.docnav for a sidebar partial to read.
type Hugo struct{}

func (Hugo) Name() string          { return "hugo" }
func (Hugo) DefaultOutput() string { return "hugo.yaml" }

func (Hugo) Render(w io.Writer, s *nav.Store) error {
	data, err := yaml.Marshal(hugoConfig(s))
	if err != nil {
		return fmt.Errorf("failed to marshal Hugo config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

func hugoConfig(s *nav.Store) map[string]any {
	site := s.Site()
	md := s.Markdown()

	params := map[string]any{}
	root := map[string]any{
		"title":         site.Title,
		"baseURL":       site.BaseURL,
		"languageCode":  site.Lang,
		"enableGitInfo": site.LastUpdated,
		"markup": map[string]any{
			"goldmark":  map[string]any{"renderer": map[string]any{"unsafe": true}},
			"highlight": map[string]any{"style": highlightStyle(md.Theme.Light), "lineNos": md.LineNumbers, "noClasses": false},
		},
		"module": map[string]any{"imports": []map[string]any{{"path": HextraModule}}},
		"params": params,
	}
	if site.CleanURLs {
		root["uglyURLs"] = false
	}

	if site.Description != "" {
		params["description"] = site.Description
	}
	if s.Search().Provider == nav.SearchLocal {
		params["search"] = map[string]any{"enable": true, "type": "flexsearch", "flexsearch": map[string]any{"index": "content", "tokenize": "forward"}}
	} else {
		params["search"] = map[string]any{"enable": false}
	}
	if el := site.EditLink; el != nil {
		params["editURL"] = map[string]any{"enable": true, "base": strings.TrimSuffix(strings.TrimSuffix(el.Pattern, ":path"), "/")}
	}
	navbar := map[string]any{"displayTitle": true, "displayLogo": site.Logo != ""}
	if site.Logo != "" {
		navbar["logo"] = map[string]any{"path": site.Logo}
	}
	params["navbar"] = navbar
	if f := site.Footer; f != nil {
		params["footer"] = map[string]any{"enable": true, "displayCopyright": f.Copyright != ""}
		if f.Copyright != "" {
			params["copyright"] = f.Copyright
		}
	}
	if site.LastUpdated {
		params["displayUpdatedDate"] = true
	}
	params["theme"] = map[string]any{"default": "system", "displayToggle": true}

	params["docnav"] = docnavParams(s)
	root["menu"] = map[string]any{"main": mainMenu(s.Nav(), site.SocialLinks)}
	return root
}

func highlightStyle(light string) string {
	if light == "" {
		return "github"
	}
	// Shiki names such as github-light map onto the Chroma style of the same family.
	return strings.TrimSuffix(light, "-light")
}

func docnavParams(s *nav.Store) map[string]any {
	lo, hi := s.Outline().Range()
	out := map[string]any{
		"outline": []int{lo, hi},
	}
	prefixes := s.Prefixes()
	sidebars := make([]map[string]any, 0, len(prefixes))
	for _, p := range prefixes {
		secs, _ := s.Sections(p)
		sidebars = append(sidebars, map[string]any{"prefix": p, "sections": secs})
	}
	if len(sidebars) > 0 {
		out["sidebars"] = sidebars
	}
	if labels := s.Labels(); len(labels) > 0 {
		out["labels"] = labels.Nested()
	}
	return out
}

// mainMenu flattens the navigation tree into Hugo menu entries. Items with children get
// an identifier their children reference as parent.
func mainMenu(items []*nav.Item, social []nav.SocialLink) []map[string]any {
	var entries []map[string]any
	var add func(parent, id string, items []*nav.Item)
	add = func(parent, id string, items []*nav.Item) {
		for i, it := range items {
			e := map[string]any{"name": it.Text, "weight": (i + 1) * 10}
			if it.Link != "" {
				e["url"] = it.Link
			}
			if parent != "" {
				e["parent"] = parent
			}
			if len(it.Children) > 0 {
				ident := fmt.Sprintf("%s-%d", id, i)
				e["identifier"] = ident
				entries = append(entries, e)
				add(ident, ident, it.Children)
				continue
			}
			entries = append(entries, e)
		}
	}
	add("", "nav", items)

	entries = append(entries,
		map[string]any{"name": "Search", "weight": 900, "params": map[string]any{"type": "search"}},
		map[string]any{"name": "Theme", "weight": 980, "params": map[string]any{"type": "theme-toggle", "label": false}},
	)
	for i, sl := range social {
		entries = append(entries, map[string]any{"name": sl.Icon, "weight": 990 + i, "url": sl.Link, "params": map[string]any{"icon": sl.Icon}})
	}
	return entries
}
