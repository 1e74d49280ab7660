package nav

import (
	"fmt"
	"maps"
)

func navPath(i int) string { return fmt.Sprintf("nav[%d]", i) }

func sectionItemPath(prefix string, section, item int) string {
	return fmt.Sprintf("sidebar[%q][%d].items[%d]", prefix, section, item)
}

func childPath(parent string, i int) string { return fmt.Sprintf("%s.items[%d]", parent, i) }

// copy helpers assume an acyclic tree; Build validates before copying. They also
// canonicalise empty collections so a store survives a YAML round trip unchanged:
// empty item lists, sidebars, labels and search options become nil, and section item
// lists are never nil.

func copyItems(items []*Item) []*Item {
	if len(items) == 0 {
		return nil
	}
	out := make([]*Item, len(items))
	for i, it := range items {
		c := *it
		c.Children = copyItems(it.Children)
		out[i] = &c
	}
	return out
}

func copySections(secs []Section) []Section {
	if len(secs) == 0 {
		return nil
	}
	out := make([]Section, len(secs))
	for i, s := range secs {
		out[i] = Section{Text: s.Text, Items: copyItems(s.Items)}
		if out[i].Items == nil {
			out[i].Items = []*Item{}
		}
		if s.Collapsed != nil {
			c := *s.Collapsed
			out[i].Collapsed = &c
		}
	}
	return out
}

func copySite(s Site) Site {
	out := s
	out.SocialLinks = append([]SocialLink(nil), s.SocialLinks...)
	if s.EditLink != nil {
		el := *s.EditLink
		out.EditLink = &el
	}
	if s.Footer != nil {
		f := *s.Footer
		out.Footer = &f
	}
	if s.LastUpdatedFormat != nil {
		f := *s.LastUpdatedFormat
		out.LastUpdatedFormat = &f
	}
	return out
}

func copyAnyMap(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyAny(v)
	}
	return out
}

func copyAny(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return copyAnyMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = copyAny(e)
		}
		return out
	default:
		return v
	}
}

func copySpec(s Spec) Spec {
	out := Spec{
		Site:     copySite(s.Site),
		Nav:      copyItems(s.Nav),
		Search:   Search{Provider: s.Search.Provider},
		Outline:  Outline{Level: append([]int(nil), s.Outline.Level...)},
		Markdown: s.Markdown,
	}
	if len(s.Labels) > 0 {
		out.Labels = maps.Clone(s.Labels)
	}
	if len(s.Search.Options) > 0 {
		out.Search.Options = copyAnyMap(s.Search.Options)
	}
	if len(s.Sidebar) > 0 {
		out.Sidebar = make(SidebarMap, len(s.Sidebar))
		for k, v := range s.Sidebar {
			out.Sidebar[k] = copySections(v)
		}
	}
	return out
}
