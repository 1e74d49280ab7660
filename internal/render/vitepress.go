package render

import (
	"encoding/json"
	"io"
	"maps"

	"git.home.luguber.info/inful/docnav/internal/nav"
)

// VitePress renders the site configuration object of .vitepress/config.mts as JSON. A
// two-line shim imports it:
//
//	import site from './docnav.json'
//	export default defineConfig(site)
type VitePress struct{}

func (VitePress) Name() string          { return "vitepress" }
func (VitePress) DefaultOutput() string { return "docnav.json" }

type vpConfig struct {
	Title       string      `json:"title,omitempty"`
	Description string      `json:"description,omitempty"`
	Lang        string      `json:"lang,omitempty"`
	Base        string      `json:"base,omitempty"`
	CleanURLs   bool        `json:"cleanUrls,omitempty"`
	LastUpdated bool        `json:"lastUpdated,omitempty"`
	Markdown    *vpMarkdown `json:"markdown,omitempty"`
	ThemeConfig vpTheme     `json:"themeConfig"`
}

type vpMarkdown struct {
	LineNumbers bool           `json:"lineNumbers,omitempty"`
	Theme       *nav.CodeTheme `json:"theme,omitempty"`
}

type vpTheme struct {
	Logo                 string           `json:"logo,omitempty"`
	SiteTitle            string           `json:"siteTitle,omitempty"`
	Nav                  []*nav.Item      `json:"nav,omitempty"`
	Sidebar              nav.SidebarMap   `json:"sidebar,omitempty"`
	SocialLinks          []nav.SocialLink `json:"socialLinks,omitempty"`
	EditLink             *nav.EditLink    `json:"editLink,omitempty"`
	Footer               *nav.Footer      `json:"footer,omitempty"`
	LastUpdated          *vpLastUpdated   `json:"lastUpdated,omitempty"`
	Search               *vpSearch        `json:"search,omitempty"`
	Outline              *vpOutline       `json:"outline,omitempty"`
	DocFooter            *vpDocFooter     `json:"docFooter,omitempty"`
	SidebarMenuLabel     string           `json:"sidebarMenuLabel,omitempty"`
	ReturnToTopLabel     string           `json:"returnToTopLabel,omitempty"`
	DarkModeSwitchLabel  string           `json:"darkModeSwitchLabel,omitempty"`
	LightModeSwitchTitle string           `json:"lightModeSwitchTitle,omitempty"`
	DarkModeSwitchTitle  string           `json:"darkModeSwitchTitle,omitempty"`
}

type vpLastUpdated struct {
	Text          string          `json:"text,omitempty"`
	FormatOptions *nav.DateFormat `json:"formatOptions,omitempty"`
}

type vpSearch struct {
	Provider nav.SearchProvider `json:"provider"`
	Options  map[string]any     `json:"options,omitempty"`
}

type vpOutline struct {
	Level []int  `json:"level,omitempty"`
	Label string `json:"label,omitempty"`
}

type vpDocFooter struct {
	Prev string `json:"prev,omitempty"`
	Next string `json:"next,omitempty"`
}

func (VitePress) Render(w io.Writer, s *nav.Store) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(vitePressConfig(s))
}

func vitePressConfig(s *nav.Store) vpConfig {
	site := s.Site()
	labels := s.Labels()

	cfg := vpConfig{
		Title:       site.Title,
		Description: site.Description,
		Lang:        site.Lang,
		Base:        site.BaseURL,
		CleanURLs:   site.CleanURLs,
		LastUpdated: site.LastUpdated,
		ThemeConfig: vpTheme{
			Logo:                 site.Logo,
			SiteTitle:            site.SiteTitle,
			Nav:                  s.Nav(),
			SocialLinks:          site.SocialLinks,
			EditLink:             site.EditLink,
			Footer:               site.Footer,
			Search:               vitePressSearch(s.Search(), labels),
			SidebarMenuLabel:     labels[nav.LabelSidebarMenu],
			ReturnToTopLabel:     labels[nav.LabelReturnToTop],
			DarkModeSwitchLabel:  labels[nav.LabelDarkModeSwitch],
			LightModeSwitchTitle: labels[nav.LabelLightModeSwitchTitle],
			DarkModeSwitchTitle:  labels[nav.LabelDarkModeSwitchTitle],
		},
	}

	if md := s.Markdown(); md.LineNumbers || md.Theme != (nav.CodeTheme{}) {
		cfg.Markdown = &vpMarkdown{LineNumbers: md.LineNumbers}
		if md.Theme != (nav.CodeTheme{}) {
			cfg.Markdown.Theme = &md.Theme
		}
	}

	if prefixes := s.Prefixes(); len(prefixes) > 0 {
		cfg.ThemeConfig.Sidebar = make(nav.SidebarMap, len(prefixes))
		for _, p := range prefixes {
			cfg.ThemeConfig.Sidebar[p], _ = s.Sections(p)
		}
	}

	if text := labels[nav.LabelLastUpdated]; text != "" || site.LastUpdatedFormat != nil {
		cfg.ThemeConfig.LastUpdated = &vpLastUpdated{Text: text, FormatOptions: site.LastUpdatedFormat}
	}

	lo, hi := s.Outline().Range()
	cfg.ThemeConfig.Outline = &vpOutline{Level: []int{lo, hi}, Label: labels[nav.LabelOutline]}

	if prev, next := labels[nav.LabelDocFooterPrev], labels[nav.LabelDocFooterNext]; prev != "" || next != "" {
		cfg.ThemeConfig.DocFooter = &vpDocFooter{Prev: prev, Next: next}
	}
	return cfg
}

// vitePressSearch places search labels where the local provider reads them
// (options.locales.root.translations) unless the options already carry locales.
func vitePressSearch(search nav.Search, labels nav.Labels) *vpSearch {
	out := &vpSearch{Provider: search.Provider, Options: maps.Clone(search.Options)}
	if search.Provider != nav.SearchLocal {
		return out
	}
	if _, ok := out.Options["locales"]; ok {
		return out
	}

	button := nonEmpty(map[string]any{
		"buttonText":      labels[nav.LabelSearchButtonText],
		"buttonAriaLabel": labels[nav.LabelSearchButtonAriaLabel],
	})
	footer := nonEmpty(map[string]any{
		"selectText":   labels[nav.LabelSearchFooterSelectText],
		"navigateText": labels[nav.LabelSearchFooterNavigate],
		"closeText":    labels[nav.LabelSearchFooterCloseText],
	})
	modal := nonEmpty(map[string]any{
		"noResultsText":    labels[nav.LabelSearchNoResultsText],
		"resetButtonTitle": labels[nav.LabelSearchResetButtonTitle],
	})
	if len(footer) > 0 {
		if modal == nil {
			modal = map[string]any{}
		}
		modal["footer"] = footer
	}
	translations := map[string]any{}
	if button != nil {
		translations["button"] = button
	}
	if modal != nil {
		translations["modal"] = modal
	}
	if len(translations) == 0 {
		return out
	}
	if out.Options == nil {
		out.Options = map[string]any{}
	}
	out.Options["locales"] = map[string]any{"root": map[string]any{"translations": translations}}
	return out
}

// nonEmpty drops empty string values and returns nil when nothing is left.
func nonEmpty(m map[string]any) map[string]any {
	for k, v := range m {
		if s, ok := v.(string); ok && s == "" {
			delete(m, k)
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
