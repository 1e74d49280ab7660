package nav

// Item is one clickable entry of the navigation bar, a dropdown or a sidebar group.
// Link may be empty (informational only) when the item has children.
type Item struct {
	Text        string  `yaml:"text" json:"text"`
	Link        string  `yaml:"link,omitempty" json:"link,omitempty"`
	ActiveMatch string  `yaml:"active_match,omitempty" json:"activeMatch,omitempty"`
	Children    []*Item `yaml:"items,omitempty" json:"items,omitempty"`
}

// Section is one collapsible group of a sidebar. A nil Collapsed means the group is not
// collapsible; otherwise it holds the initial state.
type Section struct {
	Text      string  `yaml:"text" json:"text"`
	Collapsed *bool   `yaml:"collapsed,omitempty" json:"collapsed,omitempty"`
	Items     []*Item `yaml:"items" json:"items"`
}

// IsCollapsible reports whether the renderer should offer a toggle for the section.
func (s Section) IsCollapsible() bool { return s.Collapsed != nil }

// IsCollapsed reports the initial state of the section.
func (s Section) IsCollapsed() bool { return s.Collapsed != nil && *s.Collapsed }

// SidebarMap maps a path prefix (e.g. "/guides/") to the ordered sections rendered for
// pages under it.
type SidebarMap map[string][]Section

// SocialLink is an icon link rendered in the navigation bar.
type SocialLink struct {
	Icon string `yaml:"icon" json:"icon"`
	Link string `yaml:"link" json:"link"`
}

// EditLink describes the "edit this page" link. Pattern contains the :path placeholder.
type EditLink struct {
	Pattern string `yaml:"pattern" json:"pattern"`
	Text    string `yaml:"text,omitempty" json:"text,omitempty"`
}

// Footer is the site footer.
type Footer struct {
	Message   string `yaml:"message,omitempty" json:"message,omitempty"`
	Copyright string `yaml:"copyright,omitempty" json:"copyright,omitempty"`
}

// DateFormat mirrors Intl.DateTimeFormat styles used for the "last updated" stamp.
type DateFormat struct {
	DateStyle string `yaml:"date_style,omitempty" json:"dateStyle,omitempty"`
	TimeStyle string `yaml:"time_style,omitempty" json:"timeStyle,omitempty"`
}

// Site is the site-wide metadata.
type Site struct {
	Title             string       `yaml:"title" json:"title"`
	Description       string       `yaml:"description,omitempty" json:"description,omitempty"`
	Lang              string       `yaml:"lang,omitempty" json:"lang,omitempty"`
	BaseURL           string       `yaml:"base_url,omitempty" json:"base,omitempty"`
	Logo              string       `yaml:"logo,omitempty" json:"logo,omitempty"`
	SiteTitle         string       `yaml:"site_title,omitempty" json:"siteTitle,omitempty"`
	CleanURLs         bool         `yaml:"clean_urls,omitempty" json:"cleanUrls,omitempty"`
	LastUpdated       bool         `yaml:"last_updated,omitempty" json:"lastUpdated,omitempty"`
	LastUpdatedFormat *DateFormat  `yaml:"last_updated_format,omitempty" json:"lastUpdatedFormat,omitempty"`
	SocialLinks       []SocialLink `yaml:"social_links,omitempty" json:"socialLinks,omitempty"`
	EditLink          *EditLink    `yaml:"edit_link,omitempty" json:"editLink,omitempty"`
	Footer            *Footer      `yaml:"footer,omitempty" json:"footer,omitempty"`
}

// SearchProvider selects the search integration of the renderer.
type SearchProvider string

const (
	SearchLocal   SearchProvider = "local"
	SearchAlgolia SearchProvider = "algolia"
)

// Search holds the search provider settings. Index construction is the renderer's job.
type Search struct {
	Provider SearchProvider `yaml:"provider,omitempty" json:"provider,omitempty"`
	Options  map[string]any `yaml:"options,omitempty" json:"options,omitempty"`
}

// Outline selects which heading levels appear in the on-page outline. One entry means a
// single level, two entries an inclusive range.
type Outline struct {
	Level []int `yaml:"level,omitempty" json:"level,omitempty"`
}

// Range returns the inclusive heading range.
func (o Outline) Range() (lo, hi int) {
	switch len(o.Level) {
	case 0:
		return 2, 3
	case 1:
		return o.Level[0], o.Level[0]
	default:
		return o.Level[0], o.Level[1]
	}
}

// CodeTheme pairs the syntax highlighting themes for light and dark mode.
type CodeTheme struct {
	Light string `yaml:"light,omitempty" json:"light,omitempty"`
	Dark  string `yaml:"dark,omitempty" json:"dark,omitempty"`
}

// Markdown holds code-block rendering settings.
type Markdown struct {
	LineNumbers bool      `yaml:"line_numbers,omitempty" json:"lineNumbers,omitempty"`
	Theme       CodeTheme `yaml:"theme,omitempty" json:"theme,omitempty"`
}

// Spec is the composite literal a Store is built from.
type Spec struct {
	Site     Site
	Nav      []*Item
	Sidebar  SidebarMap
	Labels   Labels
	Search   Search
	Outline  Outline
	Markdown Markdown
}
