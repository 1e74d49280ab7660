package nav

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/docnav/internal/foundation"
	fe "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

func boolPtr(b bool) *bool { return &b }

func guidesSpec() Spec {
	return Spec{
		Site: Site{Title: "Docs"},
		Nav: []*Item{
			{Text: "Home", Link: "/"},
			{Text: "Guides", Link: "/guides/", ActiveMatch: "/guides/"},
			{Text: "More", Children: []*Item{
				{Text: "Changelog", Link: "/changelog/"},
				{Text: "GitHub", Link: "https://github.com/vsmenu"},
			}},
		},
		Sidebar: SidebarMap{
			"/guides/": {
				{Text: "Guides", Items: []*Item{{Text: "Overview", Link: "/guides/"}}},
			},
			"/guides/api/": {
				{Text: "API", Collapsed: boolPtr(false), Items: []*Item{{Text: "Intro", Link: "/guides/api/intro"}}},
			},
		},
	}
}

func TestSidebar_LongestPrefixWins(t *testing.T) {
	s, err := Build(guidesSpec())
	require.NoError(t, err)

	prefix, ok := s.MatchPrefix("/guides/api/intro")
	require.True(t, ok)
	assert.Equal(t, "/guides/api/", prefix)

	secs := s.Sidebar("/guides/api/intro")
	require.Len(t, secs, 1)
	assert.Equal(t, "API", secs[0].Text)
	assert.True(t, secs[0].IsCollapsible())
	assert.False(t, secs[0].IsCollapsed())

	secs = s.Sidebar("/guides/web/")
	require.Len(t, secs, 1)
	assert.Equal(t, "Guides", secs[0].Text)
}

func TestSidebar_NoMatchIsEmpty(t *testing.T) {
	s, err := Build(guidesSpec())
	require.NoError(t, err)

	secs := s.Sidebar("/unknown/page")
	require.NotNil(t, secs)
	assert.Empty(t, secs)

	_, ok := s.MatchPrefix("/unknown/page")
	assert.False(t, ok)
}

func TestSidebar_EmptyMap(t *testing.T) {
	s, err := Build(Spec{Site: Site{Title: "Bare"}})
	require.NoError(t, err)
	assert.Empty(t, s.Sidebar("/anything"))
	assert.Empty(t, s.Prefixes())
}

func TestSidebar_PagePathNormalisation(t *testing.T) {
	spec := guidesSpec()
	spec.Site.BaseURL = "/vsmenu-docs/"
	s, err := Build(spec)
	require.NoError(t, err)

	cases := map[string]string{
		"/guides/api/intro":                 "/guides/api/",
		"guides/api/intro.md":               "/guides/api/",
		"/guides/api/intro.html#section":    "/guides/api/",
		"/guides/api/intro?x=1":             "/guides/api/",
		"/vsmenu-docs/guides/api/intro":     "/guides/api/",
		"/guides":                           "/guides/",
		"/guides/api":                       "/guides/api/",
		"/vsmenu-docs/guides/mobile-waiter": "/guides/",
	}
	for page, want := range cases {
		got, ok := s.MatchPrefix(page)
		assert.True(t, ok, page)
		assert.Equal(t, want, got, page)
	}
}

func TestSidebar_BaseSharingAKey(t *testing.T) {
	spec := guidesSpec()
	spec.Site.BaseURL = "/guides/"
	s, err := Build(spec)
	require.NoError(t, err)

	prefix, ok := s.MatchPrefix("/guides/api/intro")
	require.True(t, ok)
	assert.Equal(t, "/guides/api/", prefix)
	assert.Equal(t, "API", s.Sidebar("/guides/api/intro")[0].Text)
	assert.Equal(t, "Guides", s.Sidebar("/guides/")[0].Text)

	secs, ok := s.Sections("/guides/api/")
	require.True(t, ok)
	require.Len(t, secs, 1)
	assert.Equal(t, "API", secs[0].Text)

	_, ok = s.Sections("/guides/api/intro")
	assert.False(t, ok)
}

func TestSidebar_BaseWithRootKey(t *testing.T) {
	spec := guidesSpec()
	spec.Site.BaseURL = "/vsmenu-docs/"
	spec.Sidebar["/"] = []Section{{Text: "Root", Items: []*Item{{Text: "Home", Link: "/"}}}}
	s, err := Build(spec)
	require.NoError(t, err)

	cases := map[string]string{
		"/vsmenu-docs/guides/api/intro": "/guides/api/",
		"/vsmenu-docs/":                 "/",
		"/vsmenu-docs":                  "/",
		"/about":                        "/",
	}
	for page, want := range cases {
		got, ok := s.MatchPrefix(page)
		assert.True(t, ok, page)
		assert.Equal(t, want, got, page)
	}
}

func TestSidebar_StrictPrefixBeatsDirectoryIndex(t *testing.T) {
	s, err := Build(Spec{Sidebar: SidebarMap{
		"/x":  {{Text: "File", Items: []*Item{{Text: "X", Link: "/x"}}}},
		"/x/": {{Text: "Dir", Items: []*Item{{Text: "X", Link: "/x/"}}}},
	}})
	require.NoError(t, err)

	cases := map[string]string{
		"/x":     "/x",
		"/x/":    "/x/",
		"/x/y":   "/x/",
		"/xy":    "/x",
		"/x.md":  "/x",
		"/x?q=1": "/x",
	}
	for page, want := range cases {
		got, ok := s.MatchPrefix(page)
		assert.True(t, ok, page)
		assert.Equal(t, want, got, page)
	}
}

func TestSidebar_SectionItemsNeverNil(t *testing.T) {
	s, err := Build(Spec{Sidebar: SidebarMap{
		"/empty/": {{Text: "Placeholder"}},
		"/none/":  nil,
	}})
	require.NoError(t, err)

	secs := s.Sidebar("/empty/page")
	require.Len(t, secs, 1)
	assert.NotNil(t, secs[0].Items)
	assert.Empty(t, secs[0].Items)

	none, ok := s.Sections("/none/")
	require.True(t, ok)
	assert.NotNil(t, none)
	assert.Empty(t, none)
	assert.NotNil(t, s.Sidebar("/none/page"))
}

func TestPrefixes_OrderedBySpecificity(t *testing.T) {
	spec := Spec{Sidebar: SidebarMap{
		"/":          {{Text: "Root", Items: []*Item{{Text: "Home", Link: "/"}}}},
		"/b/":        {{Text: "B", Items: []*Item{{Text: "B", Link: "/b/"}}}},
		"/a/":        {{Text: "A", Items: []*Item{{Text: "A", Link: "/a/"}}}},
		"/a/deeper/": {{Text: "Deep", Items: []*Item{{Text: "D", Link: "/a/deeper/"}}}},
	}}
	s, err := Build(spec)
	require.NoError(t, err)
	assert.Equal(t, []string{"/a/deeper/", "/a/", "/b/", "/"}, s.Prefixes())

	// Repeated builds never change the order, whatever the map iteration order is.
	for range 20 {
		assert.Equal(t, s.Prefixes(), MustBuild(spec).Prefixes())
	}
}

func TestBuild_DirectCycleRejected(t *testing.T) {
	loop := &Item{Text: "Loop", Link: "/loop/"}
	loop.Children = []*Item{loop}

	_, err := Build(Spec{Nav: []*Item{loop}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCyclicEntry))
	assert.True(t, IsCyclic(err))
	assert.Contains(t, err.Error(), "cyclic navigation entry")

	classified, ok := fe.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, fe.CategoryValidation, classified.Category())
	assert.Equal(t, "nav[0].items[0]", classified.Path())
}

func TestBuild_IndirectCycleInSidebarRejected(t *testing.T) {
	a := &Item{Text: "A", Link: "/a"}
	b := &Item{Text: "B", Link: "/b", Children: []*Item{a}}
	a.Children = []*Item{b}

	_, err := Build(Spec{Sidebar: SidebarMap{"/x/": {{Text: "X", Items: []*Item{a}}}}})
	require.Error(t, err)
	assert.True(t, IsCyclic(err))
	fields := foundation.FieldErrorsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, `sidebar["/x/"][0].items[0].items[0].items[0]`, fields[0].Path)
}

func TestBuild_SharedSubtreeIsNotACycle(t *testing.T) {
	shared := &Item{Text: "Shared", Link: "/shared"}
	spec := Spec{Nav: []*Item{
		{Text: "One", Children: []*Item{shared}},
		{Text: "Two", Children: []*Item{shared}},
	}}
	s, err := Build(spec)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Stats().NavItems)
}

func TestBuild_MalformedEntriesNamePaths(t *testing.T) {
	spec := Spec{
		Site: Site{
			Title:       "Docs",
			Lang:        "not a tag!",
			BaseURL:     "vsmenu-docs",
			SocialLinks: []SocialLink{{Icon: "", Link: "github.com/vsmenu"}},
			EditLink:    &EditLink{Pattern: "https://github.com/vsmenu/docs/edit/main/docs"},
		},
		Nav: []*Item{
			{Text: "Empty link"},
			{Text: "", Link: "/x"},
			{Text: "Bad scheme", Link: "ftp://example.com"},
			nil,
			{Text: "Regex", Link: "/r", ActiveMatch: "/guides/("},
		},
		Sidebar: SidebarMap{"guides/": {{Text: " ", Items: []*Item{{Text: "ok", Link: "/ok"}}}}},
		Search:  Search{Provider: "algolia"},
		Outline: Outline{Level: []int{4, 2}},
	}

	_, err := Build(spec)
	require.Error(t, err)

	paths := map[string]bool{}
	for _, f := range foundation.FieldErrorsOf(err) {
		paths[f.Path] = true
	}
	for _, want := range []string{
		"site.lang",
		"site.base_url",
		"site.social_links[0].icon",
		"site.social_links[0].link",
		"site.edit_link.pattern",
		"nav[0].link",
		"nav[1].text",
		"nav[2].link",
		"nav[3]",
		"nav[4].active_match",
		`sidebar["guides/"]`,
		`sidebar["guides/"][0].text`,
		"search.options.appId",
		"search.options.apiKey",
		"search.options.indexName",
		"outline.level",
	} {
		assert.True(t, paths[want], "missing error for %s (got %v)", want, paths)
	}
	assert.True(t, errors.Is(err, ErrInvalidLink))
	assert.True(t, errors.Is(err, ErrMalformedEntry))
}

func TestBuild_LabelLeafAndGroupConflict(t *testing.T) {
	_, err := Build(Spec{Labels: Labels{
		"search":                  "Buscar",
		"search.buttonText":       "Buscar",
		"search.footer.closeText": "fechar",
		"outline.label":           "Nesta página",
	}})
	require.Error(t, err)

	fields := foundation.FieldErrorsOf(err)
	require.Len(t, fields, 1)
	assert.Equal(t, `labels["search"]`, fields[0].Path)
	assert.Equal(t, "conflict", fields[0].Code)
}

func TestBuild_DefaultsAndCanonicalLang(t *testing.T) {
	s, err := Build(Spec{Site: Site{Title: "Docs", Lang: "pt-br"}})
	require.NoError(t, err)

	site := s.Site()
	assert.Equal(t, "pt-BR", site.Lang)
	assert.Equal(t, "/", site.BaseURL)
	assert.Equal(t, SearchLocal, s.Search().Provider)
	lo, hi := s.Outline().Range()
	assert.Equal(t, 2, lo)
	assert.Equal(t, 3, hi)
}

func TestStore_IsImmutable(t *testing.T) {
	spec := guidesSpec()
	s, err := Build(spec)
	require.NoError(t, err)

	// Mutating the literal after Build does not leak into the store.
	spec.Nav[0].Text = "Changed"
	spec.Sidebar["/guides/"][0].Items[0].Link = "/changed"
	assert.Equal(t, "Home", s.Nav()[0].Text)

	// Mutating returned values does not either.
	nav := s.Nav()
	nav[2].Children[0].Text = "Mutated"
	secs := s.Sidebar("/guides/api/x")
	*secs[0].Collapsed = true
	labels := s.Labels()
	labels["x"] = "y"

	assert.Equal(t, "Changelog", s.Nav()[2].Children[0].Text)
	assert.False(t, s.Sidebar("/guides/api/x")[0].IsCollapsed())
	assert.Equal(t, "/guides/", s.Sidebar("/guides/")[0].Items[0].Link)
	assert.Empty(t, s.Label("x", ""))
}

func TestStore_EditURL(t *testing.T) {
	spec := guidesSpec()
	assert.Empty(t, MustBuild(spec).EditURL("guides/index.md"))

	spec.Site.EditLink = &EditLink{Pattern: "https://github.com/vsmenu/vsmenu-docs/edit/main/docs/:path", Text: "Edit"}
	s := MustBuild(spec)
	assert.Equal(t, "https://github.com/vsmenu/vsmenu-docs/edit/main/docs/guides/index.md", s.EditURL("/guides/index.md"))
}

func TestStore_WalkAndStats(t *testing.T) {
	s := MustBuild(guidesSpec())

	var paths []string
	require.NoError(t, s.Walk(func(e Entry) error {
		paths = append(paths, e.Path)
		return nil
	}))
	assert.Equal(t, []string{
		"nav[0]", "nav[1]", "nav[2]", "nav[2].items[0]", "nav[2].items[1]",
		`sidebar["/guides/api/"][0].items[0]`,
		`sidebar["/guides/"][0].items[0]`,
	}, paths)

	st := s.Stats()
	assert.Equal(t, 5, st.NavItems)
	assert.Equal(t, 2, st.SidebarItems)
	assert.Equal(t, 2, st.SidebarPrefixes)
	assert.Equal(t, 2, st.Sections)
	assert.Equal(t, 2, st.MaxDepth)

	stop := errors.New("stop")
	calls := 0
	err := s.Walk(func(Entry) error {
		calls++
		return stop
	})
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestMustBuild_Panics(t *testing.T) {
	assert.Panics(t, func() { MustBuild(Spec{Nav: []*Item{{Text: "x"}}}) })
}

func TestEveryValidLinkHasSlashOrScheme(t *testing.T) {
	s := MustBuild(guidesSpec())
	require.NoError(t, s.Walk(func(e Entry) error {
		if e.Item.Link == "" {
			return nil
		}
		ok := strings.HasPrefix(e.Item.Link, "/") ||
			strings.HasPrefix(e.Item.Link, "http://") ||
			strings.HasPrefix(e.Item.Link, "https://") ||
			strings.HasPrefix(e.Item.Link, "mailto:")
		assert.True(t, ok, e.Path)
		return nil
	}))
}
