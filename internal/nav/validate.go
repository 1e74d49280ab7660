package nav

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/docnav/internal/foundation"
)

var (
	searchProviders = foundation.OneOf(SearchLocal, SearchAlgolia)
	headingLevel    = foundation.InRange(1, 6)
	dateStyles      = foundation.OneOf("", "full", "long", "medium", "short")
)

// algoliaRequired are the option keys the Algolia provider cannot work without.
var algoliaRequired = []string{"appId", "apiKey", "indexName"}

// validator accumulates field errors for one Spec.
type validator struct {
	result foundation.ValidationResult
}

func newValidator() *validator {
	return &validator{result: foundation.Valid()}
}

func (v *validator) fail(path, code, message string, cause error) {
	v.result.Add(foundation.FieldError{Path: path, Code: code, Message: message, Cause: cause})
}

func (v *validator) failErr(path, code string, err error) {
	v.fail(path, code, err.Error(), err)
}

func (v *validator) merge(r foundation.ValidationResult) {
	for _, fe := range r.Errors {
		v.result.Add(fe)
	}
}

func (v *validator) validate(spec *Spec) {
	v.validateSite(&spec.Site)
	v.validateItems("nav", spec.Nav)
	for _, prefix := range slices.Sorted(maps.Keys(spec.Sidebar)) {
		v.validateSidebar(prefix, spec.Sidebar[prefix])
	}
	v.validateLabels(spec.Labels)
	v.validateSearch(&spec.Search)
	v.validateOutline(spec.Outline)
}

func (v *validator) validateSite(site *Site) {
	if site.Lang != "" {
		if _, err := language.Parse(site.Lang); err != nil {
			v.fail("site.lang", "language", fmt.Sprintf("invalid language tag %q: %v", site.Lang, err), ErrMalformedEntry)
		}
	}
	if b := site.BaseURL; b != "" {
		if strings.Contains(b, "://") {
			if err := CheckWebURL(b); err != nil {
				v.failErr("site.base_url", "invalid_link", err)
			}
		} else if !strings.HasPrefix(b, "/") || !strings.HasSuffix(b, "/") {
			v.fail("site.base_url", "invalid_link", fmt.Sprintf("base URL %q must start and end with /", b), ErrInvalidLink)
		}
	}
	if site.Logo != "" {
		if err := CheckLink(site.Logo); err != nil {
			v.failErr("site.logo", "invalid_link", err)
		}
	}
	for i, sl := range site.SocialLinks {
		path := fmt.Sprintf("site.social_links[%d]", i)
		if sl.Icon == "" {
			v.fail(path+".icon", "empty", "icon must not be empty", ErrMalformedEntry)
		}
		if err := CheckWebURL(sl.Link); err != nil {
			v.failErr(path+".link", "invalid_link", err)
		}
	}
	if el := site.EditLink; el != nil {
		if err := CheckWebURL(el.Pattern); err != nil {
			v.failErr("site.edit_link.pattern", "invalid_link", err)
		} else if !strings.Contains(el.Pattern, pathPlaceholder) {
			v.fail("site.edit_link.pattern", "placeholder", "edit link pattern must contain "+pathPlaceholder, ErrInvalidLink)
		}
	}
	if f := site.LastUpdatedFormat; f != nil {
		v.merge(dateStyles("site.last_updated_format.date_style", f.DateStyle))
		v.merge(dateStyles("site.last_updated_format.time_style", f.TimeStyle))
	}
}

// validateItems checks a tree of items. Cycles are detected per root with an on-stack
// set; shared subtrees that do not loop back are accepted.
func (v *validator) validateItems(path string, items []*Item) {
	for i, it := range items {
		v.validateItem(fmt.Sprintf("%s[%d]", path, i), it, map[*Item]bool{})
	}
}

func (v *validator) validateItem(path string, it *Item, onStack map[*Item]bool) {
	if it == nil {
		v.fail(path, "nil", "entry must not be empty", ErrMalformedEntry)
		return
	}
	if onStack[it] {
		v.fail(path, "cycle", ErrCyclicEntry.Error(), ErrCyclicEntry)
		return
	}
	if strings.TrimSpace(it.Text) == "" {
		v.fail(path+".text", "empty", "text must not be empty", ErrMalformedEntry)
	}
	switch {
	case it.Link != "":
		if err := CheckLink(it.Link); err != nil {
			v.failErr(path+".link", "invalid_link", err)
		}
	case len(it.Children) == 0:
		v.fail(path+".link", "empty", "link must not be empty for an entry without children", ErrInvalidLink)
	}
	if it.ActiveMatch != "" {
		if err := checkActiveMatch(it.ActiveMatch); err != nil {
			v.failErr(path+".active_match", "malformed", err)
		}
	}
	onStack[it] = true
	for i, child := range it.Children {
		v.validateItem(fmt.Sprintf("%s.items[%d]", path, i), child, onStack)
	}
	delete(onStack, it)
}

func (v *validator) validateSidebar(prefix string, sections []Section) {
	base := fmt.Sprintf("sidebar[%q]", prefix)
	if !strings.HasPrefix(prefix, "/") {
		v.fail(base, "prefix", fmt.Sprintf("sidebar prefix %q must start with /", prefix), ErrMalformedEntry)
	}
	for i, sec := range sections {
		path := fmt.Sprintf("%s[%d]", base, i)
		if strings.TrimSpace(sec.Text) == "" {
			v.fail(path+".text", "empty", "section heading must not be empty", ErrMalformedEntry)
		}
		v.validateItems(path+".items", sec.Items)
	}
}

func (v *validator) validateLabels(labels Labels) {
	reported := map[string]bool{}
	for _, k := range labels.Keys() {
		if k == "" || strings.HasPrefix(k, ".") || strings.HasSuffix(k, ".") || strings.Contains(k, "..") {
			v.fail(fmt.Sprintf("labels[%q]", k), "key", "label key must be a dotted identifier", ErrMalformedEntry)
			continue
		}
		// A label cannot also be the group of other labels ("search" and "search.buttonText").
		for i := range len(k) {
			if k[i] != '.' {
				continue
			}
			parent := k[:i]
			if _, ok := labels[parent]; ok && !reported[parent] {
				reported[parent] = true
				v.fail(fmt.Sprintf("labels[%q]", parent), "conflict",
					fmt.Sprintf("label %q is also the group of %q", parent, k), ErrMalformedEntry)
			}
		}
	}
}

func (v *validator) validateSearch(s *Search) {
	v.merge(searchProviders("search.provider", s.Provider))
	if s.Provider != SearchAlgolia {
		return
	}
	for _, key := range algoliaRequired {
		if str, _ := s.Options[key].(string); str == "" {
			v.fail("search.options."+key, "required", "algolia search requires "+key, ErrMalformedEntry)
		}
	}
}

func (v *validator) validateOutline(o Outline) {
	if len(o.Level) > 2 {
		v.fail("outline.level", "length", "outline level takes one level or a [min, max] pair", ErrMalformedEntry)
		return
	}
	for i, l := range o.Level {
		v.merge(headingLevel(fmt.Sprintf("outline.level[%d]", i), l))
	}
	if lo, hi := o.Range(); lo > hi {
		v.fail("outline.level", "range", fmt.Sprintf("outline min level %d exceeds max level %d", lo, hi), ErrMalformedEntry)
	}
}

// IsCyclic reports whether err was caused by a cyclic navigation entry.
func IsCyclic(err error) bool { return errors.Is(err, ErrCyclicEntry) }
