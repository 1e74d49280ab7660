package nav

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Labels maps a dotted semantic key to the display string of an auxiliary UI element.
type Labels map[string]string

// Well-known label keys.
const (
	LabelSearchButtonText       = "search.buttonText"
	LabelSearchButtonAriaLabel  = "search.buttonAriaLabel"
	LabelSearchNoResultsText    = "search.noResultsText"
	LabelSearchResetButtonTitle = "search.resetButtonTitle"
	LabelSearchFooterSelectText = "search.footer.selectText"
	LabelSearchFooterNavigate   = "search.footer.navigateText"
	LabelSearchFooterCloseText  = "search.footer.closeText"
	LabelOutline                = "outline.label"
	LabelDocFooterPrev          = "docFooter.prev"
	LabelDocFooterNext          = "docFooter.next"
	LabelLastUpdated            = "lastUpdated.text"
	LabelSidebarMenu            = "sidebarMenuLabel"
	LabelReturnToTop            = "returnToTopLabel"
	LabelDarkModeSwitch         = "darkModeSwitchLabel"
	LabelLightModeSwitchTitle   = "lightModeSwitchTitle"
	LabelDarkModeSwitchTitle    = "darkModeSwitchTitle"
)

// Get returns the label for key, or fallback when it is not set.
func (l Labels) Get(key, fallback string) string {
	if v, ok := l[key]; ok && v != "" {
		return v
	}
	return fallback
}

// Keys returns the label keys in sorted order.
func (l Labels) Keys() []string {
	return slices.Sorted(maps.Keys(l))
}

// Prefixed returns the labels under prefix with the prefix (and its dot) stripped.
func (l Labels) Prefixed(prefix string) Labels {
	out := Labels{}
	p := prefix + "."
	for k, v := range l {
		if rest, ok := strings.CutPrefix(k, p); ok {
			out[rest] = v
		}
	}
	return out
}

// Nested expands the dotted keys back into nested maps, the shape renderers expect.
// A key that is both a leaf and a parent keeps the nested map.
func (l Labels) Nested() map[string]any {
	root := map[string]any{}
	for _, key := range l.Keys() {
		parts := strings.Split(key, ".")
		cur := root
		for _, p := range parts[:len(parts)-1] {
			next, ok := cur[p].(map[string]any)
			if !ok {
				next = map[string]any{}
				cur[p] = next
			}
			cur = next
		}
		leaf := parts[len(parts)-1]
		if _, isMap := cur[leaf].(map[string]any); !isMap {
			cur[leaf] = l[key]
		}
	}
	return root
}

// FlattenLabels turns nested label maps into dotted keys. Non-string leaves are rejected
// with the dotted path of the offending entry.
func FlattenLabels(nested map[string]any) (Labels, error) {
	out := Labels{}
	if err := flatten(out, "", nested); err != nil {
		return nil, err
	}
	return out, nil
}

func flatten(out Labels, prefix string, m map[string]any) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch v := m[k].(type) {
		case string:
			out[key] = v
		case map[string]any:
			if err := flatten(out, key, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("labels.%s: label must be a string, got %T", key, v)
		}
	}
	return nil
}
