package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

var searchProviderNormalizer = normalization.NewNormalizer(map[string]nav.SearchProvider{
	"local":      nav.SearchLocal,
	"minisearch": nav.SearchLocal,
	"algolia":    nav.SearchAlgolia,
}, nav.SearchLocal)

// NormalizeDocument canonicalises enumerated fields in place. Unknown values fall back to
// their default and are reported as warnings rather than errors.
func NormalizeDocument(d *Document) (*NormalizationResult, error) {
	if d == nil {
		return nil, fmt.Errorf("config nil")
	}
	res := &NormalizationResult{}

	d.Version = strings.TrimSpace(d.Version)
	if d.Version == "" {
		d.Version = Version
	}

	if p, ok := normalizeEnum(searchProviderNormalizer, "search.provider", d.Search.Provider, res); ok {
		d.Search.Provider = p
	}
	if d.Logging != nil {
		if l, ok := normalizeEnum(logLevelNormalizer, "logging.level", d.Logging.Level, res); ok {
			d.Logging.Level = l
		}
		if f, ok := normalizeEnum(logFormatNormalizer, "logging.format", d.Logging.Format, res); ok {
			d.Logging.Format = f
		}
	}
	if d.Render != nil {
		if f, ok := normalizeEnum(renderFormatNormalizer, "render.format", d.Render.Format, res); ok {
			d.Render.Format = f
		}
	}
	return res, nil
}

// normalizeEnum returns the canonical value and whether the field should be rewritten.
// Empty input is left alone so defaults stay implicit.
func normalizeEnum[T ~string](n *normalization.Normalizer[T], field string, cur T, res *NormalizationResult) (T, bool) {
	if strings.TrimSpace(string(cur)) == "" {
		return cur, false
	}
	v, err := n.Parse(string(cur))
	if err != nil {
		def := n.Normalize("")
		res.Warnings = append(res.Warnings, warnUnknown(field, string(cur), string(def)))
		return def, true
	}
	if v != cur {
		res.Warnings = append(res.Warnings, warnChanged(field, cur, v))
		return v, true
	}
	return cur, false
}

func warnChanged(field string, from, to any) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}

func warnUnknown(field, value, def string) string {
	return fmt.Sprintf("unknown %s '%s', defaulting to %s", field, value, def)
}
