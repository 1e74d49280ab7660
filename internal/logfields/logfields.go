package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfig     = "config"
	KeyFile       = "file"
	KeyPath       = "path"
	KeyPage       = "page"
	KeyPrefix     = "prefix"
	KeyFormat     = "format"
	KeyEntry      = "entry"
	KeyCount      = "count"
	KeySections   = "sections"
	KeyDurationMS = "duration_ms"
	KeyURL        = "url"
	KeyRemote     = "remote"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Config(path string) slog.Attr    { return slog.String(KeyConfig, path) }
func File(name string) slog.Attr      { return slog.String(KeyFile, name) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Page(p string) slog.Attr         { return slog.String(KeyPage, p) }
func Prefix(p string) slog.Attr       { return slog.String(KeyPrefix, p) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func Entry(path string) slog.Attr     { return slog.String(KeyEntry, path) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Sections(n int) slog.Attr        { return slog.Int(KeySections, n) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func URL(u string) slog.Attr          { return slog.String(KeyURL, u) }
func Remote(name string) slog.Attr    { return slog.String(KeyRemote, name) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
