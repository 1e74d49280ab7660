package config

import (
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer(map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
}, LogLevelInfo)

func NormalizeLogLevel(raw string) LogLevel {
	return logLevelNormalizer.Normalize(raw)
}

// Slog maps the level onto log/slog.
func (l LogLevel) Slog() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer(map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
}, LogFormatText)

func NormalizeLogFormat(raw string) LogFormat {
	return logFormatNormalizer.Normalize(raw)
}

// RenderFormat names an output renderer.
type RenderFormat string

const (
	RenderVitePress RenderFormat = "vitepress"
	RenderHugo      RenderFormat = "hugo"
)

var renderFormatNormalizer = normalization.NewNormalizer(map[string]RenderFormat{
	"vitepress": RenderVitePress,
	"vite":      RenderVitePress,
	"hugo":      RenderHugo,
}, RenderVitePress)

// ParseRenderFormat converts a flag or config value. Unknown names are an error.
func ParseRenderFormat(raw string) (RenderFormat, error) {
	return renderFormatNormalizer.Parse(raw)
}

// RenderFormats lists the accepted spellings.
func RenderFormats() []string { return renderFormatNormalizer.ValidKeys() }
