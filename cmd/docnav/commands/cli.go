package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
)

// Environment variables read by the CLI.
const (
	EnvLogLevel  = "DOCNAV_LOG_LEVEL"
	EnvLogFormat = "DOCNAV_LOG_FORMAT"
)

// Global carries state shared by all subcommands.
type Global struct {
	Out     io.Writer // user-facing output
	Log     io.Writer // log output, stderr when nil
	Verbose bool
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// applyLogging reconfigures the default logger from the logging section of a loaded
// configuration. -v and the DOCNAV_LOG_* variables take precedence over the file.
func (g *Global) applyLogging(cfg *config.Config) {
	w, verbose := io.Writer(os.Stderr), false
	if g != nil {
		verbose = g.Verbose
		if g.Log != nil {
			w = g.Log
		}
	}
	level, format := logSettings(verbose, cfg)
	slog.SetDefault(newLogger(w, level, format))
}

// CLI definition & global flags.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path" default:"docnav.yaml" type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Validate ValidateCmd `cmd:"" help:"Validate one or more (alternative) configuration files"`
	Resolve  ResolveCmd  `cmd:"" help:"Show the sidebar selected for a page path"`
	Render   RenderCmd   `cmd:"" help:"Render the navigation for a static-site generator"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once. Commands that load a single
// configuration refine it with applyLogging.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level, format := logSettings(c.Verbose, nil)
	slog.SetDefault(newLogger(os.Stderr, level, format))
	return nil
}

func newLogger(w io.Writer, level slog.Level, format config.LogFormat) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if format == config.LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// logSettings resolves the log level (-v, then DOCNAV_LOG_LEVEL, then the configuration)
// and the log format (DOCNAV_LOG_FORMAT, then the configuration). cfg may be nil.
func logSettings(verbose bool, cfg *config.Config) (slog.Level, config.LogFormat) {
	level := cfg.LogLevel()
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		level = config.NormalizeLogLevel(raw)
	}
	if verbose {
		level = config.LogLevelDebug
	}
	format := cfg.LogFormat()
	if raw := os.Getenv(EnvLogFormat); raw != "" {
		format = config.NormalizeLogFormat(raw)
	}
	return level.Slog(), format
}
