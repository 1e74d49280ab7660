// Package config loads docnav YAML configuration files into a navigation store.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// Version is the configuration format version written by Init and Save.
const Version = "1.0"

// DefaultFile is the configuration file looked up when none is given.
const DefaultFile = "docnav.yaml"

// Document is the on-disk configuration.
type Document struct {
	Version      string            `yaml:"version"`
	Site         nav.Site          `yaml:"site"`
	Nav          []*nav.Item       `yaml:"nav,omitempty"`
	Sidebar      nav.SidebarMap    `yaml:"sidebar,omitempty"`
	SidebarFiles map[string]string `yaml:"sidebar_files,omitempty"` // prefix -> Markdown outline, relative to the config file
	Labels       map[string]any    `yaml:"labels,omitempty"`
	Search       nav.Search        `yaml:"search,omitempty"`
	Outline      nav.Outline       `yaml:"outline,omitempty"`
	Markdown     nav.Markdown      `yaml:"markdown,omitempty"`
	Logging      *LoggingConfig    `yaml:"logging,omitempty"`
	Render       *RenderConfig     `yaml:"render,omitempty"`
}

// LoggingConfig sets the CLI log output when no flag overrides it.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// RenderConfig holds defaults for the render command.
type RenderConfig struct {
	Format RenderFormat `yaml:"format,omitempty"`
	Output string       `yaml:"output,omitempty"`
}

// Config is a loaded configuration: the document as read and the store built from it.
type Config struct {
	File     string
	Doc      *Document
	Store    *nav.Store
	Warnings []string
}

// Load reads, normalises and validates the configuration at path.
func Load(path string) (*Config, error) {
	loadEnvFiles(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, derrors.NotFoundError("configuration file not found").
				WithCause(err).WithContext(derrors.ContextFile, path).Build()
		}
		return nil, derrors.FileSystemError("failed to read configuration file").
			WithCause(err).WithContext(derrors.ContextFile, path).Build()
	}

	cfg, err := parse(data, filepath.Dir(path))
	if err != nil {
		if ce, ok := derrors.AsClassified(err); ok {
			return nil, ce.WithContext(derrors.ContextFile, path)
		}
		return nil, err
	}
	cfg.File = path
	for _, w := range cfg.Warnings {
		slog.Warn("Configuration adjusted", logfields.Config(path), slog.String("detail", w))
	}
	slog.Debug("Configuration loaded", logfields.Config(path), logfields.Count(len(cfg.Doc.Nav)), logfields.Sections(len(cfg.Doc.Sidebar)))
	return cfg, nil
}

// Parse builds a configuration from YAML bytes. Sidebar files are resolved relative to baseDir.
func Parse(data []byte, baseDir string) (*Config, error) {
	return parse(data, baseDir)
}

func parse(data []byte, baseDir string) (*Config, error) {
	doc, err := decode(data)
	if err != nil {
		return nil, err
	}

	res, err := NormalizeDocument(doc)
	if err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to normalise configuration").Build()
	}
	applyEnvOverrides(doc)

	if err := ValidateConfig(doc); err != nil {
		return nil, err
	}

	spec, err := resolveSpec(doc, baseDir)
	if err != nil {
		return nil, err
	}
	store, err := nav.Build(spec)
	if err != nil {
		return nil, err
	}
	return &Config{Doc: doc, Store: store, Warnings: res.Warnings}, nil
}

func decode(data []byte) (*Document, error) {
	expanded := os.ExpandEnv(string(data))

	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, derrors.WrapError(err, derrors.CategoryConfig, "failed to parse configuration").Build()
	}
	return &doc, nil
}

// resolveSpec turns the document into the composite a store is built from, reading
// sidebar outline files and flattening nested labels.
func resolveSpec(doc *Document, baseDir string) (nav.Spec, error) {
	spec := nav.Spec{
		Site:     doc.Site,
		Nav:      doc.Nav,
		Search:   doc.Search,
		Outline:  doc.Outline,
		Markdown: doc.Markdown,
	}

	if len(doc.Sidebar) > 0 || len(doc.SidebarFiles) > 0 {
		spec.Sidebar = make(nav.SidebarMap, len(doc.Sidebar)+len(doc.SidebarFiles))
		for prefix, secs := range doc.Sidebar {
			spec.Sidebar[strings.TrimSpace(prefix)] = secs
		}
	}
	for prefix, file := range doc.SidebarFiles {
		secs, err := readSidebarFile(baseDir, file)
		if err != nil {
			return nav.Spec{}, err
		}
		spec.Sidebar[strings.TrimSpace(prefix)] = secs
	}

	labels, err := nav.FlattenLabels(doc.Labels)
	if err != nil {
		return nav.Spec{}, derrors.WrapError(err, derrors.CategoryValidation, "invalid labels").
			WithPath("labels").Build()
	}
	spec.Labels = labels
	return spec, nil
}

// Spec returns the composite the store was built from, for callers that want to rebuild
// with modifications.
func (c *Config) Spec() nav.Spec { return c.Store.Spec() }

// LogLevel returns the configured log level, info when unset.
func (c *Config) LogLevel() LogLevel {
	if c == nil || c.Doc == nil || c.Doc.Logging == nil || c.Doc.Logging.Level == "" {
		return LogLevelInfo
	}
	return c.Doc.Logging.Level
}

// LogFormat returns the configured log format, text when unset.
func (c *Config) LogFormat() LogFormat {
	if c == nil || c.Doc == nil || c.Doc.Logging == nil || c.Doc.Logging.Format == "" {
		return LogFormatText
	}
	return c.Doc.Logging.Format
}

func (d *Document) String() string {
	return fmt.Sprintf("docnav config v%s (%d nav items, %d sidebars)", d.Version, len(d.Nav), len(d.Sidebar)+len(d.SidebarFiles))
}
