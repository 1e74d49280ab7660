package commands

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/editlink"
	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
	"git.home.luguber.info/inful/docnav/internal/render"
)

// debounceDelay coalesces the burst of events an editor save produces.
var debounceDelay = 300 * time.Millisecond

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Format      string `short:"f" help:"Output format (vitepress|hugo); defaults to render.format, then vitepress"`
	Output      string `short:"o" help:"Output file, - for stdout; defaults to render.output, then the format's file name next to the config"`
	Watch       bool   `short:"w" help:"Re-render when the configuration or its sidebar files change"`
	Repo        string `help:"Git checkout of the docs, used to derive the edit link when none is configured" type:"path"`
	DocsDir     string `name:"docs-dir" help:"Docs directory inside --repo" default:"docs"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics to this file (textfile collector format)" type:"path"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return r.run(ctx, g, root.Config)
}

func (r *RenderCmd) run(ctx context.Context, g *Global, cfgPath string) error {
	rec := metrics.Recorder(metrics.NoopRecorder{})
	flush := func() error { return nil }
	if r.MetricsFile != "" {
		reg := prom.NewRegistry()
		rec = metrics.NewPrometheusRecorder(reg)
		flush = func() error {
			if err := metrics.WriteTextfile(r.MetricsFile, reg); err != nil {
				return derrors.FileSystemError("failed to write metrics file").
					WithCause(err).WithContext(derrors.ContextFile, r.MetricsFile).Build()
			}
			return nil
		}
	}

	cfg, err := r.renderOnce(g, cfgPath, rec)
	if ferr := flush(); err == nil {
		err = ferr
	}
	if err != nil || !r.Watch {
		return err
	}
	return r.watch(ctx, g, cfgPath, cfg, rec, flush)
}

func (r *RenderCmd) renderOnce(g *Global, cfgPath string, rec metrics.Recorder) (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	rec.IncConfigLoad(metrics.ResultOf(err))
	if err != nil {
		return nil, err
	}
	g.applyLogging(cfg)

	renderer, err := r.renderer(cfg)
	if err != nil {
		return nil, err
	}
	store := r.withEditLink(cfg.Store)
	rec.ObserveStore(store.Stats())

	out := r.output(cfg, renderer, cfgPath)
	if out == "-" {
		data, err := render.Bytes(renderer, store)
		if err != nil {
			return nil, err
		}
		if _, err := g.out().Write(data); err != nil {
			return nil, derrors.FileSystemError("failed to write output").WithCause(err).Build()
		}
		return cfg, nil
	}
	return cfg, render.WriteFile(out, renderer, store, rec)
}

func (r *RenderCmd) renderer(cfg *config.Config) (render.Renderer, error) {
	raw := r.Format
	if raw == "" && cfg.Doc.Render != nil {
		raw = string(cfg.Doc.Render.Format)
	}
	format, err := config.ParseRenderFormat(raw)
	if err != nil {
		return nil, derrors.ValidationError("invalid render format").
			WithCause(err).WithContext(derrors.ContextValue, raw).Build()
	}
	return render.Lookup(string(format))
}

func (r *RenderCmd) output(cfg *config.Config, renderer render.Renderer, cfgPath string) string {
	if r.Output != "" {
		return r.Output
	}
	dir := filepath.Dir(cfgPath)
	if cfg.Doc.Render != nil && cfg.Doc.Render.Output != "" {
		if cfg.Doc.Render.Output == "-" || filepath.IsAbs(cfg.Doc.Render.Output) {
			return cfg.Doc.Render.Output
		}
		return filepath.Join(dir, cfg.Doc.Render.Output)
	}
	return filepath.Join(dir, renderer.DefaultOutput())
}

// withEditLink fills in the edit link from --repo when the configuration has none. A
// repository that cannot be inspected only costs the edit link.
func (r *RenderCmd) withEditLink(s *nav.Store) *nav.Store {
	if r.Repo == "" || s.Site().EditLink != nil {
		return s
	}
	pattern, err := editlink.Detect(r.Repo, r.DocsDir)
	if err != nil {
		slog.Warn("Edit link not derived", logfields.Path(r.Repo), logfields.Error(err))
		return s
	}
	spec := s.Spec()
	spec.Site.EditLink = &nav.EditLink{Pattern: pattern}
	derived, err := nav.Build(spec)
	if err != nil {
		slog.Warn("Derived edit link rejected", logfields.URL(pattern), logfields.Error(err))
		return s
	}
	slog.Info("Derived edit link from repository", logfields.Path(r.Repo), logfields.URL(pattern))
	return derived
}

// watch re-renders on changes to the configuration file or its sidebar files until ctx
// is done. A failed re-render is logged and the previous output stays in place.
func (r *RenderCmd) watch(ctx context.Context, g *Global, cfgPath string, cfg *config.Config, rec metrics.Recorder, flush func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return derrors.FileSystemError("failed to start file watcher").WithCause(err).Build()
	}
	defer func() { _ = watcher.Close() }()

	watched := map[string]bool{}
	refresh := func(cfg *config.Config) {
		for _, f := range watchedFiles(cfgPath, cfg) {
			if watched[f] {
				continue
			}
			watched[f] = true
			// Directories are watched so editors that replace files by rename are seen.
			if err := watcher.Add(filepath.Dir(f)); err != nil {
				slog.Warn("Failed to watch directory", logfields.Path(filepath.Dir(f)), logfields.Error(err))
			}
		}
	}
	refresh(cfg)

	rebuildReq, trigger := newDebouncer(debounceDelay)
	slog.Info("Watching for configuration changes", logfields.Config(cfgPath), logfields.Count(len(watched)))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			slog.Debug("File change detected", logfields.Path(ev.Name), slog.String("op", ev.Op.String()))
			trigger()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		case <-rebuildReq:
			next, err := r.renderOnce(g, cfgPath, rec)
			if ferr := flush(); ferr != nil {
				slog.Warn("Failed to write metrics", logfields.Error(ferr))
			}
			if err != nil {
				slog.Warn("Re-render failed; keeping previous output", logfields.Error(err))
				continue
			}
			refresh(next)
		}
	}
}

func watchedFiles(cfgPath string, cfg *config.Config) []string {
	dir := filepath.Dir(cfgPath)
	files := append([]string{cfgPath}, config.SidebarFilePaths(cfg.Doc, dir)...)
	out := make([]string, 0, len(files))
	for _, f := range files {
		if abs, err := filepath.Abs(f); err == nil {
			out = append(out, abs)
		}
	}
	return out
}

// newDebouncer returns a channel that receives one request per burst of trigger calls.
func newDebouncer(delay time.Duration) (chan struct{}, func()) {
	var mu sync.Mutex
	var timer *time.Timer
	req := make(chan struct{}, 1)

	trigger := func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(delay, func() {
			select {
			case req <- struct{}{}:
			default:
			}
		})
	}
	return req, trigger
}
