// Package render writes a navigation store in the configuration shape of an external
// static-site generator.
package render

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/google/renameio/v2"

	derrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/nav"
)

// Renderer converts a store into one generator's configuration format.
type Renderer interface {
	Name() string
	// DefaultOutput is the file name the generator expects.
	DefaultOutput() string
	Render(w io.Writer, s *nav.Store) error
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Renderer{}
)

func init() {
	Register(VitePress{})
	Register(Hugo{})
}

// Register adds a renderer. Duplicate names are ignored.
func Register(r Renderer) {
	if r == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[r.Name()]; exists {
		return
	}
	registry[r.Name()] = r
}

// Lookup returns the renderer registered under name.
func Lookup(name string) (Renderer, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	if r, ok := registry[name]; ok {
		return r, nil
	}
	return nil, derrors.NotFoundError(fmt.Sprintf("unknown render format %q", name)).
		WithContext(derrors.ContextValue, name).Build()
}

// Names lists the registered renderers, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for n := range registry {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Bytes renders s into memory.
func Bytes(r Renderer, s *nav.Store) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.Render(&buf, s); err != nil {
		return nil, derrors.WrapError(err, derrors.CategoryRender, "failed to render "+r.Name()+" configuration").Build()
	}
	return buf.Bytes(), nil
}

// WriteFile renders s to path atomically. The previous file stays in place when
// rendering fails.
func WriteFile(path string, r Renderer, s *nav.Store, rec metrics.Recorder) (err error) {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	start := time.Now()
	defer func() {
		rec.ObserveRenderDuration(r.Name(), time.Since(start))
		rec.IncRenderResult(r.Name(), metrics.ResultOf(err))
	}()

	pending, err := renameio.NewPendingFile(path)
	if err != nil {
		return derrors.FileSystemError("failed to create output file").
			WithCause(err).WithContext(derrors.ContextFile, path).Build()
	}
	defer func() {
		if cerr := pending.Cleanup(); cerr != nil {
			slog.Debug("Cleanup pending output file", logfields.File(path), logfields.Error(cerr))
		}
	}()

	if err := r.Render(pending, s); err != nil {
		return derrors.WrapError(err, derrors.CategoryRender, "failed to render "+r.Name()+" configuration").
			WithContext(derrors.ContextFile, path).Build()
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return derrors.FileSystemError("failed to replace output file").
			WithCause(err).WithContext(derrors.ContextFile, path).Build()
	}

	slog.Info("Rendered navigation configuration", logfields.Format(r.Name()), logfields.Path(path),
		logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))
	return nil
}
