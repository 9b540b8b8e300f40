// Package templates renders the site's HTML pages. Templates and static
// assets are embedded into the binary; in dev mode they are read from disk
// and reloaded when files change.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/emberandoak/website/internal/view"
)

//go:embed html/*.html
var htmlFS embed.FS

//go:embed static
var staticFS embed.FS

// funcMap exposes the small set of view helpers templates call directly.
// Everything else is precomputed into the page data.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"tagLabel":     view.TagLabel,
		"featureLabel": view.FeatureLabel,
	}
}

// Renderer holds the parsed template set and re-parses it on demand in dev
// mode.
type Renderer struct {
	mu      sync.RWMutex
	tmpl    *template.Template
	dir     string
	watcher *fsnotify.Watcher
	logger  *slog.Logger
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.New("").Funcs(funcMap()).ParseFS(htmlFS, "html/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing embedded templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// NewDev parses templates from dir and reloads them whenever a file in the
// directory changes. Close releases the watcher.
func NewDev(dir string, logger *slog.Logger) (*Renderer, error) {
	r := &Renderer{dir: dir, logger: logger}
	if err := r.reload(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating template watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}
	r.watcher = watcher
	go r.watch()
	return r, nil
}

func (r *Renderer) reload() error {
	tmpl, err := template.New("").Funcs(funcMap()).ParseGlob(filepath.Join(r.dir, "*.html"))
	if err != nil {
		return fmt.Errorf("parsing templates from %s: %w", r.dir, err)
	}
	r.mu.Lock()
	r.tmpl = tmpl
	r.mu.Unlock()
	return nil
}

func (r *Renderer) watch() {
	for {
		select {
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(ev.Name, ".html") {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := r.reload(); err != nil {
				r.logger.Warn("Template reload failed", "error", err)
				continue
			}
			r.logger.Info("Templates reloaded", "trigger", filepath.Base(ev.Name))
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("Template watcher error", "error", err)
		}
	}
}

// Close stops the dev-mode watcher. Safe on an embedded-mode Renderer.
func (r *Renderer) Close() error {
	if r.watcher == nil {
		return nil
	}
	return r.watcher.Close()
}

// Render executes the named template into a buffer first so a template error
// never leaves a half-written response.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	r.mu.RLock()
	tmpl := r.tmpl
	r.mu.RUnlock()

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("rendering %s: %w", name, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded static assets. Mount it under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
