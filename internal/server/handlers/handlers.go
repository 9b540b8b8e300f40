// Package handlers implements the page renderers. Each handler fans out its
// content reads, folds failures into empty results, maps documents into
// display-ready view data with fallback copy, and renders a template.
package handlers

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"

	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/content/imageurl"
	"github.com/emberandoak/website/internal/metrics"
	"github.com/emberandoak/website/internal/templates"
)

// Handlers holds the shared dependencies of all page handlers.
type Handlers struct {
	store    content.Store
	renderer *templates.Renderer
	images   imageurl.Builder
	logger   *slog.Logger
	metrics  metrics.Recorder
}

// New wires the page handlers. A nil recorder disables metrics.
func New(store content.Store, renderer *templates.Renderer, images imageurl.Builder, logger *slog.Logger, rec metrics.Recorder) *Handlers {
	if rec == nil {
		rec = metrics.Noop{}
	}
	return &Handlers{
		store:    store,
		renderer: renderer,
		images:   images,
		logger:   logger,
		metrics:  rec,
	}
}

// Register mounts the page routes. The root pattern doubles as the catch-all,
// so Home dispatches to NotFound for unknown paths.
func (h *Handlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /", h.Home)
	mux.HandleFunc("GET /menu", h.Menu)
	mux.HandleFunc("GET /about", h.About)
	mux.HandleFunc("GET /locations", h.Locations)
	mux.HandleFunc("GET /events", h.Events)
	mux.HandleFunc("GET /contact", h.Contact)
	mux.HandleFunc("POST /contact", h.ContactSubmit)
	mux.HandleFunc("GET /healthz", h.Healthz)
}

// Healthz reports process liveness. It deliberately does not touch the
// content store; the site serves fallback copy even when the store is down.
func (h *Handlers) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

// NotFound renders the styled 404 page.
func (h *Handlers) NotFound(w http.ResponseWriter, r *http.Request) {
	settings := fetchOne(r.Context(), h, "siteSettings", h.store.SiteSettings)
	data := struct{ BasePage }{h.basePage(settings, "Page Not Found", "", "")}
	h.render(w, http.StatusNotFound, "notfound", data)
}

// render executes a template into a buffer so a rendering failure can still
// turn into a clean 500 instead of a torn page.
func (h *Handlers) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, name, data); err != nil {
		h.logger.Error("Template render failed", "template", name, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// fetchOne reads a singleton, folding errors into nil. Absent singletons are a
// normal state; every caller carries fallback copy for them.
func fetchOne[T any](ctx context.Context, h *Handlers, query string, fn func(context.Context) (*T, error)) *T {
	doc, err := fn(ctx)
	switch {
	case err != nil:
		h.logger.Warn("Content fetch failed", "query", query, "error", err)
		h.metrics.IncFetch(query, metrics.FetchError)
		return nil
	case doc == nil:
		h.metrics.IncFetch(query, metrics.FetchEmpty)
	default:
		h.metrics.IncFetch(query, metrics.FetchOK)
	}
	return doc
}

// fetchList reads a document list, folding errors into an empty slice.
func fetchList[T any](ctx context.Context, h *Handlers, query string, fn func(context.Context) ([]T, error)) []T {
	docs, err := fn(ctx)
	switch {
	case err != nil:
		h.logger.Warn("Content fetch failed", "query", query, "error", err)
		h.metrics.IncFetch(query, metrics.FetchError)
		return nil
	case len(docs) == 0:
		h.metrics.IncFetch(query, metrics.FetchEmpty)
	default:
		h.metrics.IncFetch(query, metrics.FetchOK)
	}
	return docs
}
