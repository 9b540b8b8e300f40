package httpserver

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberandoak/website/internal/content"
	"github.com/emberandoak/website/internal/content/imageurl"
	"github.com/emberandoak/website/internal/content/sqlitestore"
	"github.com/emberandoak/website/internal/linkcheck"
	"github.com/emberandoak/website/internal/metrics"
	"github.com/emberandoak/website/internal/seed"
	"github.com/emberandoak/website/internal/server/handlers"
	"github.com/emberandoak/website/internal/templates"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := sqlitestore.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return newServerWithStore(t, store)
}

func newServerWithStore(t *testing.T, store content.Store) *Server {
	t.Helper()
	renderer, err := templates.New()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	rec := metrics.NewPrometheusRecorder(prom.NewRegistry())
	h := handlers.New(store, renderer, imageurl.New("testproj", "production"), logger, rec)

	return New(Options{
		Addr:     "127.0.0.1:0",
		Handlers: h,
		Metrics:  rec,
		Logger:   logger,
	})
}

func TestServer_Routes(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	for path, wantStatus := range map[string]int{
		"/":                    http.StatusOK,
		"/menu":                http.StatusOK,
		"/about":               http.StatusOK,
		"/locations":           http.StatusOK,
		"/events":              http.StatusOK,
		"/contact":             http.StatusOK,
		"/healthz":             http.StatusOK,
		"/metrics":             http.StatusOK,
		"/static/css/site.css": http.StatusOK,
		"/no-such-page":        http.StatusNotFound,
	} {
		resp, err := http.Get(srv.URL + path)
		require.NoError(t, err, path)
		assert.Equal(t, wantStatus, resp.StatusCode, path)
		resp.Body.Close()
	}
}

func TestServer_RequestIDAndMetrics(t *testing.T) {
	srv := httptest.NewServer(newTestServer(t).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/menu")
	require.NoError(t, err)
	resp.Body.Close()
	assert.NotEmpty(t, resp.Header.Get("X-Request-Id"))

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Contains(t, string(body), `emberoak_http_requests_total{path="/menu",status="200"}`)
}

// TestServer_InternalLinksResolve walks every page of the seeded site and
// checks that each site-relative link on it is answered by a real route.
func TestServer_InternalLinksResolve(t *testing.T) {
	store, err := sqlitestore.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, seed.Run(context.Background(), store, logger))

	srv := httptest.NewServer(newServerWithStore(t, store).Handler())
	defer srv.Close()

	checked := map[string]bool{}
	for _, page := range []string{"/", "/menu", "/about", "/locations", "/events", "/contact"} {
		resp, err := http.Get(srv.URL + page)
		require.NoError(t, err, page)
		require.Equal(t, http.StatusOK, resp.StatusCode, page)

		links, err := linkcheck.Extract(resp.Body)
		resp.Body.Close()
		require.NoError(t, err, page)
		require.NotEmpty(t, links, page)

		for _, l := range links {
			if !linkcheck.Internal(l.URL) || checked[l.URL] {
				continue
			}
			checked[l.URL] = true

			target, err := http.Get(srv.URL + l.URL)
			require.NoError(t, err, l.URL)
			target.Body.Close()
			assert.NotEqual(t, http.StatusNotFound, target.StatusCode,
				"%s linked from %s", l.URL, page)
		}
	}
	// At minimum the nav, stylesheet and script links are crawled.
	assert.GreaterOrEqual(t, len(checked), 8)
}

func TestServer_ListenServeStop(t *testing.T) {
	s := newTestServer(t)
	require.NoError(t, s.Listen(context.Background()))

	done := make(chan error, 1)
	go func() { done <- s.Serve() }()

	resp, err := http.Get("http://" + s.Addr() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	require.NoError(t, <-done)
}

func TestServer_BindFailure(t *testing.T) {
	first := newTestServer(t)
	require.NoError(t, first.Listen(context.Background()))
	defer first.Stop(context.Background())

	second := newTestServer(t)
	second.opts.Addr = first.Addr()
	assert.Error(t, second.Listen(context.Background()))
}
