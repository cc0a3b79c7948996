package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlist-server/internal/cache"
	"playlist-server/internal/store"
)

func newTestApp(t *testing.T) *app {
	t.Helper()
	backend := cache.NewMemory(64, time.Minute)
	t.Cleanup(func() { backend.Close() })

	s := store.New()
	rec := &store.Record{
		ID:           "p1",
		Visibility:   "public",
		AuthorHandle: "ana@records.example",
		Summary:      "loud guitars",
		Body:         "Songs for the drive.",
		Created:      time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC),
		Local:        true,
	}
	require.NoError(t, s.Put(rec))

	a := &app{
		store:     s,
		fragments: backend,
		cacheCfg:  cache.DefaultConfig(),
	}
	a.banners = NewCachedBannerRenderer(NewLocalBannerRenderer(), backend, a.cacheCfg)
	return a
}

func newTestRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Get("/", a.handleIndex)
	r.Get("/timeline", a.handleTimeline)
	r.Get("/fragment/playlist/{id}", a.handleFragment)
	r.Get("/health", healthHandler)
	return r
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestFragmentHandler(t *testing.T) {
	h := newTestRouter(newTestApp(t))
	w := get(t, h, "/fragment/playlist/p1")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, `id="playlist-p1"`)
	assert.Contains(t, body, "loud guitars")
	assert.Contains(t, body, "playlist-content hidden")
}

func TestFragmentHandlerNotFound(t *testing.T) {
	h := newTestRouter(newTestApp(t))
	assert.Equal(t, http.StatusNotFound, get(t, h, "/fragment/playlist/nope").Code)
}

func TestFragmentHandlerExpandedState(t *testing.T) {
	h := newTestRouter(newTestApp(t))
	w := get(t, h, "/fragment/playlist/p1?cw=expanded")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "playlist-summary enabled")
	assert.NotContains(t, body, "playlist-content hidden")
}

func TestFragmentHandlerMenuState(t *testing.T) {
	h := newTestRouter(newTestApp(t))

	body := get(t, h, "/fragment/playlist/p1?menu=open").Body.String()
	assert.Contains(t, body, "action-menu open")

	// The open fragment's trigger points back at the closed rendition.
	assert.Contains(t, body, `h-get="/fragment/playlist/p1`)
}

func TestFragmentHandlerAdminFlag(t *testing.T) {
	h := newTestRouter(newTestApp(t))

	assert.NotContains(t, get(t, h, "/fragment/playlist/p1").Body.String(), "View In Admin")
	assert.Contains(t, get(t, h, "/fragment/playlist/p1?admin=1").Body.String(), "View In Admin")
}

func TestFragmentHandlerCachesRenders(t *testing.T) {
	a := newTestApp(t)
	h := newTestRouter(a)

	first := get(t, h, "/fragment/playlist/p1")
	require.Equal(t, http.StatusOK, first.Code)

	// Second hit serves the cached bytes.
	_, found, err := a.fragments.Get(context.Background(), "fragment:p1?")
	require.NoError(t, err)
	assert.True(t, found)

	second := get(t, h, "/fragment/playlist/p1")
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestIndexHandler(t *testing.T) {
	h := newTestRouter(newTestApp(t))
	w := get(t, h, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/fragment/playlist/p1")
}

func TestTimelineHandler(t *testing.T) {
	h := newTestRouter(newTestApp(t))
	w := get(t, h, "/timeline")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `id="playlist-p1"`)
}

func TestHealthHandler(t *testing.T) {
	h := newTestRouter(newTestApp(t))
	w := get(t, h, "/health")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
