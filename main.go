package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"playlist-server/internal/cache"
	"playlist-server/internal/store"
)

// securityHeaders adds security headers to every response.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Content Security Policy - defense in depth against XSS
		// - img-src * data:: attachments and avatars can live on remote servers
		// - media-src *: same for video attachments
		csp := "default-src 'self'; " +
			"img-src * data:; " +
			"media-src *; " +
			"style-src 'self' 'unsafe-inline'; " +
			"script-src 'self'"
		w.Header().Set("Content-Security-Policy", csp)
		w.Header().Set("X-Frame-Options", "SAMEORIGIN")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// initCache picks the cache backend from the environment. REDIS_URL selects
// the Redis backend; otherwise the in-memory backend is used.
func initCache() cache.Backend {
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		backend, err := cache.NewRedis(redisURL, "playlist:")
		if err != nil {
			slog.Error("redis cache init failed, falling back to memory", "error", err)
		} else {
			cacheBackendType = "redis"
			slog.Info("cache backend initialized", "backend", "redis")
			return backend
		}
	}
	cacheBackendType = "memory"
	slog.Info("cache backend initialized", "backend", "memory")
	return cache.NewMemory(1024, time.Minute)
}

// initStore loads playlists from the seed file, or falls back to the
// built-in sample data when the file is missing.
func initStore(seedFile string) *store.Store {
	s, err := store.NewFromFile(seedFile)
	if err != nil {
		slog.Warn("seed file not loaded, using built-in sample data", "path", seedFile, "error", err)
		return seedStore()
	}
	slog.Info("playlist store loaded", "path", seedFile, "playlists", len(s.IDs()))
	return s
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	InitLogger()
	initTemplates()

	site := GetSiteConfig()

	a := &app{
		store:     initStore(site.SeedFile),
		fragments: initCache(),
		cacheCfg:  cache.DefaultConfig(),
	}
	defer a.fragments.Close()
	a.banners = NewCachedBannerRenderer(NewLocalBannerRenderer(), a.fragments, a.cacheCfg)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLoggingMiddleware)
	r.Use(securityHeaders)

	r.Get("/", a.handleIndex)
	r.Get("/timeline", a.handleTimeline)
	r.Get("/fragment/playlist/{id}", a.handleFragment)
	r.Get("/health", healthHandler)
	r.Get("/metrics", metricsHandler)

	fs := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fs))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port, "site", site.Site.Name)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}
