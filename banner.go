package main

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"playlist-server/internal/cache"
)

// BannerRenderer produces the identity banner markup for an author handle.
// The card composes the result verbatim; banner internals are opaque to it.
type BannerRenderer interface {
	Banner(ctx context.Context, handle string) (template.HTML, error)
}

// bannerData is the template data for the default banner.
type bannerData struct {
	Handle      string
	DisplayName string
	AvatarURL   string
}

// localBannerRenderer renders banners from the handle alone. Display name
// falls back to the handle's local part; no remote lookups happen here.
type localBannerRenderer struct{}

// NewLocalBannerRenderer returns the default banner renderer.
func NewLocalBannerRenderer() BannerRenderer {
	return localBannerRenderer{}
}

func (localBannerRenderer) Banner(ctx context.Context, handle string) (template.HTML, error) {
	name := handle
	if i := strings.IndexByte(name, '@'); i > 0 {
		name = name[:i]
	}
	var buf strings.Builder
	err := cardTemplates.ExecuteTemplate(&buf, "author-banner", bannerData{
		Handle:      handle,
		DisplayName: name,
	})
	if err != nil {
		return "", fmt.Errorf("render author banner: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// cachedBannerRenderer wraps a renderer with the byte cache.
type cachedBannerRenderer struct {
	next    BannerRenderer
	backend cache.Backend
	config  cache.Config
}

// NewCachedBannerRenderer caches rendered banners per handle.
func NewCachedBannerRenderer(next BannerRenderer, backend cache.Backend, config cache.Config) BannerRenderer {
	return &cachedBannerRenderer{next: next, backend: backend, config: config}
}

func (c *cachedBannerRenderer) Banner(ctx context.Context, handle string) (template.HTML, error) {
	key := "banner:" + handle
	if data, found, err := c.backend.Get(ctx, key); err == nil && found {
		cacheHitsTotal.Add(1)
		return template.HTML(data), nil
	}
	cacheMissesTotal.Add(1)

	banner, err := c.next.Banner(ctx, handle)
	if err != nil {
		return "", err
	}
	// Cache failures only cost a re-render next time.
	_ = c.backend.Set(ctx, key, []byte(banner), c.config.BannerTTL)
	return banner, nil
}
