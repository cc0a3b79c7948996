package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"playlist-server/internal/cache"
	"playlist-server/internal/card"
	"playlist-server/internal/store"
	"playlist-server/internal/types"
	"playlist-server/internal/util"
)

// app wires the handlers to their collaborators.
type app struct {
	store     *store.Store
	banners   BannerRenderer
	fragments cache.Backend
	cacheCfg  cache.Config
}

// optionsFromRequest reads the caller-supplied card flags. The link-original
// preference falls back to the site default when the request doesn't set it.
func optionsFromRequest(r *http.Request, defaults RenderDefaults) card.Options {
	q := r.URL.Query()
	opts := card.Options{
		LinkOriginal: defaults.LinkOriginal,
		Reply:        q.Get("reply") == "1",
		Admin:        q.Get("admin") == "1",
	}
	if v := q.Get("original"); v != "" {
		opts.LinkOriginal = v == "1"
	}
	return opts
}

// buildCard assembles a card for one request, replaying the requested UI
// state through the state machines. State travels in the URL; nothing is
// persisted between renders.
func buildCard(p *types.Playlist, opts card.Options, r *http.Request) *card.Card {
	c := card.New(p, opts)
	q := r.URL.Query()
	if q.Get("cw") == "expanded" {
		c.Disclosure.Toggle(card.Click())
	}
	if q.Get("menu") == "open" {
		c.Menu.Toggle(card.Click())
	}
	return c
}

// handleFragment serves one playlist card as a bare HTML fragment.
// Toggle links on the card point back here with one state flipped.
func (a *app) handleFragment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	p, ok := a.store.Get(id)
	if !ok {
		util.RespondNotFound(w, "playlist not found")
		return
	}

	cacheKey := "fragment:" + id + "?" + r.URL.RawQuery
	if data, found, err := a.fragments.Get(ctx, cacheKey); err == nil && found {
		cacheHitsTotal.Add(1)
		util.SetHTMLHeaders(w, "0")
		util.WriteHTML(w, string(data))
		return
	}
	cacheMissesTotal.Add(1)

	opts := optionsFromRequest(r, GetSiteConfig().Defaults)
	c := buildCard(p, opts, r)

	banner, err := a.banners.Banner(ctx, p.AuthorHandle)
	if err != nil {
		LoggerFromContext(ctx).Error("banner render failed", "author", p.AuthorHandle, "error", err)
		util.RespondInternalError(w, "render failed")
		return
	}

	html, err := RenderCard(BuildCardView(c, banner))
	if err != nil {
		renderErrorsTotal.Add(1)
		LoggerFromContext(ctx).Error("card render failed", "playlist", id, "error", err)
		util.RespondInternalError(w, "render failed")
		return
	}
	fragmentsRenderedTotal.Add(1)

	_ = a.fragments.Set(ctx, cacheKey, []byte(html), a.cacheCfg.FragmentTTL)

	util.SetHTMLHeaders(w, "0")
	util.WriteHTML(w, html)
}

// handleTimeline serves a full page with every stored playlist card.
func (a *app) handleTimeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	site := GetSiteConfig()
	opts := optionsFromRequest(r, site.Defaults)

	var views []CardView
	for _, id := range a.store.IDs() {
		p, ok := a.store.Get(id)
		if !ok {
			continue
		}
		banner, err := a.banners.Banner(ctx, p.AuthorHandle)
		if err != nil {
			LoggerFromContext(ctx).Warn("banner render failed", "author", p.AuthorHandle, "error", err)
			continue
		}
		views = append(views, BuildCardView(card.New(p, opts), banner))
	}

	html, err := RenderTimeline(TimelineData{
		Title:      "Playlists",
		SiteName:   site.Site.Name,
		Stylesheet: site.Links.Stylesheet,
		Cards:      views,
	})
	if err != nil {
		renderErrorsTotal.Add(1)
		LoggerFromContext(ctx).Error("timeline render failed", "error", err)
		util.RespondInternalError(w, "render failed")
		return
	}
	util.SetHTMLHeaders(w, "30")
	util.WriteHTML(w, html)
}

// handleIndex serves the playlist index page.
func (a *app) handleIndex(w http.ResponseWriter, r *http.Request) {
	site := GetSiteConfig()
	html, err := RenderIndex(IndexData{
		SiteName:    site.Site.Name,
		Stylesheet:  site.Links.Stylesheet,
		PlaylistIDs: a.store.IDs(),
	})
	if err != nil {
		renderErrorsTotal.Add(1)
		slog.Error("index render failed", "error", err)
		util.RespondInternalError(w, "render failed")
		return
	}
	util.SetHTMLHeaders(w, "30")
	util.WriteHTML(w, html)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
