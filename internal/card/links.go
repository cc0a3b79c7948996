package card

import "playlist-server/internal/types"

// LinkRouter resolves which URL a timestamp or action navigates to, given the
// post's locality and the caller's "open original" preference.
type LinkRouter struct {
	Local          bool
	URL            string // canonical remote permalink, may be empty
	ViewURL        string
	PreferOriginal bool
}

// NewLinkRouter builds the router for a playlist with the caller's
// link_original preference.
func NewLinkRouter(p *types.Playlist, preferOriginal bool) LinkRouter {
	return LinkRouter{
		Local:          p.Local,
		URL:            p.URL,
		ViewURL:        p.ViewURL,
		PreferOriginal: preferOriginal,
	}
}

// Target resolves the generic navigation target: with PreferOriginal the
// canonical URL when known, otherwise the local view URL; without it always
// the local view URL.
func (r LinkRouter) Target() string {
	if r.PreferOriginal && r.URL != "" {
		return r.URL
	}
	return r.ViewURL
}

// ReplyTarget resolves the reply-count action target. Remote posts with a
// known canonical URL go to the original; everything else goes to the local
// view URL. PreferOriginal does not apply here.
func (r LinkRouter) ReplyTarget() string {
	if !r.Local && r.URL != "" {
		return r.URL
	}
	return r.ViewURL
}
