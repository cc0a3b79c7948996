package main

import (
	"html/template"
	"net/url"
	"time"

	"playlist-server/internal/card"
	"playlist-server/internal/content"
	"playlist-server/internal/types"
)

// CardView is the template data for one rendered playlist card. It is built
// fresh from a Card instance per render; templates never see the Playlist
// entity directly.
type CardView struct {
	ID           string
	AuthorHandle string
	AuthorBanner template.HTML
	Reply        bool

	HasVisibility bool
	Visibility    card.VisibilityBadge

	Timestamp       time.Time
	TimestampTarget string
	Edited          bool
	EditedAt        time.Time

	HasSummary     bool
	Summary        string
	SummaryEnabled bool
	ContentHidden  bool
	ContentHTML    template.HTML

	HasAttachments bool
	Gallery        card.Gallery

	Items []types.Item
	Stats card.StatsBar

	MenuOpen    bool
	MenuEntries []card.MenuEntry

	SummaryToggleURL string
	MenuToggleURL    string
}

// BuildCardView projects a card instance into template data. The author
// banner arrives pre-rendered from the banner collaborator and is trusted
// markup.
func BuildCardView(c *card.Card, banner template.HTML) CardView {
	badge, hasBadge := c.VisibilityBadge()
	ts := c.Timestamp()

	view := CardView{
		ID:           c.Playlist.ID,
		AuthorHandle: c.Playlist.AuthorHandle,
		AuthorBanner: banner,
		Reply:        c.Opts.Reply,

		HasVisibility: hasBadge,
		Visibility:    badge,

		Timestamp:       ts.Time,
		TimestampTarget: ts.Target,
		Edited:          c.Edited(),

		HasSummary:     c.Disclosure.Present(),
		Summary:        c.Disclosure.Summary(),
		SummaryEnabled: c.Disclosure.SummaryEnabled(),
		ContentHidden:  c.Disclosure.ContentHidden(),
		ContentHTML:    template.HTML(c.Playlist.SafeContent),

		Items: c.Items(),
		Stats: c.Stats(),

		MenuOpen:    c.Menu.IsOpen(),
		MenuEntries: c.MenuEntries(),
	}
	if c.Playlist.Edited != nil {
		view.EditedAt = *c.Playlist.Edited
	}

	gallery := c.Gallery(content.ClassifyAttachment)
	view.Gallery = gallery
	view.HasAttachments = !gallery.Empty()

	view.SummaryToggleURL = fragmentURL(c, flipDisclosure(c.Disclosure.State()), c.Menu.State())
	view.MenuToggleURL = fragmentURL(c, c.Disclosure.State(), flipMenu(c.Menu.State()))
	return view
}

func flipDisclosure(s card.DisclosureState) card.DisclosureState {
	if s == card.DisclosureCollapsed {
		return card.DisclosureExpanded
	}
	return card.DisclosureCollapsed
}

func flipMenu(s card.MenuState) card.MenuState {
	if s == card.MenuClosed {
		return card.MenuOpen
	}
	return card.MenuClosed
}

// fragmentURL builds the self-URL of a card fragment carrying the desired UI
// state and the caller flags. Toggling is a GET of the same fragment with one
// state flipped; each card's URL names only its own state, which is what
// keeps menu toggles isolated per card.
func fragmentURL(c *card.Card, cw card.DisclosureState, menu card.MenuState) string {
	q := url.Values{}
	if cw == card.DisclosureExpanded {
		q.Set("cw", "expanded")
	}
	if menu == card.MenuOpen {
		q.Set("menu", "open")
	}
	if c.Opts.LinkOriginal {
		q.Set("original", "1")
	}
	if c.Opts.Reply {
		q.Set("reply", "1")
	}
	if c.Opts.Admin {
		q.Set("admin", "1")
	}
	u := "/fragment/playlist/" + url.PathEscape(c.Playlist.ID)
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}
