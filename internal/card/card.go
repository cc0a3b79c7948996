package card

import (
	"time"

	"playlist-server/internal/types"
)

// Options are the caller-supplied flags affecting one card render.
type Options struct {
	// LinkOriginal makes generic navigation prefer the canonical remote URL.
	LinkOriginal bool
	// Reply adds the reply visual modifier to the card root.
	Reply bool
	// Admin gates the "View In Admin" menu entry.
	Admin bool
}

// TimestampLabel is the card's primary timestamp: the published instant when
// present, else created. Formatting to a short relative age and an absolute
// title string is left to the rendering layer.
type TimestampLabel struct {
	Time   time.Time
	Target string
}

// Card is one rendered playlist post card instance. It owns the ephemeral
// UI state (disclosure, menu) for exactly one card; the Playlist snapshot
// flows in read-only and is never mutated here. No state is shared between
// card instances.
type Card struct {
	Playlist *types.Playlist
	Opts     Options

	Disclosure *Disclosure
	Menu       *Menu

	router LinkRouter
}

// New builds a card instance for one playlist snapshot. UI state starts at
// its initial position: disclosure collapsed iff a summary is present, menu
// closed.
func New(p *types.Playlist, opts Options) *Card {
	return &Card{
		Playlist:   p,
		Opts:       opts,
		Disclosure: NewDisclosure(p.Summary),
		Menu:       NewMenu(),
		router:     NewLinkRouter(p, opts.LinkOriginal),
	}
}

// Router returns the card's link router.
func (c *Card) Router() LinkRouter {
	return c.router
}

// Timestamp returns the primary timestamp label. Activating it navigates via
// the generic routing rule.
func (c *Card) Timestamp() TimestampLabel {
	return TimestampLabel{
		Time:   c.Playlist.DisplayTime(),
		Target: c.router.Target(),
	}
}

// Edited reports whether the post carries an edit marker.
func (c *Card) Edited() bool {
	return c.Playlist.Edited != nil
}

// VisibilityBadge returns the visibility icon/label pair. ok is false for
// unrecognized values, in which case nothing renders.
func (c *Card) VisibilityBadge() (VisibilityBadge, bool) {
	return VisibilityIndicator(c.Playlist.Visibility)
}

// Gallery classifies the post's attachments with the supplied predicate.
func (c *Card) Gallery(classify Classifier) Gallery {
	return BuildGallery(c.Playlist.Attachments, classify)
}

// Stats returns the counter bar with zero defaults.
func (c *Card) Stats() StatsBar {
	return BuildStatsBar(c.Playlist.Stats, c.router)
}

// MenuEntries returns the contextual menu rows for this card.
func (c *Card) MenuEntries() []MenuEntry {
	return MenuEntries(c.Playlist, c.Opts.Admin)
}

// Items returns the track rows in collection order. An empty collection
// renders the table header over an empty body.
func (c *Card) Items() []types.Item {
	return c.Playlist.Items
}

// ActivateTimestamp handles an activation on the timestamp link: navigate via
// the generic rule, then consume the event so no further handlers fire.
func (c *Card) ActivateTimestamp(ev *InputEvent, navigate func(url string)) {
	if !ev.activates() {
		return
	}
	navigate(c.router.Target())
	ev.StopPropagation()
}

// ActivateReplies handles an activation on the reply counter, which routes by
// the reply-specific rule regardless of the link-original preference.
func (c *Card) ActivateReplies(ev *InputEvent, navigate func(url string)) {
	if !ev.activates() {
		return
	}
	navigate(c.router.ReplyTarget())
	ev.StopPropagation()
}

// ActivateImage hands the activated image to the external viewer overlay and
// consumes the event.
func (c *Card) ActivateImage(ev *InputEvent, img GalleryImage, view func(GalleryImage)) {
	if !ev.activates() {
		return
	}
	view(img)
	ev.StopPropagation()
}
