package card

import "playlist-server/internal/types"

// MenuState is the contextual menu position.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Menu is the per-card contextual menu state machine. Each rendered card owns
// its own Menu; toggling one card's trigger affects only the adjacent menu,
// never any other card's.
type Menu struct {
	state MenuState
}

// NewMenu builds a closed menu.
func NewMenu() *Menu {
	return &Menu{state: MenuClosed}
}

// State returns the current menu position.
func (m *Menu) State() MenuState {
	return m.state
}

// IsOpen reports whether the menu is showing.
func (m *Menu) IsOpen() bool {
	return m.state == MenuOpen
}

// Toggle handles an activation (click or Enter) on the menu trigger, flipping
// the adjacent menu between Closed and Open. The event is fully consumed.
func (m *Menu) Toggle(ev *InputEvent) {
	if !ev.activates() {
		return
	}
	if m.state == MenuClosed {
		m.state = MenuOpen
	} else {
		m.state = MenuClosed
	}
	ev.StopPropagation()
}

// MenuEntry is one actionable row of the contextual menu.
type MenuEntry struct {
	Label  string
	Target string
}

// MenuEntries returns the menu rows for a playlist, in order. "See Original"
// appears only for remote posts with a known canonical URL; "View In Admin"
// only when the caller holds the admin flag.
func MenuEntries(p *types.Playlist, admin bool) []MenuEntry {
	entries := []MenuEntry{
		{Label: "View Playlist & Replies", Target: p.ViewURL},
	}
	if !p.Local && p.URL != "" {
		entries = append(entries, MenuEntry{Label: "See Original", Target: p.URL})
	}
	if admin {
		entries = append(entries, MenuEntry{Label: "View In Admin", Target: p.AdminEditURL})
	}
	return entries
}
