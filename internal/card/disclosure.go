package card

// DisclosureState is the content-warning disclosure position.
type DisclosureState int

const (
	DisclosureCollapsed DisclosureState = iota
	DisclosureExpanded
)

func (s DisclosureState) String() string {
	if s == DisclosureExpanded {
		return "expanded"
	}
	return "collapsed"
}

// Disclosure is the per-card content-warning state machine. A card whose
// playlist carries a summary starts Collapsed with the content region hidden;
// a card without a summary has no disclosure control and shows content
// unconditionally. State is ephemeral and reset on re-render.
type Disclosure struct {
	summary string
	state   DisclosureState
}

// NewDisclosure builds the disclosure for the given summary text. An empty
// summary yields an absent control.
func NewDisclosure(summary string) *Disclosure {
	return &Disclosure{summary: summary, state: DisclosureCollapsed}
}

// Present reports whether the disclosure control exists at all.
func (d *Disclosure) Present() bool {
	return d.summary != ""
}

// Summary returns the content-warning text.
func (d *Disclosure) Summary() string {
	return d.summary
}

// State returns the current disclosure position.
func (d *Disclosure) State() DisclosureState {
	return d.state
}

// ContentHidden reports whether the content region carries the hidden marker.
// Hidden iff a summary is present and the disclosure is collapsed.
func (d *Disclosure) ContentHidden() bool {
	return d.Present() && d.state == DisclosureCollapsed
}

// SummaryEnabled reports whether the summary element carries the enabled
// marker. The enabled and hidden markers are complementary and always move
// together.
func (d *Disclosure) SummaryEnabled() bool {
	return d.Present() && d.state == DisclosureExpanded
}

// Toggle handles an activation (click or Enter) on the summary element,
// flipping between Collapsed and Expanded. The event is fully consumed.
// Without a summary there is no control, so activations are ignored and
// propagate normally.
func (d *Disclosure) Toggle(ev *InputEvent) {
	if !d.Present() || !ev.activates() {
		return
	}
	if d.state == DisclosureCollapsed {
		d.state = DisclosureExpanded
	} else {
		d.state = DisclosureCollapsed
	}
	ev.StopPropagation()
}
