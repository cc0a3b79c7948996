package card

import "playlist-server/internal/types"

// VisibilityBadge pairs an icon class with its accessible label.
type VisibilityBadge struct {
	Icon  string
	Label string
}

var visibilityBadges = map[types.Visibility]VisibilityBadge{
	types.VisibilityPublic:        {Icon: "fa-globe", Label: "Public"},
	types.VisibilityUnlisted:      {Icon: "fa-lock-open", Label: "Unlisted"},
	types.VisibilityFollowersOnly: {Icon: "fa-lock", Label: "Followers Only"},
	types.VisibilityMentionedOnly: {Icon: "fa-at", Label: "Mentioned Only"},
	types.VisibilityLocalOnly:     {Icon: "fa-link-slash", Label: "Local Only"},
}

// VisibilityIndicator returns the badge for a visibility value. Unrecognized
// values render nothing: ok is false and callers omit the icon entirely.
func VisibilityIndicator(v types.Visibility) (VisibilityBadge, bool) {
	badge, ok := visibilityBadges[v]
	return badge, ok
}
