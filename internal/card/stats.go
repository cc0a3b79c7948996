package card

import "playlist-server/internal/types"

// StatsBar holds the three counters in display order. Absent fields, or an
// absent stats record altogether, show as 0 rather than blank.
type StatsBar struct {
	Replies int
	Likes   int
	Boosts  int

	// ReplyTarget is where activating the reply counter navigates. Likes and
	// boosts are display-only.
	ReplyTarget string
}

// BuildStatsBar fills the counters from an optional partial stats record.
func BuildStatsBar(stats *types.Stats, router LinkRouter) StatsBar {
	bar := StatsBar{ReplyTarget: router.ReplyTarget()}
	if stats == nil {
		return bar
	}
	if stats.Replies != nil {
		bar.Replies = *stats.Replies
	}
	if stats.Likes != nil {
		bar.Likes = *stats.Likes
	}
	if stats.Boosts != nil {
		bar.Boosts = *stats.Boosts
	}
	return bar
}
