// Package store is the upstream data layer stand-in: it owns playlist
// records, folds the item op log into the effective tracklist, derives the
// stats record from interactions, and assembles the read-only Playlist
// snapshots consumed by the card core.
package store

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"playlist-server/internal/types"
)

// Interaction types mirrored from the federation layer.
const (
	InteractionLike  = "like"
	InteractionBoost = "boost"
)

// Item op log operations.
const (
	OpAdd    = "add"
	OpDelete = "delete"
)

// ItemOp is one entry of the append-only playlist item log.
type ItemOp struct {
	Op      string    `json:"operation"`
	Created time.Time `json:"created"`

	Number      int    `json:"number"`
	Name        string `json:"name"`
	ArtistName  string `json:"artist_name"`
	ReleaseName string `json:"release_name"`
	UserHandle  string `json:"user"`

	ISRC string `json:"isrc,omitempty"`
	UPC  string `json:"upc,omitempty"`
	ISNI string `json:"isni,omitempty"`
}

// Validate checks one op log entry.
func (op ItemOp) Validate() error {
	return validation.ValidateStruct(&op,
		validation.Field(&op.Op, validation.Required, validation.In(OpAdd, OpDelete)),
		validation.Field(&op.Name, validation.Required.When(op.Op == OpAdd && op.ISRC == "")),
		validation.Field(&op.Number, validation.Min(0)),
	)
}

// Interaction is one like/boost on a playlist. Undone interactions stay in
// the log with Active false and never count.
type Interaction struct {
	Type     string `json:"type"`
	Identity string `json:"identity"`
	Active   bool   `json:"active"`
}

// Validate checks one interaction.
func (in Interaction) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Type, validation.Required, validation.In(InteractionLike, InteractionBoost)),
		validation.Field(&in.Identity, validation.Required),
	)
}

// Record is the stored form of a playlist post, before assembly into the
// read-only snapshot the card consumes.
type Record struct {
	ID         string `json:"id"`
	Visibility string `json:"visibility"`

	AuthorHandle string `json:"author"`

	Summary string `json:"summary,omitempty"`

	// Body is the post body. Markdown by default; BodyIsHTML marks bodies
	// that arrived already rendered from a remote node and only need
	// sanitizing.
	Body       string `json:"body"`
	BodyIsHTML bool   `json:"body_is_html,omitempty"`

	Created   time.Time  `json:"created"`
	Published *time.Time `json:"published,omitempty"`
	Edited    *time.Time `json:"edited,omitempty"`

	URL   string `json:"url,omitempty"`
	Local bool   `json:"local"`

	Attachments  []types.Attachment `json:"attachments,omitempty"`
	ItemLog      []ItemOp           `json:"item_log,omitempty"`
	Interactions []Interaction      `json:"interactions,omitempty"`
	ReplyCount   int                `json:"reply_count"`
}

// Validate checks a record before it enters the store. The visibility string
// is deliberately not restricted to the known set: unrecognized values flow
// through so the card can exercise its render-nothing path.
func (r Record) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AuthorHandle, validation.Required),
		validation.Field(&r.Created, validation.Required),
		validation.Field(&r.ItemLog),
		validation.Field(&r.Interactions),
		validation.Field(&r.ReplyCount, validation.Min(0)),
	)
}
