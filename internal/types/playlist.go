// Package types provides shared type definitions used across internal packages.
package types

import "time"

// Visibility is the ActivityPub-style audience of a playlist post.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityUnlisted
	VisibilityFollowersOnly
	VisibilityMentionedOnly
	VisibilityLocalOnly
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityUnlisted:
		return "unlisted"
	case VisibilityFollowersOnly:
		return "followers-only"
	case VisibilityMentionedOnly:
		return "mentioned-only"
	case VisibilityLocalOnly:
		return "local-only"
	}
	return "unknown"
}

// ParseVisibility maps a wire value to a Visibility. The boolean reports
// whether the value was recognized; callers render nothing for unknown values.
func ParseVisibility(s string) (Visibility, bool) {
	switch s {
	case "public":
		return VisibilityPublic, true
	case "unlisted":
		return VisibilityUnlisted, true
	case "followers-only", "followers_only":
		return VisibilityFollowersOnly, true
	case "mentioned-only", "mentioned_only":
		return VisibilityMentionedOnly, true
	case "local-only", "local_only":
		return VisibilityLocalOnly, true
	}
	return Visibility(-1), false
}

// AttachmentKind is the mutually exclusive classification of an attachment.
type AttachmentKind int

const (
	AttachmentImage AttachmentKind = iota
	AttachmentVideo
	AttachmentOther
)

// Attachment is one media object on a playlist post.
type Attachment struct {
	ID           string `json:"id"`
	URL          string `json:"url"`           // full resolution
	ThumbnailURL string `json:"thumbnail_url"` // images only
	MimeType     string `json:"mimetype"`
	Name         string `json:"name,omitempty"` // display name / alt text
	SizeBytes    int64  `json:"size_bytes,omitempty"`
}

// Item is one track row on the playlist.
type Item struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	ArtistName  string `json:"artist_name"`
	ReleaseName string `json:"release_name"`
	UserHandle  string `json:"user"` // opaque owning-user reference

	// Catalog identifiers carried through the add/delete op log.
	ISRC string `json:"isrc,omitempty"`
	UPC  string `json:"upc,omitempty"`
	ISNI string `json:"isni,omitempty"`
}

// Stats is the optional partial counter record on a playlist. Pointer fields
// distinguish absent from zero; display always falls back to 0.
type Stats struct {
	Replies *int `json:"replies,omitempty"`
	Likes   *int `json:"likes,omitempty"`
	Boosts  *int `json:"boosts,omitempty"`
}

// Playlist is the read-only post entity rendered by the card. It is supplied
// fully formed per render and never mutated by the presentation core.
type Playlist struct {
	ID         string     `json:"id"`
	Visibility Visibility `json:"-"`

	// AuthorHandle is an opaque reference resolved by the banner renderer.
	AuthorHandle string `json:"author"`

	// Summary is the optional content warning. Presence drives the disclosure.
	Summary string `json:"summary,omitempty"`

	// SafeContent is the pre-sanitized rendered body. Opaque to the core.
	SafeContent string `json:"safe_content_local"`

	Created   time.Time  `json:"created"`
	Published *time.Time `json:"published,omitempty"`
	Edited    *time.Time `json:"edited,omitempty"`

	// URL is the canonical remote permalink, empty for purely local posts.
	URL   string `json:"url,omitempty"`
	Local bool   `json:"local"`

	Attachments []Attachment `json:"attachments,omitempty"`
	Stats       *Stats       `json:"stats,omitempty"`
	Items       []Item       `json:"items,omitempty"`

	ViewURL      string `json:"view_url"`
	AdminEditURL string `json:"admin_edit_url"`
}

// DisplayTime returns the primary instant: published when present, else created.
func (p *Playlist) DisplayTime() time.Time {
	if p.Published != nil {
		return *p.Published
	}
	return p.Created
}
