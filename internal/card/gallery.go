package card

import "playlist-server/internal/types"

// Classifier assigns each attachment exactly one AttachmentKind. The
// predicate is supplied by the caller; the card never inspects attachment
// bytes itself.
type Classifier func(types.Attachment) types.AttachmentKind

// AltPlaceholder is the alt text used when an attachment has no display name.
const AltPlaceholder = "(no description)"

// GalleryImage is an image cell in the media pass.
type GalleryImage struct {
	URL          string
	ThumbnailURL string
	AltText      string
	// HasAlt marks attachments with an author-provided description; the
	// template shows the ALT badge only for these.
	HasAlt bool
}

// GalleryVideo is a video cell in the media pass. Players render muted,
// looping, with user controls.
type GalleryVideo struct {
	URL      string
	MimeType string
}

// MediaItem is one cell of the media pass, either an image or a video.
type MediaItem struct {
	Kind  types.AttachmentKind
	Image *GalleryImage
	Video *GalleryVideo
}

// Download is one entry of the downloads pass.
type Download struct {
	URL       string
	Label     string
	SizeBytes int64
}

// Gallery is the classified attachment layout. The media pass holds every
// image and video in collection order; the downloads pass holds everything
// else, also in collection order. Media always renders contiguously before
// the downloads, which is why the two passes are kept separate rather than
// branching in a single walk.
type Gallery struct {
	Media     []MediaItem
	Downloads []Download
}

// Empty reports whether the gallery renders at all.
func (g Gallery) Empty() bool {
	return len(g.Media) == 0 && len(g.Downloads) == 0
}

// BuildGallery classifies the attachments with the supplied predicate and
// lays them out in two passes.
func BuildGallery(attachments []types.Attachment, classify Classifier) Gallery {
	var g Gallery
	for _, att := range attachments {
		switch classify(att) {
		case types.AttachmentImage:
			alt := att.Name
			hasAlt := alt != ""
			if !hasAlt {
				alt = AltPlaceholder
			}
			g.Media = append(g.Media, MediaItem{
				Kind: types.AttachmentImage,
				Image: &GalleryImage{
					URL:          att.URL,
					ThumbnailURL: att.ThumbnailURL,
					AltText:      alt,
					HasAlt:       hasAlt,
				},
			})
		case types.AttachmentVideo:
			g.Media = append(g.Media, MediaItem{
				Kind: types.AttachmentVideo,
				Video: &GalleryVideo{
					URL:      att.URL,
					MimeType: att.MimeType,
				},
			})
		}
	}
	for _, att := range attachments {
		if kind := classify(att); kind == types.AttachmentImage || kind == types.AttachmentVideo {
			continue
		}
		label := att.Name
		if label == "" {
			label = AltPlaceholder
		}
		g.Downloads = append(g.Downloads, Download{
			URL:       att.URL,
			Label:     label,
			SizeBytes: att.SizeBytes,
		})
	}
	return g
}
