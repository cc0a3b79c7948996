package content

import (
	"path"
	"strings"

	"playlist-server/internal/types"
)

var imageExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".avif": true,
}

var videoExtensions = map[string]bool{
	".mp4": true, ".webm": true, ".mov": true, ".m4v": true,
}

// ClassifyAttachment is the default classification predicate handed to the
// card gallery. Classification is total and mutually exclusive: an attachment
// is exactly one of image, video, or other. Mimetype wins; the URL extension
// is the fallback for attachments without one.
func ClassifyAttachment(att types.Attachment) types.AttachmentKind {
	mt := strings.ToLower(att.MimeType)
	switch {
	case strings.HasPrefix(mt, "image/"):
		return types.AttachmentImage
	case strings.HasPrefix(mt, "video/"):
		return types.AttachmentVideo
	case mt != "":
		return types.AttachmentOther
	}
	ext := strings.ToLower(path.Ext(stripQuery(att.URL)))
	switch {
	case imageExtensions[ext]:
		return types.AttachmentImage
	case videoExtensions[ext]:
		return types.AttachmentVideo
	}
	return types.AttachmentOther
}

func stripQuery(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		return url[:i]
	}
	return url
}
