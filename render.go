package main

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"playlist-server/internal/content"
	"playlist-server/internal/util"
	"playlist-server/templates"
)

var cardTemplates *template.Template

// templateFuncs are the formatting collaborators available to all templates.
var templateFuncs = template.FuncMap{
	"relAge": func(t time.Time) string {
		return content.RelativeAge(t, time.Now())
	},
	"isoTime": func(t time.Time) string {
		return content.ISOTime(t)
	},
	"fileSize": func(n int64) string {
		return humanize.IBytes(uint64(n))
	},
	"contains": func(s, substr string) bool {
		return strings.Contains(s, substr)
	},
}

// initTemplates compiles all templates at startup. Failures are fatal.
func initTemplates() {
	cardTemplates = util.MustCompileTemplate(
		"playlist",
		templateFuncs,
		templates.GetCardTemplates()+templates.GetBannerTemplates()+templates.GetPageTemplates(),
	)
}

// RenderCard renders one playlist card fragment.
func RenderCard(view CardView) (string, error) {
	var buf strings.Builder
	if err := cardTemplates.ExecuteTemplate(&buf, "playlist-card", view); err != nil {
		return "", fmt.Errorf("render playlist card: %w", err)
	}
	return buf.String(), nil
}

// IndexData is the template data for the playlist index page.
type IndexData struct {
	SiteName    string
	Stylesheet  string
	PlaylistIDs []string
}

// RenderIndex renders the playlist index page.
func RenderIndex(data IndexData) (string, error) {
	var buf strings.Builder
	if err := cardTemplates.ExecuteTemplate(&buf, "index", data); err != nil {
		return "", fmt.Errorf("render index: %w", err)
	}
	return buf.String(), nil
}

// TimelineData is the template data for the timeline page of cards.
type TimelineData struct {
	Title      string
	SiteName   string
	Stylesheet string
	Cards      []CardView
}

// RenderTimeline renders a page of playlist cards.
func RenderTimeline(data TimelineData) (string, error) {
	var buf strings.Builder
	if err := cardTemplates.ExecuteTemplate(&buf, "playlist-timeline", data); err != nil {
		return "", fmt.Errorf("render timeline: %w", err)
	}
	return buf.String(), nil
}
