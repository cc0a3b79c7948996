package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlist-server/internal/card"
	"playlist-server/internal/types"
)

func TestMain(m *testing.M) {
	initTemplates()
	os.Exit(m.Run())
}

func testPlaylist() *types.Playlist {
	created := time.Date(2026, 8, 29, 9, 0, 0, 0, time.UTC)
	return &types.Playlist{
		ID:           "p1",
		Visibility:   types.VisibilityPublic,
		AuthorHandle: "ana@records.example",
		SafeContent:  "<p>Songs for the drive.</p>",
		Created:      created,
		Local:        true,
		ViewURL:      "/@ana@records.example/playlists/p1/",
		AdminEditURL: "/admin/playlists/p1/",
		Items: []types.Item{
			{Number: 1, Name: "Golden Hour", ArtistName: "The Lanterns", ReleaseName: "West", UserHandle: "ana@records.example"},
		},
	}
}

func renderTestCard(t *testing.T, p *types.Playlist, opts card.Options) string {
	t.Helper()
	c := card.New(p, opts)
	html, err := RenderCard(BuildCardView(c, "<div>banner</div>"))
	require.NoError(t, err)
	return html
}

func TestRenderCardBasics(t *testing.T) {
	html := renderTestCard(t, testPlaylist(), card.Options{})
	assert.Contains(t, html, `id="playlist-p1"`)
	assert.Contains(t, html, `aria-label="Playlist by ana@records.example"`)
	assert.Contains(t, html, "<p>Songs for the drive.</p>")
	assert.Contains(t, html, "fa-globe")
	assert.NotContains(t, html, "playlist-card reply")
}

func TestRenderCardReplyModifier(t *testing.T) {
	html := renderTestCard(t, testPlaylist(), card.Options{Reply: true})
	assert.Contains(t, html, `class="playlist-card reply"`)
}

func TestRenderCardUnknownVisibilityOmitsIcon(t *testing.T) {
	p := testPlaylist()
	p.Visibility = types.Visibility(-1)
	html := renderTestCard(t, p, card.Options{})
	assert.NotContains(t, html, "visibility-icon")
}

func TestRenderCardDisclosure(t *testing.T) {
	p := testPlaylist()
	p.Summary = "loud guitars"

	// Collapsed by default: summary present, content hidden.
	html := renderTestCard(t, p, card.Options{})
	assert.Contains(t, html, "loud guitars")
	assert.Contains(t, html, `class="playlist-content hidden"`)
	assert.Contains(t, html, `aria-expanded="false"`)
	assert.Contains(t, html, "cw=expanded", "toggle points at the expanded rendition")
}

func TestRenderCardDisclosureExpanded(t *testing.T) {
	p := testPlaylist()
	p.Summary = "loud guitars"
	c := card.New(p, card.Options{})
	c.Disclosure.Toggle(card.Click())

	html, err := RenderCard(BuildCardView(c, ""))
	require.NoError(t, err)
	assert.Contains(t, html, "playlist-summary enabled")
	assert.NotContains(t, html, "playlist-content hidden")
}

func TestRenderCardNoSummaryShowsContent(t *testing.T) {
	html := renderTestCard(t, testPlaylist(), card.Options{})
	assert.NotContains(t, html, "playlist-summary")
	assert.Contains(t, html, `class="playlist-content"`)
}

func TestRenderCardEditedMarker(t *testing.T) {
	p := testPlaylist()
	edited := p.Created.Add(time.Hour)
	p.Edited = &edited
	html := renderTestCard(t, p, card.Options{})
	assert.Contains(t, html, "(edited)")
}

func TestRenderCardGallery(t *testing.T) {
	p := testPlaylist()
	p.Attachments = []types.Attachment{
		{URL: "https://m/a.jpg", ThumbnailURL: "https://m/a-t.jpg", MimeType: "image/jpeg", Name: "cover art"},
		{URL: "https://m/b.jpg", ThumbnailURL: "https://m/b-t.jpg", MimeType: "image/jpeg"},
		{URL: "https://m/notes.pdf", MimeType: "application/pdf", Name: "notes.pdf", SizeBytes: 4096},
	}
	html := renderTestCard(t, p, card.Options{})

	assert.Contains(t, html, `src="https://m/a-t.jpg"`)
	assert.Contains(t, html, `>ALT</span>`)
	assert.Contains(t, html, "(no description)")
	assert.Contains(t, html, `class="gallery-download"`)
	assert.Contains(t, html, "4.0 KiB")
}

func TestRenderCardItemsTable(t *testing.T) {
	html := renderTestCard(t, testPlaylist(), card.Options{})
	assert.Contains(t, html, "<th>#</th><th>Name</th><th>Artist</th><th>Album</th><th>User</th>")
	assert.Contains(t, html, "<td>Golden Hour</td>")

	// An empty playlist still shows the header row.
	p := testPlaylist()
	p.Items = nil
	html = renderTestCard(t, p, card.Options{})
	assert.Contains(t, html, "<th>#</th>")
	assert.NotContains(t, html, "<td>")
}

func TestRenderCardStatsDefaults(t *testing.T) {
	html := renderTestCard(t, testPlaylist(), card.Options{})
	assert.Contains(t, html, `<span class="stat-count">0</span>`)
}

func TestRenderCardMenu(t *testing.T) {
	html := renderTestCard(t, testPlaylist(), card.Options{})
	assert.Contains(t, html, "View Playlist &amp; Replies")
	assert.NotContains(t, html, "See Original")
	assert.NotContains(t, html, "View In Admin")
	assert.Contains(t, html, " hidden")

	html = renderTestCard(t, testPlaylist(), card.Options{Admin: true})
	assert.Contains(t, html, "View In Admin")
}

func TestRenderCardMenuOpen(t *testing.T) {
	c := card.New(testPlaylist(), card.Options{})
	c.Menu.Toggle(card.Click())
	html, err := RenderCard(BuildCardView(c, ""))
	require.NoError(t, err)
	assert.Contains(t, html, "action-menu open")
	assert.Contains(t, html, `aria-expanded="true"`)
}

func TestRenderIndex(t *testing.T) {
	html, err := RenderIndex(IndexData{SiteName: "Playlist Server", Stylesheet: "/static/style.css", PlaylistIDs: []string{"p1"}})
	require.NoError(t, err)
	assert.Contains(t, html, "<title>Playlist Server</title>")
	assert.Contains(t, html, `href="/fragment/playlist/p1"`)
}

func TestRenderTimeline(t *testing.T) {
	view := BuildCardView(card.New(testPlaylist(), card.Options{}), "")
	html, err := RenderTimeline(TimelineData{Title: "Playlists", SiteName: "Playlist Server", Cards: []CardView{view}})
	require.NoError(t, err)
	assert.Contains(t, html, "<title>Playlists - Playlist Server</title>")
	assert.Contains(t, html, `id="playlist-p1"`)
}
