package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playlist-server/internal/types"
)

func validRecord() *Record {
	return &Record{
		Visibility:   "public",
		AuthorHandle: "ana@records.example",
		Body:         "Songs for the drive.",
		Created:      time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC),
		Local:        true,
	}
}

func TestPutAssignsID(t *testing.T) {
	s := New()
	rec := validRecord()
	require.NoError(t, s.Put(rec))
	assert.NotEmpty(t, rec.ID)

	p, ok := s.Get(rec.ID)
	require.True(t, ok)
	assert.Equal(t, rec.ID, p.ID)
}

func TestPutRejectsInvalidRecord(t *testing.T) {
	s := New()

	rec := validRecord()
	rec.AuthorHandle = ""
	assert.Error(t, s.Put(rec))

	rec = validRecord()
	rec.Interactions = []Interaction{{Type: "wave", Identity: "x", Active: true}}
	assert.Error(t, s.Put(rec))

	rec = validRecord()
	rec.ItemLog = []ItemOp{{Op: "move", Created: rec.Created}}
	assert.Error(t, s.Put(rec))
}

func TestGetMissing(t *testing.T) {
	_, ok := New().Get("nope")
	assert.False(t, ok)
}

func TestIDsNewestFirst(t *testing.T) {
	s := New()
	older := validRecord()
	older.ID = "older"
	newer := validRecord()
	newer.ID = "newer"
	newer.Created = older.Created.Add(time.Hour)
	require.NoError(t, s.Put(older))
	require.NoError(t, s.Put(newer))

	assert.Equal(t, []string{"newer", "older"}, s.IDs())
}

func TestAssembleURLs(t *testing.T) {
	s := New()
	rec := validRecord()
	rec.ID = "p1"
	require.NoError(t, s.Put(rec))

	p, ok := s.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "/@ana@records.example/playlists/p1/", p.ViewURL)
	assert.Equal(t, "/admin/playlists/p1/", p.AdminEditURL)
}

func TestAssembleVisibility(t *testing.T) {
	s := New()

	rec := validRecord()
	rec.ID = "known"
	require.NoError(t, s.Put(rec))
	p, _ := s.Get("known")
	assert.Equal(t, types.VisibilityPublic, p.Visibility)

	// Unrecognized values flow through unmapped so the indicator renders
	// nothing instead of guessing.
	rec = validRecord()
	rec.ID = "odd"
	rec.Visibility = "direct"
	require.NoError(t, s.Put(rec))
	p, _ = s.Get("odd")
	assert.Equal(t, types.Visibility(-1), p.Visibility)
}

func TestAssembleRendersMarkdown(t *testing.T) {
	s := New()
	rec := validRecord()
	rec.ID = "md"
	rec.Body = "**Windows down.**"
	require.NoError(t, s.Put(rec))

	p, _ := s.Get("md")
	assert.Contains(t, p.SafeContent, "<strong>Windows down.</strong>")
}

func TestAssembleSanitizesRemoteHTML(t *testing.T) {
	s := New()
	rec := validRecord()
	rec.ID = "html"
	rec.Body = `<p>hi</p><script>x</script>`
	rec.BodyIsHTML = true
	require.NoError(t, s.Put(rec))

	p, _ := s.Get("html")
	assert.Contains(t, p.SafeContent, "<p>hi</p>")
	assert.NotContains(t, p.SafeContent, "script")
}

func TestDeriveStats(t *testing.T) {
	rec := validRecord()
	assert.Nil(t, deriveStats(rec), "no history yields an absent stats record")

	rec.Interactions = []Interaction{
		{Type: InteractionLike, Identity: "a", Active: true},
		{Type: InteractionLike, Identity: "b", Active: false},
		{Type: InteractionBoost, Identity: "a", Active: true},
	}
	rec.ReplyCount = 2

	stats := deriveStats(rec)
	require.NotNil(t, stats)
	assert.Equal(t, 1, *stats.Likes, "undone interactions never count")
	assert.Equal(t, 1, *stats.Boosts)
	assert.Equal(t, 2, *stats.Replies)
}

func TestNewFromFile(t *testing.T) {
	seed := `[
		{
			"id": "p1",
			"visibility": "public",
			"author": "ana@records.example",
			"body": "hello",
			"created": "2026-08-28T09:00:00Z",
			"local": true
		}
	]`
	path := filepath.Join(t.TempDir(), "playlists.json")
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	s, err := NewFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1"}, s.IDs())
}

func TestNewFromFileErrors(t *testing.T) {
	_, err := NewFromFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	_, err = NewFromFile(path)
	assert.Error(t, err)
}
