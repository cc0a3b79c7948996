package main

import (
	"log/slog"
	"time"

	"playlist-server/internal/store"
	"playlist-server/internal/types"
)

// seedStore builds the built-in sample data used when no seed file is
// present. The samples cover the card's main shapes: a local post with a
// content warning and attachments, a remote post with interactions, and a
// bare remote post with an unrecognized visibility value.
func seedStore() *store.Store {
	s := store.New()
	now := time.Now().UTC()
	published := now.Add(-26 * time.Hour)
	edited := now.Add(-2 * time.Hour)

	records := []store.Record{
		{
			ID:           "demo-roadtrip",
			Visibility:   "public",
			AuthorHandle: "ana@records.example",
			Summary:      "loud guitars inside",
			Body:         "Songs for the coast drive. **Windows down.**",
			Created:      now.Add(-27 * time.Hour),
			Published:    &published,
			Edited:       &edited,
			Local:        true,
			Attachments: []types.Attachment{
				{ID: "a1", URL: "https://media.example/cover.jpg", ThumbnailURL: "https://media.example/cover-thumb.jpg", MimeType: "image/jpeg", Name: "album cover collage"},
				{ID: "a2", URL: "https://media.example/clip.mp4", MimeType: "video/mp4"},
				{ID: "a3", URL: "https://media.example/liner-notes.pdf", MimeType: "application/pdf", Name: "liner-notes.pdf", SizeBytes: 482_112},
			},
			ItemLog: []store.ItemOp{
				{Op: store.OpAdd, Created: now.Add(-27 * time.Hour), Number: 1, Name: "Golden Hour", ArtistName: "The Lanterns", ReleaseName: "West", UserHandle: "ana@records.example", ISRC: "USLAN2400001"},
				{Op: store.OpAdd, Created: now.Add(-26 * time.Hour), Number: 2, Name: "Switchback", ArtistName: "Mira Vale", ReleaseName: "Switchback", UserHandle: "ana@records.example", ISRC: "GBMVE2300017"},
				{Op: store.OpAdd, Created: now.Add(-25 * time.Hour), Number: 3, Name: "Low Tide", ArtistName: "The Lanterns", ReleaseName: "West", UserHandle: "ana@records.example"},
				{Op: store.OpDelete, Created: now.Add(-3 * time.Hour), ISRC: "GBMVE2300017"},
			},
			Interactions: []store.Interaction{
				{Type: store.InteractionLike, Identity: "kofi@beats.example", Active: true},
				{Type: store.InteractionLike, Identity: "june@tape.example", Active: true},
				{Type: store.InteractionBoost, Identity: "kofi@beats.example", Active: true},
				{Type: store.InteractionLike, Identity: "rex@tape.example", Active: false},
			},
			ReplyCount: 3,
		},
		{
			ID:           "demo-latenight",
			Visibility:   "unlisted",
			AuthorHandle: "kofi@beats.example",
			Body:         "<p>Late night selections, mirrored from the home server.</p>",
			BodyIsHTML:   true,
			Created:      now.Add(-9 * time.Hour),
			URL:          "https://beats.example/@kofi/playlists/late-night/",
			Local:        false,
			ItemLog: []store.ItemOp{
				{Op: store.OpAdd, Created: now.Add(-9 * time.Hour), Number: 1, Name: "Blue Static", ArtistName: "Nightbus", ReleaseName: "Transit", UserHandle: "kofi@beats.example", ISRC: "FRNBS2200044"},
			},
			Interactions: []store.Interaction{
				{Type: store.InteractionBoost, Identity: "ana@records.example", Active: true},
			},
		},
		{
			ID:           "demo-scratchpad",
			Visibility:   "direct",
			AuthorHandle: "june@tape.example",
			Body:         "Scratchpad, nothing here yet.",
			Created:      now.Add(-40 * time.Minute),
			URL:          "https://tape.example/@june/playlists/scratchpad/",
			Local:        false,
		},
	}

	for i := range records {
		if err := s.Put(&records[i]); err != nil {
			slog.Error("sample record rejected", "id", records[i].ID, "error", err)
		}
	}
	return s
}
