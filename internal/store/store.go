package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/google/uuid"

	"playlist-server/internal/content"
	"playlist-server/internal/types"
)

// Store holds playlist records in memory. It is the only writer; the card
// core only ever sees assembled read-only snapshots.
type Store struct {
	mu      sync.RWMutex
	records map[string]*Record
}

// New returns an empty store.
func New() *Store {
	return &Store{records: make(map[string]*Record)}
}

// NewFromFile loads records from a JSON seed file.
func NewFromFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	s := New()
	for i := range records {
		if err := s.Put(&records[i]); err != nil {
			return nil, fmt.Errorf("seed record %d: %w", i, err)
		}
	}
	return s, nil
}

// Put validates and stores a record, assigning an ID when absent.
func (s *Store) Put(rec *Record) error {
	if err := rec.Validate(); err != nil {
		return fmt.Errorf("invalid playlist record: %w", err)
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	return nil
}

// IDs returns all record IDs sorted by creation time, newest first.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.records[ids[i]].Created.After(s.records[ids[j]].Created)
	})
	return ids
}

// Get assembles the read-only snapshot for one playlist. The snapshot is a
// fresh value per call; callers never observe store mutations mid-render.
func (s *Store) Get(id string) (*types.Playlist, bool) {
	s.mu.RLock()
	rec, ok := s.records[id]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return assemble(rec), true
}

func assemble(rec *Record) *types.Playlist {
	vis, ok := types.ParseVisibility(rec.Visibility)
	if !ok {
		// Unrecognized visibility flows through; the indicator renders nothing.
		vis = types.Visibility(-1)
	}

	safe := rec.Body
	if rec.BodyIsHTML {
		safe = content.SanitizeHTML(rec.Body)
	} else if rendered, err := content.RenderSafeHTML(rec.Body); err == nil {
		safe = rendered
	}

	p := &types.Playlist{
		ID:           rec.ID,
		Visibility:   vis,
		AuthorHandle: rec.AuthorHandle,
		Summary:      rec.Summary,
		SafeContent:  safe,
		Created:      rec.Created,
		Published:    rec.Published,
		Edited:       rec.Edited,
		URL:          rec.URL,
		Local:        rec.Local,
		Attachments:  append([]types.Attachment(nil), rec.Attachments...),
		Stats:        deriveStats(rec),
		Items:        FoldItems(rec.ItemLog),
		ViewURL:      fmt.Sprintf("/@%s/playlists/%s/", rec.AuthorHandle, rec.ID),
		AdminEditURL: fmt.Sprintf("/admin/playlists/%s/", rec.ID),
	}
	return p
}

// deriveStats computes the partial stats record from replies and active
// interactions. A record with no interaction history and no replies yields
// an absent stats record; the display layer falls back to zeros.
func deriveStats(rec *Record) *types.Stats {
	if len(rec.Interactions) == 0 && rec.ReplyCount == 0 {
		return nil
	}
	likes, boosts := 0, 0
	for _, in := range rec.Interactions {
		if !in.Active {
			continue
		}
		switch in.Type {
		case InteractionLike:
			likes++
		case InteractionBoost:
			boosts++
		}
	}
	replies := rec.ReplyCount
	return &types.Stats{Replies: &replies, Likes: &likes, Boosts: &boosts}
}
