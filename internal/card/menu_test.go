package card

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"playlist-server/internal/types"
)

func TestMenuToggle(t *testing.T) {
	m := NewMenu()
	assert.False(t, m.IsOpen())

	ev := Click()
	m.Toggle(ev)
	assert.True(t, m.IsOpen())
	assert.True(t, ev.Stopped())

	m.Toggle(Click())
	assert.False(t, m.IsOpen())
}

func TestMenuIgnoresNonActivatingKeys(t *testing.T) {
	m := NewMenu()
	ev := KeyPress("Tab")
	m.Toggle(ev)
	assert.False(t, m.IsOpen())
	assert.False(t, ev.Stopped())
}

func TestMenusAreIndependentAcrossCards(t *testing.T) {
	p := &types.Playlist{ID: "p1", ViewURL: "/@ana/playlists/p1/"}
	a := New(p, Options{})
	b := New(p, Options{})

	a.Menu.Toggle(Click())
	assert.True(t, a.Menu.IsOpen())
	assert.False(t, b.Menu.IsOpen(), "toggling one card never touches another")
}

func TestMenuEntries(t *testing.T) {
	tests := []struct {
		name     string
		playlist types.Playlist
		admin    bool
		want     []MenuEntry
	}{
		{
			name:     "local post, no admin",
			playlist: types.Playlist{Local: true, ViewURL: "/@ana/playlists/p1/", URL: "https://remote.example/p1"},
			want: []MenuEntry{
				{Label: "View Playlist & Replies", Target: "/@ana/playlists/p1/"},
			},
		},
		{
			name:     "remote post shows original",
			playlist: types.Playlist{Local: false, ViewURL: "/@kofi/playlists/p2/", URL: "https://remote.example/p2"},
			want: []MenuEntry{
				{Label: "View Playlist & Replies", Target: "/@kofi/playlists/p2/"},
				{Label: "See Original", Target: "https://remote.example/p2"},
			},
		},
		{
			name:     "remote post without url",
			playlist: types.Playlist{Local: false, ViewURL: "/@kofi/playlists/p3/"},
			want: []MenuEntry{
				{Label: "View Playlist & Replies", Target: "/@kofi/playlists/p3/"},
			},
		},
		{
			name:     "admin entry gated on flag",
			playlist: types.Playlist{Local: true, ViewURL: "/@ana/playlists/p4/", AdminEditURL: "/admin/playlists/p4/"},
			admin:    true,
			want: []MenuEntry{
				{Label: "View Playlist & Replies", Target: "/@ana/playlists/p4/"},
				{Label: "View In Admin", Target: "/admin/playlists/p4/"},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MenuEntries(&tt.playlist, tt.admin))
		})
	}
}
