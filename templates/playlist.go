// Package templates holds the HTML templates as Go strings, composed from
// {{define}} blocks and concatenated for parsing by the rendering layer.
package templates

// PlaylistCard renders one playlist post card. The card root is a tab stop
// with a screen-reader label; the reply modifier comes from the caller.
var PlaylistCard = `{{define "playlist-card"}}
<article class="playlist-card{{if .Reply}} reply{{end}}" id="playlist-{{.ID}}" tabindex="0" aria-label="Playlist by {{.AuthorHandle}}">
  {{.AuthorBanner}}
  <div class="playlist-meta">
    {{if .HasVisibility}}<i class="fa-solid {{.Visibility.Icon}} visibility-icon" title="{{.Visibility.Label}}" aria-label="{{.Visibility.Label}}"></i>{{end}}
    <a href="{{.TimestampTarget}}" class="playlist-time" rel="bookmark">
      <time datetime="{{isoTime .Timestamp}}" title="{{isoTime .Timestamp}}">{{relAge .Timestamp}}</time>
    </a>
    {{if .Edited}}<span class="edited-marker" title="{{isoTime .EditedAt}}">(edited)</span>{{end}}
  </div>
  {{template "playlist-disclosure" .}}
  <div class="playlist-content{{if .ContentHidden}} hidden{{end}}" id="content-{{.ID}}">{{.ContentHTML}}</div>
  {{template "playlist-gallery" .}}
  {{template "playlist-items" .}}
  <footer class="playlist-footer">
    {{template "playlist-stats" .}}
    {{template "playlist-menu" .}}
  </footer>
</article>
{{end}}`

// PlaylistDisclosure renders the content-warning summary element. The enabled
// marker on the summary and the hidden marker on the content region are
// complementary; toggling re-renders the card via the summary endpoint.
var PlaylistDisclosure = `{{define "playlist-disclosure"}}
{{if .HasSummary}}
<div class="playlist-summary{{if .SummaryEnabled}} enabled{{end}}" role="button" tabindex="0" aria-expanded="{{if .SummaryEnabled}}true{{else}}false{{end}}" aria-controls="content-{{.ID}}" h-get="{{.SummaryToggleURL}}" h-target="#playlist-{{.ID}}" h-swap="outer" h-trigger="click, keyup[Enter]">{{.Summary}}</div>
{{end}}
{{end}}`

// PlaylistGallery renders the attachment gallery in two passes: all media
// first, then the downloadable rest. Images open the external viewer overlay
// and carry an ALT badge only when a description exists.
var PlaylistGallery = `{{define "playlist-gallery"}}
{{if .HasAttachments}}
<div class="playlist-gallery">
  {{range .Gallery.Media}}
  {{if .Image}}
  <a href="{{.Image.URL}}" class="gallery-image" data-image-viewer>
    <img src="{{.Image.ThumbnailURL}}" alt="{{.Image.AltText}}" loading="lazy">
    {{if .Image.HasAlt}}<span class="alt-badge" title="{{.Image.AltText}}">ALT</span>{{end}}
  </a>
  {{else if .Video}}
  <video class="gallery-video" muted controls loop preload="metadata">
    <source src="{{.Video.URL}}"{{if .Video.MimeType}} type="{{.Video.MimeType}}"{{end}}>
  </video>
  {{end}}
  {{end}}
  {{range .Gallery.Downloads}}
  <a href="{{.URL}}" class="gallery-download" download>{{.Label}}{{if gt .SizeBytes 0}} <span class="download-size">{{fileSize .SizeBytes}}</span>{{end}}</a>
  {{end}}
</div>
{{end}}
{{end}}`

// PlaylistItems renders the track table. An empty playlist still shows the
// header row over an empty body.
var PlaylistItems = `{{define "playlist-items"}}
<table class="playlist-tracks">
  <thead>
    <tr><th>#</th><th>Name</th><th>Artist</th><th>Album</th><th>User</th></tr>
  </thead>
  <tbody>
    {{range .Items}}
    <tr><td>{{.Number}}</td><td>{{.Name}}</td><td>{{.ArtistName}}</td><td>{{.ReleaseName}}</td><td>{{.UserHandle}}</td></tr>
    {{end}}
  </tbody>
</table>
{{end}}`

// PlaylistStats renders the reply/like/boost counters. Only the reply pill
// navigates; like and boost are not actionable yet.
var PlaylistStats = `{{define "playlist-stats"}}
<div class="playlist-stats">
  <a href="{{.Stats.ReplyTarget}}" class="stat-pill stat-replies" title="Replies"><i class="fa-solid fa-reply" aria-hidden="true"></i> <span class="stat-count">{{.Stats.Replies}}</span></a>
  <span class="stat-pill stat-likes" title="Likes"><i class="fa-solid fa-heart" aria-hidden="true"></i> <span class="stat-count">{{.Stats.Likes}}</span></span>
  <span class="stat-pill stat-boosts" title="Boosts"><i class="fa-solid fa-retweet" aria-hidden="true"></i> <span class="stat-count">{{.Stats.Boosts}}</span></span>
</div>
{{end}}`

// PlaylistMenu renders the contextual menu trigger plus its adjacent menu.
// Toggling re-renders just this card, so no other card's menu is touched.
var PlaylistMenu = `{{define "playlist-menu"}}
<div class="playlist-actions">
  <button type="button" class="menu-trigger" aria-haspopup="menu" aria-expanded="{{if .MenuOpen}}true{{else}}false{{end}}" aria-label="Post actions" h-get="{{.MenuToggleURL}}" h-target="#playlist-{{.ID}}" h-swap="outer" h-trigger="click, keyup[Enter]"><i class="fa-solid fa-ellipsis" aria-hidden="true"></i></button>
  <nav class="action-menu{{if .MenuOpen}} open{{end}}"{{if not .MenuOpen}} hidden{{end}} role="menu">
    {{range .MenuEntries}}
    <a href="{{.Target}}" class="action-menu-item" role="menuitem">{{.Label}}</a>
    {{end}}
  </nav>
</div>
{{end}}`

// GetCardTemplates returns all card templates concatenated for parsing.
func GetCardTemplates() string {
	return PlaylistCard +
		PlaylistDisclosure +
		PlaylistGallery +
		PlaylistItems +
		PlaylistStats +
		PlaylistMenu
}
