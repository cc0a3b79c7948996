package templates

// Page templates: a minimal index listing the seeded playlists and a timeline
// wrapper around the card fragments. The fragment endpoints return bare cards
// for partial swaps.

// GetPageTemplates returns the page-level templates concatenated.
func GetPageTemplates() string {
	return indexTemplate + timelineTemplate
}

var indexTemplate = `{{define "index"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.SiteName}}</title>
  <link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
  <div class="container">
    <main id="main-content">
      <h1>{{.SiteName}}</h1>
      <ul class="playlist-index">
        {{range .PlaylistIDs}}
        <li><a href="/fragment/playlist/{{.}}">{{.}}</a></li>
        {{end}}
      </ul>
    </main>
  </div>
</body>
</html>{{end}}`

var timelineTemplate = `{{define "playlist-timeline"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} - {{.SiteName}}</title>
  <link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
  <div class="container">
    <main id="main-content">
      {{range .Cards}}
      {{template "playlist-card" .}}
      {{end}}
    </main>
  </div>
</body>
</html>{{end}}`
