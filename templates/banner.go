package templates

// AuthorBanner renders the identity banner at the top of a card. The card
// treats the banner as opaque markup from a collaborator; this is the default
// local renderer's template.
var AuthorBanner = `{{define "author-banner"}}
<div class="post-banner" id="banner-{{.Handle}}">
  <a href="/@{{.Handle}}/" class="banner-link" rel="author">
    <img class="banner-avatar" src="{{if .AvatarURL}}{{.AvatarURL}}{{else}}/static/avatar.svg{{end}}" alt="{{.DisplayName}}'s avatar" width="40" height="40" loading="lazy">
  </a>
  <div class="banner-info">
    <a href="/@{{.Handle}}/" class="banner-name" rel="author">{{.DisplayName}}</a>
    <span class="banner-handle">@{{.Handle}}</span>
  </div>
</div>
{{end}}`

// GetBannerTemplates returns the banner templates concatenated.
func GetBannerTemplates() string {
	return AuthorBanner
}
