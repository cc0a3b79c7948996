package main

import (
	"encoding/json"
	"log/slog"
	"os"
	"sync"
)

// SiteConfig represents the site.json configuration for site identity and
// card rendering defaults
type SiteConfig struct {
	Site     SiteIdentity   `json:"site"`
	Links    LinksConfig    `json:"links"`
	Defaults RenderDefaults `json:"defaults"`
	SeedFile string         `json:"seedFile"`
}

// SiteIdentity contains site-wide identity information
type SiteIdentity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LinksConfig contains link tags for the page shells
type LinksConfig struct {
	Stylesheet string `json:"stylesheet"`
}

// RenderDefaults are the card flag defaults applied when a request does not
// set them explicitly
type RenderDefaults struct {
	LinkOriginal bool `json:"linkOriginal"`
}

var (
	siteConfig     *SiteConfig
	siteConfigMu   sync.RWMutex
	siteConfigOnce sync.Once
)

// GetSiteConfig returns the current site configuration (thread-safe)
func GetSiteConfig() *SiteConfig {
	siteConfigOnce.Do(func() {
		siteConfigMu.Lock()
		defer siteConfigMu.Unlock()
		if siteConfig == nil {
			siteConfig = loadSiteConfigFromFile()
		}
	})

	siteConfigMu.RLock()
	defer siteConfigMu.RUnlock()
	return siteConfig
}

// ReloadSiteConfig reloads the configuration from file
func ReloadSiteConfig() error {
	newConfig := loadSiteConfigFromFile()
	siteConfigMu.Lock()
	defer siteConfigMu.Unlock()
	siteConfig = newConfig
	slog.Info("site configuration reloaded")
	return nil
}

func loadSiteConfigFromFile() *SiteConfig {
	configPath := os.Getenv("SITE_CONFIG")
	if configPath == "" {
		configPath = "config/site.json"
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("site config file not found, using defaults", "path", configPath)
		} else {
			slog.Warn("could not read site config, using defaults", "path", configPath, "error", err)
		}
		return getDefaultSiteConfig()
	}

	var config SiteConfig
	if err := json.Unmarshal(data, &config); err != nil {
		slog.Error("invalid JSON in site config, using defaults", "path", configPath, "error", err)
		return getDefaultSiteConfig()
	}

	slog.Info("loaded site configuration", "name", config.Site.Name)
	return &config
}

// getDefaultSiteConfig returns the embedded default configuration
func getDefaultSiteConfig() *SiteConfig {
	return &SiteConfig{
		Site: SiteIdentity{
			Name:        "Playlist Server",
			Description: "Federated playlist post cards",
		},
		Links: LinksConfig{
			Stylesheet: "/static/style.css",
		},
		Defaults: RenderDefaults{
			LinkOriginal: true,
		},
		SeedFile: "config/playlists.json",
	}
}
