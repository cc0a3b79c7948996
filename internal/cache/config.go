package cache

import "time"

// Config holds the cache TTLs.
type Config struct {
	BannerTTL   time.Duration
	FragmentTTL time.Duration
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BannerTTL:   1 * time.Hour,   // author banners rarely change
		FragmentTTL: 2 * time.Minute, // rendered cards go stale with stats
	}
}
