// README: Config loader with env defaults for HTTP, Redis, feed, and AI settings.
package config

import (
	"os"
	"strconv"
)

// FeedConfig controls the external station feed and the normalization
// defaults applied when optional fields are absent from a record.
type FeedConfig struct {
	BaseURL         string
	APIKey          string
	Limit           int
	TimeoutSeconds  int
	CacheTTLSeconds int
	RefreshMinutes  int

	// Policy-defined defaults for optional feed fields. The upstream demo
	// feed omits price, rating, and slot counts; defaults keep ingestion
	// deterministic instead of fabricating random values.
	DefaultPricePaise int64
	DefaultRating     float64
	DefaultTotalSlots int
	DefaultFreeSlots  int
}

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		Addr string
	}
	Feed FeedConfig
	AI   struct {
		GeminiKey string
	}
	Maps struct {
		APIKey string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("EVC_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = envOrDefault("EVC_REDIS_ADDR", "")
	cfg.Feed.BaseURL = envOrDefault("EVC_FEED_URL", "")
	cfg.Feed.APIKey = envOrDefault("EVC_FEED_API_KEY", "")
	cfg.Feed.Limit = envOrDefaultInt("EVC_FEED_LIMIT", 100)
	cfg.Feed.TimeoutSeconds = envOrDefaultInt("EVC_FEED_TIMEOUT_SEC", 10)
	cfg.Feed.CacheTTLSeconds = envOrDefaultInt("EVC_FEED_CACHE_TTL_SEC", 300)
	cfg.Feed.RefreshMinutes = envOrDefaultInt("EVC_FEED_REFRESH_MIN", 15)
	cfg.Feed.DefaultPricePaise = int64(envOrDefaultInt("EVC_FEED_DEFAULT_PRICE_PAISE", 1200))
	cfg.Feed.DefaultRating = envOrDefaultFloat("EVC_FEED_DEFAULT_RATING", 4.0)
	cfg.Feed.DefaultTotalSlots = envOrDefaultInt("EVC_FEED_DEFAULT_TOTAL_SLOTS", 4)
	cfg.Feed.DefaultFreeSlots = envOrDefaultInt("EVC_FEED_DEFAULT_FREE_SLOTS", 2)
	cfg.AI.GeminiKey = envOrDefault("GEMINI_API_KEY", "")
	cfg.Maps.APIKey = envOrDefault("MAPS_API_KEY", "")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envOrDefaultInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envOrDefaultFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			return n
		}
	}
	return def
}
