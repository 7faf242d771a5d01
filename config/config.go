package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultMediaPath       = "./medias"
	defaultMaxImageSize    = 5 << 20
	defaultPort            = "8000"
	defaultOrphanRetention = 24 * time.Hour
)

// Config holds every tunable of the service. It is constructed once at
// process start and passed by reference to all consumers; there is no
// package-level instance.
type Config struct {
	// DatabaseURL is a postgres DSN. Empty means sqlite at SqlitePath,
	// which is the local-development default.
	DatabaseURL string
	SqlitePath  string

	// MediaPath is the directory for uploaded files; S3Bucket, when set,
	// switches media storage to S3 instead.
	MediaPath string
	S3Bucket  string

	MaxImageSize    int64
	MediaExtensions []string

	Port            string
	OrphanRetention time.Duration
}

// Load reads .env (if present) and the process environment. Missing values
// fall back to local-development defaults.
func Load() (*Config, error) {
	// A missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		SqlitePath:      envOr("SQLITE_PATH", "./tweets.db"),
		MediaPath:       envOr("MEDIA_PATH", defaultMediaPath),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		MaxImageSize:    defaultMaxImageSize,
		MediaExtensions: []string{"png", "jpg"},
		Port:            envOr("PORT", defaultPort),
		OrphanRetention: defaultOrphanRetention,
	}

	if v := os.Getenv("MAX_IMAGE_SIZE"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		cfg.MaxImageSize = size
	}
	if v := os.Getenv("MEDIA_EXTENSIONS"); v != "" {
		cfg.MediaExtensions = strings.Split(v, ",")
	}
	if v := os.Getenv("ORPHAN_RETENTION"); v != "" {
		retention, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		cfg.OrphanRetention = retention
	}
	return cfg, nil
}

// ExtensionAllowed reports whether ext (without the dot) is in the
// configured allow-list. Comparison is case-insensitive.
func (c *Config) ExtensionAllowed(ext string) bool {
	for _, allowed := range c.MediaExtensions {
		if strings.EqualFold(ext, allowed) {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
