package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("MAX_IMAGE_SIZE", "")
	t.Setenv("MEDIA_EXTENSIONS", "")
	t.Setenv("ORPHAN_RETENTION", "")

	cfg, err := Load()
	require.Nil(t, err)
	assert.Equal(t, "./medias", cfg.MediaPath)
	assert.Equal(t, int64(5<<20), cfg.MaxImageSize)
	assert.Equal(t, []string{"png", "jpg"}, cfg.MediaExtensions)
	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.OrphanRetention)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAX_IMAGE_SIZE", "1024")
	t.Setenv("MEDIA_EXTENSIONS", "gif,webp")
	t.Setenv("ORPHAN_RETENTION", "1h")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.Nil(t, err)
	assert.Equal(t, int64(1024), cfg.MaxImageSize)
	assert.Equal(t, []string{"gif", "webp"}, cfg.MediaExtensions)
	assert.Equal(t, time.Hour, cfg.OrphanRetention)
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadBadSize(t *testing.T) {
	t.Setenv("MAX_IMAGE_SIZE", "not-a-number")
	_, err := Load()
	assert.NotNil(t, err)
}

func TestExtensionAllowed(t *testing.T) {
	cfg := &Config{MediaExtensions: []string{"png", "jpg"}}
	assert.True(t, cfg.ExtensionAllowed("png"))
	assert.True(t, cfg.ExtensionAllowed("JPG"))
	assert.False(t, cfg.ExtensionAllowed("txt"))
	assert.False(t, cfg.ExtensionAllowed(""))
}
