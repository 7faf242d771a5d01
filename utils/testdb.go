package utils

import (
	"fmt"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DanteA11/TweetsApi/model"
)

// CreateTempDB opens a throwaway sqlite database with the full schema
// migrated. The file lives in t.TempDir() and is removed with it.
func CreateTempDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", filepath.Join(t.TempDir(), "tweets.db"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open temp db: %s", err)
	}
	if err := model.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate temp db: %s", err)
	}
	return db
}
