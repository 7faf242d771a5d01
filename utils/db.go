package utils

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DanteA11/TweetsApi/config"
)

// GetDBConnection opens the database named by the config: postgres when
// DATABASE_URL is set, a local sqlite file otherwise. TranslateError is on
// so constraint failures surface as gorm.ErrDuplicatedKey and
// gorm.ErrForeignKeyViolated regardless of driver.
func GetDBConnection(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	}
	// Foreign keys are off by default in sqlite.
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on", cfg.SqlitePath)
	return gorm.Open(sqlite.Open(dsn), gormCfg)
}
