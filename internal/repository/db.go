package repository

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/nickgalis/restful-task-manager/internal/model"
)

// NewDB opens a SQLite database, enables foreign keys and runs migrations.
// TranslateError lets callers detect unique-index violations via
// gorm.ErrDuplicatedKey.
func NewDB(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = "task_manager.db"
	}

	if err := ensureDirForSQLite(dsn); err != nil {
		return nil, err
	}

	// The pragma is per-connection, so it has to ride on the DSN to
	// cover every pooled connection.
	if !strings.Contains(dsn, "_foreign_keys") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_foreign_keys=on"
	}

	dbLogger := logger.New(
		log.New(os.Stdout, "", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         dbLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&model.User{}, &model.Category{}, &model.Task{}); err != nil {
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	return db, nil
}

// ensureDirForSQLite creates the parent dir for the SQLite file if needed.
func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
