package infra

import (
	"fmt"

	"github.com/Cdo9608/sistema-consumibles/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the embedded SQLite store and runs AutoMigrate for both
// ledger tables. The driver is pure Go, so the binary stays CGO-free and can
// run on ephemeral hosts where the store file may vanish between deploys —
// recovery from that is the snapshot restore path, not the database layer.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	// Single-session host model: one writer at a time, no pool tuning needed,
	// but SQLite still wants a single open connection to avoid SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Entrada{}, &model.Salida{}); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}
