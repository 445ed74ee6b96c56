package db

import (
	"log"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/studioarcadia/prenota/internal/config"
	"github.com/studioarcadia/prenota/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	// SQLite: a single long-lived connection serializes writes.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Booking{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// Rows written before the status column existed count as booked.
	db.Exec(`
        UPDATE bookings
        SET status = 'booked'
        WHERE status IS NULL OR status = ''
    `)

	// At most one booked row per (data, ora). Canceled rows must not block
	// the slot, hence the partial index.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot_booked
        ON bookings(data, ora)
        WHERE status = 'booked'
    `)

	return db
}
