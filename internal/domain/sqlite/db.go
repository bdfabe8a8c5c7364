package sqlite

import (
	"os"
	"time"

	"payboard/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Init opens the database and migrates the schema. The pool is capped at
// 10 connections; each request borrows one for its query sequence.
func Init() (*gorm.DB, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "payboard.db"
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Employee{},
		&entity.Organization{},
		&entity.PayrollEntry{},
		&entity.State{},
		&entity.Municipality{},
		&entity.User{},
		&entity.Board{},
		&entity.Column{},
		&entity.Card{},
		&entity.Comment{},
		&entity.Attachment{},
	)
}
