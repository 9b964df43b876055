package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/maisonbelle/salon-api/internal/config"
	"github.com/maisonbelle/salon-api/internal/models"
)

// Open connects and migrates. A missing or unreachable database returns
// nil instead of aborting so the API can come up degraded: reads serve
// empty results, writes report unavailable.
func Open(cfg *config.Config) *gorm.DB {
	if cfg.DBUrl == "" {
		log.Println("DATABASE_URL not set, running without a database")
		return nil
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Printf("failed to connect database: %v", err)
		return nil
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("failed to get sql.DB: %v", err)
		return nil
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Printf("failed to migrate: %v", err)
		return nil
	}

	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.BlogPost{},
		&models.FormSubmission{},
		&models.PageView{},
		&models.AuditLog{},
	)
}
