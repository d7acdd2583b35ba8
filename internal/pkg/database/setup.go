package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/lucasfabbrim/noteplanning-backend-sub000/app/models"
	"github.com/lucasfabbrim/noteplanning-backend-sub000/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

// Setup opens the MySQL connection and migrates the schema. The returned
// handle is constructed once in main and injected everywhere it is used.
func Setup() (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	var db *gorm.DB
	var err error
	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), &gorm.Config{
			// Needed so a concurrent duplicate insert surfaces as
			// gorm.ErrDuplicatedKey instead of a raw driver error.
			TranslateError: true,
		})
		if err == nil {
			if err := db.AutoMigrate(
				&models.Member{},
				&models.Purchase{},
			); err != nil {
				return nil, err
			}
			return db, nil
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	return nil, err
}
