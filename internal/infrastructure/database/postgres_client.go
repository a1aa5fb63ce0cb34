package database

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectCatalogDB opens the optional catalog database. A non-empty
// CATALOG_DATABASE_DSN switches the catalog repository from the built-in
// defaults to Postgres.
func ConnectCatalogDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Printf("[database][catalog] connect failed err=%v", err)
		return nil, err
	}
	log.Printf("[database][catalog] connected")
	return db, nil
}
