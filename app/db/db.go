package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens (or creates) the SQLite database at path with foreign keys
// enabled so junction rows cascade with their parents.
func Connect(path string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s?_foreign_keys=on", path)
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}
