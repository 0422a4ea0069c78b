package app

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// createSQLDB opens the Postgres connection from SQL_DB_ADDRESS. TranslateError
// turns driver-level unique violations into gorm.ErrDuplicatedKey, which the
// domain operations rely on as the authoritative uniqueness signal.
func createSQLDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(os.Getenv("SQL_DB_ADDRESS")), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	return db, nil
}
