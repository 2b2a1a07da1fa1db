package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Open opens a sql pool and makes sure the database answers within pingTimeout
func Open(driver, connectionURL string, pingTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open(driver, connectionURL)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(context.Background(), pingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return db, nil
}
