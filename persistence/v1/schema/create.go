package schema

import (
	"context"
	"database/sql"
	"errors"
)

func Create(ctx context.Context, db *sql.DB, dialect string) error {
	stmt, err := statement(schemas, dialect)
	if err != nil {
		return errors.New("create schema: " + err.Error())
	}

	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return errors.New("create schema: " + err.Error())
	}

	return nil
}
