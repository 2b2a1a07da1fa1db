package schema

import (
	"context"
	"database/sql"
	"errors"
)

func Drop(ctx context.Context, db *sql.DB, dialect string) error {
	stmt, err := statement(dropSchemas, dialect)
	if err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	if _, err := db.ExecContext(ctx, stmt); err != nil {
		return errors.New("drop schema: " + err.Error())
	}

	return nil
}
