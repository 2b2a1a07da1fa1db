package schema

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/persistence/v1/schema"
	"github.com/ribgsilva/notesvault/persistence/v1/storage"
	"github.com/spf13/cobra"
)

// ErrNoSQL is returned when the configured driver keeps no sql schema
var ErrNoSQL = errors.New("schema commands need a sql database driver")

// Opener opens the configured storage for one command run
type Opener func(cmd *cobra.Command) (*storage.Storage, error)

// NewCommand builds `schema` with its create and drop subcommands
func NewCommand(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the notes table",
	}
	cmd.AddCommand(
		newSchemaCmd(open, "create", "Creates the schema", "created schema", schema.Create),
		newSchemaCmd(open, "drop", "Drops the schema", "dropped schema", schema.Drop),
	)
	return cmd
}

func newSchemaCmd(open Opener, use, short, done string, apply func(ctx context.Context, db *sql.DB, dialect string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := open(cmd)
			if err != nil {
				return err
			}
			defer func() {
				_ = st.Close()
			}()

			if st.DB == nil {
				return ErrNoSQL
			}

			if err := apply(cmd.Context(), st.DB, st.Dialect); err != nil {
				return fmt.Errorf("%s: %w", use, err)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Success(done))
			return nil
		},
	}
}
