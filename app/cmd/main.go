package main

import (
	"fmt"
	"os"

	"github.com/ribgsilva/notesvault/app/cmd/notes"
	"github.com/ribgsilva/notesvault/app/cmd/schema"
	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/persistence/v1/storage"
	"github.com/ribgsilva/notesvault/platform/logger"
	"github.com/ribgsilva/notesvault/sys"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:           "notesvault",
	Short:         "Admin tool for the notes storage",
	Long:          `Manage the notes schema and notes straight on the storage configured through the DATABASE_* and CACHE_* env vars.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log the configuration and storage details")
	rootCmd.AddCommand(
		schema.NewCommand(openStorage),
		notes.NewCommand(openStorage),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		os.Exit(1)
	}
}

// openStorage loads the storage configs from the environment and opens the configured backend
func openStorage(cmd *cobra.Command) (*storage.Storage, error) {
	log := zap.NewNop().Sugar()
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		l, err := logger.New("Notes-CLI")
		if err != nil {
			return nil, err
		}
		log = l
	}

	var cfg sys.Config
	cfg.LoadDatabase(log)
	cfg.LoadCache(log)

	st, err := storage.Open(log, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not open storage: %w", err)
	}
	return st, nil
}
