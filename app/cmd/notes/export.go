package notes

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

type ExportNote struct {
	ID        string    `json:"id" yaml:"id"`
	Content   string    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

type ExportData struct {
	ExportedAt time.Time    `json:"exportedAt" yaml:"exportedAt"`
	Notes      []ExportNote `json:"notes" yaml:"notes"`
}

func newExportCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every note",
		Long:  `Export every note, newest first, as JSON or YAML to stdout or a file.`,
		Args:  cobra.NoArgs,
		RunE: withService(open, func(cmd *cobra.Command, args []string, svc *note.Service) error {
			format, _ := cmd.Flags().GetString("format")
			outputPath, _ := cmd.Flags().GetString("output")

			if format != FormatJSON && format != FormatYAML {
				return fmt.Errorf("unknown format: %s", format)
			}

			notes, err := svc.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}

			if outputPath == "" {
				return Export(cmd.OutOrStdout(), notes, format, time.Now())
			}

			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			if err := Export(f, notes, format, time.Now()); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", len(notes), outputPath)))
			return nil
		}),
	}
	cmd.Flags().String("format", FormatJSON, "export format (json, yaml)")
	cmd.Flags().StringP("output", "o", "", "output file, stdout when empty")
	return cmd
}

// Export writes notes to w in the given format
func Export(w io.Writer, notes []note.Note, format string, exportedAt time.Time) error {
	data := ExportData{
		ExportedAt: exportedAt.UTC(),
		Notes:      make([]ExportNote, 0, len(notes)),
	}
	for _, n := range notes {
		data.Notes = append(data.Notes, ExportNote(n))
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
	return nil
}
