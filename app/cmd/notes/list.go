package notes

import (
	"fmt"

	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/spf13/cobra"
)

func newListCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		Args:  cobra.NoArgs,
		RunE: withService(open, func(cmd *cobra.Command, args []string, svc *note.Service) error {
			limit, _ := cmd.Flags().GetInt("limit")

			notes, err := svc.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list notes: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(notes) == 0 {
				_, _ = fmt.Fprintln(out, "No notes found.")
				return nil
			}

			if limit > 0 && len(notes) > limit {
				notes = notes[:limit]
			}
			for _, n := range notes {
				_, _ = fmt.Fprint(out, ui.FormatNoteListItem(n))
			}
			return nil
		}),
	}
	cmd.Flags().IntP("limit", "n", 0, "number of results, 0 lists everything")
	return cmd
}
