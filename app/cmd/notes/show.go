package notes

import (
	"fmt"

	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/spf13/cobra"
)

func newShowCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Args:  cobra.ExactArgs(1),
		RunE: withService(open, func(cmd *cobra.Command, args []string, svc *note.Service) error {
			n, err := svc.Find(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("failed to get note: %w", err)
			}

			_, _ = fmt.Fprint(cmd.OutOrStdout(), ui.FormatNote(n))
			return nil
		}),
	}
}
