package notes

import (
	"fmt"

	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/spf13/cobra"
)

func newEditCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <content...>",
		Short: "Replace the content of a note",
		Args:  cobra.MinimumNArgs(2),
		RunE: withService(open, func(cmd *cobra.Command, args []string, svc *note.Service) error {
			n, err := svc.Update(cmd.Context(), args[0], note.UpdateNote{Content: joinContent(args[1:])})
			if err != nil {
				return fmt.Errorf("failed to edit note: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Updated note %s", n.ID)))
			return nil
		}),
	}
}
