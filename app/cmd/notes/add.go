package notes

import (
	"fmt"

	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/spf13/cobra"
)

func newAddCmd(open Opener) *cobra.Command {
	return &cobra.Command{
		Use:   "add <content...>",
		Short: "Add a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: withService(open, func(cmd *cobra.Command, args []string, svc *note.Service) error {
			n, err := svc.Create(cmd.Context(), note.NewNote{Content: joinContent(args)})
			if err != nil {
				return fmt.Errorf("failed to add note: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Added note %s", n.ID)))
			return nil
		}),
	}
}
