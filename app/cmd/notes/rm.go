package notes

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/ribgsilva/notesvault/app/cmd/ui"
	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/spf13/cobra"
)

func newRmCmd(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a note",
		Long:  `Delete a note. Asks for confirmation unless --force is given.`,
		Args:  cobra.ExactArgs(1),
		RunE: withService(open, func(cmd *cobra.Command, args []string, svc *note.Service) error {
			id := args[0]
			force, _ := cmd.Flags().GetBool("force")
			out := cmd.OutOrStdout()

			if !force {
				n, err := svc.Find(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("failed to get note: %w", err)
				}

				_, _ = fmt.Fprintf(out, "Delete note %s %q? [y/N] ", n.ID, firstLine(n.Content))
				reader := bufio.NewReader(cmd.InOrStdin())
				response, _ := reader.ReadString('\n')
				response = strings.TrimSpace(strings.ToLower(response))
				if response != "y" && response != "yes" {
					_, _ = fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			if err := svc.Delete(cmd.Context(), id); err != nil {
				return fmt.Errorf("failed to delete note: %w", err)
			}

			_, _ = fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted note %s", id)))
			return nil
		}),
	}
	cmd.Flags().BoolP("force", "f", false, "skip confirmation")
	return cmd
}

func firstLine(content string) string {
	if i := strings.IndexByte(content, '\n'); i >= 0 {
		return content[:i]
	}
	return content
}
