package notes

import (
	"strings"

	"github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/persistence/v1/storage"
	"github.com/spf13/cobra"
)

// Opener opens the configured storage for one command run
type Opener func(cmd *cobra.Command) (*storage.Storage, error)

// NewCommand builds `notes` and every note subcommand
func NewCommand(open Opener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Work with notes directly on the storage",
	}
	cmd.AddCommand(
		newAddCmd(open),
		newListCmd(open),
		newShowCmd(open),
		newEditCmd(open),
		newRmCmd(open),
		newExportCmd(open),
	)
	return cmd
}

// withService runs f with a Service over freshly opened storage, closing it afterwards
func withService(open Opener, f func(cmd *cobra.Command, args []string, svc *note.Service) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		st, err := open(cmd)
		if err != nil {
			return err
		}
		defer func() {
			_ = st.Close()
		}()

		return f(cmd, args, note.NewService(st.Notes))
	}
}

// joinContent turns the words after the command back into one content string
func joinContent(args []string) *string {
	content := strings.Join(args, " ")
	return &content
}
