package contact

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
)

// ShowCmd returns the show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show one contact",
		Long: `Show the contact at --index (as shown by list).

Examples:
  phonebook show --index 1
  phonebook show --index 1 --json
`,
		Args: cobra.NoArgs,
		RunE: runShow,
	}

	cmd.Flags().Int("index", 0, "Contact number from list (required)")
	if err := cmd.MarkFlagRequired("index"); err != nil {
		slog.Error("Error marking flag as required", "flag", "index", "error", err)
	}
	addOutputFlags(cmd, false)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	index := indexFlag(cmd)
	contact, err := cliInstance.App.ContactService.Get(index)
	if err != nil {
		return formatter.Fail(err, "Use 'phonebook list' to see contact numbers")
	}

	if formatter.JSON {
		return formatter.JSONSuccess("contact", contactJSON{Index: index + 1, Contact: contact})
	}

	fmt.Fprintln(cmd.OutOrStdout(), styles.RenderCard(contact))
	return nil
}
