package contact

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// EditCmd returns the edit subcommand
func EditCmd() *cobra.Command {
	labels := make([]string, 0, len(models.AllFields))
	for _, f := range models.AllFields {
		if f.Editable() {
			labels = append(labels, f.Label())
		}
	}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change one field of a contact",
		Long: fmt.Sprintf(`Change one field of the contact at --index (as shown by list).

Fields: %s

Examples:
  phonebook edit --index 2 --field "личный телефон" --value +79995554433
  phonebook edit --index 2 --field org_name --value ""
`, strings.Join(labels, ", ")),
		Args: cobra.NoArgs,
		RunE: runEdit,
	}

	cmd.Flags().Int("index", 0, "Contact number from list (required)")
	cmd.Flags().String("field", "", "Field to change (required)")
	cmd.Flags().String("value", "", "New value; empty clears an optional field")
	for _, name := range []string{"index", "field"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}
	addOutputFlags(cmd, false)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	field, _ := cmd.Flags().GetString("field")
	value, _ := cmd.Flags().GetString("value")
	index := indexFlag(cmd)

	contact, err := cliInstance.App.ContactService.UpdateContact(ctx, contactservice.UpdateContactRequest{
		Index: index,
		Field: field,
		Value: value,
	})
	if err != nil {
		return formatter.Fail(err, editSuggestion(err))
	}

	if formatter.JSON {
		return formatter.JSONSuccess("contact", contactJSON{Index: index + 1, Contact: *contact})
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.EditStyle.Render("✓ Контакт обновлён"))
	fmt.Fprintln(out, styles.RenderCard(*contact))
	return nil
}

func editSuggestion(err error) string {
	switch cli.ErrorCode(err) {
	case "UNKNOWN_FIELD":
		return "Fields: фамилия, имя, отчество, организация, рабочий телефон, личный телефон"
	case "CONTACT_NOT_FOUND":
		return "Use 'phonebook list' to see contact numbers"
	}
	return ""
}
