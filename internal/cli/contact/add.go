package contact

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

// AddCmd returns the add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new contact",
		Long: `Add a contact to the phone book.

Surname, name, middle name and personal phone are required. Organization and
work phone default to "Не указан". Values must fit on one line; the block
format also rejects values that start or end with a quote or a comma.

Examples:
  phonebook add --surname Иванов --name Иван --middlename Иванович --phone +79990000000

  # Capture the new id
  ID=$(phonebook add --surname Иванов --name Иван --middlename Иванович --phone 123 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runAdd,
	}

	cmd.Flags().String("surname", "", "Surname (required)")
	cmd.Flags().String("name", "", "Name (required)")
	cmd.Flags().String("middlename", "", "Middle name (required)")
	cmd.Flags().String("phone", "", "Personal phone (required)")
	for _, name := range []string{"surname", "name", "middlename", "phone"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("Error marking flag as required", "flag", name, "error", err)
		}
	}

	cmd.Flags().String("org", "", "Organization")
	cmd.Flags().String("work-phone", "", "Work phone")
	addOutputFlags(cmd, true)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	req := contactservice.CreateContactRequest{}
	req.Surname, _ = cmd.Flags().GetString("surname")
	req.Name, _ = cmd.Flags().GetString("name")
	req.Middlename, _ = cmd.Flags().GetString("middlename")
	req.PersonalPhone, _ = cmd.Flags().GetString("phone")
	req.OrgName, _ = cmd.Flags().GetString("org")
	req.PhoneForWork, _ = cmd.Flags().GetString("work-phone")

	contact, err := cliInstance.App.ContactService.CreateContact(ctx, req)
	if err != nil {
		return formatter.Fail(err, "")
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(contact)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, styles.SuccessStyle.Render(fmt.Sprintf("✓ Контакт добавлен (ID: %d)", contact.ID)))
	fmt.Fprintln(out, styles.RenderCard(*contact))
	return nil
}
