package contact

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
)

// SearchCmd returns the search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [QUERY]",
		Short: "Find contacts containing text",
		Long: `Find contacts with any field containing QUERY, ignoring case.
An empty query lists every contact.

Examples:
  phonebook search иван
  phonebook search 999 --quiet
`,
		Args: cobra.ArbitraryArgs,
		RunE: runSearch,
	}

	addOutputFlags(cmd, true)
	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	found := cliInstance.App.ContactService.Search(query)

	if formatter.Quiet {
		for _, e := range found {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", e.Contact.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]contactJSON, 0, len(found))
		for _, e := range found {
			items = append(items, contactJSON{Index: e.Index + 1, Contact: e.Contact})
		}
		return formatter.JSONSuccess("contacts", items)
	}

	out := cmd.OutOrStdout()
	if len(found) == 0 {
		fmt.Fprintln(out, styles.WarningStyle.Render("Контактов с таким содержимым не было найдено"))
		return nil
	}
	fmt.Fprintln(out, styles.RenderContactTable(found, styles.TableOptions{
		Title:     "Найденные контакты",
		ShowIndex: true,
		ShowID:    true,
	}))
	return nil
}
