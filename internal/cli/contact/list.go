package contact

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/repository"
)

// ListCmd returns the list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts page by page",
		Long: `List every contact, split into pages.

Examples:
  # All pages, 10 contacts each
  phonebook list

  # Only the second page of 5
  phonebook list --page-size 5 --page 2

  # JSON output for scripts
  phonebook list --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().Int("page-size", 0, "Contacts per page (defaults to page_size from config)")
	cmd.Flags().Int("page", 0, "Show only this page (1-based)")
	addOutputFlags(cmd, true)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cliInstance, formatter, err := setup(cmd)
	if err != nil {
		return err
	}

	pageSize := cliInstance.Config.PageSize
	if cmd.Flags().Changed("page-size") {
		pageSize, _ = cmd.Flags().GetInt("page-size")
	}
	onlyPage, _ := cmd.Flags().GetInt("page")

	pages, err := collectPages(cliInstance, pageSize, onlyPage)
	if err != nil {
		return formatter.Fail(err, "Use 'phonebook list' without --page to see how many pages there are")
	}

	var entries []repository.Entry
	for _, p := range pages {
		entries = append(entries, p.Contacts...)
	}

	if formatter.Quiet {
		for _, e := range entries {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\n", e.Contact.ID)
		}
		return nil
	}

	if formatter.JSON {
		items := make([]contactJSON, 0, len(entries))
		for _, e := range entries {
			items = append(items, contactJSON{Index: e.Index + 1, Contact: e.Contact})
		}
		totalPages := 0
		if len(pages) > 0 {
			totalPages = pages[0].TotalPages
		}
		return formatter.JSONSuccess("contacts", map[string]interface{}{
			"items":       items,
			"count":       cliInstance.App.ContactService.Count(),
			"total_pages": totalPages,
		})
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, styles.WarningStyle.Render("Справочник пуст"))
		return nil
	}

	for _, p := range pages {
		fmt.Fprintln(out, styles.RenderContactTable(p.Contacts, styles.TableOptions{
			Title:     "Ваши контакты",
			ShowIndex: true,
		}))
		fmt.Fprintln(out, styles.RenderPageFooter(p))
	}
	return nil
}

// collectPages walks a fresh cursor across the book. A positive onlyPage
// keeps just that page.
func collectPages(c *cli.CLI, pageSize, onlyPage int) ([]repository.Page, error) {
	cursor := repository.NewCursor()
	var pages []repository.Page

	for {
		page, err := c.App.ContactService.ListPage(cursor, pageSize)
		if err != nil {
			return nil, err
		}
		if len(page.Contacts) > 0 && (onlyPage <= 0 || page.Number == onlyPage) {
			pages = append(pages, page)
		}
		if !page.HasMore || (onlyPage > 0 && page.Number >= onlyPage) {
			if onlyPage > 0 && len(pages) == 0 {
				return nil, fmt.Errorf("%w: page %d of %d", models.ErrIndexOutOfRange, onlyPage, page.TotalPages)
			}
			return pages, nil
		}
	}
}
