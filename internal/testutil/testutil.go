// Package testutil holds helpers shared by CLI and console tests
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/app"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/config"
	contactservice "github.com/thenoetrevino/phonebook/internal/services/contact"
)

var fileNames = map[string]string{
	"":               "phonebook.txt",
	"block":          "phonebook.txt",
	"jsonl":          "phonebook.jsonl",
	"yaml":           "phonebook.yaml",
	app.FormatSQLite: "phonebook.db",
}

// SetupCLITest opens a phone book of the given format in a temp dir.
// The CLI is closed when the test ends.
func SetupCLITest(t *testing.T, format string) *cli.CLI {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.Format = format
	cfg.Storage.Path = filepath.Join(t.TempDir(), fileNames[format])

	c, err := cli.NewCLI(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to create test CLI: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Errorf("Failed to close test CLI: %v", err)
		}
	})
	return c
}

// CreateTestContact stores a contact with the given names and a generated phone
func CreateTestContact(t *testing.T, c *cli.CLI, surname, name, middlename, phone string) int {
	t.Helper()

	contact, err := c.App.ContactService.CreateContact(context.Background(), contactservice.CreateContactRequest{
		Surname:       surname,
		Name:          name,
		Middlename:    middlename,
		PersonalPhone: phone,
	})
	if err != nil {
		t.Fatalf("Failed to create test contact: %v", err)
	}
	return contact.ID
}

// ExecuteCLICommand runs cmd with c injected into its context and returns
// what it wrote to stdout and stderr
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithCLI(context.Background(), c))
	return stdout.String(), stderr.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]interface{} {
	t.Helper()

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
