// Package contact implements the non-interactive phone book subcommands
package contact

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/models"
)

// Commands returns every contact subcommand, ready to attach to the root
func Commands() []*cobra.Command {
	return []*cobra.Command{
		ListCmd(),
		AddCmd(),
		EditCmd(),
		SearchCmd(),
		ShowCmd(),
	}
}

// contactJSON is a contact with the 1-based position edit and show expect
type contactJSON struct {
	Index int `json:"index"`
	models.Contact
}

func addOutputFlags(cmd *cobra.Command, quiet bool) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	if quiet {
		cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
	}
}

// setup returns the CLI from the command context and a formatter matching
// the --json and --quiet flags
func setup(cmd *cobra.Command) (*cli.CLI, *cli.OutputFormatter, error) {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error formatting error message: %v\n", fmtErr)
		}
		return nil, nil, &cli.ExitCodeError{Code: cli.ExitError, Err: err}
	}
	return cliInstance, formatter, nil
}

// indexFlag reads the 1-based --index flag and converts it to a cache index
func indexFlag(cmd *cobra.Command) int {
	index, _ := cmd.Flags().GetInt("index")
	return index - 1
}
