package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/cli/contact"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
	"github.com/thenoetrevino/phonebook/internal/config"
	"github.com/thenoetrevino/phonebook/internal/console"
	"github.com/thenoetrevino/phonebook/internal/logging"
)

type rootOptions struct {
	file     string
	format   string
	logLevel string

	// started is set once flag and argument validation passed
	started bool
	opened  *cli.CLI
}

// NewRootCmd builds the phonebook command tree
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonebook",
		Short: "Phonebook - a contact book kept in a plain file",
		Long: `Phonebook keeps your contacts in a plain text file.

Run without a subcommand for the interactive menu, or use the subcommands
below from scripts.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.prepare(cmd)
		},
		RunE: runConsole,
	}

	rootCmd.PersistentFlags().StringVar(&opts.file, "file", "", "Phone book file (env "+config.EnvFile+")")
	rootCmd.PersistentFlags().StringVar(&opts.format, "format", "", "Storage format: block, jsonl, yaml or sqlite (env "+config.EnvFormat+")")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(contact.Commands()...)
	return rootCmd
}

// prepare loads config, sets up logging and styles and opens the phone book
// unless a CLI was already placed in the context. Failures are printed here
// so every *cli.ExitCodeError reaching Run has been reported.
func (o *rootOptions) prepare(cmd *cobra.Command) error {
	o.started = true
	ctx := cmd.Context()

	fail := func(code int, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return &cli.ExitCodeError{Code: code, Err: err}
	}

	cfg, err := config.Load()
	if err != nil {
		return fail(cli.ExitError, fmt.Errorf("failed to load config: %w", err))
	}
	cfg.Override(o.file, o.format, o.logLevel)

	if _, err := logging.ParseLevel(cfg.LogLevel); err != nil {
		return fail(cli.ExitUsage, err)
	}
	dataDir, err := config.DataDir()
	if err == nil {
		err = logging.Init(dataDir, cfg.LogLevel)
	}
	if err != nil {
		logging.Discard()
	}

	styles.Init(cfg.ColorScheme)

	if _, err := cli.GetCLIFromContext(ctx); err == nil {
		return nil
	}

	c, err := cli.NewCLI(ctx, cfg)
	if err != nil {
		return fail(cli.ExitCodeFor(err), err)
	}
	o.opened = c
	cmd.SetContext(cli.WithCLI(ctx, c))

	slog.Debug("command started", "command", cmd.Name(), "path", cfg.Storage.Path, "format", cfg.Storage.Format)
	return nil
}

func (o *rootOptions) close() {
	if o.opened == nil {
		return
	}
	if err := o.opened.Close(); err != nil {
		slog.Error("Error closing CLI", "error", err)
	}
	o.opened = nil
}

func runConsole(cmd *cobra.Command, args []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return err
	}

	cfg := c.Config
	prompter := console.NewHuhPrompter(console.NewTheme(cfg.ColorScheme), cmd.InOrStdin(), cmd.OutOrStdout())
	renderer := console.NewTerminalRenderer(cmd.OutOrStdout(), styles.CardWidth+20)

	return console.New(c.App.ContactService, prompter, renderer, cfg.PageSize).Run(cmd.Context())
}

// Run executes the command line in args. Errors are reported on errOut
// before being returned; usage errors come back as *cli.ExitCodeError.
func Run(ctx context.Context, args []string, out, errOut io.Writer) error {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	opts.close()

	var exitErr *cli.ExitCodeError
	switch {
	case err == nil:
		return nil
	case !opts.started:
		fmt.Fprintf(errOut, "Error: %v\nRun 'phonebook --help' for usage.\n", err)
		return &cli.ExitCodeError{Code: cli.ExitUsage, Err: err}
	case !errors.As(err, &exitErr):
		fmt.Fprintf(errOut, "Error: %v\n", err)
	}
	return err
}

// Execute runs the root command with the process arguments
func Execute(ctx context.Context) error {
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
