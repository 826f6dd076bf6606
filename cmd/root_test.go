package cmd

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/config"
)

func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvFile, "")
	t.Setenv(config.EnvFormat, "")
	t.Setenv(config.EnvThemeFile, "")
	return filepath.Join(t.TempDir(), "book.txt")
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestRun_AddThenList(t *testing.T) {
	file := isolate(t)

	for _, format := range []string{"block", "jsonl", "yaml", "sqlite"} {
		t.Run(format, func(t *testing.T) {
			path := file + "." + format

			out, _, err := execute(t, "--file", path, "--format", format,
				"add", "--surname", "Иванов", "--name", "Иван", "--middlename", "Иванович", "--phone", "+7999", "--quiet")
			require.NoError(t, err)
			assert.Equal(t, "0", strings.TrimSpace(out))

			out, _, err = execute(t, "--file", path, "--format", format, "list", "--quiet")
			require.NoError(t, err)
			assert.Equal(t, "0", strings.TrimSpace(out))
		})
	}
}

func TestRun_EnvSelectsFile(t *testing.T) {
	file := isolate(t)
	t.Setenv(config.EnvFile, file)

	_, _, err := execute(t, "add", "--surname", "Петров", "--name", "Пётр", "--middlename", "Петрович", "--phone", "1")
	require.NoError(t, err)

	out, _, err := execute(t, "search", "петров", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"surname":"Петров"`)
}

func TestRun_ExitCodes(t *testing.T) {
	file := isolate(t)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"unknown command", []string{"frobnicate"}, cli.ExitUsage},
		{"unknown flag", []string{"list", "--nope"}, cli.ExitUsage},
		{"missing required flag", []string{"--file", file, "edit", "--field", "имя"}, cli.ExitUsage},
		{"bad log level", []string{"--file", file, "--log-level", "loud", "list"}, cli.ExitUsage},
		{"unknown format", []string{"--file", file, "--format", "xml", "list"}, cli.ExitError},
		{"not found", []string{"--file", file, "show", "--index", "3"}, cli.ExitNotFound},
		{"validation", []string{"--file", file, "list", "--page-size", "-2"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := execute(t, tt.args...)

			require.Error(t, err)
			assert.Equal(t, tt.want, cli.ExitCodeFor(err))
			assert.Contains(t, stderr, "Error")
		})
	}
}

func TestRun_MalformedFileIsDataError(t *testing.T) {
	file := isolate(t)
	require.NoError(t, writeFile(file, "{\n    garbage line\n}\n"))

	_, stderr, err := execute(t, "--file", file, "list")

	require.Error(t, err)
	assert.Equal(t, cli.ExitDataErr, cli.ExitCodeFor(err))
	assert.Contains(t, stderr, "missing colon")
}

func TestRun_Help(t *testing.T) {
	isolate(t)

	out, _, err := execute(t, "--help")

	require.NoError(t, err)
	for _, sub := range []string{"list", "add", "edit", "search", "show"} {
		assert.Contains(t, out, sub)
	}
}
