package contact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

func TestEditContact_Positive(t *testing.T) {
	c := testutil.SetupCLITest(t, "block")
	seedFive(t, c)

	t.Run("Edit by label", func(t *testing.T) {
		out, _, err := testutil.ExecuteCLICommand(t, c, EditCmd(), []string{
			"--index", "2",
			"--field", "Личный телефон",
			"--value", "+79995554433",
		})

		require.NoError(t, err)
		assert.Contains(t, out, "Контакт обновлён")
		assert.Contains(t, out, "+79995554433")

		stored, err := c.App.ContactService.Get(1)
		require.NoError(t, err)
		assert.Equal(t, "+79995554433", stored.PersonalPhone)
		assert.Equal(t, 1, stored.ID)
	})

	t.Run("Clearing optional field sets placeholder", func(t *testing.T) {
		_, _, err := testutil.ExecuteCLICommand(t, c, EditCmd(), []string{
			"--index", "1", "--field", "org_name", "--value", "", "--json",
		})
		require.NoError(t, err)

		stored, err := c.App.ContactService.Get(0)
		require.NoError(t, err)
		assert.Equal(t, models.NotSpecified, stored.OrgName)
	})

	t.Run("JSON output", func(t *testing.T) {
		out, _, err := testutil.ExecuteCLICommand(t, c, EditCmd(), []string{
			"--index", "3", "--field", "организация", "--value", "НИИ", "--json",
		})
		require.NoError(t, err)

		result := testutil.ParseJSON(t, out)
		contact := result["contact"].(map[string]interface{})
		assert.Equal(t, float64(3), contact["index"])
		assert.Equal(t, "НИИ", contact["org_name"])
		assert.Equal(t, "Сидоров", contact["surname"])
	})
}

func TestEditContact_Negative(t *testing.T) {
	c := testutil.SetupCLITest(t, "block")
	seedFive(t, c)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"unknown field", []string{"--index", "1", "--field", "адрес", "--value", "x"}, cli.ExitValidation},
		{"id is read-only", []string{"--index", "1", "--field", "id", "--value", "9"}, cli.ExitValidation},
		{"index out of range", []string{"--index", "6", "--field", "имя", "--value", "x"}, cli.ExitNotFound},
		{"index zero", []string{"--index", "0", "--field", "имя", "--value", "x"}, cli.ExitNotFound},
		{"blank required field", []string{"--index", "1", "--field", "имя", "--value", " "}, cli.ExitValidation},
		{"line break in value", []string{"--index", "1", "--field", "имя", "--value", "Ив\nан"}, cli.ExitValidation},
		{"leading quote in value", []string{"--index", "1", "--field", "организация", "--value", `"ACME`}, cli.ExitValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := testutil.ExecuteCLICommand(t, c, EditCmd(), tt.args)

			require.Error(t, err)
			assert.Equal(t, tt.wantCode, cli.ExitCodeFor(err))
		})
	}

	stored, err := c.App.ContactService.Get(0)
	require.NoError(t, err)
	assert.Equal(t, "Иван", stored.Name)
	assert.Equal(t, 0, stored.ID)

	require.NoError(t, c.App.Repo().Reload(context.Background()), "the book must stay readable")
}
