package contact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/phonebook/internal/cli"
	"github.com/thenoetrevino/phonebook/internal/models"
	"github.com/thenoetrevino/phonebook/internal/testutil"
)

func TestAddContact_Positive(t *testing.T) {
	for _, format := range []string{"block", "jsonl", "yaml", "sqlite"} {
		t.Run(format, func(t *testing.T) {
			c := testutil.SetupCLITest(t, format)

			out, _, err := testutil.ExecuteCLICommand(t, c, AddCmd(), []string{
				"--surname", "Иванов",
				"--name", "Иван",
				"--middlename", "Иванович",
				"--phone", "+79990000000",
				"--org", "ООО Ромашка",
			})

			require.NoError(t, err)
			assert.Contains(t, out, "Контакт добавлен (ID: 0)")
			assert.Contains(t, out, "ООО Ромашка")

			stored, err := c.App.ContactService.Get(0)
			require.NoError(t, err)
			assert.Equal(t, "Иванов", stored.Surname)
			assert.Equal(t, models.NotSpecified, stored.PhoneForWork)
		})
	}
}

func TestAddContact_QuietAndJSON(t *testing.T) {
	c := testutil.SetupCLITest(t, "block")
	testutil.CreateTestContact(t, c, "Петров", "Пётр", "Петрович", "1")

	args := []string{"--surname", "Иванов", "--name", "Иван", "--middlename", "Иванович", "--phone", "2"}

	out, _, err := testutil.ExecuteCLICommand(t, c, AddCmd(), append(args, "--quiet"))
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))

	out, _, err = testutil.ExecuteCLICommand(t, c, AddCmd(), append(args, "--json"))
	require.NoError(t, err)
	result := testutil.ParseJSON(t, out)
	data := result["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["id"])
	assert.Equal(t, "Не указан", data["org_name"])
	assert.Equal(t, 3, c.App.ContactService.Count())
}

func TestAddContact_Negative(t *testing.T) {
	c := testutil.SetupCLITest(t, "block")

	t.Run("Blank required field", func(t *testing.T) {
		_, stderr, err := testutil.ExecuteCLICommand(t, c, AddCmd(), []string{
			"--surname", "  ",
			"--name", "Иван",
			"--middlename", "Иванович",
			"--phone", "1",
		})

		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
		assert.Contains(t, stderr, "фамилия")
		assert.Equal(t, 0, c.App.ContactService.Count())
	})

	t.Run("Line break in value", func(t *testing.T) {
		_, stderr, err := testutil.ExecuteCLICommand(t, c, AddCmd(), []string{
			"--surname", "Пет\nров",
			"--name", "Иван",
			"--middlename", "Иванович",
			"--phone", "1",
		})

		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
		assert.Contains(t, stderr, models.ReasonLineBreak)
		assert.Equal(t, 0, c.App.ContactService.Count())

		out, _, err := testutil.ExecuteCLICommand(t, c, ListCmd(), []string{"--json"})
		require.NoError(t, err, "the book must stay readable")
		contacts := testutil.ParseJSON(t, out)["contacts"].(map[string]interface{})
		assert.Equal(t, float64(0), contacts["count"])
	})

	t.Run("Trailing comma in value", func(t *testing.T) {
		_, _, err := testutil.ExecuteCLICommand(t, c, AddCmd(), []string{
			"--surname", "Петров",
			"--name", "Иван",
			"--middlename", "Иванович",
			"--phone", "1",
			"--org", "ACME,",
		})

		require.Error(t, err)
		assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))
		assert.Equal(t, 0, c.App.ContactService.Count())
	})

	t.Run("Missing required flag", func(t *testing.T) {
		_, _, err := testutil.ExecuteCLICommand(t, c, AddCmd(), []string{"--surname", "Иванов"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "required flag")
	})
}
