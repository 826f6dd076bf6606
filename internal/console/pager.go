package console

import (
	"io"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/phonebook/internal/cli/styles"
)

type pagerKeyMap struct {
	Stop key.Binding
}

func defaultPagerKeyMap() pagerKeyMap {
	return pagerKeyMap{
		Stop: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "в меню"),
		),
	}
}

// pagerModel shows a message and finishes on the first key press
type pagerModel struct {
	message string
	keys    pagerKeyMap
	stopped bool
	done    bool
}

func newPagerModel(message string) pagerModel {
	return pagerModel{message: message, keys: defaultPagerKeyMap()}
}

func (m pagerModel) Init() tea.Cmd {
	return nil
}

func (m pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	m.stopped = key.Matches(keyMsg, m.keys.Stop)
	m.done = true
	return m, tea.Quit
}

func (m pagerModel) View() tea.View {
	var v tea.View
	if m.done {
		return v
	}
	help := m.keys.Stop.Help()
	v.Content = styles.InfoStyle.Render(m.message) + "  " +
		styles.SubtitleStyle.Render(help.Key+" "+help.Desc) + "\n"
	return v
}

// runPager blocks until a key is pressed and reports whether to continue
func runPager(message string, input io.Reader, output io.Writer) (bool, error) {
	var opts []tea.ProgramOption
	if input != nil {
		opts = append(opts, tea.WithInput(input))
	}
	if output != nil {
		opts = append(opts, tea.WithOutput(output))
	}

	final, err := tea.NewProgram(newPagerModel(message), opts...).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(pagerModel)
	if !ok {
		return true, nil
	}
	return !m.stopped, nil
}
