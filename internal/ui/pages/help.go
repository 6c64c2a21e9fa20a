package pages

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/input"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
	"github.com/muesli/reflow/wordwrap"
)

const (
	helpTextWidth = 72
	helpText      = "Drag a thumb with the left mouse button. Clicking the track steps one page towards the " +
		"pointer and keeps stepping while the button is held, unless page step mode is off, then the thumb " +
		"jumps to the pointer. The wheel moves one single step. Values are committed on release unless " +
		"tracking is on."
)

func NewHelp(buildVersion, buildDate, buildCommit string, configPath string, databasePath string) Help {
	return Help{
		helpView:     help.New(),
		configPath:   configPath,
		databasePath: databasePath,
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

type Help struct {
	helpView     help.Model
	viewState    model.ViewState
	configPath   string
	databasePath string
	buildVersion string
	buildDate    string
	buildCommit  string
}

func (m Help) Init() tea.Cmd {
	return nil
}

func (m Help) Update(msg tea.Msg) (Help, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch { //nolint:gocritic
		case key.Matches(msg, input.Default.Back):
			// go back to main view
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain

				return m, command.SetViewState(m.viewState)
			}
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m Help) View() string {
	columns := make([]string, 0, 3)
	for _, group := range input.Default.FullHelp() {
		columns = append(columns, styles.HelpBox.Render(m.helpView.FullHelpView([][]key.Binding{group})))
	}

	helpContent := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	commit := m.buildCommit
	//goland:noinspection GoBoolExpressions
	if len(commit) > 8 {
		commit = m.buildCommit[0:8]
	}

	content := lipgloss.JoinVertical(lipgloss.Center, helpContent,
		styles.HelpBox.Render(wordwrap.String(helpText, helpTextWidth)),
		styles.DetailRow("Version", m.buildVersion),
		styles.DetailRow("Commit", commit),
		styles.DetailRow("Date", m.buildDate),
		styles.DetailRow("Config Path", m.configPath),
		styles.DetailRow("Database Path", m.databasePath),
	)

	return lipgloss.Place(lipgloss.Width(content), lipgloss.Height(content),
		lipgloss.Center, lipgloss.Center, content)
}
