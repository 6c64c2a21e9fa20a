package component

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/input"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
)

type StatusBarModel struct {
	viewState   model.ViewState
	statusMsg   string
	statusError bool
	slider      command.SliderState
	version     string
}

func NewStatusBarModel(version string) StatusBarModel {
	return StatusBarModel{version: version}
}

func (m StatusBarModel) Init() tea.Cmd {
	return nil
}

func (m StatusBarModel) Update(msg tea.Msg) (StatusBarModel, tea.Cmd) {
	switch msg := msg.(type) {
	case command.SliderState:
		m.slider = msg
	case command.StatusMsg:
		m.statusMsg = msg.Message
		m.statusError = msg.Err

		return m, command.ClearErrorAfter(command.ClearMessageTimeout)
	case command.ClearStatusMessageMsg:
		m.statusError = false
		m.statusMsg = ""
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m StatusBarModel) View() string {
	args := []string{
		styles.StatusVersion.Render(m.version),
		styles.StatusHelp.Render(fmt.Sprintf("%s %s", input.Default.Help.Help().Key, input.Default.Help.Help().Desc)),
	}

	if m.slider.ID != "" {
		args = append(args,
			styles.StatusSlider.Render(m.slider.Label),
			styles.StatusValue.Render(m.value()),
			styles.StatusState.Render(m.flags()))
	}

	args = append(args, m.status())

	return lipgloss.NewStyle().Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, args...))
}

func (m StatusBarModel) value() string {
	value := humanize.Comma(int64(m.slider.Value))
	if m.slider.Previous == m.slider.Value {
		return fmt.Sprintf("%s [%s..%s]", value,
			humanize.Comma(int64(m.slider.Minimum)), humanize.Comma(int64(m.slider.Maximum)))
	}

	return fmt.Sprintf("%s → %s", humanize.Comma(int64(m.slider.Previous)), value)
}

func (m StatusBarModel) flags() string {
	flags := m.slider.State + " " + m.slider.Orientation
	if !m.slider.Enabled {
		flags += " disabled"
	}

	if m.slider.PageStepMode {
		flags += " page"
	} else {
		flags += " jump"
	}

	if m.slider.Tracking {
		flags += " tracking"
	}

	if m.slider.Inverted {
		flags += " inverted"
	}

	return flags
}

func (m StatusBarModel) status() string {
	if m.statusMsg == "" {
		return ""
	}

	if m.statusError {
		return styles.StatusError.Render(m.statusMsg)
	}

	return styles.StatusMessage.Render(m.statusMsg)
}
