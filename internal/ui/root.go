package ui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/slidertui/internal/config"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/component"
	"github.com/leighmacdonald/slidertui/internal/ui/input"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
	"github.com/leighmacdonald/slidertui/internal/ui/pages"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

// rootModel is the top level model for the ui side of the app.
type rootModel struct {
	ctx         context.Context //nolint:containedctx
	viewState   model.ViewState
	config      config.Config
	loader      ConfigWriter
	recorder    StateRecorder
	mainPage    pages.Main
	helpPage    pages.Help
	statusModel component.StatusBarModel
}

func newRootModel(ctx context.Context, userConfig config.Config, restored map[string]pages.Restored,
	buildVersion string, buildDate string, buildCommit string, loader ConfigWriter, recorder StateRecorder,
) rootModel {
	return rootModel{
		ctx:         ctx,
		config:      userConfig,
		loader:      loader,
		recorder:    recorder,
		mainPage:    pages.NewMain(userConfig).Restore(restored),
		helpPage:    pages.NewHelp(buildVersion, buildDate, buildCommit, loader.Path(), userConfig.DatabaseFile()),
		statusModel: component.NewStatusBarModel(buildVersion),
	}
}

func (m rootModel) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("slidertui"),
		m.mainPage.Init(),
		m.helpPage.Init(),
		m.statusModel.Init(),
	)
}

func (m rootModel) Update(inMsg tea.Msg) (tea.Model, tea.Cmd) {
	logMsg(inMsg)

	switch msg := inMsg.(type) {
	case tea.WindowSizeMsg:
		m.viewState.Height = msg.Height
		m.viewState.Width = msg.Width

		return m, command.SetViewState(m.viewState)
	case model.ViewState:
		m.viewState = msg
	case tea.MouseMsg:
		if m.viewState.Page != model.PageMain {
			return m, nil
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, input.Default.Quit):
			return m, tea.Quit
		case key.Matches(msg, input.Default.Help):
			if m.viewState.Page == model.PageHelp {
				m.viewState.Page = model.PageMain
			} else {
				m.viewState.Page = model.PageHelp
			}

			return m, command.SetViewState(m.viewState)
		case key.Matches(msg, input.Default.Save):
			return m, m.save()
		}

		if m.viewState.Page != model.PageMain {
			var cmd tea.Cmd
			m.helpPage, cmd = m.helpPage.Update(msg)

			return m, cmd
		}
	case config.Config:
		m.config = msg
		m.mainPage = m.mainPage.Reconfigure(msg)

		return m, command.SetStatusMessage("Config reloaded", false)
	case command.SliderState:
		var cmd tea.Cmd
		m.statusModel, cmd = m.statusModel.Update(msg)

		return m, tea.Batch(cmd, m.record(msg))
	}

	return m.propagate(inMsg)
}

// record persists committed changes. Live tracking updates only reach the status bar.
func (m rootModel) record(state command.SliderState) tea.Cmd {
	if !state.Committed || m.recorder == nil {
		return nil
	}

	recorder := m.recorder
	ctx := m.ctx

	return func() tea.Msg {
		if err := recorder.Record(ctx, state); err != nil {
			slog.Error("Failed to record slider state", slog.String("id", state.ID), slog.String("error", err.Error()))

			return command.StatusMsg{Message: "Failed to save slider state", Err: true}
		}

		return nil
	}
}

// save writes the current slider values back into the config file.
func (m rootModel) save() tea.Cmd {
	conf := m.config
	conf.Sliders = make([]config.SliderConfig, 0, len(m.config.Sliders))

	current := make(map[string]slider.Slider)
	for _, sliderModel := range m.mainPage.Sliders() {
		current[sliderModel.ID()] = sliderModel.Slider()
	}

	for _, sliderConf := range m.config.Sliders {
		if core, found := current[sliderConf.ID]; found {
			sliderConf.Value = core.Value()
			sliderConf.PageStepMode = core.PageStepMode()
			sliderConf.Tracking = core.Tracking()
			sliderConf.Inverted = core.Inverted()
			sliderConf.Orientation = core.Orientation().String()
		}

		conf.Sliders = append(conf.Sliders, sliderConf)
	}

	loader := m.loader

	return func() tea.Msg {
		if err := loader.Write(conf); err != nil {
			return command.StatusMsg{Message: err.Error(), Err: true}
		}

		return command.StatusMsg{Message: fmt.Sprintf("Saved %s", loader.Path())}
	}
}

func (m rootModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	ftr := styles.FooterContainerStyle.Width(m.viewState.Width).Render(m.statusModel.View())
	contentViewPortHeight := max(0, m.viewState.Height-lipgloss.Height(ftr))

	var content string

	switch m.viewState.Page {
	case model.PageHelp:
		content = m.helpPage.View()
	case model.PageMain:
		content = m.mainPage.View()
	}

	ctr := styles.ContentContainerStyle.Height(contentViewPortHeight).Render(content)

	return zone.Scan(lipgloss.JoinVertical(lipgloss.Left, ctr, ftr))
}

func (m rootModel) propagate(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 3)

	m.mainPage, cmds[0] = m.mainPage.Update(msg)
	m.helpPage, cmds[1] = m.helpPage.Update(msg)
	m.statusModel, cmds[2] = m.statusModel.Update(msg)

	return m, tea.Batch(cmds...)
}

// logMsg is useful for debugging events. Tail the log file ~/.config/slidertui/slidertui.log
func logMsg(inMsg tea.Msg) {
	// Filter out very noisy stuff
	switch inMsg.(type) {
	case command.FrameMsg:
	case command.RepeatMsg:
	case tea.MouseMsg:
		break
	default:
		slog.Debug("tea.Msg", slog.Any("msg", inMsg))
	}
}
