package pages

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/slidertui/internal/config"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/component"
	"github.com/leighmacdonald/slidertui/internal/ui/input"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
)

// Restored is the persisted part of a slider, applied on startup.
type Restored struct {
	Value        int
	PageStepMode bool
	Inverted     bool
	Orientation  slider.Orientation
}

// Main is the slider board. Horizontal sliders are stacked in a column, vertical ones placed in a
// row beside it.
type Main struct {
	sliders   []component.SliderModel
	tabsModel component.TabsModel
	viewState model.ViewState
}

func NewMain(conf config.Config) Main {
	sliders := make([]component.SliderModel, len(conf.Sliders))
	labels := make([]string, len(conf.Sliders))

	for idx, sliderConf := range conf.Sliders {
		sliders[idx] = component.NewSliderModel(conf, sliderConf)
		labels[idx] = sliders[idx].Label()
	}

	if len(sliders) > 0 {
		sliders[0] = sliders[0].SetFocused(true)
	}

	return Main{sliders: sliders, tabsModel: component.NewTabsModel(labels)}
}

func (m Main) Sliders() []component.SliderModel {
	return m.sliders
}

// Restore applies persisted state keyed by slider id. Unknown ids are ignored.
func (m Main) Restore(states map[string]Restored) Main {
	for idx, sliderModel := range m.sliders {
		if state, found := states[sliderModel.ID()]; found {
			m.sliders[idx] = sliderModel.Restore(state.Value, state.PageStepMode, state.Inverted, state.Orientation)
		}
	}

	return m
}

// Reconfigure rebuilds the board from conf. Sliders that survive keep their current value and flags.
func (m Main) Reconfigure(conf config.Config) Main {
	current := make(map[string]Restored, len(m.sliders))
	for _, sliderModel := range m.sliders {
		core := sliderModel.Slider()
		current[sliderModel.ID()] = Restored{
			Value:        core.Value(),
			PageStepMode: core.PageStepMode(),
			Inverted:     core.Inverted(),
			Orientation:  core.Orientation(),
		}
		sliderModel.Close()
	}

	next := NewMain(conf).Restore(current)
	next.viewState = m.viewState
	next.viewState.Focus = min(max(0, m.viewState.Focus), max(0, len(next.sliders)-1))
	next = next.focus(next.viewState.Focus)
	next.tabsModel, _ = next.tabsModel.Update(next.viewState)

	return next
}

func (m Main) Init() tea.Cmd {
	return nil
}

func (m Main) Update(msg tea.Msg) (Main, tea.Cmd) {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg
		m = m.focus(msg.Focus)
	case command.FocusMsg:
		vs := m.viewState
		vs.Focus = msg.Index

		return m, command.SetViewState(vs)
	case tea.KeyMsg:
		return m.key(msg)
	}

	return m.propagate(msg)
}

func (m Main) focus(index int) Main {
	for idx := range m.sliders {
		m.sliders[idx] = m.sliders[idx].SetFocused(idx == index)
	}

	return m
}

func (m Main) key(msg tea.KeyMsg) (Main, tea.Cmd) {
	if len(m.sliders) == 0 {
		return m, nil
	}

	focus := min(max(0, m.viewState.Focus), len(m.sliders)-1)
	current := m.sliders[focus]

	var cmd tea.Cmd

	switch {
	case key.Matches(msg, input.Default.NextSlider):
		return m, command.Focus((focus + 1) % len(m.sliders))
	case key.Matches(msg, input.Default.PrevSlider):
		return m, command.Focus((focus - 1 + len(m.sliders)) % len(m.sliders))
	case key.Matches(msg, input.Default.Increase):
		current, cmd = current.Trigger(slider.ActionSingleStepAdd)
	case key.Matches(msg, input.Default.Decrease):
		current, cmd = current.Trigger(slider.ActionSingleStepSub)
	case key.Matches(msg, input.Default.PageUp):
		current, cmd = current.Trigger(slider.ActionPageStepAdd)
	case key.Matches(msg, input.Default.PageDown):
		current, cmd = current.Trigger(slider.ActionPageStepSub)
	case key.Matches(msg, input.Default.Home):
		current, cmd = current.Trigger(slider.ActionToMinimum)
	case key.Matches(msg, input.Default.End):
		current, cmd = current.Trigger(slider.ActionToMaximum)
	case key.Matches(msg, input.Default.ToggleEnabled):
		current, cmd = current.ToggleEnabled()
	case key.Matches(msg, input.Default.TogglePageStep):
		current, cmd = current.TogglePageStepMode()
	case key.Matches(msg, input.Default.ToggleInverted):
		current, cmd = current.ToggleInverted()
	case key.Matches(msg, input.Default.ToggleOrientation):
		current, cmd = current.ToggleOrientation()
	case key.Matches(msg, input.Default.ToggleTracking):
		current, cmd = current.ToggleTracking()
	case key.Matches(msg, input.Default.Reset):
		current, cmd = current.Reset()
	default:
		return m, nil
	}

	m.sliders[focus] = current

	return m, cmd
}

func (m Main) propagate(msg tea.Msg) (Main, tea.Cmd) {
	cmds := make([]tea.Cmd, len(m.sliders)+1)

	m.tabsModel, cmds[0] = m.tabsModel.Update(msg)
	for idx := range m.sliders {
		m.sliders[idx], cmds[idx+1] = m.sliders[idx].Update(msg)
	}

	return m, tea.Batch(cmds...)
}

func (m Main) View() string {
	hdr := styles.HeaderContainerStyle.Width(m.viewState.Width).Render(m.tabsModel.View())

	var (
		column []string
		row    []string
	)

	for _, sliderModel := range m.sliders {
		if sliderModel.Slider().Orientation() == slider.Vertical {
			row = append(row, sliderModel.View())
		} else {
			column = append(column, sliderModel.View())
		}
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, column...),
		lipgloss.JoinHorizontal(lipgloss.Top, row...))

	return lipgloss.JoinVertical(lipgloss.Top, hdr, board)
}
