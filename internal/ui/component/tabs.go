package component

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
)

type TabLabel struct {
	label  string
	zoneID string
}

// TabsModel is the row of slider names. Clicking one moves the keyboard focus to it.
type TabsModel struct {
	tabs      []TabLabel
	viewState model.ViewState
}

func NewTabsModel(labels []string) TabsModel {
	tabs := make([]TabLabel, len(labels))
	for idx, label := range labels {
		tabs[idx] = TabLabel{label: label, zoneID: zone.NewPrefix()}
	}

	return TabsModel{tabs: tabs}
}

func (m TabsModel) Init() tea.Cmd {
	return nil
}

func (m TabsModel) Update(msg tea.Msg) (TabsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}

		for idx, item := range m.tabs {
			if zone.Get(item.zoneID).InBounds(msg) {
				return m, command.Focus(idx)
			}
		}
	case model.ViewState:
		m.viewState = msg
	}

	return m, nil
}

func (m TabsModel) View() string {
	if m.viewState.Width == 0 {
		return ""
	}

	tabs := make([]string, 0, len(m.tabs))

	for idx, tab := range m.tabs {
		if idx == m.viewState.Focus {
			tabs = append(tabs, zone.Mark(tab.zoneID, styles.TabsActive.Render(tab.label)))
		} else {
			tabs = append(tabs, zone.Mark(tab.zoneID, styles.TabsInactive.Render(tab.label)))
		}
	}

	return styles.TabContainer.Width(m.viewState.Width).Render(lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}
