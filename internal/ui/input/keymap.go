package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit              key.Binding
	Help              key.Binding
	Back              key.Binding
	NextSlider        key.Binding
	PrevSlider        key.Binding
	Increase          key.Binding
	Decrease          key.Binding
	PageUp            key.Binding
	PageDown          key.Binding
	Home              key.Binding
	End               key.Binding
	ToggleEnabled     key.Binding
	TogglePageStep    key.Binding
	ToggleInverted    key.Binding
	ToggleOrientation key.Binding
	ToggleTracking    key.Binding
	Reset             key.Binding
	Save              key.Binding
}

// ShortHelp implements help.KeyMap.
func (m Map) ShortHelp() []key.Binding {
	return []key.Binding{m.Help, m.NextSlider, m.Increase, m.Decrease, m.Quit}
}

// FullHelp implements help.KeyMap.
func (m Map) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.NextSlider, m.PrevSlider, m.Increase, m.Decrease, m.PageUp, m.PageDown, m.Home, m.End},
		{m.ToggleEnabled, m.TogglePageStep, m.ToggleInverted, m.ToggleOrientation, m.ToggleTracking},
		{m.Reset, m.Save, m.Help, m.Back, m.Quit},
	}
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "Quit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	NextSlider: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "Next slider"),
	),
	PrevSlider: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift tab", "Prev slider"),
	),
	Increase: key.NewBinding(
		key.WithKeys("right", "l", "up", "k"),
		key.WithHelp("→/↑", "Step up"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("left", "h", "down", "j"),
		key.WithHelp("←/↓", "Step down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "Page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdn", "Page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("home"),
		key.WithHelp("home", "Minimum"),
	),
	End: key.NewBinding(
		key.WithKeys("end"),
		key.WithHelp("end", "Maximum"),
	),
	ToggleEnabled: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "Enable/disable"),
	),
	TogglePageStep: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "Page step mode"),
	),
	ToggleInverted: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "Invert"),
	),
	ToggleOrientation: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "Orientation"),
	),
	ToggleTracking: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "Tracking"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reset"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "Save config"),
	),
}
