package command

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
)

func SetViewState(state model.ViewState) tea.Cmd {
	return func() tea.Msg { return state }
}

const ClearMessageTimeout = time.Second * 10

type ClearStatusMessageMsg struct{}

func ClearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return ClearStatusMessageMsg{}
	})
}

type StatusMsg struct {
	Message string
	Err     bool
}

func SetStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg{Message: msg, Err: err}
	}
}

// RepeatMsg is a fired auto repeat timer of one slider.
type RepeatMsg struct {
	ID  string
	Tag uint64
}

func RepeatAfter(id string, tag uint64, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(_ time.Time) tea.Msg {
		return RepeatMsg{ID: id, Tag: tag}
	})
}

// FrameMsg advances the halo animation of one slider. Generation identifies the slider model
// that scheduled it, models rebuilt on reload with the same ID ignore older frames.
type FrameMsg struct {
	ID         string
	Generation uint64
	At         time.Time
}

func NextFrame(id string, generation uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(at time.Time) tea.Msg {
		return FrameMsg{ID: id, Generation: generation, At: at}
	})
}

// FocusMsg moves keyboard focus to the slider at Index.
type FocusMsg struct {
	Index int
}

func Focus(index int) tea.Cmd {
	return func() tea.Msg { return FocusMsg{Index: index} }
}

// SliderState is the snapshot published whenever a slider commits a change, used by the status bar
// and the persistence layer.
type SliderState struct {
	ID           string
	Label        string
	Value        int
	Previous     int
	Minimum      int
	Maximum      int
	State        string
	PageStepMode bool
	Tracking     bool
	Inverted     bool
	Enabled      bool
	Orientation  string
	// Committed is false for live updates while a tracking drag is in progress.
	Committed bool
}

func PublishState(state SliderState) tea.Cmd {
	return func() tea.Msg { return state }
}
