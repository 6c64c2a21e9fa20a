package pages_test

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leighmacdonald/slidertui/internal/config"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
	"github.com/leighmacdonald/slidertui/internal/ui/pages"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	code := m.Run()
	zone.Close()
	os.Exit(code)
}

func boardConfig(sliders ...config.SliderConfig) config.Config {
	return config.Config{FPS: 60, RepeatDelayMs: 500, RepeatIntervalMs: 50, HoverHalo: 2, PressedHalo: 4, Sliders: sliders}
}

var (
	volume = config.SliderConfig{ID: "volume", Label: "Volume", Maximum: 100, Value: 35, PageStep: 10, Length: 42}
	zoom   = config.SliderConfig{ID: "zoom", Label: "Zoom", Minimum: 1, Maximum: 16, Value: 4, Orientation: "vertical", Length: 12}
)

func keyMsg(text string) tea.KeyMsg {
	switch text {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "pgup":
		return tea.KeyMsg{Type: tea.KeyPgUp}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)}
	}
}

func TestMainKeysTargetFocus(t *testing.T) {
	board := pages.NewMain(boardConfig(volume, zoom))
	board, _ = board.Update(model.ViewState{Width: 80, Height: 24})

	board, _ = board.Update(keyMsg("pgup"))
	require.Equal(t, 45, board.Sliders()[0].Slider().Value())
	require.Equal(t, 4, board.Sliders()[1].Slider().Value())

	_, cmd := board.Update(keyMsg("tab"))
	require.Equal(t, command.FocusMsg{Index: 1}, cmd())

	board, cmd = board.Update(command.FocusMsg{Index: 1})
	board, _ = board.Update(cmd())
	require.False(t, board.Sliders()[0].Focused())
	require.True(t, board.Sliders()[1].Focused())

	board, _ = board.Update(keyMsg("end"))
	require.Equal(t, 16, board.Sliders()[1].Slider().Value())

	board, _ = board.Update(keyMsg("e"))
	require.False(t, board.Sliders()[1].Slider().Enabled())
	require.True(t, board.Sliders()[0].Slider().Enabled())
}

func TestMainRestoreAndReconfigure(t *testing.T) {
	board := pages.NewMain(boardConfig(volume, zoom)).Restore(map[string]pages.Restored{
		"volume":  {Value: 80, PageStepMode: true, Orientation: slider.Horizontal},
		"missing": {Value: 1},
	})
	require.Equal(t, 80, board.Sliders()[0].Slider().Value())
	require.Equal(t, 4, board.Sliders()[1].Slider().Value())

	balance := config.SliderConfig{ID: "balance", Minimum: -50, Maximum: 50, Length: 42}
	board = board.Reconfigure(boardConfig(balance, volume))

	require.Len(t, board.Sliders(), 2)
	require.Equal(t, "balance", board.Sliders()[0].ID())
	require.Equal(t, 0, board.Sliders()[0].Slider().Value())
	require.Equal(t, 80, board.Sliders()[1].Slider().Value())
	require.True(t, board.Sliders()[0].Focused())
}

func TestMainView(t *testing.T) {
	board := pages.NewMain(boardConfig(volume, zoom))
	board, _ = board.Update(model.ViewState{Width: 80, Height: 24})

	view := zone.Scan(board.View())
	require.Contains(t, view, "Volume")
	require.Contains(t, view, "●")
}
