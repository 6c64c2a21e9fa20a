package replay_test

import (
	"bytes"
	"context"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/leighmacdonald/slidertui/internal/replay"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/stretchr/testify/require"
)

func pixelOptions() slider.Options {
	opts := slider.DefaultOptions()
	opts.Maximum = 100
	opts.Value = 50
	opts.Size = image.Pt(260, 60)

	return opts
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		text  string
		found bool
		want  replay.Command
	}{
		{text: "", found: false},
		{text: "   # just a comment", found: false},
		{text: "press 130 30", found: true, want: replay.Command{Line: 1, Text: "press 130 30", Op: replay.OpPress, Args: []int{130, 30}}},
		{text: "MOVE 5 6 # trailing", found: true, want: replay.Command{Line: 1, Text: "MOVE 5 6", Op: replay.OpMove, Args: []int{5, 6}}},
		{text: "release", found: true, want: replay.Command{Line: 1, Text: "release", Op: replay.OpRelease, Args: []int{}}},
		{text: "tick 3", found: true, want: replay.Command{Line: 1, Text: "tick 3", Op: replay.OpTick, Args: []int{3}}},
		{text: "inverted on", found: true, want: replay.Command{Line: 1, Text: "inverted on", Op: replay.OpInverted, Flag: true}},
		{text: "orientation v", found: true, want: replay.Command{Line: 1, Text: "orientation v", Op: replay.OpOrientation, Word: "vertical"}},
		{text: "action to_maximum", found: true, want: replay.Command{Line: 1, Text: "action to_maximum", Op: replay.OpAction, Word: "to_maximum"}},
		{text: "expect state dragging", found: true, want: replay.Command{Line: 1, Text: "expect state dragging", Op: replay.OpExpect, Word: "state", Want: "dragging"}},
		{text: "expect value -4", found: true, want: replay.Command{Line: 1, Text: "expect value -4", Op: replay.OpExpect, Word: "value", Args: []int{-4}}},
	}

	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			cmd, found, err := replay.ParseLine(1, tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.found, found)
			if tc.found {
				require.Equal(t, tc.want, cmd)
			}
		})
	}
}

func TestParseLineErrors(t *testing.T) {
	for _, text := range []string{
		"jump 1 2",
		"press 1",
		"press a b",
		"release 4",
		"leave now",
		"tracking maybe",
		"action explode",
		"expect state flying",
		"expect colour red",
	} {
		_, _, err := replay.ParseLine(7, text)
		require.ErrorIs(t, err, replay.ErrScript, text)

		var lineErr *replay.LineError
		require.ErrorAs(t, err, &lineErr, text)
		require.Equal(t, 7, lineErr.Line)
	}
}

func runScript(t *testing.T, script string) (*replay.Runner, string, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "script.txt")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	var out bytes.Buffer
	runner := replay.NewRunner(pixelOptions(), &out)
	err := replay.Run(context.Background(), path, false, runner)

	return runner, out.String(), err
}

func TestRunDrag(t *testing.T) {
	runner, out, err := runScript(t, `# drag the thumb to the end
press 130 30
expect state dragging
move 230 30
expect position 100
expect value 50
release
expect value 100
expect state idle
`)
	require.NoError(t, err)
	require.Equal(t, []slider.Transition{slider.ReachedMaximum}, runner.Transitions())
	require.Contains(t, out, "value(50->100)")
	require.Contains(t, out, "transition(reached_maximum)")
}

func TestRunStepping(t *testing.T) {
	runner, out, err := runScript(t, `press 190 30
expect value 60
tick 2
expect value 80
release
tick
expect value 80
repeat 1
expect value 80
`)
	require.NoError(t, err)
	require.Equal(t, slider.StateIdle, runner.Slider().State())
	require.Contains(t, out, "schedule(page_step_add#1,500ms)")
	require.Contains(t, out, "cancel(#1)")
}

func TestRunHollowAtMinimum(t *testing.T) {
	runner, out, err := runScript(t, `value 0
value 0
value 1
disable
press 130 30
expect state idle
`)
	require.NoError(t, err)
	require.Equal(t, []slider.Transition{slider.ReachedMinimum, slider.LeftMinimum, slider.Disabled}, runner.Transitions())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Contains(t, lines[0], "hollow=true")
	require.Contains(t, lines[2], "hollow=false")
}

func TestRunExpectationFails(t *testing.T) {
	_, _, err := runScript(t, "value 10\nexpect value 11\n")
	require.ErrorIs(t, err, replay.ErrExpectation)
	require.ErrorIs(t, err, replay.ErrScript)

	var lineErr *replay.LineError
	require.ErrorAs(t, err, &lineErr)
	require.Equal(t, 2, lineErr.Line)
}

func TestRunMissingFile(t *testing.T) {
	runner := replay.NewRunner(pixelOptions(), &bytes.Buffer{})
	err := replay.Run(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), false, runner)
	require.ErrorIs(t, err, replay.ErrOpen)
}

func TestDescribe(t *testing.T) {
	require.Equal(t, "hovered(true)", replay.Describe(slider.Hovered{Hovered: true}))
	require.Equal(t, "orientation(vertical)", replay.Describe(slider.OrientationChanged{Orientation: slider.Vertical}))
	require.Equal(t, "action(to_minimum)", replay.Describe(slider.ActionTriggered{Action: slider.ActionToMinimum}))
}
