// Package replay runs recorded pointer scripts against a slider without a terminal, logging every
// effect. Scripts are line based:
//
//	# comment
//	size 260 60
//	press 130 30
//	move 230 30
//	release
//	tick 3
//	expect value 100
package replay

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/leighmacdonald/slidertui/internal/slider"
)

var (
	ErrScript      = errors.New("invalid script")
	ErrExpectation = errors.New("expectation failed")
	errArgs        = errors.New("wrong number of arguments")
	errUnknownOp   = errors.New("unknown command")
)

type Op int

const (
	OpPress Op = iota
	OpMove
	OpRelease
	OpLeave
	OpCaptureLost
	OpTick
	OpRepeat
	OpEnable
	OpDisable
	OpValue
	OpRange
	OpSize
	OpOrientation
	OpInverted
	OpPageStepMode
	OpTracking
	OpTrackWidth
	OpAction
	OpExpect
)

var opNames = map[string]Op{
	"press":          OpPress,
	"move":           OpMove,
	"release":        OpRelease,
	"leave":          OpLeave,
	"capture_lost":   OpCaptureLost,
	"tick":           OpTick,
	"repeat":         OpRepeat,
	"enable":         OpEnable,
	"disable":        OpDisable,
	"value":          OpValue,
	"range":          OpRange,
	"size":           OpSize,
	"orientation":    OpOrientation,
	"inverted":       OpInverted,
	"page_step_mode": OpPageStepMode,
	"tracking":       OpTracking,
	"track_width":    OpTrackWidth,
	"action":         OpAction,
	"expect":         OpExpect,
}

var actionNames = map[string]slider.Action{
	"single_step_add": slider.ActionSingleStepAdd,
	"single_step_sub": slider.ActionSingleStepSub,
	"page_step_add":   slider.ActionPageStepAdd,
	"page_step_sub":   slider.ActionPageStepSub,
	"to_minimum":      slider.ActionToMinimum,
	"to_maximum":      slider.ActionToMaximum,
}

// Command is one parsed script line. Numeric arguments land in Args, word arguments in Word.
type Command struct {
	Line int
	Text string
	Op   Op
	Args []int
	Word string
	// Flag is the parsed on/off argument of the toggle commands.
	Flag bool
	// Want is the expected state name of an expect state command.
	Want string
}

// LineError points at the script line that failed.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func lineError(line int, text string, err error) error {
	return errors.Join(&LineError{Line: line, Text: text, Err: err}, ErrScript)
}

// ParseLine parses a single line. Blank and comment lines return ok == false.
func ParseLine(line int, text string) (Command, bool, error) {
	if idx := strings.IndexByte(text, '#'); idx >= 0 {
		text = text[:idx]
	}

	text = strings.TrimSpace(text)
	fields := strings.Fields(strings.ToLower(text))

	if len(fields) == 0 {
		return Command{}, false, nil
	}

	op, found := opNames[fields[0]]
	if !found {
		return Command{}, false, lineError(line, text, errUnknownOp)
	}

	cmd := Command{Line: line, Text: text, Op: op}
	args := fields[1:]

	var err error

	switch op {
	case OpPress, OpMove, OpSize, OpRange:
		cmd.Args, err = ints(args, 2, 2)
	case OpRelease:
		cmd.Args, err = ints(args, 0, 2)
		if err == nil && len(cmd.Args) == 1 {
			err = errArgs
		}
	case OpTick:
		cmd.Args, err = ints(args, 0, 1)
	case OpRepeat, OpValue, OpTrackWidth:
		cmd.Args, err = ints(args, 1, 1)
	case OpLeave, OpCaptureLost, OpEnable, OpDisable:
		if len(args) != 0 {
			err = errArgs
		}
	case OpOrientation:
		if len(args) != 1 {
			err = errArgs
		} else {
			cmd.Word = slider.ParseOrientation(args[0]).String()
		}
	case OpInverted, OpPageStepMode, OpTracking:
		if len(args) != 1 {
			err = errArgs
		} else {
			cmd.Flag, err = flag(args[0])
		}
	case OpAction:
		if len(args) != 1 {
			err = errArgs
		} else if _, ok := actionNames[args[0]]; !ok {
			err = fmt.Errorf("unknown action %q", args[0])
		} else {
			cmd.Word = args[0]
		}
	case OpExpect:
		err = parseExpect(&cmd, args)
	}

	if err != nil {
		return Command{}, false, lineError(line, text, err)
	}

	return cmd, true, nil
}

func parseExpect(cmd *Command, args []string) error {
	if len(args) != 2 {
		return errArgs
	}

	cmd.Word = args[0]

	switch args[0] {
	case "value", "position":
		value, err := strconv.Atoi(args[1])
		if err != nil {
			return err
		}

		cmd.Args = []int{value}
	case "state":
		switch args[1] {
		case "idle", "hovering", "dragging", "stepping":
			cmd.Want = args[1]
		default:
			return fmt.Errorf("unknown state %q", args[1])
		}
	default:
		return fmt.Errorf("cannot expect %q", args[0])
	}

	return nil
}

func ints(args []string, least int, most int) ([]int, error) {
	if len(args) < least || len(args) > most {
		return nil, errArgs
	}

	out := make([]int, 0, len(args))

	for _, arg := range args {
		value, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}

		out = append(out, value)
	}

	return out, nil
}

func flag(arg string) (bool, error) {
	switch arg {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("not a flag: %q", arg)
	}
}
