package replay

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/slidertui/internal/anim"
	"github.com/leighmacdonald/slidertui/internal/slider"
)

// Runner applies commands to a slider and writes a transcript line per command. Repeat timers are
// not real: ScheduleRepeat only arms the tag that the next tick delivers.
type Runner struct {
	slider slider.Slider
	bus    *slider.Bus
	halo   *anim.Halo
	out    io.Writer
	armed  uint64
	// hasArmed is false when no repeat timer is pending.
	hasArmed bool
	fired    []slider.Transition
}

func NewRunner(opts slider.Options, out io.Writer) *Runner {
	runner := &Runner{
		slider: slider.New(opts),
		bus:    slider.NewBus(),
		halo:   anim.NewHalo(anim.Config{Duration: 0, HoverHalo: anim.DefaultHoverHalo, PressedHalo: anim.DefaultPressedHalo}),
		out:    out,
	}

	runner.halo.Attach(runner.bus)
	runner.halo.Sync(runner.slider)
	runner.bus.Subscribe(func(transition slider.Transition) {
		runner.fired = append(runner.fired, transition)
		slog.Debug("Transition", slog.String("transition", transition.String()))
	})

	return runner
}

func (r *Runner) Slider() slider.Slider {
	return r.slider
}

// Transitions returns every transition published so far.
func (r *Runner) Transitions() []slider.Transition {
	return r.fired
}

// Apply runs cmd. Only expect commands can fail.
func (r *Runner) Apply(cmd Command) error {
	var effects []slider.Effect

	switch cmd.Op {
	case OpPress:
		effects = r.update(slider.Press(image.Pt(cmd.Args[0], cmd.Args[1])))
	case OpMove:
		effects = r.update(slider.Move(image.Pt(cmd.Args[0], cmd.Args[1])))
	case OpRelease:
		var pos image.Point
		if len(cmd.Args) == 2 {
			pos = image.Pt(cmd.Args[0], cmd.Args[1])
		}

		effects = r.update(slider.Release(pos))
	case OpLeave:
		effects = r.update(slider.Leave())
	case OpCaptureLost:
		effects = r.update(slider.CaptureLost())
	case OpTick:
		count := 1
		if len(cmd.Args) == 1 {
			count = cmd.Args[0]
		}

		for range count {
			if !r.hasArmed {
				slog.Debug("Tick without armed repeat", slog.Int("line", cmd.Line))

				break
			}

			effects = append(effects, r.update(slider.Repeat(r.armed))...)
		}
	case OpRepeat:
		effects = r.update(slider.Repeat(uint64(max(0, cmd.Args[0]))))
	case OpEnable, OpDisable:
		r.slider, effects = r.slider.SetEnabled(cmd.Op == OpEnable)
		r.observe(effects)
	case OpValue:
		r.slider, effects = r.slider.SetValue(cmd.Args[0])
		r.observe(effects)
	case OpRange:
		r.slider, effects = r.slider.SetRange(cmd.Args[0], cmd.Args[1])
		r.observe(effects)
	case OpSize:
		r.slider, effects = r.slider.SetSize(image.Pt(cmd.Args[0], cmd.Args[1]))
	case OpOrientation:
		r.slider, effects = r.slider.SetOrientation(slider.ParseOrientation(cmd.Word))
		r.observe(effects)
	case OpInverted:
		r.slider, effects = r.slider.SetInverted(cmd.Flag)
	case OpPageStepMode:
		r.slider = r.slider.SetPageStepMode(cmd.Flag)
	case OpTracking:
		r.slider = r.slider.SetTracking(cmd.Flag)
	case OpTrackWidth:
		r.slider, effects = r.slider.SetTrackWidth(cmd.Args[0])
	case OpAction:
		r.slider, effects = r.slider.TriggerAction(actionNames[cmd.Word])
		r.observe(effects)
	case OpExpect:
		return r.expect(cmd)
	}

	r.transcript(cmd, effects)

	return nil
}

func (r *Runner) update(event slider.Event) []slider.Effect {
	var effects []slider.Effect

	r.slider, effects = r.slider.Update(event)
	r.observe(effects)

	return effects
}

// observe keeps the fake timer and the collaborators in step with effects.
func (r *Runner) observe(effects []slider.Effect) {
	for _, effect := range effects {
		switch e := effect.(type) {
		case slider.ScheduleRepeat:
			r.armed = e.Tag
			r.hasArmed = true
		case slider.CancelRepeat:
			if r.hasArmed && r.armed == e.Tag {
				r.hasArmed = false
			}
		}
	}

	r.halo.Apply(effects)
	r.bus.PublishEffects(effects)
	r.halo.Step(0)
}

func (r *Runner) expect(cmd Command) error {
	var got, want string

	switch cmd.Word {
	case "value":
		got, want = fmt.Sprint(r.slider.Value()), fmt.Sprint(cmd.Args[0])
	case "position":
		got, want = fmt.Sprint(r.slider.Position()), fmt.Sprint(cmd.Args[0])
	case "state":
		got, want = r.slider.State().String(), cmd.Want
	}

	if got != want {
		return lineError(cmd.Line, cmd.Text, fmt.Errorf("%w: %s is %s, want %s", ErrExpectation, cmd.Word, got, want))
	}

	fmt.Fprintf(r.out, "%4d %-24s ok\n", cmd.Line, cmd.Text)

	return nil
}

func (r *Runner) transcript(cmd Command, effects []slider.Effect) {
	names := make([]string, 0, len(effects))
	for _, effect := range effects {
		names = append(names, Describe(effect))
	}

	appearance := r.halo.Appearance()

	fmt.Fprintf(r.out, "%4d %-24s %-8s value=%s position=%s halo=%d hollow=%t [%s]\n",
		cmd.Line, cmd.Text, r.slider.State(),
		humanize.Comma(int64(r.slider.Value())), humanize.Comma(int64(r.slider.Position())),
		appearance.Halo, appearance.Hollow, strings.Join(names, " "))

	slog.Debug("Applied", slog.Int("line", cmd.Line), slog.String("cmd", cmd.Text),
		slog.Int("value", r.slider.Value()), slog.Int("effects", len(effects)))
}

// Describe renders an effect for the transcript.
func Describe(effect slider.Effect) string {
	switch e := effect.(type) {
	case slider.Redraw:
		return "redraw"
	case slider.Hovered:
		return fmt.Sprintf("hovered(%t)", e.Hovered)
	case slider.Pressed:
		return "pressed"
	case slider.Released:
		return "released"
	case slider.PositionChanged:
		return fmt.Sprintf("position(%d)", e.Position)
	case slider.ValueChanged:
		return fmt.Sprintf("value(%d->%d)", e.Old, e.New)
	case slider.ActionTriggered:
		return fmt.Sprintf("action(%s)", e.Action)
	case slider.ScheduleRepeat:
		return fmt.Sprintf("schedule(%s#%d,%s)", e.Action, e.Tag, e.After)
	case slider.CancelRepeat:
		return fmt.Sprintf("cancel(#%d)", e.Tag)
	case slider.CollapseHalo:
		return "collapse_halo"
	case slider.TransitionFired:
		return fmt.Sprintf("transition(%s)", e.Transition)
	case slider.OrientationChanged:
		return fmt.Sprintf("orientation(%s)", e.Orientation)
	default:
		return fmt.Sprintf("%T", effect)
	}
}
