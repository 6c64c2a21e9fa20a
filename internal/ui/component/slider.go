package component

import (
	"fmt"
	"image"
	"log/slog"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/leighmacdonald/slidertui/internal/anim"
	"github.com/leighmacdonald/slidertui/internal/config"
	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/model"
	"github.com/leighmacdonald/slidertui/internal/ui/styles"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/truncate"
)

const minContainerWidth = 12

var generations atomic.Uint64

// SliderModel hosts one slider on the terminal. It turns mouse messages into slider events and the
// resulting effects back into commands.
type SliderModel struct {
	id            string
	label         string
	initial       int
	core          slider.Slider
	halo          *anim.Halo
	bus           *slider.Bus
	zoneID        string
	captured      bool
	inside        bool
	focused       bool
	animating     bool
	lastFrame     time.Time
	pressValue    int
	frameInterval time.Duration
	pressedHalo   int
	generation    uint64
}

func NewSliderModel(conf config.Config, sliderConf config.SliderConfig) SliderModel {
	core := slider.New(conf.Options(sliderConf))
	bus := slider.NewBus()
	halo := anim.NewHalo(anim.Config{
		Duration:    conf.AnimationDuration(),
		HoverHalo:   conf.HoverHalo,
		PressedHalo: conf.PressedHalo,
	})
	halo.Attach(bus)
	halo.Sync(core)

	label := sliderConf.Label
	if label == "" {
		label = sliderConf.ID
	}

	return SliderModel{
		id:            sliderConf.ID,
		label:         label,
		initial:       core.Value(),
		core:          core,
		halo:          halo,
		bus:           bus,
		zoneID:        zone.NewPrefix(),
		frameInterval: conf.FrameInterval(),
		pressedHalo:   conf.PressedHalo,
		generation:    generations.Add(1),
	}
}

func (m SliderModel) ID() string {
	return m.id
}

func (m SliderModel) Label() string {
	return m.label
}

func (m SliderModel) Slider() slider.Slider {
	return m.core
}

func (m SliderModel) Focused() bool {
	return m.focused
}

func (m SliderModel) SetFocused(focused bool) SliderModel {
	m.focused = focused

	return m
}

// Close drops the halo subscription.
func (m SliderModel) Close() {
	m.halo.Detach()
}

func (m SliderModel) Init() tea.Cmd {
	return nil
}

func (m SliderModel) Update(msg tea.Msg) (SliderModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.mouse(msg)
	case command.RepeatMsg:
		if msg.ID != m.id {
			return m, nil
		}

		return m.apply(slider.Repeat(msg.Tag))
	case command.FrameMsg:
		if msg.ID != m.id || msg.Generation != m.generation {
			return m, nil
		}

		return m.frame(msg.At)
	}

	return m, nil
}

func (m SliderModel) mouse(msg tea.MouseMsg) (SliderModel, tea.Cmd) {
	info := zone.Get(m.zoneID)
	if info == nil || info.IsZero() {
		return m, nil
	}

	inBounds := info.InBounds(msg)
	local := image.Pt(msg.X-info.StartX, msg.Y-info.StartY)

	var (
		effects []slider.Effect
		extra   []slider.Effect
	)

	switch msg.Action {
	case tea.MouseActionPress:
		if !inBounds {
			return m, nil
		}

		switch msg.Button { //nolint:exhaustive
		case tea.MouseButtonLeft:
			m.captured = true
			m.core, effects = m.core.Update(slider.Press(local))
		case tea.MouseButtonWheelUp, tea.MouseButtonWheelRight:
			m.core, effects = m.core.TriggerAction(slider.ActionSingleStepAdd)
		case tea.MouseButtonWheelDown, tea.MouseButtonWheelLeft:
			m.core, effects = m.core.TriggerAction(slider.ActionSingleStepSub)
		default:
			return m, nil
		}
	case tea.MouseActionRelease:
		if !m.captured {
			return m, nil
		}

		m.captured = false
		m.core, effects = m.core.Update(slider.Release(local))

		if !inBounds {
			m.core, extra = m.core.Update(slider.Leave())
			effects = append(effects, extra...)
		}
	case tea.MouseActionMotion:
		switch {
		case inBounds || m.captured:
			m.core, effects = m.core.Update(slider.Move(local))
		case m.inside:
			m.core, effects = m.core.Update(slider.Leave())
		}
	}

	m.inside = inBounds

	cmd := m.handle(effects)

	return m, cmd
}

func (m SliderModel) apply(event slider.Event) (SliderModel, tea.Cmd) {
	var effects []slider.Effect
	m.core, effects = m.core.Update(event)

	cmd := m.handle(effects)

	return m, cmd
}

func (m SliderModel) frame(at time.Time) (SliderModel, tea.Cmd) {
	delta := at.Sub(m.lastFrame)
	if m.lastFrame.IsZero() || delta < 0 {
		delta = m.frameInterval
	}

	m.lastFrame = at
	m.halo.Step(delta)

	if !m.halo.Animating() {
		m.animating = false

		return m, nil
	}

	return m, command.NextFrame(m.id, m.generation, m.frameInterval)
}

// Trigger runs a keyboard action.
func (m SliderModel) Trigger(action slider.Action) (SliderModel, tea.Cmd) {
	var effects []slider.Effect
	m.core, effects = m.core.TriggerAction(action)

	cmd := m.handle(effects)

	return m, cmd
}

func (m SliderModel) ToggleEnabled() (SliderModel, tea.Cmd) {
	var effects []slider.Effect
	m.core, effects = m.core.SetEnabled(!m.core.Enabled())

	if !m.core.Enabled() {
		m.captured = false
	}

	cmd := m.handle(effects)

	return m, tea.Batch(cmd, m.publish(m.core.Value(), false))
}

func (m SliderModel) TogglePageStepMode() (SliderModel, tea.Cmd) {
	m.core = m.core.SetPageStepMode(!m.core.PageStepMode())

	return m, m.publish(m.core.Value(), false)
}

func (m SliderModel) ToggleTracking() (SliderModel, tea.Cmd) {
	m.core = m.core.SetTracking(!m.core.Tracking())

	return m, m.publish(m.core.Value(), false)
}

func (m SliderModel) ToggleInverted() (SliderModel, tea.Cmd) {
	var effects []slider.Effect
	m.core, effects = m.core.SetInverted(!m.core.Inverted())

	cmd := m.handle(effects)

	return m, tea.Batch(cmd, m.publish(m.core.Value(), true))
}

// ToggleOrientation swaps the axis and the cell box with it.
func (m SliderModel) ToggleOrientation() (SliderModel, tea.Cmd) {
	orientation := slider.Vertical
	if m.core.Orientation() == slider.Vertical {
		orientation = slider.Horizontal
	}

	var effects, sized []slider.Effect

	size := m.core.Geometry().Size
	m.core, effects = m.core.SetOrientation(orientation)
	m.core, sized = m.core.SetSize(image.Pt(size.Y, size.X))

	cmd := m.handle(append(effects, sized...))

	return m, tea.Batch(cmd, m.publish(m.core.Value(), true))
}

// Reset returns to the configured value.
func (m SliderModel) Reset() (SliderModel, tea.Cmd) {
	var effects []slider.Effect
	m.core, effects = m.core.SetValue(m.initial)

	cmd := m.handle(effects)

	return m, cmd
}

// Restore applies persisted state without publishing it again.
func (m SliderModel) Restore(value int, pageStepMode bool, inverted bool, orientation slider.Orientation) SliderModel {
	m.core, _ = m.core.SetValue(value)
	m.core = m.core.SetPageStepMode(pageStepMode)
	m.core, _ = m.core.SetInverted(inverted)

	if orientation != m.core.Orientation() {
		size := m.core.Geometry().Size
		m.core, _ = m.core.SetOrientation(orientation)
		m.core, _ = m.core.SetSize(image.Pt(size.Y, size.X))
	}

	m.halo.Sync(m.core)

	return m
}

// handle feeds effects to the halo and the bus and maps the ones needing the runtime to commands.
func (m *SliderModel) handle(effects []slider.Effect) tea.Cmd {
	if len(effects) == 0 {
		return nil
	}

	m.halo.Apply(effects)
	m.bus.PublishEffects(effects)
	m.halo.Step(0)

	var (
		cmds     []tea.Cmd
		changed  bool
		previous int
		released bool
	)

	for _, effect := range effects {
		switch e := effect.(type) {
		case slider.ScheduleRepeat:
			cmds = append(cmds, command.RepeatAfter(m.id, e.Tag, e.After))
		case slider.Pressed:
			// A direct positioning press commits before it reports Pressed when tracking.
			m.pressValue = m.core.Value()
			if changed {
				m.pressValue = previous
			}
		case slider.Released:
			released = true
		case slider.ValueChanged:
			if !changed {
				previous = e.Old
				changed = true
			}
		case slider.TransitionFired:
			slog.Debug("Slider transition", slog.String("id", m.id), slog.String("transition", e.Transition.String()))
		}
	}

	switch {
	case released && m.core.Tracking() && m.core.Value() != m.pressValue:
		cmds = append(cmds, m.publish(m.pressValue, true))
	case changed:
		cmds = append(cmds, m.publish(previous, m.core.State() != slider.StateDragging))
	}

	if m.halo.Animating() && !m.animating {
		m.animating = true
		m.lastFrame = time.Time{}
		cmds = append(cmds, command.NextFrame(m.id, m.generation, m.frameInterval))
	}

	return tea.Batch(cmds...)
}

func (m SliderModel) publish(previous int, committed bool) tea.Cmd {
	return command.PublishState(m.State(previous, committed))
}

func (m SliderModel) State(previous int, committed bool) command.SliderState {
	return command.SliderState{
		ID:           m.id,
		Label:        m.label,
		Value:        m.core.Value(),
		Previous:     previous,
		Minimum:      m.core.Minimum(),
		Maximum:      m.core.Maximum(),
		State:        m.core.State().String(),
		PageStepMode: m.core.PageStepMode(),
		Tracking:     m.core.Tracking(),
		Inverted:     m.core.Inverted(),
		Enabled:      m.core.Enabled(),
		Orientation:  m.core.Orientation().String(),
		Committed:    committed,
	}
}

// Canvas paints the current state.
func (m SliderModel) Canvas() *Canvas {
	canvas := NewCanvas(m.core.Geometry().Size, m.core.Orientation(), m.pressedHalo)
	slider.Render(m.core, m.halo.Appearance(), canvas)

	return canvas
}

func (m SliderModel) View() string {
	size := m.core.Geometry().Size
	width := max(size.X, minContainerWidth)

	labelStyle := styles.SliderLabel
	if !m.core.Enabled() {
		labelStyle = styles.SliderLabelDisabled
	}

	value := styles.SliderValue.Render(humanize.Comma(int64(m.core.Position())))
	label := truncate.StringWithTail(m.label, uint(max(0, width-lipgloss.Width(value))), "…") //nolint:gosec
	header := lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), value)

	content := lipgloss.JoinVertical(lipgloss.Left, header, zone.Mark(m.zoneID, m.Canvas().String()))

	return model.Container(fmt.Sprintf("%s %s", m.id, m.core.State()), width, size.Y+1, content, m.focused)
}
