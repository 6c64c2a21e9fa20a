package slider

import "slices"

// Transition is a named, edge triggered visual state change. The animation layer is the only
// consumer, it decides what if anything to play for each.
type Transition int

const (
	ReachedMinimum Transition = iota
	ReachedMaximum
	LeftMinimum
	Enabled
	Disabled
)

func (t Transition) String() string {
	switch t {
	case ReachedMinimum:
		return "reached_minimum"
	case ReachedMaximum:
		return "reached_maximum"
	case LeftMinimum:
		return "left_minimum"
	case Enabled:
		return "enabled"
	case Disabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// ValueTransitions returns the transitions caused by the value moving from oldValue to newValue.
// Nothing fires when the value did not change. Reaching the minimum and reaching the maximum are
// mutually exclusive, the minimum wins for a degenerate range.
func ValueTransitions(oldValue int, newValue int, minimum int, maximum int) []Transition {
	if oldValue == newValue {
		return nil
	}

	var transitions []Transition

	switch newValue {
	case minimum:
		transitions = append(transitions, ReachedMinimum)
	case maximum:
		transitions = append(transitions, ReachedMaximum)
	}

	if oldValue == minimum {
		transitions = append(transitions, LeftMinimum)
	}

	return transitions
}

// EnabledTransition returns Enabled or Disabled when the flag actually flips.
func EnabledTransition(oldEnabled bool, newEnabled bool) (Transition, bool) {
	if oldEnabled == newEnabled {
		return 0, false
	}

	if newEnabled {
		return Enabled, true
	}

	return Disabled, true
}

// Observer receives published transitions.
type Observer func(Transition)

// Bus fans transitions out to subscribers in subscription order. It is meant to be used from the
// single ui goroutine and does no locking.
type Bus struct {
	next      int
	observers map[int]Observer
	order     []int
}

func NewBus() *Bus {
	return &Bus{observers: make(map[int]Observer)}
}

// Subscribe registers fn and returns a func that removes it again.
func (b *Bus) Subscribe(fn Observer) func() {
	id := b.next
	b.next++
	b.observers[id] = fn
	b.order = append(b.order, id)

	return func() {
		if _, found := b.observers[id]; !found {
			return
		}

		delete(b.observers, id)

		for idx, existing := range b.order {
			if existing == id {
				b.order = append(b.order[:idx], b.order[idx+1:]...)

				break
			}
		}
	}
}

// Publish delivers t exactly once to every current subscriber.
func (b *Bus) Publish(t Transition) {
	for _, id := range slices.Clone(b.order) {
		if fn, found := b.observers[id]; found {
			fn(t)
		}
	}
}

// PublishEffects publishes every TransitionFired found in effects.
func (b *Bus) PublishEffects(effects []Effect) {
	for _, effect := range effects {
		if fired, ok := effect.(TransitionFired); ok {
			b.Publish(fired.Transition)
		}
	}
}

func (b *Bus) Len() int {
	return len(b.order)
}
