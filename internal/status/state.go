package status

import (
	"fmt"
	"slices"
	"sync"

	"github.com/bondly/bondly/internal/bus"
)

// State is the connection state of the realtime ingestion channel.
type State string

const (
	Disconnected State = "DISCONNECTED"
	Connecting   State = "CONNECTING"
	Subscribed   State = "SUBSCRIBED"
)

var validTransitions = map[State][]State{
	Disconnected: {Connecting},
	Connecting:   {Subscribed, Disconnected},
	Subscribed:   {Disconnected},
}

// Machine tracks and enforces channel state transitions.
type Machine struct {
	mu      sync.RWMutex
	current State
	bus     *bus.Bus
}

// NewMachine creates a machine in the Disconnected state. b may be nil.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{current: Disconnected, bus: b}
}

// Current returns the current state.
func (m *Machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition moves to a new state or returns an error if the move is invalid.
func (m *Machine) Transition(to State) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !slices.Contains(validTransitions[m.current], to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	if m.bus != nil {
		m.bus.Publish(bus.NewEvent(bus.KindChannelState, StatusChange{From: from, To: to}))
	}
	return nil
}

// Reset forces the machine back to Disconnected from any state. It reports
// whether a transition happened.
func (m *Machine) Reset() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == Disconnected {
		return false
	}
	from := m.current
	m.current = Disconnected
	if m.bus != nil {
		m.bus.Publish(bus.NewEvent(bus.KindChannelState, StatusChange{From: from, To: Disconnected}))
	}
	return true
}

// StatusChange is the payload of channel.state_changed events.
type StatusChange struct {
	From State
	To   State
}

// Presence renders the display string for a counterpart's online flag.
func Presence(online bool) string {
	if online {
		return "Active now"
	}
	return "Last seen recently"
}
