package resttimer

import (
	"errors"
	"fmt"
	"sync"
)

var ErrInvalidTransition = errors.New("invalid timer transition")

type State int

const (
	Idle State = iota
	Running
	Paused
	Expired
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Expired:
		return "expired"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Timer is a rest countdown in whole seconds. It does not tick by itself, see
// Countdown. Safe for concurrent use.
type Timer struct {
	mutex     sync.Mutex
	state     State
	remaining int
}

func New() *Timer {
	return &Timer{}
}

func (t *Timer) State() State {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.state
}

func (t *Timer) Remaining() int {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	return t.remaining
}

func (t *Timer) invalid(action string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidTransition, action, t.state)
}

// Start begins a countdown from Idle or Expired. A non-positive duration
// expires right away.
func (t *Timer) Start(seconds int) error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.state != Idle && t.state != Expired {
		return t.invalid("start")
	}
	if seconds <= 0 {
		t.state, t.remaining = Expired, 0
		return nil
	}
	t.state, t.remaining = Running, seconds
	return nil
}

// Tick takes one second off a running timer and reports the new state.
func (t *Timer) Tick() (State, error) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.state != Running {
		return t.state, t.invalid("tick")
	}
	t.remaining--
	if t.remaining <= 0 {
		t.state, t.remaining = Expired, 0
	}
	return t.state, nil
}

func (t *Timer) Pause() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.state != Running {
		return t.invalid("pause")
	}
	t.state = Paused
	return nil
}

func (t *Timer) Resume() error {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	if t.state != Paused {
		return t.invalid("resume")
	}
	t.state = Running
	return nil
}

// Cancel resets the timer to Idle from any state.
func (t *Timer) Cancel() {
	t.mutex.Lock()
	defer t.mutex.Unlock()
	t.state, t.remaining = Idle, 0
}
