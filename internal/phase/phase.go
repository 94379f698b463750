// Package phase models the mutually exclusive display states of the upload
// page and the pure transitions between them.
package phase

import (
	"errors"
	"fmt"
)

// Phase is the primary display state of the page.
type Phase string

const (
	Idle    Phase = "idle"
	Loading Phase = "loading"
	Result  Phase = "result"
)

var allPhases = []Phase{Idle, Loading, Result}

// ErrInvalidTransition reports an event that is not accepted in the current phase.
var ErrInvalidTransition = errors.New("invalid phase transition")

// State is the full display state: the phase plus an optional error banner.
// The banner is only meaningful while idle.
type State struct {
	Phase  Phase
	Banner string
}

// Initial returns the state of a freshly loaded page.
func Initial() State {
	return State{Phase: Idle}
}

// EventKind enumerates the inputs that move the page between phases.
type EventKind string

const (
	EventReject  EventKind = "reject"
	EventSubmit  EventKind = "submit"
	EventSucceed EventKind = "succeed"
	EventFail    EventKind = "fail"
	EventReset   EventKind = "reset"
)

// Event is a transition input. Message carries the banner text for reject
// and fail events.
type Event struct {
	Kind    EventKind
	Message string
}

func Reject(message string) Event { return Event{Kind: EventReject, Message: message} }

func Submit() Event { return Event{Kind: EventSubmit} }

func Succeed() Event { return Event{Kind: EventSucceed} }

func Fail(message string) Event { return Event{Kind: EventFail, Message: message} }

func Reset() Event { return Event{Kind: EventReset} }

type transition struct {
	from Phase
	kind EventKind
}

var transitions = map[transition]Phase{
	{from: Idle, kind: EventReject}:     Idle,
	{from: Idle, kind: EventSubmit}:     Loading,
	{from: Loading, kind: EventSucceed}: Result,
	{from: Loading, kind: EventFail}:    Idle,
	{from: Result, kind: EventReset}:    Idle,
}

// Transition applies ev to current and returns the next state. It never
// mutates its input. Unknown pairs return ErrInvalidTransition and the
// unchanged state.
func Transition(current State, ev Event) (State, error) {
	to, ok := transitions[transition{from: current.Phase, kind: ev.Kind}]
	if !ok {
		return current, fmt.Errorf("%w: %s in %s", ErrInvalidTransition, ev.Kind, current.Phase)
	}
	next := State{Phase: to, Banner: current.Banner}
	switch ev.Kind {
	case EventReject, EventFail:
		next.Banner = ev.Message
	case EventSubmit:
		next.Banner = ""
	case EventReset:
		// Reset leaves a previously shown banner in place.
	}
	return next, nil
}

// Accepts reports whether ev is valid in the current state.
func Accepts(current State, ev EventKind) bool {
	_, ok := transitions[transition{from: current.Phase, kind: ev}]
	return ok
}

// Visibility is the per-panel layout derived from a State.
type Visibility struct {
	Hero    bool
	Upload  bool
	Loading bool
	Result  bool
	Banner  bool
}

// Layout derives panel visibility from state.
func Layout(s State) Visibility {
	switch s.Phase {
	case Loading:
		return Visibility{Loading: true}
	case Result:
		return Visibility{Result: true}
	default:
		return Visibility{Hero: true, Upload: true, Banner: s.Banner != ""}
	}
}

// Valid reports whether exactly one of {idle panels, loading, result} is
// shown and the banner only appears alongside the idle panels.
func (v Visibility) Valid() bool {
	if v.Hero != v.Upload {
		return false
	}
	shown := 0
	for _, on := range []bool{v.Upload, v.Loading, v.Result} {
		if on {
			shown++
		}
	}
	if shown != 1 {
		return false
	}
	return !v.Banner || v.Upload
}

// Known reports whether p is one of the defined phases.
func Known(p Phase) bool {
	for _, candidate := range allPhases {
		if candidate == p {
			return true
		}
	}
	return false
}
