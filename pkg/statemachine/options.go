package statemachine

import (
	"errors"
	"fmt"
)

// Option configures a state machine during construction.
type Option func(*SimpleStateMachine) error

// TransitionOption configures a single transition with guards and actions.
type TransitionOption func(*Transition)

// New creates a new state machine with the given initial state and options.
func New(initialState State, opts ...Option) (StateMachine, error) {
	if initialState == nil {
		return nil, errors.New("initial state cannot be nil")
	}

	sm := newSimpleStateMachine(initialState)
	for _, opt := range opts {
		if err := opt(sm); err != nil {
			return nil, err
		}
	}
	return sm, nil
}

// MustNew is like New but panics when an option fails.
func MustNew(initialState State, opts ...Option) StateMachine {
	sm, err := New(initialState, opts...)
	if err != nil {
		panic(fmt.Sprintf("failed to create state machine: %v", err))
	}
	return sm
}

// WithTransition adds a single transition to the state machine.
func WithTransition(from, to State, event Event, opts ...TransitionOption) Option {
	return func(sm *SimpleStateMachine) error {
		t := Transition{From: from, To: to, Event: event}
		for _, opt := range opts {
			opt(&t)
		}
		if err := sm.addTransition(t); err != nil {
			return fmt.Errorf("transition %s -> %s on %s: %w", nameOf(from), nameOf(to), nameOf(event), err)
		}
		return nil
	}
}

// WithTransitions adds a prepared table of transitions.
func WithTransitions(ts ...Transition) Option {
	return func(sm *SimpleStateMachine) error {
		for i, t := range ts {
			if err := sm.addTransition(t); err != nil {
				return fmt.Errorf("transition[%d] %s -> %s on %s: %w",
					i, nameOf(t.From), nameOf(t.To), nameOf(t.Event), err)
			}
		}
		return nil
	}
}

// WithTerminal marks states that accept no further events.
func WithTerminal(states ...State) Option {
	return func(sm *SimpleStateMachine) error {
		for _, s := range states {
			if s == nil {
				return ErrInvalidTransition
			}
			sm.terminal[s.Name()] = true
		}
		return nil
	}
}

// WithObserver registers a callback run after each committed transition.
func WithObserver(o Observer) Option {
	return func(sm *SimpleStateMachine) error {
		if o != nil {
			sm.observers = append(sm.observers, o)
		}
		return nil
	}
}

// WithGuard adds a guard to a transition. Nil guards are ignored.
func WithGuard(guards ...Guard) TransitionOption {
	return func(t *Transition) {
		for _, g := range guards {
			if g != nil {
				t.Guards = append(t.Guards, g)
			}
		}
	}
}

// WithAction adds an action to a transition. Nil actions are ignored.
func WithAction(actions ...Action) TransitionOption {
	return func(t *Transition) {
		for _, a := range actions {
			if a != nil {
				t.Actions = append(t.Actions, a)
			}
		}
	}
}

type named interface{ Name() string }

func nameOf(n named) string {
	if n == nil {
		return "<nil>"
	}
	return n.Name()
}
