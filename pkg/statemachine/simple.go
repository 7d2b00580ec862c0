package statemachine

import (
	"context"
	"fmt"
	"sync"
)

// SimpleStateMachine is a mutex-guarded in-memory state machine.
// Transitions are indexed as [fromState][event][]Transition.
type SimpleStateMachine struct {
	initialState State
	currentState State
	transitions  map[string]map[string][]Transition
	terminal     map[string]bool
	observers    []Observer
	trail        []State
	mu           sync.Mutex
}

func newSimpleStateMachine(initialState State) *SimpleStateMachine {
	return &SimpleStateMachine{
		initialState: initialState,
		currentState: initialState,
		transitions:  make(map[string]map[string][]Transition),
		terminal:     make(map[string]bool),
		trail:        []State{initialState},
	}
}

func (sm *SimpleStateMachine) Current() State {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.currentState
}

// IsTerminal reports whether the current state was registered with WithTerminal.
func (sm *SimpleStateMachine) IsTerminal() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.terminal[sm.currentState.Name()]
}

// Trail returns every state visited since construction or the last Reset,
// starting with the initial state.
func (sm *SimpleStateMachine) Trail() []State {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	out := make([]State, len(sm.trail))
	copy(out, sm.trail)
	return out
}

func (sm *SimpleStateMachine) addTransition(t Transition) error {
	if t.From == nil || t.To == nil || t.Event == nil {
		return ErrInvalidTransition
	}

	from, event := t.From.Name(), t.Event.Name()
	if _, ok := sm.transitions[from]; !ok {
		sm.transitions[from] = make(map[string][]Transition)
	}
	// Several transitions per from/event pair allow guard-based branching.
	sm.transitions[from][event] = append(sm.transitions[from][event], t)
	return nil
}

// Fire applies the first transition whose guards all pass. Actions run before
// the state changes; a failing action leaves the machine where it was.
// Observers run after the change, outside the lock.
func (sm *SimpleStateMachine) Fire(ctx context.Context, event Event, data any) error {
	if event == nil {
		return ErrInvalidEvent
	}

	sm.mu.Lock()
	from := sm.currentState

	if sm.terminal[from.Name()] {
		sm.mu.Unlock()
		return NewErrTerminalState(from.Name(), event.Name())
	}

	t, err := sm.match(ctx, from, event, data)
	if err != nil {
		sm.mu.Unlock()
		return err
	}

	for _, action := range t.Actions {
		if err := action(ctx, from, t.To, event, data); err != nil {
			sm.mu.Unlock()
			return fmt.Errorf("action failed: %w", err)
		}
	}

	sm.currentState = t.To
	sm.trail = append(sm.trail, t.To)
	observers := sm.observers
	sm.mu.Unlock()

	for _, o := range observers {
		o(ctx, from, t.To, event)
	}
	return nil
}

func (sm *SimpleStateMachine) CanFire(ctx context.Context, event Event, data any) bool {
	if event == nil {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.terminal[sm.currentState.Name()] {
		return false
	}
	_, err := sm.match(ctx, sm.currentState, event, data)
	return err == nil
}

// Must be called with lock held.
func (sm *SimpleStateMachine) match(ctx context.Context, from State, event Event, data any) (*Transition, error) {
	candidates := sm.transitions[from.Name()][event.Name()]
	if len(candidates) == 0 {
		return nil, NewErrNoTransitionAvailable(from.Name(), event.Name())
	}

	for i := range candidates {
		if guardsPass(ctx, candidates[i].Guards, from, event, data) {
			return &candidates[i], nil
		}
	}
	return nil, NewErrTransitionRejected(from.Name(), event.Name())
}

func guardsPass(ctx context.Context, guards []Guard, from State, event Event, data any) bool {
	for _, g := range guards {
		if !g(ctx, from, event, data) {
			return false
		}
	}
	return true
}

func (sm *SimpleStateMachine) Reset() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.currentState = sm.initialState
	sm.trail = []State{sm.initialState}
	return nil
}
