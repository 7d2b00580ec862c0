// Package statemachine implements a small finite state machine with guards,
// actions, terminal states and transition observers.
//
// States and events are anything with a Name method; StringState and
// StringEvent cover the common case. Transitions are registered at
// construction time through options:
//
//	const (
//		Idle     = statemachine.StringState("idle")
//		Fetching = statemachine.StringState("fetching")
//		Done     = statemachine.StringState("done")
//
//		Start  = statemachine.StringEvent("start")
//		Finish = statemachine.StringEvent("finish")
//	)
//
//	sm := statemachine.MustNew(Idle,
//		statemachine.WithTransition(Idle, Fetching, Start),
//		statemachine.WithTransition(Fetching, Done, Finish,
//			statemachine.WithAction(recordResult),
//		),
//		statemachine.WithTerminal(Done),
//		statemachine.WithObserver(logTransition),
//	)
//
//	err := sm.Fire(ctx, Start, nil)
//
// When several transitions share a from/event pair, the first one whose guards
// all pass wins, which allows branching on runtime data. Actions run in order
// before the state changes; an error from any of them aborts the transition.
// Firing from a terminal state returns *ErrTerminalState.
//
// Machines are cheap to build, so a fresh machine per request keeps state out
// of shared globals. All methods are safe for concurrent use.
package statemachine
