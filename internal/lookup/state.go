package lookup

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/gstcheck/pkg/statemachine"
)

// Flow states. A lookup ends in one of the last three, or back in StateIdle
// when the input was rejected.
const (
	StateIdle       statemachine.StringState = "idle"
	StateValidating statemachine.StringState = "validating"
	StateFetching   statemachine.StringState = "fetching"
	StateSuccess    statemachine.StringState = "success"
	StateNotFound   statemachine.StringState = "not_found"
	StateError      statemachine.StringState = "error"
)

const (
	eventSubmit  statemachine.StringEvent = "submit"
	eventReject  statemachine.StringEvent = "reject"
	eventAccept  statemachine.StringEvent = "accept"
	eventFound   statemachine.StringEvent = "found"
	eventMissing statemachine.StringEvent = "missing"
	eventFail    statemachine.StringEvent = "fail"
)

func newFlow(log *slog.Logger) statemachine.StateMachine {
	return statemachine.MustNew(StateIdle,
		statemachine.WithTransition(StateIdle, StateValidating, eventSubmit),
		statemachine.WithTransition(StateValidating, StateIdle, eventReject),
		statemachine.WithTransition(StateValidating, StateFetching, eventAccept),
		statemachine.WithTransition(StateFetching, StateSuccess, eventFound),
		statemachine.WithTransition(StateFetching, StateNotFound, eventMissing),
		statemachine.WithTransition(StateFetching, StateError, eventFail),
		statemachine.WithTerminal(StateSuccess, StateNotFound, StateError),
		statemachine.WithObserver(func(ctx context.Context, from, to statemachine.State, ev statemachine.Event) {
			log.DebugContext(ctx, "lookup transition",
				slog.String("from", from.Name()),
				slog.String("to", to.Name()),
				slog.String("event", ev.Name()),
			)
		}),
	)
}
