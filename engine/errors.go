package engine

import "errors"

// ErrFatalSeed is surfaced when a contradiction occurs with no snapshot
// to roll back to — either the initial seed was inconsistent, or a
// contradiction reached all the way back past the first decision
// (spec §4.8, §7).
var ErrFatalSeed = errors.New("engine: fatal seed, contradiction with no snapshot to roll back to")

// ErrUnsatisfiable is surfaced when the rollback budget (max_retries) is
// exhausted without finding a consistent assignment (spec §4.8, §7).
var ErrUnsatisfiable = errors.New("engine: unsatisfiable, retry budget exhausted")

// ErrCallbackFailure wraps a subscriber that panicked or re-entered the
// engine synchronously from inside an event callback (spec §4.6, §7
// [FULL]).
type ErrCallbackFailure struct {
	Err error
}

func (e *ErrCallbackFailure) Error() string {
	return "engine: callback failure: " + e.Err.Error()
}

func (e *ErrCallbackFailure) Unwrap() error { return e.Err }

// ErrReentrantCall is wrapped by ErrCallbackFailure when a subscriber
// calls back into the engine synchronously from inside an event
// handler (spec §4.6: "subscribers must not mutate the engine").
var ErrReentrantCall = errors.New("engine: reentrant call from inside an event callback")

// ErrNotRunning is returned by Step when the engine has not been
// started, or has already reached a terminal state.
var ErrNotRunning = errors.New("engine: not in a runnable state")
