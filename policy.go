// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package retryio

import "runtime"

// Op identifies which retrying primitive observed the interruption.
//
// This is intentionally coarse-grained: it lets a RetryPolicy distinguish
// read-side from write-side interruptions (e.g., give up on writes but keep
// retrying reads) without seeing the wrapped resource itself.
type Op uint8

const (
	OpRead Op = iota
	OpFill
	OpWrite
)

func (op Op) String() string {
	switch op {
	case OpRead:
		return "Read"
	case OpFill:
		return "Fill"
	case OpWrite:
		return "Write"
	default:
		return "Op(unknown)"
	}
}

// PolicyAction tells a wrapper whether it should return to the caller
// or attempt the operation again.
type PolicyAction uint8

const (
	// PolicyReturn means: stop retrying and surface the interrupted error
	// to the caller unchanged.
	PolicyReturn PolicyAction = iota

	// PolicyRetry means: do not return; retry after Yield.
	PolicyRetry
)

// RetryPolicy customizes how a wrapper reacts to an interrupted attempt.
//
// Contract expectations:
//   - OnInterrupted is only consulted for interrupted attempts; terminal
//     outcomes are always returned to the caller immediately.
//   - If PolicyRetry is returned, the wrapper calls Yield(op) and then
//     reissues the attempt.
//   - If Yield(op) does not wait, the wrapper may spin.
//
// A nil RetryPolicy (the default constructors) keeps the package default:
// retry immediately, unbounded, without yielding.
type RetryPolicy interface {
	Yield(op Op)
	OnInterrupted(op Op) PolicyAction
}

// PolicyFunc is a convenience implementation for callers that want to inject
// behavior without defining a struct type.
//
// Default behaviors when fields are nil:
//   - YieldFunc: calls runtime.Gosched() to yield the processor
//   - InterruptedFunc: returns PolicyRetry (keep absorbing interruptions)
//
// Bounded retry is a counting InterruptedFunc that flips to PolicyReturn
// once the budget is spent.
type PolicyFunc struct {
	YieldFunc       func(op Op)
	InterruptedFunc func(op Op) PolicyAction
}

func (p PolicyFunc) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p PolicyFunc) OnInterrupted(op Op) PolicyAction {
	if p.InterruptedFunc != nil {
		return p.InterruptedFunc(op)
	}
	return PolicyRetry
}

// SpinPolicy is the package default spelled out as a value: retry every
// interruption immediately and never yield. Passing it to a New*Policy
// constructor behaves exactly like the plain constructor.
type SpinPolicy struct{}

func (SpinPolicy) Yield(Op) {}

func (SpinPolicy) OnInterrupted(Op) PolicyAction { return PolicyRetry }

// ReturnPolicy never retries: every interrupted attempt is surfaced to the
// caller as its error. Useful when the caller drives its own retry loop and
// only wants the capability forwarding of the wrappers.
type ReturnPolicy struct{}

func (ReturnPolicy) Yield(Op) {}

func (ReturnPolicy) OnInterrupted(Op) PolicyAction { return PolicyReturn }

// YieldPolicy retries every interruption but yields the processor between
// attempts, keeping a hot interrupt storm from monopolizing the thread.
//
// Default Yield behavior: runtime.Gosched().
type YieldPolicy struct {
	// YieldFunc is invoked before each reissued attempt.
	// It may spin, park, poll, run an event-loop tick, etc.
	YieldFunc func(op Op)
}

func (p YieldPolicy) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (YieldPolicy) OnInterrupted(Op) PolicyAction { return PolicyRetry }

// BackoffPolicy retries every interruption with a growing sleep between
// attempts (see Backoff). The zero value is ready to use with the default
// base and ceiling.
//
// BackoffPolicy carries mutable pacing state; do not share one value across
// wrappers that should back off independently.
type BackoffPolicy struct {
	Backoff Backoff
}

func (p *BackoffPolicy) Yield(Op) { p.Backoff.Wait() }

func (p *BackoffPolicy) OnInterrupted(Op) PolicyAction { return PolicyRetry }
