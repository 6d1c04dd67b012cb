// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package retryio

import (
	"errors"
	"syscall"
)

// Outcome classifies a single attempt's result for retry purposes.
//
// OutcomeOK:          success, the call is done.
// OutcomeInterrupted: no progress was made; the attempt should be reissued.
// OutcomeFailure:     any other error, including io.EOF — the wrappers treat
// end-of-stream as a terminal outcome like any other.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeInterrupted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeInterrupted:
		return "Interrupted"
	default:
		return "Failure"
	}
}

// IsInterrupted reports whether err carries the transient-interruption
// semantic. It returns true for ErrInterrupted and wrappers (via errors.Is),
// and for syscall.EINTR as it escapes real kernel I/O wrapped in
// *os.PathError or *os.SyscallError chains.
func IsInterrupted(err error) bool {
	return errors.Is(err, ErrInterrupted) || errors.Is(err, syscall.EINTR)
}

// IsTerminal reports whether err ends a primitive call as seen by the
// wrappers: nil or any non-interrupted error.
func IsTerminal(err error) bool { return !IsInterrupted(err) }

// Classify maps err to an Outcome. Use when a compact switch is preferred.
//
// Note: classification depends solely on the error value the caller passes;
// standard library sentinels like io.EOF are not reinterpreted.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}
	if IsInterrupted(err) {
		return OutcomeInterrupted
	}
	return OutcomeFailure
}
