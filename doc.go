// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package retryio decorates byte-stream resources so that transient
// interruptions are retried instead of surfacing as errors.
//
// An interrupted attempt (see ErrInterrupted, IsInterrupted) means the
// operation was cut short before making progress and should simply be tried
// again unchanged. The wrappers in this package absorb that one error kind in
// their primitive operations (Read, Fill, Write) and pass every other
// outcome through untouched on first occurrence.
//
// Retry coverage is deliberately limited to the primitives. Convenience
// operations (ReadFull, ReadAll, ReadBytes, WriteAll, ...) are forwarded once
// to the wrapped resource's own implementation, so their robustness to
// interruption is whatever the resource itself provides. Since the wrappers
// satisfy the standard io interfaces, callers wanting uniform robustness can
// instead run the stdlib composites against the wrapper, e.g.
// io.ReadAll(retryio.NewReader(r)).
//
// The default retry loop is tight and unbounded: no backoff, no yielding, no
// cap. If the resource reports interruption forever, the loop spins forever.
// That matches the "retry forever on this specific transient condition"
// contract; callers who want different pacing opt in with a RetryPolicy
// (see NewReaderPolicy and friends).
package retryio
