// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package retryio

import "io"

// Reader wraps a sequential byte source and absorbs transient interruptions
// in its Read primitive. All other operations are forwarded to the wrapped
// source.
//
// A Reader owns its inner source exclusively: construct it with NewReader,
// reclaim the source with Unwrap. The wrapper itself keeps no buffering or
// partial-operation state between calls.
//
// Reader satisfies io.Reader, so it drops into any API that takes one.
type Reader[T io.Reader] struct {
	inner  T
	policy RetryPolicy
}

// NewReader wraps src with the default retry behavior: every interrupted
// attempt is reissued immediately, without bound.
func NewReader[T io.Reader](src T) *Reader[T] {
	return &Reader[T]{inner: src}
}

// NewReaderPolicy is like NewReader but consults policy on each interrupted
// attempt. A nil policy is identical to NewReader.
func NewReaderPolicy[T io.Reader](src T, policy RetryPolicy) *Reader[T] {
	return &Reader[T]{inner: src, policy: policy}
}

// Read reads into p by reissuing the inner Read until it produces a terminal
// outcome. An interrupted attempt made no progress and leaves no trace in p
// or the returned count; any other result (a byte count, io.EOF, or another
// error) is returned unchanged on first occurrence.
func (r *Reader[T]) Read(p []byte) (int, error) {
	for {
		n, err := r.inner.Read(p)
		if IsTerminal(err) {
			return n, err
		}
		if r.policy != nil {
			if r.policy.OnInterrupted(OpRead) == PolicyReturn {
				return n, err
			}
			r.policy.Yield(OpRead)
		}
	}
}

// ReadFull reads exactly len(p) bytes. It is forwarded once against the
// inner source, not routed through the retrying Read, so an interruption
// mid-fill surfaces unless the source handles it itself. Use
// io.ReadFull(r, p) on the wrapper for per-attempt retry coverage.
func (r *Reader[T]) ReadFull(p []byte) (int, error) {
	return io.ReadFull(r.inner, p)
}

// ReadAll reads the inner source until end of stream. Forwarded once; same
// interruption caveat as ReadFull.
func (r *Reader[T]) ReadAll() ([]byte, error) {
	return io.ReadAll(r.inner)
}

// ReadAllString reads the inner source until end of stream and returns the
// accumulated bytes as a string. Forwarded once; same interruption caveat as
// ReadFull.
func (r *Reader[T]) ReadAllString() (string, error) {
	b, err := io.ReadAll(r.inner)
	return string(b), err
}

// Unwrap returns the inner source unchanged and ends the wrapping
// relationship. The Reader must not be used afterwards.
func (r *Reader[T]) Unwrap() T { return r.inner }
