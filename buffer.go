// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package retryio

import (
	"bufio"
	"io"
)

// BufferedReader is the buffered input capability: sequential reads plus
// direct access to the unread buffer contents with explicit consumption.
//
// Fill returns a view of the currently buffered, unread bytes, refilling
// from the source when the buffer is empty; at end of stream it reports
// io.EOF. Consume marks n bytes of the last Fill view as read without
// copying and must not be called with n larger than that view.
//
// *bufio.Reader does not expose the fill primitive directly; wrap it with
// AsBuffered.
type BufferedReader interface {
	io.Reader
	Fill() ([]byte, error)
	Consume(n int)
	ReadBytes(delim byte) ([]byte, error)
	ReadString(delim byte) (string, error)
}

// BufReader wraps a buffered byte source and absorbs transient interruptions
// in its Read and Fill primitives. Consume performs no I/O and the
// delimiter-oriented reads are forwarded, so none of them retries.
//
// BufReader satisfies BufferedReader (and io.Reader).
type BufReader[T BufferedReader] struct {
	inner  T
	policy RetryPolicy
}

// NewBufReader wraps src with the default retry behavior: every interrupted
// attempt is reissued immediately, without bound.
func NewBufReader[T BufferedReader](src T) *BufReader[T] {
	return &BufReader[T]{inner: src}
}

// NewBufReaderPolicy is like NewBufReader but consults policy on each
// interrupted attempt. A nil policy is identical to NewBufReader.
func NewBufReaderPolicy[T BufferedReader](src T, policy RetryPolicy) *BufReader[T] {
	return &BufReader[T]{inner: src, policy: policy}
}

// Read reads into p by reissuing the inner Read until it produces a terminal
// outcome, with the same contract as Reader.Read.
func (b *BufReader[T]) Read(p []byte) (int, error) {
	for {
		n, err := b.inner.Read(p)
		if IsTerminal(err) {
			return n, err
		}
		if b.policy != nil {
			if b.policy.OnInterrupted(OpRead) == PolicyReturn {
				return n, err
			}
			b.policy.Yield(OpRead)
		}
	}
}

// Fill returns a view of the unread buffered bytes, reissuing the inner
// refill until it settles on a terminal outcome. After a successful refill
// loop the buffer view is queried once more, so the returned slice reflects
// the settled, non-interrupted state. An interrupted refill leaves the
// buffer untouched.
func (b *BufReader[T]) Fill() ([]byte, error) {
	for {
		_, err := b.inner.Fill()
		if err == nil {
			break
		}
		if IsTerminal(err) {
			return nil, err
		}
		if b.policy != nil {
			if b.policy.OnInterrupted(OpFill) == PolicyReturn {
				return nil, err
			}
			b.policy.Yield(OpFill)
		}
	}
	return b.inner.Fill()
}

// Consume marks n bytes of the last Fill view as read. It performs no I/O
// and is forwarded directly with no retry semantics.
func (b *BufReader[T]) Consume(n int) { b.inner.Consume(n) }

// ReadBytes reads until the first occurrence of delim. Forwarded once
// against the inner source, not routed through the retrying primitives, so
// an interruption mid-scan surfaces unless the source handles it itself.
func (b *BufReader[T]) ReadBytes(delim byte) ([]byte, error) {
	return b.inner.ReadBytes(delim)
}

// ReadString is like ReadBytes but returns a string. Forwarded once; same
// interruption caveat.
func (b *BufReader[T]) ReadString(delim byte) (string, error) {
	return b.inner.ReadString(delim)
}

// Unwrap returns the inner source unchanged and ends the wrapping
// relationship. The BufReader must not be used afterwards.
func (b *BufReader[T]) Unwrap() T { return b.inner }

// BufioAdapter adapts a *bufio.Reader to the BufferedReader capability.
type BufioAdapter struct{ R *bufio.Reader }

// Read forwards to the underlying bufio.Reader.
func (a BufioAdapter) Read(p []byte) (int, error) { return a.R.Read(p) }

// Fill exposes bufio's unread buffer contents. An empty buffer is refilled
// through Peek, so a read error from the source (including an interruption)
// is reported here and the next Fill triggers a fresh attempt.
func (a BufioAdapter) Fill() ([]byte, error) {
	if a.R.Buffered() == 0 {
		if _, err := a.R.Peek(1); err != nil {
			return nil, err
		}
	}
	return a.R.Peek(a.R.Buffered())
}

// Consume discards n buffered bytes. Callers must keep n within the last
// Fill view, so the discard never reaches the source.
func (a BufioAdapter) Consume(n int) { _, _ = a.R.Discard(n) }

// ReadBytes forwards to the underlying bufio.Reader.
func (a BufioAdapter) ReadBytes(delim byte) ([]byte, error) { return a.R.ReadBytes(delim) }

// ReadString forwards to the underlying bufio.Reader.
func (a BufioAdapter) ReadString(delim byte) (string, error) { return a.R.ReadString(delim) }

// AsBuffered wraps r so that it satisfies BufferedReader.
func AsBuffered(r *bufio.Reader) BufferedReader { return BufioAdapter{R: r} }
