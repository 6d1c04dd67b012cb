// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package retryio

import (
	"fmt"
	"io"
)

// Flusher is the optional flush capability of a sink. bufio.Writer and
// similar buffered sinks implement it.
type Flusher interface {
	Flush() error
}

// Writer wraps a byte sink and absorbs transient interruptions in its Write
// primitive. All other operations are forwarded to the wrapped sink.
//
// Writer satisfies io.Writer.
type Writer[T io.Writer] struct {
	inner  T
	policy RetryPolicy
}

// NewWriter wraps dst with the default retry behavior: every interrupted
// attempt is reissued immediately, without bound.
func NewWriter[T io.Writer](dst T) *Writer[T] {
	return &Writer[T]{inner: dst}
}

// NewWriterPolicy is like NewWriter but consults policy on each interrupted
// attempt. A nil policy is identical to NewWriter.
func NewWriterPolicy[T io.Writer](dst T, policy RetryPolicy) *Writer[T] {
	return &Writer[T]{inner: dst, policy: policy}
}

// Write writes p by reissuing the inner Write until it produces a terminal
// outcome. An interrupted attempt accepted no bytes and leaves no trace in
// the returned count; any other result (a byte count or a non-interrupted
// error) is returned unchanged on first occurrence.
func (w *Writer[T]) Write(p []byte) (int, error) {
	for {
		n, err := w.inner.Write(p)
		if IsTerminal(err) {
			return n, err
		}
		if w.policy != nil {
			if w.policy.OnInterrupted(OpWrite) == PolicyReturn {
				return n, err
			}
			w.policy.Yield(OpWrite)
		}
	}
}

// Flush flushes pending output if the inner sink implements Flusher, and is
// a no-op otherwise. Forwarded once, not routed through the retrying Write.
func (w *Writer[T]) Flush() error {
	if f, ok := any(w.inner).(Flusher); ok {
		return f.Flush()
	}
	return nil
}

// WriteAll writes all of p against the inner sink, issuing as many inner
// writes as needed. It is not routed through the retrying Write, so an
// interruption mid-drain surfaces unless the sink handles it itself. Returns
// io.ErrShortWrite if the sink accepts nothing without reporting an error.
func (w *Writer[T]) WriteAll(p []byte) error {
	for len(p) > 0 {
		n, err := w.inner.Write(p)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		p = p[n:]
	}
	return nil
}

// Printf writes formatted text to the inner sink via fmt.Fprintf. Forwarded
// once; same interruption caveat as WriteAll.
func (w *Writer[T]) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.inner, format, args...)
}

// Unwrap returns the inner sink unchanged and ends the wrapping
// relationship. The Writer must not be used afterwards.
func (w *Writer[T]) Unwrap() T { return w.inner }
