// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package retryio_test

import (
	"bytes"
	"io"
	"os"
	"syscall"
)

// Scripted fakes shared across the wrapper tests. Each attempt consumes one
// script step; an exhausted script means end of stream (readers) or plain
// success (writers). Attempt counters let tests assert retries-per-call.

type step struct {
	b   []byte
	err error
}

type scriptedReader struct {
	steps    []step
	attempts int
}

func (s *scriptedReader) Read(p []byte) (int, error) {
	s.attempts++
	if len(s.steps) == 0 {
		return 0, io.EOF
	}
	st := s.steps[0]
	s.steps = s.steps[1:]
	if st.err != nil {
		return 0, st.err
	}
	return copy(p, st.b), nil
}

type scriptedWriter struct {
	script   []error
	attempts int
	data     []byte
}

func (w *scriptedWriter) Write(p []byte) (int, error) {
	w.attempts++
	if len(w.script) > 0 {
		e := w.script[0]
		w.script = w.script[1:]
		if e != nil {
			return 0, e
		}
	}
	w.data = append(w.data, p...)
	return len(p), nil
}

// scriptedBuffered is a BufferedReader whose refill fails with the scripted
// errors before exposing buf. Errors are consumed by whichever operation
// trips over them first, mimicking a source whose underlying reads get
// interrupted.
type scriptedBuffered struct {
	fillErrs []error
	buf      []byte
	fills    int
}

func (s *scriptedBuffered) popErr() error {
	if len(s.fillErrs) == 0 {
		return nil
	}
	e := s.fillErrs[0]
	s.fillErrs = s.fillErrs[1:]
	return e
}

func (s *scriptedBuffered) Fill() ([]byte, error) {
	s.fills++
	if e := s.popErr(); e != nil {
		return nil, e
	}
	if len(s.buf) == 0 {
		return nil, io.EOF
	}
	return s.buf, nil
}

func (s *scriptedBuffered) Consume(n int) { s.buf = s.buf[n:] }

func (s *scriptedBuffered) Read(p []byte) (int, error) {
	if e := s.popErr(); e != nil {
		return 0, e
	}
	if len(s.buf) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.buf)
	s.buf = s.buf[n:]
	return n, nil
}

func (s *scriptedBuffered) ReadBytes(delim byte) ([]byte, error) {
	if e := s.popErr(); e != nil {
		return nil, e
	}
	i := bytes.IndexByte(s.buf, delim)
	if i < 0 {
		out := append([]byte(nil), s.buf...)
		s.buf = nil
		return out, io.EOF
	}
	out := append([]byte(nil), s.buf[:i+1]...)
	s.buf = s.buf[i+1:]
	return out, nil
}

func (s *scriptedBuffered) ReadString(delim byte) (string, error) {
	b, err := s.ReadBytes(delim)
	return string(b), err
}

// chunkWriter accepts at most limit bytes per attempt, never failing.
type chunkWriter struct {
	limit  int
	data   []byte
	writes int
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	w.writes++
	n := w.limit
	if n > len(p) {
		n = len(p)
	}
	w.data = append(w.data, p[:n]...)
	return n, nil
}

// flushRecorder counts Flush calls.
type flushRecorder struct {
	bytes.Buffer
	flushes int
}

func (w *flushRecorder) Flush() error { w.flushes++; return nil }

// eintrReader fails once with a kernel-shaped EINTR chain, then reads from
// the inner source.
type eintrReader struct {
	inner io.Reader
	fired bool
}

func (r *eintrReader) Read(p []byte) (int, error) {
	if !r.fired {
		r.fired = true
		return 0, &os.PathError{Op: "read", Path: "pipe", Err: syscall.EINTR}
	}
	return r.inner.Read(p)
}
