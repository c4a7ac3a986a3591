package logging

import (
	"bytes"
	"io"
)

// PrefixWriter decorates an io.Writer so that every line written through it
// carries a fixed prefix. Partial lines are buffered until their newline
// arrives.
type PrefixWriter struct {
	prefix []byte
	out    io.Writer
	buf    bytes.Buffer
}

// NewPrefixWriter wraps w with the given line prefix.
func NewPrefixWriter(prefix string, w io.Writer) *PrefixWriter {
	return &PrefixWriter{prefix: []byte(prefix), out: w}
}

// Write implements io.Writer. Reported length always covers all of p, since
// everything not yet flushed is held in the buffer.
func (pw *PrefixWriter) Write(p []byte) (int, error) {
	pw.buf.Write(p)

	for {
		i := bytes.IndexByte(pw.buf.Bytes(), '\n')
		if i < 0 {
			break
		}
		line := pw.buf.Next(i + 1)

		if _, err := pw.out.Write(pw.prefix); err != nil {
			return 0, err
		}
		if _, err := pw.out.Write(line); err != nil {
			return 0, err
		}
	}

	return len(p), nil
}
