package listener

import (
	"bytes"
	"io"
)

// crlfReadWriter bridges unix line endings to network ones: writes expand
// \n to \r\n, reads collapse \r\n (telnet) and bare \r (ssh without a pty)
// to \n.
type crlfReadWriter struct {
	rw io.ReadWriter
}

func newCRLFReadWriter(rw io.ReadWriter) io.ReadWriter {
	return &crlfReadWriter{rw: rw}
}

func (c *crlfReadWriter) Read(p []byte) (int, error) {
	n, err := c.rw.Read(p)
	if n > 0 {
		normalized := bytes.ReplaceAll(p[:n], []byte("\r\n"), []byte("\n"))
		normalized = bytes.ReplaceAll(normalized, []byte("\r"), []byte("\n"))
		n = copy(p, normalized)
	}
	return n, err
}

func (c *crlfReadWriter) Write(p []byte) (int, error) {
	if _, err := c.rw.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	// Length of the caller's slice, not the expanded one.
	return len(p), nil
}
