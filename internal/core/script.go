package core

import (
	"bufio"
	"io"
	"strings"
)

// Script is an ordered seed script.
type Script struct {
	Header []string
	Units  []Unit
}

// Append adds units to the end of the script.
func (s *Script) Append(units ...Unit) {
	s.Units = append(s.Units, units...)
}

// WriteTo writes the header comments followed by every unit, each preceded
// by a blank line.
func (s *Script) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}

	for _, line := range s.Header {
		io.WriteString(cw, Comment(line).SQL())
		io.WriteString(cw, "\n")
	}
	for _, u := range s.Units {
		io.WriteString(cw, "\n")
		io.WriteString(cw, u.SQL())
		io.WriteString(cw, "\n")
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	return cw.n, cw.w.Flush()
}

// String renders the whole script.
func (s *Script) String() string {
	var b strings.Builder
	s.WriteTo(&b)
	return b.String()
}

// countingWriter remembers the first write error so WriteTo can check once.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
