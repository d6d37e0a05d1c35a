// Package controlline reads FTP control-connection lines.
//
// It filters Telnet negotiation, splits input on LF, strips the trailing CR
// and enforces a maximum line length. The lines it returns are ready for
// ftpcmd.Parse.
package controlline

import (
	"bufio"
	"errors"
	"io"
)

// MaxCommandLength is the maximum length of a command line.
const MaxCommandLength = 4096

// ErrLineTooLong is returned when a line exceeds the reader's limit.
// The rest of the offending line is discarded, so reading may continue.
var ErrLineTooLong = errors.New("command too long")

// Reader reads control lines from a stream.
type Reader struct {
	r      *bufio.Reader
	maxLen int
	lineNo int
}

// NewReader returns a Reader limited to MaxCommandLength bytes per line.
func NewReader(r io.Reader) *Reader {
	return NewReaderSize(r, MaxCommandLength)
}

// NewReaderSize returns a Reader with a custom line limit.
// A non-positive maxLen means MaxCommandLength.
func NewReaderSize(r io.Reader, maxLen int) *Reader {
	if maxLen <= 0 {
		maxLen = MaxCommandLength
	}
	return &Reader{
		r:      bufio.NewReader(newTelnetReader(r)),
		maxLen: maxLen,
	}
}

// Line returns the 1-based number of the line most recently returned.
func (r *Reader) Line() int {
	return r.lineNo
}

// ReadLine returns the next line without its CRLF or LF terminator.
// A final line without a terminator is returned before io.EOF.
func (r *Reader) ReadLine() (string, error) {
	var line []byte
	tooLong := false

	for {
		b, err := r.r.ReadByte()
		if err != nil {
			if err == io.EOF && (len(line) > 0 || tooLong) {
				return r.finish(line, tooLong)
			}
			return "", err
		}

		if b == '\n' {
			return r.finish(line, tooLong)
		}

		if tooLong {
			continue
		}
		if len(line) >= r.maxLen {
			tooLong = true
			line = nil
			continue
		}
		line = append(line, b)
	}
}

func (r *Reader) finish(line []byte, tooLong bool) (string, error) {
	r.lineNo++
	if tooLong {
		return "", ErrLineTooLong
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return string(line), nil
}
