package controlline

import (
	"bufio"
	"io"
)

const (
	// telnetIAC is Interpret As Command
	telnetIAC = 0xFF
	// telnetWILL negotiation command
	telnetWILL = 0xFB
	// telnetWONT negotiation command
	telnetWONT = 0xFC
	// telnetDO negotiation command
	telnetDO = 0xFD
	// telnetDONT negotiation command
	telnetDONT = 0xFE

	// Two-byte commands. Clients send IAC IP, IAC DM ahead of ABOR
	// (RFC 959 section 4.1.3); both are dropped like any other.
	telnetDM = 0xF2
	telnetIP = 0xF4
)

// isNegotiation reports whether cmd starts a three-byte IAC CMD OPT sequence.
func isNegotiation(cmd byte) bool {
	return cmd >= telnetWILL && cmd <= telnetDONT
}

// telnetReader strips Telnet negotiation from a control stream.
// IAC IAC is passed through as a single 0xFF byte.
type telnetReader struct {
	reader *bufio.Reader
}

func newTelnetReader(r io.Reader) *telnetReader {
	return &telnetReader{reader: bufio.NewReader(r)}
}

// Read implements io.Reader.
func (t *telnetReader) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}

	for n < len(p) {
		// Don't block on the network when we already have something to return.
		if n > 0 && t.reader.Buffered() == 0 {
			return n, nil
		}

		b, err := t.reader.ReadByte()
		if err != nil {
			if n > 0 {
				return n, nil
			}
			return n, err
		}

		if b != telnetIAC {
			p[n] = b
			n++
			continue
		}

		next, err := t.reader.ReadByte()
		if err != nil {
			return n, err
		}

		switch {
		case next == telnetIAC:
			p[n] = telnetIAC
			n++
		case isNegotiation(next):
			// A sequence cut short by EOF is dropped, not half-delivered.
			if _, err := t.reader.ReadByte(); err != nil {
				return n, err
			}
		default:
			// Two-byte commands such as IP and DM.
		}
	}

	return n, nil
}
