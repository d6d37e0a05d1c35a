package ftpcmd

import (
	"fmt"
	"net"
	"net/netip"
	"strconv"
	"strings"
)

// DefaultMaxReservedPort is the highest port a PORT command may not name.
// Active-mode targets at or below it are rejected with ErrInvalidPort.
// This is server policy, not protocol law; see WithMaxReservedPort.
const DefaultMaxReservedPort = 1024

// Endpoint is an IPv4 address and TCP port decoded from a PORT argument.
type Endpoint struct {
	Addr netip.Addr
	Port uint16
}

// String returns the endpoint in host:port form, suitable for net.Dial.
func (e Endpoint) String() string {
	return net.JoinHostPort(e.Addr.String(), strconv.Itoa(int(e.Port)))
}

// Encode returns the endpoint in the h1,h2,h3,h4,p1,p2 form used by PORT
// arguments and 227 replies.
func (e Endpoint) Encode() string {
	a := e.Addr.As4()
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d", a[0], a[1], a[2], a[3], e.Port>>8, e.Port&0xff)
}

// ParseHostPort decodes a PORT argument of the form h1,h2,h3,h4,p1,p2.
// Every field must be a decimal number in [0,255] and there must be exactly six.
// Spaces and tabs around a field are ignored; other whitespace is not.
// The address is h1.h2.h3.h4 and the port is p1*256+p2.
//
// ParseHostPort applies no port policy; Decoder rejects reserved ports.
func ParseHostPort(arg string) (Endpoint, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 6 {
		return Endpoint{}, ErrInvalidAddress
	}

	var h [6]byte
	for i, p := range parts {
		val, err := strconv.ParseUint(strings.Trim(p, " \t"), 10, 8)
		if err != nil {
			return Endpoint{}, ErrInvalidAddress
		}
		h[i] = byte(val)
	}

	return Endpoint{
		Addr: netip.AddrFrom4([4]byte{h[0], h[1], h[2], h[3]}),
		Port: uint16(h[4])<<8 | uint16(h[5]),
	}, nil
}
