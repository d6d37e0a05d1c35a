package ftpcmd

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying why a control line could not be decoded.
// They are always wrapped in a *DecodeError; test for them with errors.Is.
var (
	// ErrEmptyInput is returned when the line holds no verb token.
	ErrEmptyInput = errors.New("empty command line")

	// ErrMissingArgument is returned when a verb that requires an argument has none.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidEncoding is returned when a mandatory text argument is not valid UTF-8.
	ErrInvalidEncoding = errors.New("argument is not valid UTF-8")

	// ErrInvalidAddress is returned when a PORT argument is not six octets.
	ErrInvalidAddress = errors.New("invalid host-port address")

	// ErrInvalidPort is returned when a PORT argument decodes to a reserved port.
	ErrInvalidPort = errors.New("port not allowed")

	// ErrInvalidTransferType is returned when a TYPE argument is absent or unrecognized.
	ErrInvalidTransferType = errors.New("invalid transfer type")

	// ErrUnsupportedTransferType is returned for TYPE E and TYPE L with a byte size other than 8.
	ErrUnsupportedTransferType = errors.New("transfer type not supported")
)

// DecodeError describes a control line that could not be turned into a Command.
// It keeps the verb and argument that were received so the session layer can
// report them without re-tokenizing the line.
type DecodeError struct {
	// Verb is the upper-cased verb (e.g., "PORT"). Empty for ErrEmptyInput.
	Verb string

	// Arg is the raw argument text, if any.
	Arg string

	// Err is one of the package sentinel errors.
	Err error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	switch {
	case e.Verb == "":
		return fmt.Sprintf("ftpcmd: %v", e.Err)
	case e.Arg == "":
		return fmt.Sprintf("ftpcmd: %s: %v", e.Verb, e.Err)
	default:
		return fmt.Sprintf("ftpcmd: %s %q: %v", e.Verb, e.Arg, e.Err)
	}
}

// Unwrap returns the underlying sentinel error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ReplyCode returns the RFC 959 reply code a server would normally send for
// this error. The decoder never sends replies; this is a hint for callers.
func (e *DecodeError) ReplyCode() int {
	switch {
	case errors.Is(e.Err, ErrEmptyInput):
		return 500
	case errors.Is(e.Err, ErrUnsupportedTransferType):
		return 504
	default:
		return 501
	}
}

func newDecodeError(verb, arg string, err error) *DecodeError {
	return &DecodeError{Verb: verb, Arg: arg, Err: err}
}
