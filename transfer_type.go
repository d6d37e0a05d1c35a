package ftpcmd

import "strings"

// TransferType is the data representation negotiated with TYPE.
type TransferType int

const (
	// ASCII is TYPE A, optionally with the non-print format (A N).
	ASCII TransferType = iota
	// Binary is TYPE I, also reachable as TYPE L 8.
	Binary
	// EBCDIC is TYPE E. Recognized but never produced by the decoder.
	EBCDIC
	// Local is TYPE L with a byte size other than 8. Recognized but never produced.
	Local
)

// String returns a readable name for the transfer type.
func (t TransferType) String() string {
	switch t {
	case ASCII:
		return "ASCII"
	case Binary:
		return "Binary"
	case EBCDIC:
		return "EBCDIC"
	case Local:
		return "Local"
	default:
		return "TransferType(?)"
	}
}

// Code returns the single-letter TYPE code.
func (t TransferType) Code() string {
	switch t {
	case ASCII:
		return "A"
	case Binary:
		return "I"
	case EBCDIC:
		return "E"
	case Local:
		return "L"
	default:
		return ""
	}
}

// parseTransferType decodes a TYPE argument.
// Only ASCII and Binary are supported; E and L (other than L 8) are rejected
// with ErrUnsupportedTransferType so servers can answer 504 instead of 501.
func parseTransferType(arg string) (TransferType, error) {
	// The wire is ASCII: only ASCII letters fold, and only the separators
	// splitVerb knows split fields.
	fields := strings.FieldsFunc(upperASCII(arg), func(r rune) bool {
		return strings.ContainsRune(whitespace, r)
	})
	if len(fields) == 0 || len(fields) > 2 {
		return 0, ErrInvalidTransferType
	}

	code, param := fields[0], ""
	if len(fields) == 2 {
		param = fields[1]
	}

	switch code {
	case "A":
		// Telnet (T) and carriage-control (C) formats are not implemented.
		switch param {
		case "", "N":
			return ASCII, nil
		case "T", "C":
			return 0, ErrUnsupportedTransferType
		}
	case "I":
		if param == "" {
			return Binary, nil
		}
	case "E":
		switch param {
		case "", "N", "T", "C":
			return 0, ErrUnsupportedTransferType
		}
	case "L":
		if param == "8" {
			return Binary, nil
		}
		if param != "" && isDecimal(param) {
			return 0, ErrUnsupportedTransferType
		}
	}

	return 0, ErrInvalidTransferType
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}
