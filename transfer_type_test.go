package ftpcmd

import (
	"errors"
	"testing"
)

func TestParseTransferType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg     string
		want    TransferType
		wantErr error
	}{
		{"A", ASCII, nil},
		{"a", ASCII, nil},
		{"A N", ASCII, nil},
		{"a n", ASCII, nil},
		{"I", Binary, nil},
		{"i", Binary, nil},
		{"L 8", Binary, nil},
		{"E", 0, ErrUnsupportedTransferType},
		{"E N", 0, ErrUnsupportedTransferType},
		{"A T", 0, ErrUnsupportedTransferType},
		{"A C", 0, ErrUnsupportedTransferType},
		{"L 7", 0, ErrUnsupportedTransferType},
		{"L 36", 0, ErrUnsupportedTransferType},
		{"", 0, ErrInvalidTransferType},
		{"X", 0, ErrInvalidTransferType},
		{"L", 0, ErrInvalidTransferType},
		{"L x", 0, ErrInvalidTransferType},
		{"I N", 0, ErrInvalidTransferType},
		{"A N extra", 0, ErrInvalidTransferType},
		{"ASCII", 0, ErrInvalidTransferType},
		{"\u0131", 0, ErrInvalidTransferType},   // dotless i upper-cases to I under Unicode rules
		{"A\u00a0N", 0, ErrInvalidTransferType}, // no-break space is not a separator
		{"A\u3000N", 0, ErrInvalidTransferType}, // neither is an ideographic space
		{"A\tN", ASCII, nil},
		{"I\r", Binary, nil},
	}

	for _, tt := range tests {
		got, err := parseTransferType(tt.arg)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("parseTransferType(%q) error = %v, want %v", tt.arg, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseTransferType(%q) unexpected error: %v", tt.arg, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseTransferType(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}

func TestTransferTypeStrings(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tt   TransferType
		name string
		code string
	}{
		{ASCII, "ASCII", "A"},
		{Binary, "Binary", "I"},
		{EBCDIC, "EBCDIC", "E"},
		{Local, "Local", "L"},
	}
	for _, tc := range tests {
		if got := tc.tt.String(); got != tc.name {
			t.Errorf("String() = %q, want %q", got, tc.name)
		}
		if got := tc.tt.Code(); got != tc.code {
			t.Errorf("Code() = %q, want %q", got, tc.code)
		}
	}
}
