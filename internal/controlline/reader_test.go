package controlline

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReadLine(t *testing.T) {
	input := "USER anonymous\r\nCWD /pub\nSTOR my file.txt\r\n\r\nQUIT"
	r := NewReader(strings.NewReader(input))

	want := []string{"USER anonymous", "CWD /pub", "STOR my file.txt", "", "QUIT"}
	for i, w := range want {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("line %d: unexpected error: %v", i+1, err)
		}
		if got != w {
			t.Errorf("line %d = %q, want %q", i+1, got, w)
		}
		if r.Line() != i+1 {
			t.Errorf("Line() = %d, want %d", r.Line(), i+1)
		}
	}

	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadLineTooLong(t *testing.T) {
	input := strings.Repeat("A", 20) + "\r\nNOOP\r\n"
	r := NewReaderSize(strings.NewReader(input), 10)

	if _, err := r.ReadLine(); !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}

	got, err := r.ReadLine()
	if err != nil {
		t.Fatalf("reader should recover after a long line: %v", err)
	}
	if got != "NOOP" {
		t.Errorf("got %q, want NOOP", got)
	}
	if r.Line() != 2 {
		t.Errorf("Line() = %d, want 2", r.Line())
	}
}

func TestReadLineTooLongAtEOF(t *testing.T) {
	r := NewReaderSize(strings.NewReader(strings.Repeat("B", 50)), 10)

	if _, err := r.ReadLine(); !errors.Is(err, ErrLineTooLong) {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadLineFiltersTelnet(t *testing.T) {
	input := string([]byte{telnetIAC, telnetWILL, 0x01}) + "PWD\r\n"
	r := NewReader(strings.NewReader(input))

	got, err := r.ReadLine()
	if err != nil {
		t.Fatal(err)
	}
	if got != "PWD" {
		t.Errorf("got %q, want PWD", got)
	}
}

func TestNewReaderSizeDefault(t *testing.T) {
	r := NewReaderSize(strings.NewReader(""), 0)
	if r.maxLen != MaxCommandLength {
		t.Errorf("maxLen = %d, want %d", r.maxLen, MaxCommandLength)
	}
}

func TestReadLineTruncatedTelnetAtEOF(t *testing.T) {
	r := NewReader(strings.NewReader("PWD\r\nQUIT" + string([]byte{telnetIAC, telnetDO})))

	for _, want := range []string{"PWD", "QUIT"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
	if _, err := r.ReadLine(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
}
