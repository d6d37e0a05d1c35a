package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonzalop/ftpcmd"
)

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxReservedPort != ftpcmd.DefaultMaxReservedPort || !cfg.LegacyAliases {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.yaml")
	content := `
max_reserved_port: 2000
legacy_aliases: false
command_groups: [active_mode]
disable_commands: [mkd]
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.MaxReservedPort != 2000 {
		t.Errorf("MaxReservedPort = %d, want 2000", cfg.MaxReservedPort)
	}
	if cfg.LegacyAliases {
		t.Error("LegacyAliases should be false")
	}

	dec, err := ftpcmd.NewDecoder(cfg.Options()...)
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}

	tests := map[string]ftpcmd.Command{
		"PORT 127,0,0,1,20,10": ftpcmd.Unknown{Verb: "PORT"},
		"MKD x":                ftpcmd.Unknown{Verb: "MKD"},
		"XCWD /":               ftpcmd.Unknown{Verb: "XCWD"},
		"CWD /":                ftpcmd.Cwd{Path: "/"},
	}
	for line, want := range tests {
		got, err := dec.Parse(line)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", line, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %#v, want %#v", line, got, want)
		}
	}
}

func TestDecodePartialKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader("disable_commands: [STOR]\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxReservedPort != ftpcmd.DefaultMaxReservedPort || !cfg.LegacyAliases {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestDecodeEmptyDocument(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("empty document should be accepted: %v", err)
	}
	if cfg.MaxReservedPort != ftpcmd.DefaultMaxReservedPort {
		t.Errorf("MaxReservedPort = %d", cfg.MaxReservedPort)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"Unknown field", "max_port: 10\n", "YAML syntax error"},
		{"Port overflow", "max_reserved_port: 70000\n", "YAML syntax error"},
		{"Unknown group", "command_groups: [admin]\n", "unknown command group"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestOptionsRejectUnknownVerb(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DisableCommands = []string{"EPRT"}
	if _, err := ftpcmd.NewDecoder(cfg.Options()...); err == nil {
		t.Error("expected NewDecoder to reject unknown verb")
	}
}
