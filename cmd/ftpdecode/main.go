// Command ftpdecode decodes a transcript of FTP control-connection lines and
// prints one result per line. It is useful for checking how a server would
// interpret traffic captured from a client.
//
// Usage:
//
//	ftpdecode [-config policy.yaml] [-format text|json] [-strict] [file ...]
//
// With no files, ftpdecode reads standard input.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/gonzalop/ftpcmd"
	"github.com/gonzalop/ftpcmd/internal/config"
	"github.com/gonzalop/ftpcmd/internal/controlline"
	"github.com/gonzalop/ftpcmd/internal/metrics"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	configPath string
	format     string
	strict     bool
	verbose    bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ftpdecode", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "YAML decoder policy file")
	fs.StringVar(&opts.format, "format", "text", "output format: text or json")
	fs.BoolVar(&opts.strict, "strict", false, "exit with status 1 if any line fails to decode")
	fs.BoolVar(&opts.verbose, "v", false, "enable debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	level := slog.LevelInfo
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run_id", uuid.New().String())

	if opts.format != "text" && opts.format != "json" {
		logger.Error("invalid format", "format", opts.format)
		return 2
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		return 2
	}

	reg := prometheus.NewRegistry()
	dec, err := ftpcmd.NewDecoder(append(cfg.Options(), ftpcmd.WithMetricsCollector(metrics.New(reg)))...)
	if err != nil {
		logger.Error("invalid decoder policy", "error", err)
		return 2
	}

	out := newPrinter(stdout, opts.format)

	failed := false
	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, name := range inputs {
		ok, err := decodeInput(name, stdin, dec, out, logger)
		if err != nil {
			logger.Error("failed to decode input", "input", name, "error", err)
			return 1
		}
		if !ok {
			failed = true
		}
	}

	logSummary(reg, logger)

	if failed && opts.strict {
		return 1
	}
	return 0
}

// decodeInput decodes every line of one input. It reports false if any line failed.
func decodeInput(name string, stdin io.Reader, dec *ftpcmd.Decoder, out *printer, logger *slog.Logger) (bool, error) {
	var r io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return false, err
		}
		defer f.Close()
		r = f
	}

	logger.Debug("decoding input", "input", name)

	lines := controlline.NewReader(r)
	allOK := true
	for {
		line, err := lines.ReadLine()
		if err == io.EOF {
			return allOK, nil
		}
		if errors.Is(err, controlline.ErrLineTooLong) {
			logger.Warn("line too long", "input", name, "line", lines.Line())
			if err := out.printError(name, lines.Line(), err); err != nil {
				return false, fmt.Errorf("writing output: %w", err)
			}
			allOK = false
			continue
		}
		if err != nil {
			return allOK, err
		}

		cmd, err := dec.Parse(line)
		if err != nil {
			logger.Debug("decode failed", "input", name, "line", lines.Line(), "error", err)
			if err := out.printError(name, lines.Line(), err); err != nil {
				return false, fmt.Errorf("writing output: %w", err)
			}
			allOK = false
			continue
		}
		if err := out.printCommand(name, lines.Line(), cmd); err != nil {
			return false, fmt.Errorf("writing output: %w", err)
		}
	}
}

// logSummary logs the decoded-command counters gathered from reg.
func logSummary(reg *prometheus.Registry, logger *slog.Logger) {
	families, err := reg.Gather()
	if err != nil {
		logger.Warn("failed to gather metrics", "error", err)
		return
	}

	counts := map[string]float64{}
	var total float64
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			v := m.GetCounter().GetValue()
			counts[labelValue(m, "verb")+"/"+labelValue(m, "result")] += v
			total += v
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := []any{"decoded", total}
	for _, k := range keys {
		attrs = append(attrs, k, counts[k])
	}
	logger.Info("decode summary", attrs...)
}

func labelValue(m *dto.Metric, name string) string {
	for _, lp := range m.GetLabel() {
		if lp.GetName() == name {
			return lp.GetValue()
		}
	}
	return ""
}

type printer struct {
	w    io.Writer
	enc  *json.Encoder
	json bool
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{w: w, json: format == "json"}
	if p.json {
		p.enc = json.NewEncoder(w)
	}
	return p
}

type record struct {
	Input   string         `json:"input"`
	Line    int            `json:"line"`
	Verb    string         `json:"verb,omitempty"`
	Args    map[string]any `json:"args,omitempty"`
	Error   string         `json:"error,omitempty"`
	Reply   int            `json:"reply,omitempty"`
	Unknown string         `json:"unknown,omitempty"`
}

func (p *printer) printCommand(input string, line int, cmd ftpcmd.Command) error {
	rec := record{Input: input, Line: line, Verb: cmd.Name(), Args: describe(cmd)}
	if u, ok := cmd.(ftpcmd.Unknown); ok {
		rec.Verb = ""
		rec.Unknown = u.Verb
	}
	return p.emit(rec)
}

func (p *printer) printError(input string, line int, err error) error {
	rec := record{Input: input, Line: line, Error: err.Error(), Reply: 500}
	var de *ftpcmd.DecodeError
	if errors.As(err, &de) {
		rec.Verb = de.Verb
		rec.Reply = de.ReplyCode()
	}
	return p.emit(rec)
}

func (p *printer) emit(rec record) error {
	if p.json {
		return p.enc.Encode(rec)
	}

	var b strings.Builder
	switch {
	case rec.Error != "":
		fmt.Fprintf(&b, "%s:%d: %d %s\n", rec.Input, rec.Line, rec.Reply, rec.Error)
	case rec.Unknown != "":
		fmt.Fprintf(&b, "%s:%d: unknown command %q\n", rec.Input, rec.Line, rec.Unknown)
	case len(rec.Args) == 0:
		fmt.Fprintf(&b, "%s:%d: %s\n", rec.Input, rec.Line, rec.Verb)
	default:
		keys := make([]string, 0, len(rec.Args))
		for k := range rec.Args {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintf(&b, "%s:%d: %s", rec.Input, rec.Line, rec.Verb)
		for _, k := range keys {
			fmt.Fprintf(&b, " %s=%q", k, fmt.Sprint(rec.Args[k]))
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

// describe returns the payload of cmd as printable fields.
func describe(cmd ftpcmd.Command) map[string]any {
	switch c := cmd.(type) {
	case ftpcmd.User:
		return map[string]any{"user": c.Username}
	case ftpcmd.Cwd:
		return map[string]any{"path": c.Path}
	case ftpcmd.Mkd:
		return map[string]any{"path": c.Path}
	case ftpcmd.Rmd:
		return map[string]any{"path": c.Path}
	case ftpcmd.Retr:
		return map[string]any{"path": c.Path}
	case ftpcmd.Stor:
		return map[string]any{"path": c.Path}
	case ftpcmd.List:
		if c.HasPath {
			return map[string]any{"path": c.Path}
		}
	case ftpcmd.Port:
		return map[string]any{"addr": c.Endpoint.Addr.String(), "port": c.Endpoint.Port}
	case ftpcmd.Type:
		return map[string]any{"type": c.TransferType.String()}
	}
	return nil
}
