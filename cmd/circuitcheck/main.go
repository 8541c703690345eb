// Command circuitcheck validates schematic files and prints one JSON verdict
// per input.
//
// Usage:
//
//	circuitcheck [flags] [file ...]
//
// With no files, or the file "-", a single document is read from stdin;
// "-" may appear at most once.
// Exit status is 0 when every input is a working circuit, 1 when any is
// not, and 2 on usage or input errors.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/circuitloop/circuit"
	"github.com/katalvlaran/circuitloop/schematic"
)

const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

type config struct {
	format   string
	lang     circuit.Lang
	maxSteps int
	maxWire  int
	timeout  time.Duration
}

// schematicOptions returns the ingestion options every input is read with.
func (c config) schematicOptions() []schematic.Option {
	return []schematic.Option{schematic.WithMaxWireLength(c.maxWire)}
}

// report is one output line.
type report struct {
	File string `json:"file"`
	circuit.Result
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("circuitcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		cfg    config
		lang   string
		schema bool
		level  = zapcore.WarnLevel
	)
	fs.StringVar(&cfg.format, "format", "", "document format (json, yaml or toml); default: from file extension, json for stdin")
	fs.StringVar(&lang, "lang", string(circuit.LangFR), "language of feedback messages (fr or en)")
	fs.IntVar(&cfg.maxSteps, "max-steps", circuit.DefaultMaxSteps, "loop search budget in edge expansions (0 = unlimited)")
	fs.IntVar(&cfg.maxWire, "max-wire-length", schematic.DefaultMaxWireLength, "cap on the summed wire length of one input, in grid units (0 = unlimited)")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "per-input analysis timeout (0 = none)")
	fs.Var(&level, "log-level", "set log level")
	fs.BoolVar(&schema, "schema", false, "print the JSON Schema of schematic documents and exit")
	if err := fs.Parse(args); err != nil {
		return exitError
	}

	if schema {
		raw, err := schematic.JSONSchema()
		if err != nil {
			fmt.Fprintln(stderr, "circuitcheck:", err)
			return exitError
		}
		fmt.Fprintln(stdout, string(raw))
		return exitValid
	}

	var err error
	if cfg.lang, err = circuit.ParseLang(lang); err != nil {
		fmt.Fprintln(stderr, "circuitcheck:", err)
		return exitError
	}
	if cfg.format != "" {
		if _, err = schematic.ParseFormat(cfg.format); err != nil {
			fmt.Fprintln(stderr, "circuitcheck:", err)
			return exitError
		}
	}
	if cfg.maxSteps < 0 {
		fmt.Fprintln(stderr, "circuitcheck: -max-steps cannot be negative")
		return exitError
	}
	if cfg.maxWire < 0 {
		fmt.Fprintln(stderr, "circuitcheck: -max-wire-length cannot be negative")
		return exitError
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	if stdinCount(inputs) > 1 {
		fmt.Fprintln(stderr, `circuitcheck: stdin ("-") can be read only once`)
		return exitError
	}

	log := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(stderr),
		level,
	))
	defer log.Sync() //nolint:errcheck

	enc := json.NewEncoder(stdout)
	code := exitValid
	for _, in := range inputs {
		rep := check(cfg, log, in, stdin)
		if err = enc.Encode(rep); err != nil {
			log.Error("writing report", zap.String("file", in), zap.Error(err))
			return exitError
		}
		switch {
		case rep.Error != "":
			code = exitError
		case !rep.Valid && code == exitValid:
			code = exitInvalid
		}
	}

	return code
}

// check decodes and analyzes one input; failures are carried in the report.
func check(cfg config, log *zap.Logger, in string, stdin io.Reader) report {
	rep := report{File: in}

	s, err := load(cfg, in, stdin)
	if err != nil {
		log.Warn("input rejected", zap.String("file", in), zap.Error(err))
		rep.Error = err.Error()
		return rep
	}

	ctx := context.Background()
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	res, err := circuit.Analyze(ctx, s,
		circuit.WithLogger(log.With(zap.String("file", in))),
		circuit.WithMaxSteps(cfg.maxSteps),
		circuit.WithSchematicOptions(cfg.schematicOptions()...),
	)
	if err != nil {
		if errors.Is(err, circuit.ErrSearchBudgetExceeded) || errors.Is(err, context.DeadlineExceeded) {
			log.Warn("analysis gave up", zap.String("file", in), zap.Error(err))
		}
		rep.Error = err.Error()
		return rep
	}
	rep.Result = res
	rep.Message = res.Message(cfg.lang)

	return rep
}

func stdinCount(inputs []string) int {
	n := 0
	for _, in := range inputs {
		if in == "-" {
			n++
		}
	}

	return n
}

func load(cfg config, in string, stdin io.Reader) (schematic.Schematic, error) {
	opts := cfg.schematicOptions()
	if in == "-" {
		f := schematic.FormatJSON
		if cfg.format != "" {
			f, _ = schematic.ParseFormat(cfg.format)
		}
		return schematic.Decode(stdin, f, opts...)
	}
	if cfg.format == "" {
		return schematic.Load(in, opts...)
	}

	f, _ := schematic.ParseFormat(cfg.format)
	fh, err := os.Open(filepath.Clean(in))
	if err != nil {
		return schematic.Schematic{}, err
	}
	defer fh.Close()

	return schematic.Decode(fh, f, opts...)
}
