package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"

	jsontree "github.com/keosu/jsontree"
	"github.com/keosu/jsontree/bridge"
	"github.com/keosu/jsontree/internal/textio"
)

// CLI defines the command-line interface
var CLI struct {
	Input    string `help:"Path to input file. If not specified, reads from stdin." short:"i" type:"path"`
	Output   string `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Indent   int    `help:"Pretty-print indent width." default:"2"`
	Compact  bool   `help:"Emit compact output (no insignificant whitespace)." short:"c"`
	YAML     bool   `help:"Treat input as YAML and convert it to JSON." short:"y"`
	Validate bool   `help:"Parse only; report OK or the first error."`
	Debug    bool   `help:"Enable debug logging." short:"d"`
	Version  bool   `help:"Show version information." short:"v"`
}

const version = "0.1.0"

func main() {
	parser := kong.Must(&CLI,
		kong.Name("jsontree"),
		kong.Description("Validate, reformat, and convert JSON documents"),
		kong.UsageOnError(),
	)
	if _, err := parser.Parse(os.Args[1:]); err != nil {
		os.Exit(1)
	}

	if CLI.Version {
		fmt.Printf("jsontree version %s\n", version)
		return
	}

	logger := newLogger(CLI.Debug)
	defer logger.Sync()

	if err := run(logger); err != nil {
		logger.Error("failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "jsontree: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(debug bool) *zap.Logger {
	if debug {
		l, _ := zap.NewDevelopment()
		return l
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	l, _ := cfg.Build()
	return l
}

func run(logger *zap.Logger) error {
	data, err := readInput(CLI.Input)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.Int("bytes", len(data)), zap.Bool("yaml", CLI.YAML))

	indent := CLI.Indent
	if CLI.Compact {
		indent = 0
	}
	out, err := process(data, CLI.YAML, indent)
	if err != nil {
		return err
	}
	if CLI.Validate {
		fmt.Println("OK")
		return nil
	}
	logger.Debug("rendered output", zap.Int("bytes", len(out)))
	return writeOutput(CLI.Output, out)
}

// process parses data (JSON, or YAML when yamlIn is set) and renders it at
// the requested indent (zero for compact).
func process(data []byte, yamlIn bool, indent int) (string, error) {
	var (
		v   jsontree.Value
		err error
	)
	if yamlIn {
		v, err = bridge.FromYAML(data)
	} else {
		v, err = jsontree.Parse(string(data))
	}
	if err != nil {
		return "", err
	}
	return v.Dump(indent) + "\n", nil
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	text, err := textio.ReadText(path)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

func writeOutput(path, text string) error {
	if path == "" {
		_, err := os.Stdout.WriteString(text)
		return err
	}
	return textio.WriteText(path, text)
}
