package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"dotmap/internal/codec"
	"dotmap/internal/common"
	"dotmap/keypath"
)

// ExitError is an error carrying the process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Command names.
const (
	CmdGet    = "get"
	CmdSet    = "set"
	CmdDelete = "del"
	CmdLeaves = "leaves"
	CmdKeys   = "keys"
)

// Config is the parsed command line.
type Config struct {
	Command string
	File    string
	Key     string
	Value   string

	Format    codec.Format
	Out       codec.Format
	Delimiter string
	Write     bool
	Dump      bool

	LogLevel  string
	LogFormat string
}

// parse processes command-line arguments. It returns the Config, whether the
// program should exit cleanly, or an ExitError.
func parse(args []string, output io.Writer) (*Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("dotq", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
dotq - read and edit nested documents by delimited key path.

Usage:
  dotq [options] get    FILE KEY
  dotq [options] set    FILE KEY VALUE
  dotq [options] del    FILE KEY
  dotq [options] leaves FILE [PREFIX]
  dotq [options] keys   FILE [KEY]

Arguments:
  FILE   a json, yaml, hcl or msgpack document
  KEY    a key path such as server.port
  VALUE  a YAML value such as 5, true, text or {a: 1}

Options:
`)
		flagSet.PrintDefaults()
	}

	formatFlag := flagSet.String("format", "", "Input format: json, yaml, hcl or msgpack. Detected from FILE when empty.")
	outFlag := flagSet.String("out", "json", "Output format: json, yaml or hcl.")
	delimFlag := flagSet.String("delim", keypath.DefaultDelimiter, "Key path delimiter.")
	writeFlag := flagSet.Bool("write", false, "Write the edited document back to FILE instead of printing it (set, del).")
	dumpFlag := flagSet.Bool("dump", false, "Dump the result as Go values instead of encoding it.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	rest := flagSet.Args()

	command, ok := common.First(rest)
	if !ok {
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := &Config{
		Command:   command,
		Delimiter: *delimFlag,
		Write:     *writeFlag,
		Dump:      *dumpFlag,
		LogLevel:  strings.ToLower(*logLevelFlag),
		LogFormat: strings.ToLower(*logFormatFlag),
	}

	cfg.File, _ = common.At(rest, 1)
	cfg.Key, cfg.Value = common.Unpack2(rest[min(len(rest), 2):])

	if cfg.File == "" {
		return nil, false, &ExitError{Code: 2, Message: "missing FILE argument"}
	}

	minArgs, maxArgs := 2, 3
	switch command {
	case CmdGet, CmdDelete:
		minArgs = 3
	case CmdSet:
		minArgs, maxArgs = 4, 4
	case CmdLeaves, CmdKeys:
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", command)}
	}

	if len(rest) < minArgs || len(rest) > maxArgs {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("wrong number of arguments for %s", command)}
	}

	if cfg.Write && command != CmdSet && command != CmdDelete {
		return nil, false, &ExitError{Code: 2, Message: "-write only applies to set and del"}
	}

	if cfg.Delimiter == "" {
		return nil, false, &ExitError{Code: 2, Message: "invalid delim: must not be empty"}
	}

	if *formatFlag != "" {
		f, err := codec.ParseFormat(*formatFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: "invalid format: " + err.Error()}
		}
		cfg.Format = f
	}

	out, err := codec.ParseFormat(*outFlag)
	if err != nil || out == codec.FormatMsgpack {
		return nil, false, &ExitError{Code: 2, Message: "invalid out: must be 'json', 'yaml' or 'hcl'"}
	}
	cfg.Out = out

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parser finished successfully.", "command", cfg.Command, "file", cfg.File)

	return cfg, false, nil
}
