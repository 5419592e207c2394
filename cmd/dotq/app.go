package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"dotmap/dot"
	"dotmap/internal/codec"
	"dotmap/internal/diagnostic"
	"dotmap/internal/match"
	"dotmap/storage"
)

const maxSuggestions = 3

// App executes one parsed command against one document.
type App struct {
	outW     io.Writer
	cfg      *Config
	logger   *slog.Logger
	recorder *diagnostic.Recorder
}

func newApp(outW io.Writer, cfg *Config, logger *slog.Logger) *App {
	return &App{
		outW:     outW,
		cfg:      cfg,
		logger:   logger,
		recorder: diagnostic.NewRecorder(),
	}
}

// Run loads the document, applies the command and prints or writes the result.
func (a *App) Run() error {
	a.logger.Debug("Loading document.", "file", a.cfg.File, "format", a.cfg.Format)

	raw, err := codec.LoadFile(a.cfg.File, a.cfg.Format)
	if err != nil {
		return err
	}

	doc, err := dot.FromAny(raw, dot.WithDelimiter(a.cfg.Delimiter), dot.WithRecorder(a.recorder))
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", a.cfg.File, err)
	}

	a.recorder.Suggest = suggester(doc)

	result, err := a.execute(doc)
	a.report()

	if err != nil {
		return err
	}

	if a.cfg.Write {
		if err := codec.WriteFile(doc.Raw(), a.cfg.File, a.cfg.Format); err != nil {
			return err
		}

		a.logger.Info("Document written.", "file", a.cfg.File)

		return nil
	}

	return a.emit(result)
}

func (a *App) execute(doc *dot.Container) (any, error) {
	cfg := a.cfg

	switch cfg.Command {
	case CmdGet:
		v := doc.Get(cfg.Key)
		if v.IsNull() {
			return nil, &ExitError{Code: 1, Message: fmt.Sprintf("no value at %s", cfg.Key)}
		}

		return v.Raw(), nil

	case CmdSet:
		value, err := storage.DecodeYAML([]byte(cfg.Value))
		if err != nil {
			return nil, &ExitError{Code: 2, Message: "invalid VALUE: " + err.Error()}
		}

		if _, err := doc.Set(cfg.Key, value); err != nil {
			return nil, fmt.Errorf("failed to set %s: %w", cfg.Key, err)
		}

		return doc.Raw(), nil

	case CmdDelete:
		doc.Delete(cfg.Key)
		return doc.Raw(), nil

	case CmdLeaves:
		return a.leaves(doc)

	case CmdKeys:
		target, err := a.container(doc)
		if err != nil {
			return nil, err
		}

		return target.Keys(), nil

	default:
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("unknown command %q", cfg.Command)}
	}
}

// leaves flattens the document, or the subtree at the configured key, into
// an ordered mapping of full paths.
func (a *App) leaves(doc *dot.Container) (any, error) {
	out := storage.NewObject()

	if a.cfg.Key == "" {
		for _, l := range doc.Leaves() {
			out.Set(l.Path, l.Value.Raw())
		}

		return out, nil
	}

	v := doc.Get(a.cfg.Key)
	switch v := v.(type) {
	case *dot.Container:
		for _, l := range v.Leaves(a.cfg.Key + a.cfg.Delimiter) {
			out.Set(l.Path, l.Value.Raw())
		}
	case dot.Null:
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("no value at %s", a.cfg.Key)}
	default:
		out.Set(a.cfg.Key, v.Raw())
	}

	return out, nil
}

func (a *App) container(doc *dot.Container) (*dot.Container, error) {
	if a.cfg.Key == "" {
		return doc, nil
	}

	switch v := doc.Get(a.cfg.Key).(type) {
	case *dot.Container:
		return v, nil
	case dot.Null:
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("no value at %s", a.cfg.Key)}
	default:
		return nil, &ExitError{Code: 1, Message: fmt.Sprintf("%s is a %s, not an object", a.cfg.Key, v.Kind())}
	}
}

func (a *App) emit(result any) error {
	if a.cfg.Dump {
		spew.Fdump(a.outW, result)
		return nil
	}

	if keys, ok := result.([]string); ok {
		for _, k := range keys {
			fmt.Fprintln(a.outW, k)
		}

		return nil
	}

	data, err := codec.Encode(result, a.cfg.Out)
	if err != nil {
		return fmt.Errorf("failed to encode result as %s: %w", a.cfg.Out, err)
	}

	_, err = a.outW.Write(data)

	return err
}

// report logs what the recorder observed: misses as warnings, everything
// else at debug level.
func (a *App) report() {
	d := a.recorder.Diagnostics()

	for _, w := range d.Warnings {
		a.logger.Warn(w.String(), "key", w.Key, "suggestions", w.Suggestions)
	}

	for _, i := range d.Infos {
		a.logger.Debug(i.String(), "key", i.Key)
	}
}

// suggester proposes known leaf paths close to a missed key.
func suggester(doc *dot.Container) diagnostic.SuggestFunc {
	return func(key string) []string {
		leaves := doc.Leaves()

		paths := make([]string, 0, len(leaves))
		for _, l := range leaves {
			paths = append(paths, l.Path)
		}

		return match.Paths(match.Suggest(key, paths, match.DefaultThreshold, maxSuggestions))
	}
}
