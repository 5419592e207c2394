package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Severity ranks a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is one observation about a requested key.
type Diagnostic struct {
	Severity Severity
	// Code identifies the kind of observation, e.g. CodeMissed.
	Code    string
	Message string
	// Key is the key path as it was requested.
	Key string
	// Suggestions are known paths close to Key.
	Suggestions []string
}

// String formats the diagnostic as "key: [code] message (did you mean ...?)".
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Key != "" {
		b.WriteString(d.Key)
		b.WriteString(": ")
	}

	if d.Code != "" {
		fmt.Fprintf(&b, "[%s] ", d.Code)
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(d.Suggestions, ", "))
	}

	return b.String()
}

// Diagnostics groups diagnostics by severity, each group in report order.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Add files d under its severity.
func (ds *Diagnostics) Add(d Diagnostic) {
	switch d.Severity {
	case SeverityError:
		ds.Errors = append(ds.Errors, d)
	case SeverityWarning:
		ds.Warnings = append(ds.Warnings, d)
	default:
		ds.Infos = append(ds.Infos, d)
	}
}

// AddWarning adds a warning about key.
func (ds *Diagnostics) AddWarning(code, key, message string, suggestions ...string) {
	ds.Add(Diagnostic{Severity: SeverityWarning, Code: code, Key: key, Message: message, Suggestions: suggestions})
}

// AddInfo adds an info about key.
func (ds *Diagnostics) AddInfo(code, key, message string) {
	ds.Add(Diagnostic{Severity: SeverityInfo, Code: code, Key: key, Message: message})
}

// HasErrors returns true if there are any error diagnostics.
func (ds *Diagnostics) HasErrors() bool {
	return len(ds.Errors) > 0
}

// Merge appends every diagnostic of other.
func (ds *Diagnostics) Merge(other Diagnostics) {
	for _, d := range other.All() {
		ds.Add(d)
	}
}

// All returns every diagnostic, most severe first.
func (ds *Diagnostics) All() []Diagnostic {
	out := make([]Diagnostic, 0, len(ds.Errors)+len(ds.Warnings)+len(ds.Infos))
	out = append(out, ds.Errors...)
	out = append(out, ds.Warnings...)

	return append(out, ds.Infos...)
}

// Err joins the error diagnostics into one error, or returns nil.
func (ds *Diagnostics) Err() error {
	errs := make([]error, 0, len(ds.Errors))
	for _, d := range ds.Errors {
		errs = append(errs, errors.New(d.String()))
	}

	return errors.Join(errs...)
}
