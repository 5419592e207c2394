// Package diagnostic records which keys are requested through a container
// and which of those requests missed.
//
// It replaces a process-wide "requested keys" set with a Recorder that is
// injected per container (dot.WithRecorder), so separate containers never
// share diagnostic state.
//
// Key capabilities:
//   - Per-key request counts by operation
//   - Missed reads reported as warnings, with "did you mean" suggestions
//   - Merged, formatted output for the CLI
package diagnostic
