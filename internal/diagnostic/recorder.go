package diagnostic

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"dotmap/dot"
)

// Diagnostic codes.
const (
	CodeRequested = "requested"
	CodeMissed    = "missed"
)

// SuggestFunc returns known paths close to a missed key.
type SuggestFunc func(key string) []string

// Recorder counts key requests per operation. It implements dot.Recorder
// and is not safe for concurrent use, like the containers it observes.
type Recorder struct {
	// Suggest, when set, fills suggestions for missed reads.
	Suggest SuggestFunc

	counts map[string]map[dot.Op]int
	misses map[string]int
	order  []string
}

var _ dot.Recorder = (*Recorder)(nil)

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		counts: map[string]map[dot.Op]int{},
		misses: map[string]int{},
	}
}

// Record implements dot.Recorder.
func (r *Recorder) Record(op dot.Op, key string, hit bool) {
	if r.counts == nil {
		r.counts = map[string]map[dot.Op]int{}
		r.misses = map[string]int{}
	}

	byOp, ok := r.counts[key]
	if !ok {
		byOp = map[dot.Op]int{}
		r.counts[key] = byOp
		r.order = append(r.order, key)
	}

	byOp[op]++

	if !hit {
		r.misses[key]++
	}
}

// Count returns how many times key was requested with op.
func (r *Recorder) Count(op dot.Op, key string) int {
	return r.counts[key][op]
}

// Total returns how many times key was requested by any operation.
func (r *Recorder) Total(key string) int {
	total := 0
	for _, n := range r.counts[key] {
		total += n
	}

	return total
}

// Keys returns every requested key in first-request order.
func (r *Recorder) Keys() []string {
	return slices.Clone(r.order)
}

// Misses returns the keys whose reads missed, sorted.
func (r *Recorder) Misses() []string {
	return slices.Sorted(maps.Keys(r.misses))
}

// Diagnostics reports one info per requested key and one warning per
// missed key.
func (r *Recorder) Diagnostics() Diagnostics {
	var d Diagnostics

	for _, key := range r.order {
		byOp := r.counts[key]

		ops := slices.Sorted(maps.Keys(byOp))
		parts := make([]string, 0, len(ops))

		for _, op := range ops {
			parts = append(parts, fmt.Sprintf("%s=%d", op, byOp[op]))
		}

		d.AddInfo(CodeRequested, key, fmt.Sprint(parts))

		if n := r.misses[key]; n > 0 {
			var suggestions []string
			if r.Suggest != nil {
				suggestions = r.Suggest(key)
			}

			d.AddWarning(CodeMissed, key, fmt.Sprintf("read %d time(s) without a value", n), suggestions...)
		}
	}

	return d
}

// String lists the diagnostics one per line, most severe first.
func (r *Recorder) String() string {
	d := r.Diagnostics()
	all := d.All()

	lines := make([]string, len(all))
	for i, diag := range all {
		lines[i] = diag.String()
	}

	return strings.Join(lines, "\n")
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.counts = map[string]map[dot.Op]int{}
	r.misses = map[string]int{}
	r.order = nil
}
