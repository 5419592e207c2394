package dot

import (
	"dotmap/keypath"
)

// Recorder observes key requests made through a container.
// hit is false when a read produced a Null.
type Recorder interface {
	Record(op Op, key string, hit bool)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(op Op, key string, hit bool)

func (f RecorderFunc) Record(op Op, key string, hit bool) { f(op, key, hit) }

// Option configures a container.
type Option func(*config)

// WithDelimiter sets the path delimiter. An empty delimiter keeps the default ".".
// The delimiter is usually one character; longer delimiters such as "::" are
// accepted and matched as a whole.
func WithDelimiter(delim string) Option {
	return func(c *config) {
		c.splitter = keypath.Splitter{Delimiter: delim}
	}
}

// WithRecorder injects a Recorder. Containers reached through reads share it.
func WithRecorder(r Recorder) Option {
	return func(c *config) {
		c.recorder = r
	}
}

// config is shared between a container and every value read out of it.
type config struct {
	splitter keypath.Splitter
	recorder Recorder
}

var defaultConfig = &config{}

func newConfig(opts []Option) *config {
	if len(opts) == 0 {
		return defaultConfig
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *config) record(op Op, key string, hit bool) {
	if c.recorder != nil {
		c.recorder.Record(op, key, hit)
	}
}
