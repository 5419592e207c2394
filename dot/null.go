package dot

import (
	"fmt"

	"dotmap/storage"
)

// Nil is the ownerless absence. Reads on it yield Nil and writes through it
// are discarded.
var Nil = Null{}

// Null is the absence of a value.
//
// A Null returned by a container read remembers the deepest existing level
// (its owner) and the missing segments below it. Such a Null is writable:
// Set creates the missing levels in the owner. Reads off any Null return
// Nil, so only the Null handed out by a container can write.
type Null struct {
	owner storage.Storage
	path  []string
	cfg   *config
}

func (n Null) Kind() Kind { return KindNull }
func (n Null) Get(string) Value { return Nil }
func (n Null) Attr(string) Value { return Nil }
func (n Null) IsNull() bool { return true }
func (n Null) Raw() any { return nil }
func (n Null) Bool() bool { return false }
func (n Null) Len() int { return 0 }
func (n Null) String() string { return "null" }
func (n Null) Equal(o any) bool { return Equal(nil, o) }
func (n Null) MarshalJSON() ([]byte, error) { return []byte("null"), nil }

// Writable reports whether Set can materialise structure.
func (n Null) Writable() bool {
	return n.owner != nil
}

// Path returns the missing segments below the owner, joined with the
// container's delimiter. It is empty for an ownerless Null.
func (n Null) Path() string {
	return n.config().splitter.Join(n.path...)
}

func (n Null) config() *config {
	if n.cfg == nil {
		return defaultConfig
	}

	return n.cfg
}

// Set writes value under key below the missing location, creating every
// missing level first, and returns the container at the missing location.
//
// On an ownerless Null the write is discarded and the receiver is returned.
// An absent value writes nothing. The bare delimiter as key assigns the
// missing location itself and returns the stored value.
func (n Null) Set(key string, value any) (Value, error) {
	if n.owner == nil {
		return n, nil
	}

	if key == "" {
		return nil, fmt.Errorf("set through null at %q: %w", n.Path(), ErrEmptyKey)
	}

	raw := Unwrap(value)
	if raw == nil {
		return n, nil
	}

	cfg := n.config()
	level := n.owner

	if cfg.splitter.IsDegenerate(key) {
		for _, seg := range n.path[:len(n.path)-1] {
			level = vivify(level, seg)
		}

		last := n.path[len(n.path)-1]
		level.Set(last, raw)
		cfg.record(OpSet, n.Path(), true)

		return wrapWith(raw, cfg), nil
	}

	for _, seg := range n.path {
		level = vivify(level, seg)
	}

	c := &Container{store: level, cfg: cfg}
	if _, err := c.Set(key, raw); err != nil {
		return nil, err
	}

	return c, nil
}
