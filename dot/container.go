package dot

import (
	"encoding/json"
	"fmt"
	"iter"
	"reflect"

	"dotmap/storage"
)

// Container is a path-aware facade over one raw storage.
//
// Keys containing the delimiter (default ".") address nested levels.
// The bare delimiter addresses the container itself. Attr, SetAttr and
// DelAttr take a key literally, which is the only way to reach a key that
// itself contains the delimiter.
//
// A Container holds a live reference to its storage: changes made through
// any facade over the same storage are visible to all of them. The zero
// value is an empty container using an insertion-ordered Object.
type Container struct {
	store storage.Storage
	cfg   *config
}

// Item is a key and its wrapped value.
type Item struct {
	Key   string
	Value Value
}

// New creates an empty container backed by an insertion-ordered Object.
func New(opts ...Option) *Container {
	return FromStorage(storage.NewObject(), opts...)
}

// FromStorage creates a container over s. s is shared, not copied.
func FromStorage(s storage.Storage, opts ...Option) *Container {
	if s == nil {
		s = storage.NewObject()
	}

	return &Container{store: s, cfg: newConfig(opts)}
}

// FromMap creates a container sharing m. A nil m starts a new map.
func FromMap(m map[string]any, opts ...Option) *Container {
	if m == nil {
		m = map[string]any{}
	}

	return FromStorage(storage.GoMap(m), opts...)
}

// FromAny creates a container over a raw or wrapped mapping. Absent values
// give an empty container. A map keyed by anything but strings is
// ErrInvalidKeyKind; any other value is ErrUnsupported.
func FromAny(x any, opts ...Option) (*Container, error) {
	raw := Unwrap(x)
	if raw == nil {
		return New(opts...), nil
	}

	s, ok := storage.As(raw)
	if !ok {
		if rv := reflect.ValueOf(raw); rv.Kind() == reflect.Map && rv.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("cannot build a container from %T: %w", raw, ErrInvalidKeyKind)
		}

		return nil, fmt.Errorf("cannot build a container from %T: %w", raw, ErrUnsupported)
	}

	return FromStorage(s, opts...), nil
}

func (c *Container) backing() storage.Storage {
	if c.store == nil {
		c.store = storage.NewObject()
	}

	return c.store
}

func (c *Container) config() *config {
	if c.cfg == nil {
		return defaultConfig
	}

	return c.cfg
}

func (c *Container) Kind() Kind { return KindObject }
func (c *Container) IsNull() bool { return false }

// Storage returns the backing storage.
func (c *Container) Storage() storage.Storage {
	return c.backing()
}

// Raw returns the backing storage in its native form.
func (c *Container) Raw() any {
	return c.backing().Raw()
}

// Len returns the number of top-level entries.
func (c *Container) Len() int {
	return c.backing().Len()
}

// Get reads key. A miss returns a Null that can materialise the missing
// levels; Get itself never modifies the storage.
func (c *Container) Get(key string) Value {
	cfg := c.config()
	sp := cfg.splitter

	if key == "" {
		cfg.record(OpGet, key, false)
		return Nil
	}

	if sp.IsDegenerate(key) {
		return c
	}

	var v Value
	if !sp.Contains(key) {
		v = c.read(c.backing(), []string{key})
	} else {
		v = c.read(c.backing(), sp.Split(key))
	}

	cfg.record(OpGet, key, !v.IsNull())

	return v
}

func (c *Container) read(level storage.Storage, segs []string) Value {
	last := len(segs) - 1

	for i, seg := range segs[:last] {
		raw, ok := level.Get(seg)
		if !ok || raw == nil {
			return Null{owner: level, path: segs[i:], cfg: c.cfg}
		}

		next, ok := storage.As(raw)
		if !ok {
			// a leaf is in the way; there is nowhere to write
			return Nil
		}

		level = next
	}

	raw, ok := level.Get(segs[last])
	if !ok || raw == nil {
		return Null{owner: level, path: segs[last:], cfg: c.cfg}
	}

	return wrapWith(raw, c.config())
}

// Lookup reads a dynamically typed key: nil gives Nil, a string is passed
// to Get and any other type is ErrInvalidKeyKind.
func (c *Container) Lookup(key any) (Value, error) {
	switch k := key.(type) {
	case nil:
		return Nil, nil
	case string:
		return c.Get(k), nil
	default:
		return nil, fmt.Errorf("lookup with %T key: %w", key, ErrInvalidKeyKind)
	}
}

// Has reports whether key holds a value.
func (c *Container) Has(key string) bool {
	return !c.Get(key).IsNull()
}

// Set writes value under key, creating missing intermediate levels.
// Writing nil or any Null deletes the key. The bare delimiter replaces the
// whole backing storage, which requires a mapping (or nil, which empties it).
// Unlike a degenerate Get, which may hand back any value, a degenerate Set
// with a scalar or sequence is ErrUnsupported: the container must stay
// associative.
func (c *Container) Set(key string, value any) (*Container, error) {
	if key == "" {
		return c, fmt.Errorf("set: %w", ErrEmptyKey)
	}

	cfg := c.config()
	sp := cfg.splitter
	raw := Unwrap(value)

	if sp.IsDegenerate(key) {
		if raw == nil {
			c.store = c.backing().Empty()
			return c, nil
		}

		s, ok := storage.As(raw)
		if !ok {
			return c, fmt.Errorf("replace container with %T: %w", raw, ErrUnsupported)
		}

		c.store = s

		return c, nil
	}

	level, last := c.backing(), key

	if sp.Contains(key) {
		segs := sp.Split(key)
		for _, seg := range segs[:len(segs)-1] {
			level = vivify(level, seg)
		}

		last = segs[len(segs)-1]
	}

	assign(level, last, raw)
	cfg.record(OpSet, key, true)

	return c, nil
}

// MustSet is like Set but panics on error.
func (c *Container) MustSet(key string, value any) *Container {
	if _, err := c.Set(key, value); err != nil {
		panic(err)
	}

	return c
}

// SetDefault sets value only when key currently reads as null.
func (c *Container) SetDefault(key string, value any) (*Container, error) {
	if !c.Get(key).IsNull() {
		return c, nil
	}

	return c.Set(key, value)
}

// Delete removes key. Missing levels along the path are not created and a
// missing key is not an error.
func (c *Container) Delete(key string) {
	cfg := c.config()
	sp := cfg.splitter
	level := c.backing()

	cfg.record(OpDelete, key, true)

	if !sp.Contains(key) {
		level.Delete(key)
		return
	}

	segs := sp.Split(key)
	for _, seg := range segs[:len(segs)-1] {
		raw, ok := level.Get(seg)
		if !ok {
			return
		}

		next, ok := storage.As(raw)
		if !ok {
			return
		}

		level = next
	}

	level.Delete(segs[len(segs)-1])
}

// Attr reads a single key without splitting it.
func (c *Container) Attr(key string) Value {
	level := c.backing()

	raw, ok := level.Get(key)
	if !ok || raw == nil {
		c.config().record(OpAttr, key, false)
		return Null{owner: level, path: []string{key}, cfg: c.cfg}
	}

	c.config().record(OpAttr, key, true)

	return wrapWith(raw, c.config())
}

// SetAttr writes a single key without splitting it. nil deletes.
func (c *Container) SetAttr(key string, value any) *Container {
	assign(c.backing(), key, Unwrap(value))
	c.config().record(OpSet, key, true)

	return c
}

// DelAttr removes a single key without splitting it.
func (c *Container) DelAttr(key string) {
	c.backing().Delete(key)
	c.config().record(OpDelete, key, true)
}

// Clear is not supported: it always fails and leaves the container as is.
func (c *Container) Clear() error {
	return fmt.Errorf("clear: %w", ErrUnsupported)
}

// Items returns the entries in storage order. Entries holding a raw nil are
// skipped; mappings, including empty ones, are kept.
func (c *Container) Items() []Item {
	cfg := c.config()
	out := make([]Item, 0, c.Len())

	for k, v := range c.backing().All() {
		if v == nil {
			continue
		}

		out = append(out, Item{Key: k, Value: wrapWith(v, cfg)})
	}

	return out
}

// All iterates every entry with its wrapped value, unfiltered.
func (c *Container) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		cfg := c.config()
		for k, v := range c.backing().All() {
			if !yield(k, wrapWith(v, cfg)) {
				return
			}
		}
	}
}

// Keys returns the top-level keys in storage order.
func (c *Container) Keys() []string {
	return c.backing().Keys()
}

// Values returns the wrapped top-level values in storage order.
func (c *Container) Values() []Value {
	cfg := c.config()
	out := make([]Value, 0, c.Len())

	for _, v := range c.backing().All() {
		out = append(out, wrapWith(v, cfg))
	}

	return out
}

// Equal reports structural equality with a wrapped or raw value. An empty
// container equals nil and Null.
func (c *Container) Equal(other any) bool {
	return Equal(c, other)
}

// Hash returns a structural hash consistent with Equal. It is only stable
// while the container is not mutated.
func (c *Container) Hash() uint64 {
	return Hash(c)
}

// Copy returns a container over a shallow copy of the top level. Nested
// levels are shared with the receiver.
func (c *Container) Copy() *Container {
	return &Container{store: c.backing().Clone(), cfg: c.cfg}
}

// DeepCopy returns a container over a fully independent copy.
func (c *Container) DeepCopy() *Container {
	s, _ := storage.As(storage.DeepCopy(c.backing().Raw()))
	return &Container{store: s, cfg: c.cfg}
}

func (c *Container) String() string {
	data, err := json.Marshal(c.backing().Raw())
	if err != nil {
		return "{}"
	}

	return string(data)
}

func (c *Container) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.backing().Raw())
}

// UnmarshalJSON replaces the backing storage with the decoded object.
func (c *Container) UnmarshalJSON(data []byte) error {
	obj := storage.NewObject()
	if err := obj.UnmarshalJSON(data); err != nil {
		return err
	}

	c.store = obj

	return nil
}

func (c *Container) MarshalYAML() (any, error) {
	return storage.EncodeYAMLNode(c.backing().Raw())
}

// vivify returns the mapping under key, creating an empty one of the same
// strategy when key is missing or holds a leaf.
func vivify(level storage.Storage, key string) storage.Storage {
	if raw, ok := level.Get(key); ok {
		if s, ok := storage.As(raw); ok {
			return s
		}
	}

	next := level.Empty()
	level.Set(key, next.Raw())

	return next
}

func assign(level storage.Storage, key string, raw any) {
	if raw == nil {
		level.Delete(key)
		return
	}

	level.Set(key, raw)
}
