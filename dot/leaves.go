package dot

// Leaf is a fully qualified path and the non-mapping value found there.
type Leaf struct {
	Path  string
	Value Value
}

// Leaves flattens the container. Mappings are expanded and never emitted,
// so empty mappings contribute nothing. Sequences are leaves. The optional
// prefix is prepended verbatim to every path.
func (c *Container) Leaves(prefix ...string) []Leaf {
	var p string
	if len(prefix) > 0 {
		p = prefix[0]
	}

	return c.leaves(p, nil)
}

func (c *Container) leaves(prefix string, out []Leaf) []Leaf {
	delim := c.config().splitter.Delim()

	for _, it := range c.Items() {
		if child, ok := it.Value.(*Container); ok {
			out = child.leaves(prefix+it.Key+delim, out)
			continue
		}

		out = append(out, Leaf{Path: prefix + it.Key, Value: it.Value})
	}

	return out
}
