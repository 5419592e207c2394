package codec

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"dotmap/internal/ctybridge"
	"dotmap/storage"
)

// ErrNotMapping is returned when a format needs a mapping at the top level.
var ErrNotMapping = errors.New("top level value must be a mapping")

func decodeHCL(data []byte, filename string) (any, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL: %w", diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to read HCL attributes: %w", diags)
	}

	ordered := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		ordered = append(ordered, attr)
	}

	slices.SortFunc(ordered, func(a, b *hcl.Attribute) int {
		return a.Range.Start.Byte - b.Range.Start.Byte
	})

	obj := storage.NewObject()

	for _, attr := range ordered {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate attribute '%s': %w", attr.Name, diags)
		}

		raw, err := ctybridge.FromValue(val)
		if err != nil {
			return nil, fmt.Errorf("attribute '%s': %w", attr.Name, err)
		}

		if raw != nil {
			obj.Set(attr.Name, raw)
		}
	}

	return obj, nil
}

func encodeHCL(raw any) ([]byte, error) {
	s, ok := storage.As(raw)
	if !ok {
		return nil, fmt.Errorf("hcl: %w", ErrNotMapping)
	}

	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for k, v := range s.All() {
		if !hclsyntax.ValidIdentifier(k) {
			return nil, fmt.Errorf("hcl: key %q is not a valid attribute name", k)
		}

		val, err := ctybridge.ToValue(v)
		if err != nil {
			return nil, fmt.Errorf("hcl: key %q: %w", k, err)
		}

		body.SetAttributeValue(k, val)
	}

	return f.Bytes(), nil
}
