package storage

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML replaces the contents of o, keeping document order.
func (o *Object) UnmarshalYAML(node *yaml.Node) error {
	v, err := DecodeYAMLNode(node)
	if err != nil {
		return err
	}

	obj, ok := v.(*Object)
	if !ok {
		return ErrNotObject
	}

	*o = *obj

	return nil
}

// MarshalYAML emits a mapping node with entries in insertion order.
func (o *Object) MarshalYAML() (any, error) {
	return EncodeYAMLNode(o)
}

// DecodeYAML parses a YAML document into raw values.
func DecodeYAML(data []byte) (any, error) {
	var doc yaml.Node

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if doc.Kind == 0 {
		// empty document
		return NewObject(), nil
	}

	return DecodeYAMLNode(&doc)
}

// DecodeYAMLNode converts a yaml.v3 node tree into raw values.
// Mappings become *Object in document order.
func DecodeYAMLNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}

		return DecodeYAMLNode(node.Content[0])
	case yaml.MappingNode:
		obj := NewObject()

		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]

			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: only scalar mapping keys are supported", keyNode.Line)
			}

			val, err := DecodeYAMLNode(valNode)
			if err != nil {
				return nil, err
			}

			obj.Set(keyNode.Value, val)
		}

		return obj, nil
	case yaml.SequenceNode:
		seq := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			val, err := DecodeYAMLNode(item)
			if err != nil {
				return nil, err
			}

			seq = append(seq, val)
		}

		return seq, nil
	case yaml.AliasNode:
		return DecodeYAMLNode(node.Alias)
	case yaml.ScalarNode:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		if i, ok := v.(int); ok {
			return int64(i), nil
		}

		return v, nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)
	}
}

// EncodeYAMLNode converts raw values into a yaml.v3 node tree.
func EncodeYAMLNode(raw any) (*yaml.Node, error) {
	if s, ok := As(raw); ok {
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}

		for k, v := range s.All() {
			val, err := EncodeYAMLNode(v)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", k, err)
			}

			node.Content = append(node.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				val,
			)
		}

		return node, nil
	}

	if seq, ok := raw.([]any); ok {
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}

		for _, v := range seq {
			val, err := EncodeYAMLNode(v)
			if err != nil {
				return nil, err
			}

			node.Content = append(node.Content, val)
		}

		return node, nil
	}

	node := &yaml.Node{}
	if err := node.Encode(raw); err != nil {
		return nil, err
	}

	return node, nil
}
