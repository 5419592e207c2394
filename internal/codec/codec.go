package codec

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"dotmap/storage"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatHCL     Format = "hcl"
	FormatMsgpack Format = "msgpack"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatYAML, FormatHCL, FormatMsgpack}

// ParseFormat resolves a format name. Common aliases are accepted.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "hcl", "tfvars":
		return FormatHCL, nil
	case "msgpack", "mpk", "mp":
		return FormatMsgpack, nil
	default:
		return "", fmt.Errorf("unknown format %q", name)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot detect format of %s: no file extension", path)
	}

	return ParseFormat(ext)
}

// Decode parses data in the given format. filename is only used in messages.
func Decode(data []byte, format Format, filename string) (any, error) {
	switch format {
	case FormatJSON:
		return storage.DecodeJSON(data)
	case FormatYAML:
		return storage.DecodeYAML(data)
	case FormatHCL:
		return decodeHCL(data, filename)
	case FormatMsgpack:
		return decodeMsgpack(data)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// Encode serializes raw in the given format.
func Encode(raw any, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return encodeJSON(raw)
	case FormatYAML:
		return encodeYAML(raw)
	case FormatHCL:
		return encodeHCL(raw)
	case FormatMsgpack:
		return encodeMsgpack(raw)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// LoadFile reads and decodes a document. An empty format is detected from
// the file extension.
func LoadFile(path string, format Format) (any, error) {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	raw, err := Decode(data, format, path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return raw, nil
}

// WriteFile encodes raw and writes it to path. An empty format is detected
// from the file extension.
func WriteFile(raw any, path string, format Format) error {
	if format == "" {
		var err error
		if format, err = FormatFromPath(path); err != nil {
			return err
		}
	}

	data, err := Encode(raw, format)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}
