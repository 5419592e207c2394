package codec

import (
	"gopkg.in/yaml.v3"

	"dotmap/storage"
)

func encodeYAML(raw any) ([]byte, error) {
	node, err := storage.EncodeYAMLNode(raw)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(node)
}
