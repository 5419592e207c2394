package codec

import (
	"encoding/json"
)

func encodeJSON(raw any) ([]byte, error) {
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(data, '\n'), nil
}
