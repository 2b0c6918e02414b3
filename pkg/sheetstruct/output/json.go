// Package output serializes analysis documents to JSON and renders
// human-readable summaries.
package output

import (
	"encoding/json"
	"os"
)

// ToJSON serializes a document to JSON, optionally pretty-printed.
func ToJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// WriteFile serializes a document and writes it to path.
func WriteFile(path string, v any, pretty bool) error {
	data, err := ToJSON(v, pretty)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
