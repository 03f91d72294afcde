package format

import (
	"encoding/json"
	"io"

	"medrax-guide/pkg/tutorial"
)

// WriteNDJSONSections writes topics as newline-delimited JSON objects.
func WriteNDJSONSections(w io.Writer, topics []tutorial.Section) error {
	enc := json.NewEncoder(w)
	for _, s := range topics {
		if err := enc.Encode(toJSON(s)); err != nil {
			return err
		}
	}
	return nil
}

// WriteNDJSONSection writes a single topic as one JSON line.
func WriteNDJSONSection(w io.Writer, s tutorial.Section) error {
	enc := json.NewEncoder(w)
	return enc.Encode(toJSON(s))
}
