package format

import (
	"encoding/json"
	"io"

	"medrax-guide/pkg/tutorial"
)

// sectionJSON is the wire form of a section: the section fields plus
// its content digest.
type sectionJSON struct {
	tutorial.Section
	Digest string `json:"digest"`
}

func toJSON(s tutorial.Section) sectionJSON {
	return sectionJSON{Section: s, Digest: s.Digest()}
}

func WriteJSONSection(w io.Writer, s tutorial.Section, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(toJSON(s))
}

func WriteJSONSections(w io.Writer, topics []tutorial.Section, indent bool) error {
	out := make([]sectionJSON, len(topics))
	for i, s := range topics {
		out[i] = toJSON(s)
	}
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
