package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one element of the fetched array. Only the title is retained.
type Record struct {
	Title Title
}

// UnmarshalJSON implements json.Unmarshaler. Elements that are not objects,
// and objects without a title key, decode to an empty string title.
func (r *Record) UnmarshalJSON(data []byte) error {
	*r = Record{Title: StringTitle("")}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}

	value, ok := fields["title"]
	if !ok {
		return nil
	}
	return r.Title.UnmarshalJSON(value)
}
