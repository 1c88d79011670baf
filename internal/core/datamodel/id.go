package datamodel

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ID is an identifier the backend may send as a JSON string or number.
// It always holds the string form.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(strings.TrimSpace(n.String()))
	return nil
}

func (id ID) String() string {
	return string(id)
}

// IDs converts a slice of backend identifiers to strings. A nil slice yields
// an empty, non-nil one.
func IDs(ids []ID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}
