// File: internal/common/serialize.go
package common

import "encoding/json"

// EncodeStringList serializes a string list into the text column format used
// for skill lists. A nil or empty list is stored as NULL.
func EncodeStringList(items []string) *string {
	if len(items) == 0 {
		return nil
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil
	}
	encoded := string(raw)
	return &encoded
}

// DecodeStringList deserializes a text column back into a string list.
// Unparsable or NULL values decode to an empty list rather than an error.
func DecodeStringList(encoded *string) []string {
	if encoded == nil || *encoded == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(*encoded), &items); err != nil {
		return []string{}
	}
	return items
}
