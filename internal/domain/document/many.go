package document

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
)

// Many is a repeated element. Producers of these documents emit a bare record
// instead of a one-element list when an element occurs once, so Many accepts
// both shapes and always exposes a slice.
type Many[T any] []T

// First returns the first element, if any.
func (m Many[T]) First() (T, bool) {
	var zero T
	if len(m) == 0 {
		return zero, false
	}
	return m[0], true
}

func (m *Many[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}

	if data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*m = items
		return nil
	}

	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*m = Many[T]{one}
	return nil
}

// UnmarshalXML is called once per matching element; each call appends.
func (m *Many[T]) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var one T
	if err := d.DecodeElement(&one, &start); err != nil {
		return err
	}
	*m = append(*m, one)
	return nil
}
