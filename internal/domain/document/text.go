// Package document holds the building blocks shared by the order, serial and
// estimate wire documents: scalars wrapped one level deep, elements that
// collapse to a bare record when they occur once, and labeled records picked
// out of a list by their type code or name.
package document

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// payloadKeys are the wrapper keys a scalar may be nested under.
var payloadKeys = []string{"value", "#text"}

// Text is a scalar field. On the wire it arrives as {"value": x},
// {"#text": x}, a bare string or a bare number. Valid reports whether the
// field was present at all.
type Text struct {
	Value string
	Valid bool
}

// NewText returns a present Text.
func NewText(v string) Text {
	return Text{Value: v, Valid: true}
}

func (t Text) String() string {
	return t.Value
}

// Or returns the value, or def when the field was absent.
func (t Text) Or(def string) string {
	if !t.Valid {
		return def
	}
	return t.Value
}

func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = Text{}
		return nil
	}

	switch data[0] {
	case '{':
		var wrapped map[string]json.RawMessage
		if err := json.Unmarshal(data, &wrapped); err != nil {
			return fmt.Errorf("decode wrapped text: %w", err)
		}
		for _, key := range payloadKeys {
			if raw, ok := wrapped[key]; ok {
				return t.UnmarshalJSON(raw)
			}
		}
		*t = Text{}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decode text: %w", err)
		}
		*t = NewText(s)
		return nil
	case '[':
		return fmt.Errorf("decode text: unexpected array")
	default:
		// numbers and booleans keep their literal form
		*t = NewText(string(data))
		return nil
	}
}

func (t Text) MarshalJSON() ([]byte, error) {
	if !t.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(t.Value)
}

func (t *Text) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var s string
	if err := d.DecodeElement(&s, &start); err != nil {
		return err
	}
	*t = NewText(strings.TrimSpace(s))
	return nil
}
