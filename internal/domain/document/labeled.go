package document

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"strings"
)

// Discriminator names the field a Labeled record is selected by.
type Discriminator int

const (
	DiscriminatorNone Discriminator = iota
	DiscriminatorTypeCode
	DiscriminatorName
)

func (d Discriminator) String() string {
	switch d {
	case DiscriminatorTypeCode:
		return "typeCode"
	case DiscriminatorName:
		return "name"
	default:
		return "none"
	}
}

// discriminatorFields lists the wire spellings of each discriminator, in
// precedence order. The "@" forms come from XML-to-JSON converters. An empty
// label falls through to the next spelling.
var discriminatorFields = []struct {
	key  string
	kind Discriminator
}{
	{"typeCode", DiscriminatorTypeCode},
	{"@typeCode", DiscriminatorTypeCode},
	{"name", DiscriminatorName},
	{"@name", DiscriminatorName},
}

// Labeled is one record of a same-shaped list, e.g.
// {"typeCode": "Tracking URL", "value": "..."} or
// <NameValue name="CCWLineNumber">1</NameValue>.
type Labeled struct {
	Kind  Discriminator
	Label string
	Text  string
}

func (l *Labeled) UnmarshalJSON(data []byte) error {
	*l = Labeled{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return fmt.Errorf("decode labeled record: %w", err)
	}

	for _, f := range discriminatorFields {
		raw, ok := fields[f.key]
		if !ok {
			continue
		}
		var label Text
		if err := label.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("decode %s: %w", f.key, err)
		}
		if label.Value == "" {
			continue
		}
		l.Kind = f.kind
		l.Label = label.Value
		break
	}

	for _, key := range payloadKeys {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		var payload Text
		if err := payload.UnmarshalJSON(raw); err != nil {
			return fmt.Errorf("decode %s: %w", key, err)
		}
		l.Text = payload.Value
		break
	}
	return nil
}

func (l *Labeled) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	*l = Labeled{}
	var typeCode, name string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "typeCode":
			typeCode = attr.Value
		case "name":
			name = attr.Value
		}
	}
	switch {
	case typeCode != "":
		l.Kind, l.Label = DiscriminatorTypeCode, typeCode
	case name != "":
		l.Kind, l.Label = DiscriminatorName, name
	}

	var text string
	if err := d.DecodeElement(&text, &start); err != nil {
		return err
	}
	l.Text = strings.TrimSpace(text)
	return nil
}

// FindAttribute returns the text of the first record whose discriminator
// equals label. The second result is false when nothing matches, which
// callers treat as a missing optional field.
func FindAttribute(records []Labeled, label string) (string, bool) {
	for _, r := range records {
		if r.Kind != DiscriminatorNone && r.Label == label {
			return r.Text, true
		}
	}
	return "", false
}
