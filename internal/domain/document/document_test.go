package document

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Text
	}{
		{name: "value wrapper", input: `{"value": "ABC"}`, want: NewText("ABC")},
		{name: "hash text wrapper", input: `{"#text": "ABC"}`, want: NewText("ABC")},
		{name: "bare string", input: `"2021-09-14T06:11:16Z"`, want: NewText("2021-09-14T06:11:16Z")},
		{name: "bare number keeps literal", input: `2`, want: NewText("2")},
		{name: "wrapped number", input: `{"value": 12.50}`, want: NewText("12.50")},
		{name: "null", input: `null`, want: Text{}},
		{name: "object without payload", input: `{"currencyCode": "USD"}`, want: Text{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tt.input), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText_UnmarshalJSON_Array(t *testing.T) {
	var got Text
	err := json.Unmarshal([]byte(`["a"]`), &got)
	assert.Error(t, err)
}

func TestText_Or(t *testing.T) {
	assert.Equal(t, "fallback", Text{}.Or("fallback"))
	assert.Equal(t, "", NewText("").Or("fallback"))
	assert.Equal(t, "x", NewText("x").Or("fallback"))
}

func TestMany_UnmarshalJSON(t *testing.T) {
	type holder struct {
		Items Many[Text] `json:"items"`
	}

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "list", input: `{"items": [{"value": "a"}, {"value": "b"}]}`, want: []string{"a", "b"}},
		{name: "bare record", input: `{"items": {"value": "a"}}`, want: []string{"a"}},
		{name: "missing", input: `{}`, want: nil},
		{name: "null", input: `{"items": null}`, want: nil},
		{name: "empty list", input: `{"items": []}`, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var h holder
			require.NoError(t, json.Unmarshal([]byte(tt.input), &h))

			var got []string
			if h.Items != nil {
				got = make([]string, 0, len(h.Items))
				for _, it := range h.Items {
					got = append(got, it.Value)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMany_UnmarshalXML(t *testing.T) {
	type holder struct {
		Items Many[Text] `xml:"Item"`
	}

	var single holder
	require.NoError(t, xml.Unmarshal([]byte(`<Root><Item>a</Item></Root>`), &single))
	assert.Len(t, single.Items, 1)

	var several holder
	require.NoError(t, xml.Unmarshal([]byte(`<Root><Item>a</Item><Other/><Item>b</Item></Root>`), &several))
	require.Len(t, several.Items, 2)
	assert.Equal(t, "a", several.Items[0].Value)
	assert.Equal(t, "b", several.Items[1].Value)
}

func TestMany_First(t *testing.T) {
	_, ok := Many[int](nil).First()
	assert.False(t, ok)

	v, ok := Many[int]{7, 8}.First()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}

func TestLabeled_UnmarshalJSON(t *testing.T) {
	var records Many[Labeled]
	input := `[
		{"typeCode": "Tracking Number", "value": "1Z999"},
		{"name": "Estimate Name", "#text": "Lab refresh"},
		{"@typeCode": "OrderName", "#text": "PO-7"},
		{"value": "orphan"}
	]`
	require.NoError(t, json.Unmarshal([]byte(input), &records))
	require.Len(t, records, 4)

	assert.Equal(t, Labeled{Kind: DiscriminatorTypeCode, Label: "Tracking Number", Text: "1Z999"}, records[0])
	assert.Equal(t, Labeled{Kind: DiscriminatorName, Label: "Estimate Name", Text: "Lab refresh"}, records[1])
	assert.Equal(t, Labeled{Kind: DiscriminatorTypeCode, Label: "OrderName", Text: "PO-7"}, records[2])
	assert.Equal(t, DiscriminatorNone, records[3].Kind)
}

func TestLabeled_UnmarshalXML(t *testing.T) {
	type holder struct {
		Values Many[Labeled] `xml:"NameValue"`
	}
	input := `<Property>
		<NameValue name="CCWLineNumber"> 1.0 </NameValue>
		<NameValue typeCode="Other">x</NameValue>
	</Property>`

	var h holder
	require.NoError(t, xml.Unmarshal([]byte(input), &h))
	require.Len(t, h.Values, 2)
	assert.Equal(t, Labeled{Kind: DiscriminatorName, Label: "CCWLineNumber", Text: "1.0"}, h.Values[0])
	assert.Equal(t, Labeled{Kind: DiscriminatorTypeCode, Label: "Other", Text: "x"}, h.Values[1])
}

func TestLabeled_EmptyTypeCodeFallsBackToName(t *testing.T) {
	var fromJSON Labeled
	require.NoError(t, json.Unmarshal([]byte(`{"typeCode": "", "name": "Deal ID", "value": "D1"}`), &fromJSON))
	assert.Equal(t, Labeled{Kind: DiscriminatorName, Label: "Deal ID", Text: "D1"}, fromJSON)

	var fromXML Labeled
	require.NoError(t, xml.Unmarshal([]byte(`<ValueText typeCode="" name="Deal ID">D1</ValueText>`), &fromXML))
	assert.Equal(t, Labeled{Kind: DiscriminatorName, Label: "Deal ID", Text: "D1"}, fromXML)

	v, ok := FindAttribute([]Labeled{fromJSON}, "Deal ID")
	assert.True(t, ok)
	assert.Equal(t, "D1", v)
}

func TestFindAttribute(t *testing.T) {
	records := []Labeled{
		{Kind: DiscriminatorTypeCode, Label: "A", Text: "first"},
		{Kind: DiscriminatorName, Label: "B", Text: "second"},
		{Kind: DiscriminatorTypeCode, Label: "A", Text: "shadowed"},
	}

	tests := []struct {
		name    string
		records []Labeled
		label   string
		want    string
		found   bool
	}{
		{name: "empty sequence", records: nil, label: "A", found: false},
		{name: "no match", records: records, label: "C", found: false},
		{name: "first match wins", records: records, label: "A", want: "first", found: true},
		{name: "name discriminator", records: records, label: "B", want: "second", found: true},
		{name: "single record", records: records[1:2], label: "B", want: "second", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindAttribute(tt.records, tt.label)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)

			again, okAgain := FindAttribute(tt.records, tt.label)
			assert.Equal(t, got, again)
			assert.Equal(t, ok, okAgain)
		})
	}
}

func TestFindAttribute_IgnoresUnlabeled(t *testing.T) {
	_, ok := FindAttribute([]Labeled{{Text: "x"}}, "")
	assert.False(t, ok)
}
