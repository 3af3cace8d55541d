package estimate

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quoteLine(lineID, lineItem, sku, qty string) string {
	return fmt.Sprintf(`
      <QuoteLine>
        <LineNumberID>%s</LineNumberID>
        <Item>
          <ID typeCode="SKU">%s</ID>
          <Description>Item %s</Description>
          <Extension><Quantity unitCode="EA">%s</Quantity></Extension>
          <Specification><Property>
            <NameValue name="Other">ignored</NameValue>
            <NameValue name="CCWLineNumber">%s</NameValue>
          </Property></Specification>
        </Item>
      </QuoteLine>`, lineID, sku, sku, qty, lineItem)
}

func envelope(header string, lines ...string) []byte {
	return []byte(`<?xml version="1.0" encoding="UTF-8"?>
<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/">
  <soapenv:Body>
    <AcknowledgeQuote xmlns="http://www.openapplications.org/oagis/10">
      <DataArea>
        <Quote>
          <QuoteHeader>` + header + `</QuoteHeader>` + strings.Join(lines, "") + `
        </Quote>
      </DataArea>
    </AcknowledgeQuote>
  </soapenv:Body>
</soapenv:Envelope>`)
}

const okHeader = `
            <ID typeCode="Estimate ID">EST-42</ID>
            <Status><Reason>VALID</Reason></Status>
            <Extension>
              <ValueText name="Deal ID">D1</ValueText>
              <ValueText name="Estimate Name">Lab refresh</ValueText>
            </Extension>`

func TestParseXML_Header(t *testing.T) {
	e, err := ParseXML(envelope(okHeader, quoteLine("100", "1", "ABC", "2")))
	require.NoError(t, err)

	assert.Equal(t, "EST-42", e.ID)
	assert.Equal(t, "VALID", e.StatusReason)
	require.NotNil(t, e.Name)
	assert.Equal(t, "Lab refresh", *e.Name)
}

func TestParseXML_NoName(t *testing.T) {
	header := `<ID>EST-1</ID><Status><Reason>VALID</Reason></Status>`
	e, err := ParseXML(envelope(header, quoteLine("1", "1", "A", "1")))
	require.NoError(t, err)

	assert.Nil(t, e.Name)
	assert.Equal(t, 1, e.Len())
}

func TestParseXML_NaturalOrder(t *testing.T) {
	e, err := ParseXML(envelope(okHeader,
		quoteLine("10", "2", "B", "1"),
		quoteLine("20", "10", "C", "1"),
		quoteLine("30", "1", "A", "1"),
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "10"}, e.LineItems())
	lines := e.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, "A", lines[0].SKU)
	assert.Equal(t, "30", lines[0].LineID)
	assert.Equal(t, "C", lines[2].SKU)
}

func TestParseXML_Line(t *testing.T) {
	e, err := ParseXML(envelope(okHeader, quoteLine("100", "1.1", "C9300-48P", " 12 ")))
	require.NoError(t, err)

	line, ok := e.Line("1.1")
	require.True(t, ok)
	assert.Equal(t, &Line{
		LineItem:    "1.1",
		SKU:         "C9300-48P",
		Description: "Item C9300-48P",
		Quantity:    12,
		LineID:      "100",
	}, line)
}

func TestParseXML_SingleLineMatchesList(t *testing.T) {
	single, err := ParseXML(envelope(okHeader, quoteLine("1", "1", "A", "3")))
	require.NoError(t, err)

	multiple, err := ParseXML(envelope(okHeader, quoteLine("1", "1", "A", "3"), quoteLine("2", "2", "B", "1")))
	require.NoError(t, err)

	require.Equal(t, 1, single.Len())
	fromSingle, _ := single.Line("1")
	fromMultiple, _ := multiple.Line("1")
	assert.Equal(t, fromMultiple, fromSingle)
}

func TestParseXML_DropsLinesWithoutNumber(t *testing.T) {
	noSpec := `
      <QuoteLine>
        <LineNumberID>2</LineNumberID>
        <Item><ID>NOSPEC</ID><Extension><Quantity>1</Quantity></Extension></Item>
      </QuoteLine>`
	noNumber := `
      <QuoteLine>
        <LineNumberID>3</LineNumberID>
        <Item><ID>NONUM</ID><Extension><Quantity>1</Quantity></Extension>
          <Specification><Property><NameValue name="Other">x</NameValue></Property></Specification>
        </Item>
      </QuoteLine>`
	noItem := `<QuoteLine><LineNumberID>4</LineNumberID></QuoteLine>`

	e, err := ParseXML(envelope(okHeader,
		quoteLine("1", "1", "KEEP", "1"),
		noSpec,
		noNumber,
		noItem,
		quoteLine("5", "", "EMPTY", "1"),
		quoteLine("6", "6", "BADQTY", "many"),
	))
	require.NoError(t, err)

	assert.Equal(t, []string{"1"}, e.LineItems())
}

func TestParseXML_FailureDescription(t *testing.T) {
	header := `<ID>EST-404</ID><Message><Description>Estimate does not exist</Description></Message>`
	e, err := ParseXML(envelope(header))

	assert.Nil(t, e)
	var estErr *EstimateError
	require.ErrorAs(t, err, &estErr)
	assert.Equal(t, "Estimate does not exist", estErr.Description)
	assert.Equal(t, "EST-404", estErr.EstimateID)
	assert.Contains(t, err.Error(), "EST-404")
}

func TestParseXML_EmptyFailureDescription(t *testing.T) {
	header := `<ID>EST-1</ID><Message><Description></Description></Message>`
	e, err := ParseXML(envelope(header, quoteLine("1", "1", "A", "1")))

	require.NoError(t, err)
	assert.Equal(t, 1, e.Len())
}

func TestParseXML_Invalid(t *testing.T) {
	_, err := ParseXML([]byte("<unterminated"))
	assert.ErrorContains(t, err, "decode estimate document")
}

func TestParse_Nil(t *testing.T) {
	_, err := Parse(nil)
	var estErr *EstimateError
	assert.ErrorAs(t, err, &estErr)
}

func TestSortNatural(t *testing.T) {
	keys := []string{"10", "2", "1.10", "1.2", "1"}
	SortNatural(keys)
	assert.Equal(t, []string{"1", "1.2", "1.10", "2", "10"}, keys)
}

func TestWriteDetail(t *testing.T) {
	e, err := ParseXML(envelope(okHeader, quoteLine("1", "1", "ABC", "4")))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteDetail(&buf, e))

	out := buf.String()
	assert.Contains(t, out, "Estimate ID  : EST-42")
	assert.Contains(t, out, "Estimate Name: Lab refresh")
	assert.Contains(t, out, "ABC")
}
