package estimate

import (
	"encoding/xml"

	"ccw_query/internal/domain/document"
)

// Envelope is the SOAP response of acquireEstimate.
type Envelope struct {
	XMLName xml.Name `xml:"Envelope"`
	Quote   Quote    `xml:"Body>AcknowledgeQuote>DataArea>Quote"`
}

type Quote struct {
	Header QuoteHeader              `xml:"QuoteHeader"`
	Lines  document.Many[QuoteLine] `xml:"QuoteLine"`
}

type QuoteHeader struct {
	ID        document.Text  `xml:"ID"`
	Status    QuoteStatus    `xml:"Status"`
	Message   *QuoteMessage  `xml:"Message"`
	Extension QuoteExtension `xml:"Extension"`
}

type QuoteStatus struct {
	Reason document.Text `xml:"Reason"`
}

type QuoteMessage struct {
	Description document.Text `xml:"Description"`
}

type QuoteExtension struct {
	ValueText document.Many[document.Labeled] `xml:"ValueText"`
}

type QuoteLine struct {
	LineNumberID document.Text `xml:"LineNumberID"`
	Item         *QuoteItem    `xml:"Item"`
}

type QuoteItem struct {
	ID            document.Text  `xml:"ID"`
	Description   document.Text  `xml:"Description"`
	Extension     ItemExtension  `xml:"Extension"`
	Specification *Specification `xml:"Specification"`
}

type ItemExtension struct {
	Quantity document.Text `xml:"Quantity"`
}

type Specification struct {
	Property *Property `xml:"Property"`
}

type Property struct {
	NameValue document.Many[document.Labeled] `xml:"NameValue"`
}
