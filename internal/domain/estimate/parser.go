package estimate

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"ccw_query/internal/domain/document"
)

const (
	labelEstimateName = "Estimate Name"
	labelLineNumber   = "CCWLineNumber"
)

// ParseXML decodes an acquireEstimate SOAP response and parses it.
func ParseXML(raw []byte) (*Estimate, error) {
	var env Envelope
	if err := xml.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode estimate document: %w", err)
	}
	return Parse(&env)
}

// Parse builds an Estimate. A failure description in the quote header becomes
// an EstimateError. Lines without a CCWLineNumber, or with a quantity that is
// not an integer, are dropped.
func Parse(env *Envelope) (*Estimate, error) {
	if env == nil {
		return nil, &EstimateError{Description: "empty estimate response"}
	}
	h := env.Quote.Header
	if h.Message != nil && h.Message.Description.Value != "" {
		return nil, &EstimateError{EstimateID: h.ID.Value, Description: h.Message.Description.Value}
	}

	e := &Estimate{
		ID:           h.ID.Value,
		StatusReason: h.Status.Reason.Value,
		lines:        make(map[string]*Line),
	}
	if name, ok := document.FindAttribute(h.Extension.ValueText, labelEstimateName); ok {
		e.Name = &name
	}

	for _, ql := range env.Quote.Lines {
		line, ok := parseLine(ql)
		if !ok {
			continue
		}
		if _, seen := e.lines[line.LineItem]; !seen {
			e.keys = append(e.keys, line.LineItem)
		}
		e.lines[line.LineItem] = line
	}
	SortNatural(e.keys)
	return e, nil
}

func parseLine(ql QuoteLine) (*Line, bool) {
	item := ql.Item
	if item == nil || item.Specification == nil || item.Specification.Property == nil {
		return nil, false
	}
	lineItem, ok := document.FindAttribute(item.Specification.Property.NameValue, labelLineNumber)
	if !ok || lineItem == "" {
		return nil, false
	}

	qty, err := strconv.Atoi(strings.TrimSpace(item.Extension.Quantity.Value))
	if err != nil {
		return nil, false
	}

	return &Line{
		LineItem:    lineItem,
		SKU:         item.ID.Value,
		Description: item.Description.Value,
		Quantity:    qty,
		LineID:      ql.LineNumberID.Value,
	}, true
}
