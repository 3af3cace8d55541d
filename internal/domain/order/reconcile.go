package order

import (
	"strings"

	"ccw_query/internal/domain/serial"
)

// SearchLineItem finds the order line a serial record belongs to. Serial data
// is numbered independently of the order, so the match is on the leading
// "N." of lineNumber plus SKU and quantity. The first match in document order
// wins.
func (o *Order) SearchLineItem(lineNumber, sku, quantity string) (string, bool) {
	prefix := linePrefix(lineNumber)
	for _, number := range o.order {
		item := o.lines[number]
		if strings.HasPrefix(number, prefix) && item.SKU == sku && item.Quantity == quantity {
			return number, true
		}
	}
	return "", false
}

// MergeSerials copies serials and shipset from records onto the matching
// line items, replacing what was there. Records without a matching line are
// skipped. It returns the number of lines updated.
func (o *Order) MergeSerials(records *serial.Records) int {
	if records == nil {
		return 0
	}

	merged := 0
	for _, lineNumber := range records.LineNumbers() {
		rec, _ := records.Get(lineNumber)
		target, ok := o.SearchLineItem(lineNumber, rec.SKU, rec.Quantity)
		if !ok {
			continue
		}
		item := o.lines[target]
		item.Serials = append(make([]string, 0, len(rec.Serials)), rec.Serials...)
		item.Shipset = rec.Shipset
		merged++
	}
	return merged
}
