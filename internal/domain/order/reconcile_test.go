package order

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccw_query/internal/domain/serial"
)

func newTestOrder(items ...*LineItem) *Order {
	o := newOrder()
	for _, item := range items {
		if item.Serials == nil {
			item.Serials = []string{}
		}
		o.addLine(item)
	}
	return o
}

func recordsFromPage(t *testing.T, raw string) *serial.Records {
	t.Helper()
	var p serial.Page
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	agg := serial.NewAggregator()
	require.NoError(t, agg.Add(&p))
	return agg.Records()
}

func TestSearchLineItem(t *testing.T) {
	o := newTestOrder(
		&LineItem{Number: "1.0", SKU: "X", Quantity: "3"},
		&LineItem{Number: "2.0", SKU: "X", Quantity: "3"},
		&LineItem{Number: "20.0", SKU: "Y", Quantity: "1"},
	)

	tests := []struct {
		name       string
		lineNumber string
		sku        string
		quantity   string
		want       string
		found      bool
	}{
		{name: "prefix sku and quantity", lineNumber: "2.1", sku: "X", quantity: "3", want: "2.0", found: true},
		{name: "quantity mismatch", lineNumber: "2.1", sku: "X", quantity: "4", found: false},
		{name: "sku mismatch", lineNumber: "2.1", sku: "Z", quantity: "3", found: false},
		{name: "prefix does not match longer number", lineNumber: "2.1", sku: "Y", quantity: "1", found: false},
		{name: "no prefix matches any line", lineNumber: "7", sku: "X", quantity: "3", want: "1.0", found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := o.SearchLineItem(tt.lineNumber, tt.sku, tt.quantity)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchLineItem_FirstMatchWins(t *testing.T) {
	o := newTestOrder(
		&LineItem{Number: "3.0.2", SKU: "X", Quantity: "1"},
		&LineItem{Number: "3.0.1", SKU: "X", Quantity: "1"},
	)

	got, ok := o.SearchLineItem("3.5", "X", "1")
	assert.True(t, ok)
	assert.Equal(t, "3.0.2", got)
}

func TestMergeSerials(t *testing.T) {
	o := newTestOrder(
		&LineItem{Number: "1.0", SKU: "ABC", Quantity: "2", Serials: []string{"OLD"}, Shipset: "9"},
		&LineItem{Number: "2.0", SKU: "DEF", Quantity: "1"},
	)
	records := recordsFromPage(t, `{
		"responseHeader": {"result": "SUCCESS", "totalPages": 1},
		"serialDetails": {"lines": [
			{"lineNumber": "1.1", "partNumber": "ABC", "quantity": 2, "shipSetNumber": "1",
			 "serialNumbers": [{"serialNumber": "SN1"}, {"serialNumber": "SN2"}]},
			{"lineNumber": "5.1", "partNumber": "ZZZ", "quantity": 1, "serialNumbers": [{"serialNumber": "LOST"}]}
		]}
	}`)

	merged := o.MergeSerials(records)

	assert.Equal(t, 1, merged)
	first, _ := o.Line("1.0")
	assert.Equal(t, []string{"SN1", "SN2"}, first.Serials)
	assert.Equal(t, "1", first.Shipset)
	second, _ := o.Line("2.0")
	assert.Equal(t, []string{}, second.Serials)
	assert.Equal(t, "", second.Shipset)
}

func TestMergeSerials_Nil(t *testing.T) {
	o := newTestOrder(&LineItem{Number: "1.0"})
	assert.Equal(t, 0, o.MergeSerials(nil))
}

func TestOrderWithSerials_EndToEnd(t *testing.T) {
	raw := `{"ShowPurchaseOrder": {"value": {"DataArea": {"PurchaseOrder": [{
		"PurchaseOrderHeader": {"SalesOrderReference": [{"ID": {"value": "81234567"}}]},
		"PurchaseOrderLine": [{
			"SalesOrderReference": {"LineNumberID": {"value": "1.0"}},
			"Item": {"ID": {"value": "ABC"}, "Lot": [{"Quantity": {"value": 2}}]},
			"Status": [{
				"Code": {"value": "Closed"},
				"Extension": [{"typeCode": "ShipmentDate", "DateTime": [{"value": "2021-09-19T10:00:00Z"}]}]
			}]
		}]
	}]}}}}`

	o, err := ParseJSON([]byte(raw), true)
	require.NoError(t, err)

	records := recordsFromPage(t, `{
		"responseHeader": {"result": "SUCCESS", "totalPages": "1"},
		"serialDetails": {"lines": [{"lineNumber": "1.1", "partNumber": "ABC", "quantity": 2,
			"serialNumbers": [{"serialNumber": "SN1"}, {"serialNumber": "SN2"}]}]}
	}`)
	o.MergeSerials(records)

	line, ok := o.Line("1.0")
	require.True(t, ok)
	assert.Equal(t, []string{"SN1", "SN2"}, line.Serials)
	assert.Equal(t, "2021-09-19T10:00:00Z", line.ShipDate)
}
