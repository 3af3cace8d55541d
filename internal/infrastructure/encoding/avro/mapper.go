package avro

import (
	"ccw_query/internal/domain/order"
)

// ToOrderLineNative converts an export record into goavro's native form.
// goavro requires union values wrapped as {"type": value}; empty strings are
// sent as null.
func ToOrderLineNative(rec order.ExportRecord) map[string]interface{} {
	optional := func(s string) interface{} {
		if s == "" {
			return nil
		}
		return map[string]interface{}{"string": s}
	}

	serials := make([]interface{}, 0, len(rec.Serials))
	for _, s := range rec.Serials {
		serials = append(serials, s)
	}

	return map[string]interface{}{
		"so_number":             rec.SalesOrder,
		"line_number":           rec.LineNumber,
		"so_name":               optional(rec.OrderName),
		"so_date":               optional(rec.OrderDate),
		"quantity":              optional(rec.Quantity),
		"item_name":             optional(rec.SKU),
		"item_description":      optional(rec.Description),
		"line_status":           optional(rec.Status),
		"requested_delivery":    optional(rec.RequestedDelivery),
		"promised_delivery":     optional(rec.PromisedDelivery),
		"ship_date":             optional(rec.ShipDate),
		"shipset":               optional(rec.Shipset),
		"serial_numbers":        serials,
		"ship_to_name":          optional(rec.ShipToName),
		"ship_to_address":       optional(rec.ShipToAddress),
		"ship_to_contact":       optional(rec.ShipToContact),
		"ship_to_contact_phone": optional(rec.ShipToContactPhone),
		"ship_to_contact_email": optional(rec.ShipToContactEmail),
		"tracking_number":       optional(rec.TrackingNumber),
		"tracking_url":          optional(rec.TrackingURL),
	}
}

// FromOrderLineNative is the inverse of ToOrderLineNative. Nulls come back as
// empty strings.
func FromOrderLineNative(data map[string]interface{}) order.ExportRecord {
	str := func(key string) string {
		switch v := data[key].(type) {
		case string:
			return v
		case map[string]interface{}:
			if s, ok := v["string"].(string); ok {
				return s
			}
		}
		return ""
	}

	serials := []string{}
	if items, ok := data["serial_numbers"].([]interface{}); ok {
		for _, item := range items {
			if s, ok := item.(string); ok {
				serials = append(serials, s)
			}
		}
	}

	return order.ExportRecord{
		SalesOrder:         str("so_number"),
		LineNumber:         str("line_number"),
		OrderName:          str("so_name"),
		OrderDate:          str("so_date"),
		Quantity:           str("quantity"),
		SKU:                str("item_name"),
		Description:        str("item_description"),
		Status:             str("line_status"),
		RequestedDelivery:  str("requested_delivery"),
		PromisedDelivery:   str("promised_delivery"),
		ShipDate:           str("ship_date"),
		Shipset:            str("shipset"),
		Serials:            serials,
		ShipToName:         str("ship_to_name"),
		ShipToAddress:      str("ship_to_address"),
		ShipToContact:      str("ship_to_contact"),
		ShipToContactPhone: str("ship_to_contact_phone"),
		ShipToContactEmail: str("ship_to_contact_email"),
		TrackingNumber:     str("tracking_number"),
		TrackingURL:        str("tracking_url"),
	}
}
