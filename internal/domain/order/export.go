package order

import "strings"

// Export column names, in output order.
const (
	ColumnSONumber           = "SO Number"
	ColumnSOName             = "SO Name"
	ColumnSODate             = "SO Date"
	ColumnLineNumber         = "Line Number"
	ColumnQuantity           = "Quantity"
	ColumnItemName           = "Item Name"
	ColumnItemDescription    = "Item Description"
	ColumnLineStatus         = "Line Status"
	ColumnRequestedDelivery  = "Requested Delivery"
	ColumnPromisedDelivery   = "Promised Delivery"
	ColumnShipDate           = "Ship Date"
	ColumnShipset            = "Shipset"
	ColumnSerialNumbers      = "Serial Numbers"
	ColumnShipToName         = "Ship-To Name"
	ColumnShipToAddress      = "Ship-To Address"
	ColumnShipToContact      = "Ship-To Contact"
	ColumnShipToContactPhone = "Ship-To Contact Phone"
	ColumnShipToContactEmail = "Ship-To Contact Email"
	ColumnTrackingNumber     = "Tracking Number"
	ColumnTrackingURL        = "Tracking URL"
)

var ExportColumns = []string{
	ColumnSONumber,
	ColumnSOName,
	ColumnSODate,
	ColumnLineNumber,
	ColumnQuantity,
	ColumnItemName,
	ColumnItemDescription,
	ColumnLineStatus,
	ColumnRequestedDelivery,
	ColumnPromisedDelivery,
	ColumnShipDate,
	ColumnShipset,
	ColumnSerialNumbers,
	ColumnShipToName,
	ColumnShipToAddress,
	ColumnShipToContact,
	ColumnShipToContactPhone,
	ColumnShipToContactEmail,
	ColumnTrackingNumber,
	ColumnTrackingURL,
}

// DateColumns hold raw ISO timestamps in an ExportRecord.
var DateColumns = map[string]bool{
	ColumnSODate:            true,
	ColumnRequestedDelivery: true,
	ColumnPromisedDelivery:  true,
	ColumnShipDate:          true,
}

// ExportRecord is one flattened line item, header fields repeated on every row.
// Dates are kept as they came from the API.
type ExportRecord struct {
	SalesOrder         string   `json:"so_number"`
	OrderName          string   `json:"so_name"`
	OrderDate          string   `json:"so_date"`
	LineNumber         string   `json:"line_number"`
	Quantity           string   `json:"quantity"`
	SKU                string   `json:"item_name"`
	Description        string   `json:"item_description"`
	Status             string   `json:"line_status"`
	RequestedDelivery  string   `json:"requested_delivery"`
	PromisedDelivery   string   `json:"promised_delivery"`
	ShipDate           string   `json:"ship_date"`
	Shipset            string   `json:"shipset"`
	Serials            []string `json:"serial_numbers"`
	ShipToName         string   `json:"ship_to_name"`
	ShipToAddress      string   `json:"ship_to_address"`
	ShipToContact      string   `json:"ship_to_contact"`
	ShipToContactPhone string   `json:"ship_to_contact_phone"`
	ShipToContactEmail string   `json:"ship_to_contact_email"`
	TrackingNumber     string   `json:"tracking_number"`
	TrackingURL        string   `json:"tracking_url"`
}

// ExportRecords flattens the order into one record per line item.
func (o *Order) ExportRecords() []ExportRecord {
	out := make([]ExportRecord, 0, o.Len())
	for _, item := range o.Lines() {
		out = append(out, ExportRecord{
			SalesOrder:         o.SalesOrder,
			OrderName:          o.OrderName,
			OrderDate:          o.OrderDate,
			LineNumber:         item.Number,
			Quantity:           item.Quantity,
			SKU:                item.SKU,
			Description:        item.Description,
			Status:             item.Status,
			RequestedDelivery:  item.RequestedDelivery,
			PromisedDelivery:   item.PromisedDelivery,
			ShipDate:           item.ShipDate,
			Shipset:            item.Shipset,
			Serials:            append([]string{}, item.Serials...),
			ShipToName:         o.ShipToName,
			ShipToAddress:      o.ShipToAddress,
			ShipToContact:      o.ShipToContactName,
			ShipToContactPhone: o.ShipToContactPhone,
			ShipToContactEmail: o.ShipToContactEmail,
			TrackingNumber:     item.TrackingNumber,
			TrackingURL:        item.TrackingURL,
		})
	}
	return out
}

// Value returns the raw value of an export column.
func (r ExportRecord) Value(column string) string {
	switch column {
	case ColumnSONumber:
		return r.SalesOrder
	case ColumnSOName:
		return r.OrderName
	case ColumnSODate:
		return r.OrderDate
	case ColumnLineNumber:
		return r.LineNumber
	case ColumnQuantity:
		return r.Quantity
	case ColumnItemName:
		return r.SKU
	case ColumnItemDescription:
		return r.Description
	case ColumnLineStatus:
		return r.Status
	case ColumnRequestedDelivery:
		return r.RequestedDelivery
	case ColumnPromisedDelivery:
		return r.PromisedDelivery
	case ColumnShipDate:
		return r.ShipDate
	case ColumnShipset:
		return r.Shipset
	case ColumnSerialNumbers:
		return strings.Join(r.Serials, " ")
	case ColumnShipToName:
		return r.ShipToName
	case ColumnShipToAddress:
		return r.ShipToAddress
	case ColumnShipToContact:
		return r.ShipToContact
	case ColumnShipToContactPhone:
		return r.ShipToContactPhone
	case ColumnShipToContactEmail:
		return r.ShipToContactEmail
	case ColumnTrackingNumber:
		return r.TrackingNumber
	case ColumnTrackingURL:
		return r.TrackingURL
	}
	return ""
}

// Row returns the record in ExportColumns order with dates rendered as text.
func (r ExportRecord) Row() []string {
	row := make([]string, len(ExportColumns))
	for i, col := range ExportColumns {
		v := r.Value(col)
		if DateColumns[col] {
			v = FormatDate(v)
		}
		row[i] = v
	}
	return row
}
