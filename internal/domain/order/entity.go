package order

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// LineItem is one purchase-order line.
type LineItem struct {
	Number            string          `json:"line_number"`
	SKU               string          `json:"sku"`
	Description       string          `json:"description"`
	Quantity          string          `json:"quantity"`
	Amount            decimal.Decimal `json:"amount"`
	RequestedDelivery string          `json:"requested_delivery"`
	PromisedDelivery  string          `json:"promised_delivery"`
	ShipDate          string          `json:"ship_date"`
	Status            string          `json:"status"`
	TrackingNumber    string          `json:"tracking_number"`
	TrackingURL       string          `json:"tracking_url"`
	Shipset           string          `json:"shipset"`
	Serials           []string        `json:"serials"`
}

func (l *LineItem) IsTopLevel() bool {
	return IsTopLevel(l.Number)
}

// Order is a parsed checkOrderStatus response. Line items keep the order in
// which the response listed them.
type Order struct {
	SalesOrder   string
	OrderName    string
	OrderDate    string
	Status       string
	BillToParty  string
	Party        string
	TotalAmount  decimal.Decimal
	CurrencyCode string

	ShipToName         string
	ShipToAddress      string
	ShipToContactName  string
	ShipToContactPhone string
	ShipToContactEmail string

	lines map[string]*LineItem
	order []string
}

func newOrder() *Order {
	return &Order{lines: make(map[string]*LineItem)}
}

// addLine stores item under its line number. A repeated number replaces the
// earlier item but keeps its position.
func (o *Order) addLine(item *LineItem) {
	if _, ok := o.lines[item.Number]; !ok {
		o.order = append(o.order, item.Number)
	}
	o.lines[item.Number] = item
}

// Lines returns the line items in document order.
func (o *Order) Lines() []*LineItem {
	out := make([]*LineItem, 0, len(o.order))
	for _, number := range o.order {
		out = append(out, o.lines[number])
	}
	return out
}

func (o *Order) LineNumbers() []string {
	out := make([]string, len(o.order))
	copy(out, o.order)
	return out
}

func (o *Order) Line(number string) (*LineItem, bool) {
	item, ok := o.lines[number]
	return item, ok
}

func (o *Order) Len() int {
	return len(o.order)
}

func (o *Order) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SalesOrder         string          `json:"sales_order"`
		OrderName          string          `json:"order_name"`
		OrderDate          string          `json:"order_date"`
		Status             string          `json:"status"`
		BillToParty        string          `json:"bill_to_party"`
		Party              string          `json:"party"`
		TotalAmount        decimal.Decimal `json:"total_amount"`
		CurrencyCode       string          `json:"currency_code"`
		ShipToName         string          `json:"ship_to_name"`
		ShipToAddress      string          `json:"ship_to_address"`
		ShipToContactName  string          `json:"ship_to_contact_name"`
		ShipToContactPhone string          `json:"ship_to_contact_phone"`
		ShipToContactEmail string          `json:"ship_to_contact_email"`
		Lines              []*LineItem     `json:"lines"`
	}{
		SalesOrder:         o.SalesOrder,
		OrderName:          o.OrderName,
		OrderDate:          o.OrderDate,
		Status:             o.Status,
		BillToParty:        o.BillToParty,
		Party:              o.Party,
		TotalAmount:        o.TotalAmount,
		CurrencyCode:       o.CurrencyCode,
		ShipToName:         o.ShipToName,
		ShipToAddress:      o.ShipToAddress,
		ShipToContactName:  o.ShipToContactName,
		ShipToContactPhone: o.ShipToContactPhone,
		ShipToContactEmail: o.ShipToContactEmail,
		Lines:              o.Lines(),
	})
}
