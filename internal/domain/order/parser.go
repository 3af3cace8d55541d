package order

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ccw_query/internal/domain/document"
)

// ParseJSON decodes a checkOrderStatus response body and parses it.
func ParseJSON(raw []byte, toplevelOnly bool) (*Order, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode order document: %w", err)
	}
	return Parse(&doc, toplevelOnly)
}

// Parse builds an Order from a checkOrderStatus document. With toplevelOnly
// set, only N.0 lines are kept. A failure message in the response becomes a
// QueryError; any other missing field degrades to a sentinel value.
func Parse(doc *Document, toplevelOnly bool) (*Order, error) {
	if doc == nil {
		return nil, &QueryError{Description: "empty order response"}
	}
	po, ok := doc.ShowPurchaseOrder.Value.DataArea.PurchaseOrder.First()
	if !ok || po.Header == nil {
		return nil, &QueryError{Description: "no purchase order in response"}
	}

	h := po.Header
	if msg := h.failureMessage(); msg != "" {
		return nil, &QueryError{Description: msg}
	}

	o := newOrder()
	o.BillToParty = firstText(h.BillToParty.Name)
	if party, ok := h.Party.First(); ok {
		o.Party = firstText(party.Name)
	}
	if status, ok := h.Status.First(); ok {
		o.Status = status.Description.Value
	}
	if ref, ok := h.SalesOrderReference.First(); ok {
		o.SalesOrder = ref.ID.Value
	}
	o.OrderDate = h.OrderDateTime.Value
	o.OrderName = orderName(h.DocumentReference)
	o.TotalAmount = parseAmount(h.TotalAmount.Value.Value)
	o.CurrencyCode = h.TotalAmount.CurrencyCode

	o.ShipToName = firstText(h.ShipToParty.Name)
	o.ShipToAddress = shipToAddress(h.ShipToParty)
	o.ShipToContactName, o.ShipToContactPhone, o.ShipToContactEmail = shipToContact(h.ShipToParty)

	for _, line := range po.Lines {
		item, keep := parseLine(line, toplevelOnly)
		if !keep {
			continue
		}
		o.addLine(item)
	}
	return o, nil
}

func (h *Header) failureMessage() string {
	if h.Message != nil && h.Message.Description.Value != "" {
		return h.Message.Description.Value
	}
	for _, s := range h.Status {
		if s.Message != nil && s.Message.Description.Value != "" {
			return s.Message.Description.Value
		}
	}
	return ""
}

func parseLine(l POLine, toplevelOnly bool) (*LineItem, bool) {
	ref, _ := l.SalesOrderReference.First()
	number := strings.TrimSpace(ref.LineNumberID.Value)
	if number == "" {
		return nil, false
	}
	if toplevelOnly && !IsTopLevel(number) {
		return nil, false
	}

	item := &LineItem{
		Number:           number,
		SKU:              l.Item.ID.Value,
		Description:      firstText(l.Item.Description),
		Amount:           parseAmount(l.ExtendedAmount.Value.Value),
		PromisedDelivery: l.PromisedDeliveryDateTime.Value,
		Serials:          []string{},
	}
	if lot, ok := l.Item.Lot.First(); ok {
		item.Quantity = lot.Quantity.Value
	}
	if term, ok := l.FulfillmentTerm.First(); ok {
		item.RequestedDelivery = term.RequestedDeliveryDate.Value
	}

	status, _ := l.Status.First()
	item.Status = status.Code.Value
	if item.Status == StatusClosed {
		item.ShipDate = shipDate(status)
		item.TrackingNumber, item.TrackingURL = tracking(l.TransportStep)
	}
	return item, true
}

func shipDate(s Status) string {
	for _, ext := range s.Extension {
		if ext.TypeCode != typeShipmentDate {
			continue
		}
		if dt, ok := ext.DateTime.First(); ok && dt.Valid {
			return dt.Value
		}
	}
	return ShipDateNotFound
}

// tracking scans the transport steps for the first tracking number and URL.
// Scanning stops once a non-empty URL has been found.
func tracking(steps document.Many[TransportStep]) (number, url string) {
	for _, step := range steps {
		term, ok := step.TransportationTerm.First()
		if !ok {
			continue
		}
		for _, d := range term.Description {
			if d.Label == typeTrackingNumber && number == "" {
				number = d.Text
			}
			if d.Label == typeTrackingURL && url == "" {
				url = d.Text
				if url != "" {
					break
				}
			}
		}
		if url != "" {
			break
		}
	}
	return number, url
}

func orderName(refs document.Many[Reference]) string {
	for _, ref := range refs {
		if ref.TypeCode == typeOrderName {
			return ref.ID.Value
		}
	}
	return ""
}

func shipToAddress(p ShipToParty) string {
	loc, ok := p.Location.First()
	if !ok {
		return UnknownValue
	}
	addr, ok := loc.Address.First()
	if !ok || addr.AddressLine == nil || !addr.CityName.Valid || !addr.CountryCode.Valid {
		return UnknownValue
	}

	parts := make([]string, 0, len(addr.AddressLine)+2)
	for _, line := range addr.AddressLine {
		parts = append(parts, line.Value)
	}
	parts = append(parts, addr.CityName.Value, addr.CountryCode.Value)
	return strings.Join(parts, ", ")
}

func shipToContact(p ShipToParty) (name, phone, email string) {
	contact, ok := p.Contact.First()
	if !ok {
		return UnknownValue, UnknownValue, UnknownValue
	}

	name = UnknownValue
	if person, ok := contact.PersonName.First(); ok && person.GivenName.Valid {
		name = person.GivenName.Value
	}

	phone = UnknownValue
	if contact.TelephoneCommunication != nil {
		phone = ""
		for _, c := range contact.TelephoneCommunication {
			if c.TypeCode == typePhone {
				phone = firstText(c.ID)
				break
			}
		}
	}

	email = UnknownValue
	if mail, ok := contact.EMailAddressCommunication.First(); ok {
		if id, ok := mail.ID.First(); ok && id.Valid {
			email = id.Value
		}
	}
	return name, phone, email
}

func firstText(m document.Many[document.Text]) string {
	t, _ := m.First()
	return t.Value
}

func parseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}
