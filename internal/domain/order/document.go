package order

import "ccw_query/internal/domain/document"

// Document is a checkOrderStatus response. Only the fields the parser reads
// are modeled.
type Document struct {
	ShowPurchaseOrder struct {
		Value struct {
			DataArea struct {
				PurchaseOrder document.Many[PurchaseOrder] `json:"PurchaseOrder"`
			} `json:"DataArea"`
		} `json:"value"`
	} `json:"ShowPurchaseOrder"`
}

type PurchaseOrder struct {
	Header *Header               `json:"PurchaseOrderHeader"`
	Lines  document.Many[POLine] `json:"PurchaseOrderLine"`
}

type Header struct {
	BillToParty         Party                    `json:"BillToParty"`
	Party               document.Many[Party]     `json:"Party"`
	ShipToParty         ShipToParty              `json:"ShipToParty"`
	Status              document.Many[Status]    `json:"Status"`
	Message             *Message                 `json:"Message"`
	SalesOrderReference document.Many[Reference] `json:"SalesOrderReference"`
	DocumentReference   document.Many[Reference] `json:"DocumentReference"`
	OrderDateTime       document.Text            `json:"OrderDateTime"`
	TotalAmount         Amount                   `json:"TotalAmount"`
}

type Party struct {
	Name document.Many[document.Text] `json:"Name"`
}

type ShipToParty struct {
	Name     document.Many[document.Text] `json:"Name"`
	Location document.Many[Location]      `json:"Location"`
	Contact  document.Many[Contact]       `json:"Contact"`
}

type Location struct {
	Address document.Many[Address] `json:"Address"`
}

type Address struct {
	AddressLine document.Many[document.Text] `json:"AddressLine"`
	CityName    document.Text                `json:"CityName"`
	CountryCode document.Text                `json:"CountryCode"`
}

type Contact struct {
	PersonName                document.Many[PersonName]    `json:"PersonName"`
	TelephoneCommunication    document.Many[Communication] `json:"TelephoneCommunication"`
	EMailAddressCommunication document.Many[Communication] `json:"EMailAddressCommunication"`
}

type PersonName struct {
	GivenName document.Text `json:"GivenName"`
}

type Communication struct {
	TypeCode string                       `json:"typeCode"`
	ID       document.Many[document.Text] `json:"ID"`
}

type Status struct {
	Code        document.Text                  `json:"Code"`
	Description document.Text                  `json:"Description"`
	Message     *Message                       `json:"Message"`
	Extension   document.Many[StatusExtension] `json:"Extension"`
}

type Message struct {
	Description document.Text `json:"Description"`
}

type StatusExtension struct {
	TypeCode string                       `json:"typeCode"`
	DateTime document.Many[document.Text] `json:"DateTime"`
}

type Reference struct {
	TypeCode     string        `json:"typeCode"`
	ID           document.Text `json:"ID"`
	LineNumberID document.Text `json:"LineNumberID"`
}

type Amount struct {
	Value        document.Text `json:"value"`
	CurrencyCode string        `json:"currencyCode"`
}

type POLine struct {
	SalesOrderReference      document.Many[Reference]       `json:"SalesOrderReference"`
	Item                     Item                           `json:"Item"`
	ExtendedAmount           Amount                         `json:"ExtendedAmount"`
	PromisedDeliveryDateTime document.Text                  `json:"PromisedDeliveryDateTime"`
	FulfillmentTerm          document.Many[FulfillmentTerm] `json:"FulfillmentTerm"`
	Status                   document.Many[Status]          `json:"Status"`
	TransportStep            document.Many[TransportStep]   `json:"TransportStep"`
}

type Item struct {
	ID          document.Text                `json:"ID"`
	Description document.Many[document.Text] `json:"Description"`
	Lot         document.Many[Lot]           `json:"Lot"`
}

type Lot struct {
	Quantity document.Text `json:"Quantity"`
}

type FulfillmentTerm struct {
	RequestedDeliveryDate document.Text `json:"RequestedDeliveryDate"`
}

type TransportStep struct {
	TransportationTerm document.Many[TransportationTerm] `json:"TransportationTerm"`
}

type TransportationTerm struct {
	Description document.Many[document.Labeled] `json:"Description"`
}
