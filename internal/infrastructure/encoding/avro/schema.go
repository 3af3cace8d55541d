package avro

// OrderLineSchema describes one flattened order line as published to Kafka.
// The sales order and line number identify the record; every other field is
// optional because the order status API omits them freely.
const OrderLineSchema = `{
	"type": "record",
	"name": "OrderLine",
	"namespace": "com.cisco.ccw.order",
	"fields": [
		{"name": "so_number", "type": "string"},
		{"name": "line_number", "type": "string"},
		{"name": "so_name", "type": ["null", "string"], "default": null},
		{"name": "so_date", "type": ["null", "string"], "default": null},
		{"name": "quantity", "type": ["null", "string"], "default": null},
		{"name": "item_name", "type": ["null", "string"], "default": null},
		{"name": "item_description", "type": ["null", "string"], "default": null},
		{"name": "line_status", "type": ["null", "string"], "default": null},
		{"name": "requested_delivery", "type": ["null", "string"], "default": null},
		{"name": "promised_delivery", "type": ["null", "string"], "default": null},
		{"name": "ship_date", "type": ["null", "string"], "default": null},
		{"name": "shipset", "type": ["null", "string"], "default": null},
		{"name": "serial_numbers", "type": {"type": "array", "items": "string"}, "default": []},

		{"name": "ship_to_name", "type": ["null", "string"], "default": null},
		{"name": "ship_to_address", "type": ["null", "string"], "default": null},
		{"name": "ship_to_contact", "type": ["null", "string"], "default": null},
		{"name": "ship_to_contact_phone", "type": ["null", "string"], "default": null},
		{"name": "ship_to_contact_email", "type": ["null", "string"], "default": null},

		{"name": "tracking_number", "type": ["null", "string"], "default": null},
		{"name": "tracking_url", "type": ["null", "string"], "default": null}
	]
}`
