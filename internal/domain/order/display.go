package order

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

const (
	detailHeaderFormat = "%-8s  %6s %-20s  %-60s %-10s  %-11s %-11s %-11s %-7s\n"
	detailRowFormat    = "%-8s  %6s %-20s  %-60.60s %-10.10s  %-11.11s %-11.11s %-11.11s %7s\n"
)

// WriteDetail prints the order as a fixed-width table. With showSerials set,
// each line with serial numbers gets an extra row listing them.
func WriteDetail(w io.Writer, o *Order, showSerials bool) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Sales Order: %s\n", o.SalesOrder)
	fmt.Fprintf(bw, "Order Name : %s\n", o.OrderName)
	fmt.Fprintf(bw, "Order Date : %s\n", FormatDate(o.OrderDate))
	fmt.Fprintf(bw, detailHeaderFormat,
		"Line", "Qty", "Sku", "Description", "Status", "Requested", "Promised", "Ship Date", "Shipset")
	fmt.Fprintf(bw, detailHeaderFormat,
		"-----", "------", strings.Repeat("-", 20), strings.Repeat("-", 53),
		strings.Repeat("-", 10), strings.Repeat("-", 11), strings.Repeat("-", 11), strings.Repeat("-", 11), "-------")

	for _, item := range o.Lines() {
		fmt.Fprintf(bw, detailRowFormat,
			item.Number,
			item.Quantity,
			item.SKU,
			item.Description,
			item.Status,
			FormatDate(item.RequestedDelivery),
			FormatDate(item.PromisedDelivery),
			FormatDate(item.ShipDate),
			item.Shipset,
		)
		if showSerials && len(item.Serials) > 0 {
			fmt.Fprintf(bw, "%-8s  %-6s %s\n", "", "", strings.Join(item.Serials, ","))
		}
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
