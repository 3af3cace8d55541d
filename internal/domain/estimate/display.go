package estimate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

func WriteDetail(w io.Writer, e *Estimate) error {
	bw := bufio.NewWriter(w)

	name := ""
	if e.Name != nil {
		name = *e.Name
	}
	fmt.Fprintf(bw, "Estimate ID  : %s\n", e.ID)
	fmt.Fprintf(bw, "Estimate Name: %s\n", name)
	fmt.Fprintf(bw, "%-8s  %-6s  %-21s  %-60s\n", "Line", "Qty", "Sku", "Description")
	fmt.Fprintf(bw, "%-8s  %-6s  %-21s  %-60s\n",
		"-------", "------", strings.Repeat("-", 20), strings.Repeat("-", 58))

	for _, l := range e.Lines() {
		fmt.Fprintf(bw, "%-8s  %-6d  %-21s  %-60s\n", l.LineItem, l.Quantity, l.SKU, l.Description)
	}
	fmt.Fprintln(bw)
	return bw.Flush()
}
