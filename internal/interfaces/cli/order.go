package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	orderapp "ccw_query/internal/application/order"
	"ccw_query/internal/domain/order"
	"ccw_query/internal/infrastructure/export/xlsx"
)

var orderCmd = &cobra.Command{
	Use:   "order SO# [SO#...]",
	Short: "Get order status",
	Long: `Prints the status of one or more sales orders, or collects their lines
into an Excel workbook with --excel-output.`,
	Args:    cobra.MinimumNArgs(1),
	PreRunE: validateOrderFlags,
	RunE:    runOrder,
}

var (
	collectSublevels bool
	showSerials      bool
	excelOutput      string
)

func init() {
	orderCmd.Flags().BoolVar(&collectSublevels, "collect-sublevels", false, "collect and report non-toplevel items")
	orderCmd.Flags().BoolVar(&showSerials, "show-serials", false, "show serial numbers")
	orderCmd.Flags().StringVar(&excelOutput, "excel-output", "", "write all lines to this .xlsx file")
	rootCmd.AddCommand(orderCmd)
}

func validateOrderFlags(_ *cobra.Command, _ []string) error {
	if excelOutput != "" && !xlsx.ValidPath(excelOutput) {
		return fmt.Errorf("excel output file must end with %s", xlsx.Extension)
	}
	return nil
}

func runOrder(cmd *cobra.Command, args []string) error {
	svc, err := newServices(cmd, false)
	if err != nil {
		return err
	}
	defer svc.close()

	out := cmd.OutOrStdout()
	opts := orderapp.LookupOptions{TopLevelOnly: !collectSublevels, AddSerials: true}

	var wb *xlsx.Workbook
	if excelOutput != "" {
		if wb, err = xlsx.NewWorkbook(); err != nil {
			return err
		}
		defer wb.Close()
	}

	for _, so := range args {
		fmt.Fprintf(out, "Checking for order %s\n", so)
		o, err := svc.orders.GetOrderStatus(cmd.Context(), so, opts)
		if err != nil {
			cmd.PrintErrf("Error while processing %s: %v\n", so, err)
			continue
		}

		if wb == nil {
			if err := order.WriteDetail(out, o, showSerials); err != nil {
				return err
			}
			continue
		}
		if err := wb.Append(o.ExportRecords()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Collected %d line(s)\n", wb.Rows())
	}

	if wb == nil {
		return nil
	}
	if wb.Rows() == 0 {
		fmt.Fprintln(out, "No lines collected, excel file not created")
		return nil
	}
	if err := wb.SaveAs(excelOutput); err != nil {
		return err
	}
	fmt.Fprintf(out, "Created Excel file %s\n", excelOutput)
	return nil
}
