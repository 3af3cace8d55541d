package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	orderapp "ccw_query/internal/application/order"
)

var publishCmd = &cobra.Command{
	Use:   "publish SO# [SO#...]",
	Short: "Publish order lines to Kafka",
	Long: `Looks up each sales order and publishes its lines, Avro encoded, to
KAFKA_ORDER_LINE_TOPIC.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPublish,
}

var (
	publishSublevels   bool
	publishSkipSerials bool
)

func init() {
	publishCmd.Flags().BoolVar(&publishSublevels, "collect-sublevels", false, "publish non-toplevel items too")
	publishCmd.Flags().BoolVar(&publishSkipSerials, "skip-serials", false, "do not look up serial numbers")
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	svc, err := newServices(cmd, true)
	if err != nil {
		return err
	}
	defer svc.close()

	opts := orderapp.LookupOptions{TopLevelOnly: !publishSublevels, AddSerials: !publishSkipSerials}
	failed := 0
	for _, so := range args {
		n, err := svc.orders.PublishOrder(cmd.Context(), so, opts)
		if err != nil {
			failed++
			cmd.PrintErrf("Error while publishing %s: %v\n", so, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Published %d line(s) of %s\n", n, so)
	}
	if failed == len(args) {
		return fmt.Errorf("no order published")
	}
	return nil
}
