package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ccw_query/internal/domain/estimate"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate ID# [ID#...]",
	Short: "Get estimate details",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEstimate,
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	svc, err := newServices(cmd, false)
	if err != nil {
		return err
	}
	defer svc.close()

	out := cmd.OutOrStdout()
	for _, id := range args {
		fmt.Fprintf(out, "Checking for estimate %s\n", id)
		e, err := svc.estimates.GetEstimate(cmd.Context(), id)
		var estErr *estimate.EstimateError
		switch {
		case errors.As(err, &estErr):
			cmd.PrintErrf("Error retrieving %s: %s\n", id, estErr.Description)
			continue
		case err != nil:
			cmd.PrintErrf("Error processing %s: %v\n", id, err)
			continue
		}
		if err := estimate.WriteDetail(out, e); err != nil {
			return err
		}
	}
	return nil
}
