// Package cli implements the ccw command: order status, estimate details,
// API hello and Kafka publishing.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ccw",
	Short: "Query Cisco Commerce orders and estimates",
	Long: `Looks up sales orders and estimates through the Cisco Commerce APIs.

Credentials come from CCW_CLIENTID, CCW_CLIENTSECRET, CCO_USERNAME and
CCO_PASSWORD (or a .env file). Missing values are prompted for unless
--no-prompt is given.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// noPrompt fails instead of asking for missing credentials.
var noPrompt bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&noPrompt, "no-prompt", false, "fail instead of prompting for missing credentials")
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
