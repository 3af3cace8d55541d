package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Check that the API accepts the credentials",
	Args:  cobra.NoArgs,
	RunE:  runHello,
}

func init() {
	rootCmd.AddCommand(helloCmd)
}

func runHello(cmd *cobra.Command, _ []string) error {
	svc, err := newServices(cmd, false)
	if err != nil {
		return fmt.Errorf("ERROR: %w", err)
	}
	defer svc.close()

	ok, err := svc.hello.Hello(cmd.Context())
	if err != nil {
		return fmt.Errorf("ERROR: %w", err)
	}
	if !ok {
		return fmt.Errorf("ERROR: hello returned false")
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Hello successful")
	return nil
}
