// Command clinicctl applies the reservation-service schema and probes a running service.
package main

import (
	"fmt"
	"os"

	"github.com/md-rashed-zaman/clinicbook/libs/config"
	"github.com/spf13/cobra"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(1)
	}
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "clinicctl",
		Short:        "Operate the clinic reservation service",
		SilenceUsage: true,
	}
	root.AddCommand(migrateCmd())
	root.AddCommand(healthCmd())
	return root
}
