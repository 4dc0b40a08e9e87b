package main

import (
	"os"

	"github.com/spf13/cobra"

	"portico/internal/interfaces/cli/migrate"
	"portico/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "portico",
		Short: "Portico - gated community entry permission service",
		Long:  `Portico manages visitor entry permissions for a gated residential community, from QR issuance through gate validation and movement tracking.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
