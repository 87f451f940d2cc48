package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "bloodlink",
		Short:        "Blood donation coordination API",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(grantAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
