package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/opsdesk-inc/opsdesk/internal/interfaces/cli/migrate"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "opsdesk",
		Short: "OpsDesk - IT services operations dashboard",
		Long:  `OpsDesk is the backend for an IT services operations dashboard covering clients, managed services, support tickets, billing and document templates.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
