package main

import (
	"os"

	"github.com/spf13/cobra"

	"mediticket/internal/interfaces/cli/migrate"
	"mediticket/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mediticket",
		Short: "MediTicket - medical ticket intake service",
		Long:  `MediTicket lets patients submit medical questions with attachments and gives staff a gated surface to answer, annotate and export them.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
