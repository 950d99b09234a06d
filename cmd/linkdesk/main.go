package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/linkdesk-io/linkdesk/internal/interfaces/cli/migrate"
	"github.com/linkdesk-io/linkdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "linkdesk",
		Short: "LinkDesk - link building back office",
		Long:  `LinkDesk is the back office for a link building agency: inventory, orders, invoicing, support and customer feedback behind one HTTP API.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
