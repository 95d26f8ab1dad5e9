package main

import (
	"os"

	"github.com/spf13/cobra"

	"haitch/internal/interfaces/cli/migrate"
	"haitch/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "haitch",
		Short: "Haitch - IT service desk backend",
		Long:  `Haitch is the service desk backend with ticket management, a knowledge base pipeline, surveys and an AI assistant.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
