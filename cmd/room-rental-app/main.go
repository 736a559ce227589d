package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"room-rental-app/config"
	"room-rental-app/config/common"
	"room-rental-app/config/logger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "room-rental-app",
		Short: "Room rental marketplace API",
	}

	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the API server",
		Run: func(cmd *cobra.Command, args []string) {
			config.RunServer()
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := common.NewViper()
			db := config.NewDB(cfg, logger.NewLogger())
			if err := config.Migrate(db.GetDB()); err != nil {
				return err
			}
			fmt.Println("migration complete")
			return nil
		},
	}
}
