package main

import (
	"fmt"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/pkg/config"
)

func newMigrateCommand() *cobra.Command {
	var down bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithoutProvider()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			db, err := database.NewDB(cfg)
			if err != nil {
				return err
			}
			defer database.CloseDB(db)

			direction, verb := migrate.Up, "applied"
			if down {
				direction, verb = migrate.Down, "rolled back"
			}

			n, err := database.Migrate(db, cfg.Database.Driver, direction)
			if err != nil {
				return err
			}

			log.Printf("✅ Successfully %s %d migration(s)!", verb, n)
			return nil
		},
	}

	cmd.Flags().BoolVar(&down, "down", false, "Roll back every migration instead of applying")
	return cmd
}
