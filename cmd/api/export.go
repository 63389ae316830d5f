package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-notes/internal/adapter/repository"
	"github.com/johnquangdev/meeting-notes/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-notes/internal/usecase/export"
	"github.com/johnquangdev/meeting-notes/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-notes/pkg/logger"
)

func newExportCommand() *cobra.Command {
	var id uint
	var format string
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render a stored meeting as a Word or PDF document",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadWithoutProvider()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			logger, err := pkglogger.New(cfg.Environment)
			if err != nil {
				return err
			}
			defer logger.Sync()

			db, err := database.NewDB(cfg)
			if err != nil {
				return err
			}
			defer database.CloseDB(db)

			svc := export.NewService(repository.NewMeetingRepository(db), nil, logger, nil)
			f, err := svc.Export(cmd.Context(), id, format)
			if err != nil {
				return err
			}

			path := filepath.Join(outDir, f.Filename)
			if err := os.WriteFile(path, f.Content, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}

	cmd.Flags().UintVar(&id, "id", 0, "Meeting ID")
	cmd.Flags().StringVar(&format, "format", export.FormatPDF, "Document format: word or pdf")
	cmd.Flags().StringVar(&outDir, "out", ".", "Output directory")
	_ = cmd.MarkFlagRequired("id")
	return cmd
}
