package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	serve := newServeCommand()

	rootCmd := &cobra.Command{
		Use:           "meeting-notes",
		Short:         "Meeting audio to structured notes service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(newMigrateCommand())
	rootCmd.AddCommand(newExportCommand())

	return rootCmd
}
