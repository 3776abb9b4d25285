package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tagger",
		Short:         "Extract and publish tag tables from attribute workbooks",
		Version:       fmt.Sprintf("%s (built %s)", commitHash, buildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newReplayCommand())

	return rootCmd
}
