package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCommand() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "ytsum",
		Short:         "Summarize YouTube videos from their captions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log pipeline progress to stderr")

	newLogger := func() *zap.Logger {
		if !verbose {
			return zap.NewNop()
		}
		logger, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return logger
	}

	rootCmd.AddCommand(newSummarizeCommand(newLogger))
	rootCmd.AddCommand(newChunkCommand())

	return rootCmd
}
