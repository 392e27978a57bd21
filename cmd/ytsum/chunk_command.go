package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/yt-summarizer/internal/usecase/summary"
)

func newChunkCommand() *cobra.Command {
	var (
		maxLength  int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "chunk",
		Short: "Split text from stdin into summarizer-sized chunks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			chunks := summary.Chunk(string(text), maxLength)
			if jsonOutput {
				return writeJSON(cmd, chunks)
			}
			if isTerminal(cmd.OutOrStdout()) {
				fmt.Fprintln(cmd.OutOrStdout(), renderChunkTable(chunks))
				return nil
			}
			for i, chunk := range chunks {
				fmt.Fprintf(cmd.OutOrStdout(), "[%d] %s\n", i+1, chunk)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxLength, "max-length", 1024, "Maximum chunk length in characters")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print chunks as a JSON array")
	return cmd
}
