package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/yt-summarizer/internal/usecase/summary"
	pkgai "github.com/johnquangdev/yt-summarizer/pkg/ai"
	"github.com/johnquangdev/yt-summarizer/pkg/config"
	"github.com/johnquangdev/yt-summarizer/pkg/youtube"
)

func newSummarizeCommand(newLogger func() *zap.Logger) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "summarize <video-url>",
		Short: "Fetch the English captions of a video and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			logger := newLogger()
			defer logger.Sync()

			svc := summary.NewSummaryService(
				youtube.NewCaptionClient(&cfg.YouTube),
				pkgai.NewHuggingFaceClient(&cfg.HuggingFace),
				cfg,
				logger,
			)
			res, err := svc.SummarizeVideo(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, res)
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.Summary)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the result with video id, chunk count and passes as JSON")
	return cmd
}
