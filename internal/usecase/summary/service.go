package summary

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/yt-summarizer/internal/domain/entities"
	"github.com/johnquangdev/yt-summarizer/pkg/config"
	"github.com/johnquangdev/yt-summarizer/pkg/jobcontext"
	"github.com/johnquangdev/yt-summarizer/pkg/youtube"
)

var (
	// ErrEmptyTranscript is returned when the captions carry no usable text
	ErrEmptyTranscript = errors.New("transcript is empty")
	// ErrCaptionFetch wraps every caption source failure
	ErrCaptionFetch = errors.New("fetch captions")
)

// CaptionSource fetches the caption fragments of a video
type CaptionSource interface {
	FetchCaptions(ctx context.Context, videoID, lang string) ([]entities.CaptionFragment, error)
}

// Summarizer turns one chunk of text into a shorter summary
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Service defines the summarization pipeline
type Service interface {
	SummarizeVideo(ctx context.Context, videoURL string) (*Result, error)
	SummarizeText(ctx context.Context, text string) (*Result, error)
}

// Result is the outcome of one pipeline run
type Result struct {
	VideoID    string `json:"videoId,omitempty"`
	Summary    string `json:"summary"`
	ChunkCount int    `json:"chunks"` // chunks in the first pass
	Passes     int    `json:"passes"`
}

type summaryService struct {
	captions    CaptionSource
	summarizer  Summarizer
	lang        string
	maxLength   int
	maxPasses   int
	concurrency int
	logger      *zap.Logger
}

// NewSummaryService constructs the pipeline from its collaborators
func NewSummaryService(captions CaptionSource, summarizer Summarizer, cfg *config.Config, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &summaryService{
		captions:    captions,
		summarizer:  summarizer,
		lang:        "en",
		maxLength:   1024,
		maxPasses:   4,
		concurrency: 1,
		logger:      logger,
	}
	if cfg != nil {
		if cfg.YouTube.CaptionLang != "" {
			s.lang = cfg.YouTube.CaptionLang
		}
		if cfg.Summary.MaxChunkLength > 0 {
			s.maxLength = cfg.Summary.MaxChunkLength
		}
		if cfg.Summary.MaxPasses > 0 {
			s.maxPasses = cfg.Summary.MaxPasses
		}
		if cfg.Summary.Concurrency > 0 {
			s.concurrency = cfg.Summary.Concurrency
		}
	}
	return s
}

// SummarizeVideo validates the URL, fetches captions and summarizes them
func (s *summaryService) SummarizeVideo(ctx context.Context, videoURL string) (*Result, error) {
	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, err
	}
	ctx = jobcontext.SetVideoID(jobcontext.JobBegin(ctx, ""), videoID)

	s.logger.Info("🎬 Fetching captions",
		append(jobcontext.Fields(ctx), zap.String("lang", s.lang))...,
	)

	fragments, err := s.captions.FetchCaptions(ctx, videoID, s.lang)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCaptionFetch, err)
	}
	if len(fragments) == 0 {
		return nil, ErrEmptyTranscript
	}

	transcript := entities.AssembleTranscript(fragments)
	s.logger.Info("📝 Transcript assembled",
		append(jobcontext.Fields(ctx),
			zap.Int("fragments", len(fragments)),
			zap.Float64("captions_end_seconds", fragments[len(fragments)-1].End()),
			zap.Int("transcript_length", runeLen(transcript)),
		)...,
	)

	res, err := s.SummarizeText(ctx, transcript)
	if err != nil {
		return nil, err
	}
	res.VideoID = videoID
	return res, nil
}

// SummarizeText chunks text, summarizes every chunk and combines the results
func (s *summaryService) SummarizeText(ctx context.Context, text string) (*Result, error) {
	ctx = jobcontext.JobBegin(ctx, "")
	res := &Result{}
	summary, err := s.run(ctx, text, 1, res)
	if err != nil {
		if errors.Is(err, ErrEmptyTranscript) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}
	res.Summary = summary
	return res, nil
}

// run performs one chunk → summarize → combine pass
func (s *summaryService) run(ctx context.Context, text string, pass int, res *Result) (string, error) {
	ctx = jobcontext.SetPass(ctx, pass)
	chunks := Chunk(text, s.maxLength)
	if len(chunks) == 0 {
		return "", ErrEmptyTranscript
	}
	if pass == 1 {
		res.ChunkCount = len(chunks)
	}
	res.Passes = pass

	summaries, err := s.summarizeChunks(ctx, chunks)
	if err != nil {
		return "", err
	}
	return s.combine(ctx, text, summaries, pass, res)
}

// combine returns a single summary unchanged, the joined summaries when they
// fit in maxLength, and otherwise re-summarizes the joined text. Recursion is
// bounded by maxPasses and stops early if a pass did not shrink the text.
func (s *summaryService) combine(ctx context.Context, source string, summaries []string, pass int, res *Result) (string, error) {
	if len(summaries) == 1 {
		return summaries[0], nil
	}

	joined := strings.Join(summaries, " ")
	if runeLen(joined) <= s.maxLength {
		return joined, nil
	}

	if pass >= s.maxPasses {
		s.logger.Warn("⚠️ Summary pass budget exhausted, truncating",
			append(jobcontext.Fields(ctx),
				zap.Int("max_passes", s.maxPasses),
				zap.Int("combined_length", runeLen(joined)),
			)...,
		)
		return truncateWords(joined, s.maxLength), nil
	}
	if runeLen(joined) >= runeLen(source) {
		s.logger.Warn("⚠️ Summaries did not shrink the input, truncating",
			append(jobcontext.Fields(ctx),
				zap.Int("source_length", runeLen(source)),
				zap.Int("combined_length", runeLen(joined)),
			)...,
		)
		return truncateWords(joined, s.maxLength), nil
	}

	s.logger.Info("🔁 Combined summaries exceed chunk length, summarizing again",
		append(jobcontext.Fields(ctx),
			zap.Int("next_pass", pass+1),
			zap.Int("combined_length", runeLen(joined)),
		)...,
	)
	return s.run(ctx, joined, pass+1, res)
}

// summarizeChunks summarizes chunks in order. With concurrency > 1 a bounded
// worker pool is used; results keep chunk order and the first failure
// cancels the calls that have not started yet.
func (s *summaryService) summarizeChunks(ctx context.Context, chunks []string) ([]string, error) {
	summaries := make([]string, len(chunks))

	if s.concurrency <= 1 || len(chunks) == 1 {
		for i, chunk := range chunks {
			summary, err := s.summarizeChunk(ctx, chunk, i, len(chunks))
			if err != nil {
				return nil, err
			}
			summaries[i] = summary
		}
		return summaries, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			summary, err := s.summarizeChunk(gctx, chunk, i, len(chunks))
			if err != nil {
				return err
			}
			summaries[i] = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *summaryService) summarizeChunk(ctx context.Context, chunk string, index, total int) (string, error) {
	s.logger.Debug("summarizing chunk",
		append(jobcontext.Fields(ctx),
			zap.Int("chunk_index", index),
			zap.Int("chunk_count", total),
			zap.Int("chunk_length", runeLen(chunk)),
		)...,
	)
	summary, err := s.summarizer.Summarize(ctx, chunk)
	if err != nil {
		s.logger.Error("❌ Chunk summarization failed",
			append(jobcontext.Fields(ctx),
				zap.Int("chunk_index", index),
				zap.Error(err),
			)...,
		)
		return "", err
	}
	return summary, nil
}
