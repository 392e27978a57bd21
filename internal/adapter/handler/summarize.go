package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/yt-summarizer/errors"
	"github.com/johnquangdev/yt-summarizer/internal/adapter/dto"
	"github.com/johnquangdev/yt-summarizer/internal/usecase/summary"
	"github.com/johnquangdev/yt-summarizer/pkg/jobcontext"
)

// SummaryController handles the video summarization endpoint
type SummaryController struct {
	svc    summary.Service
	logger *zap.Logger
}

// NewSummaryController creates a new summary controller
func NewSummaryController(svc summary.Service, logger *zap.Logger) *SummaryController {
	return &SummaryController{svc: svc, logger: logger}
}

// Summarize fetches the English captions of a video and summarizes them
// @Summary      Summarize YouTube video
// @Description  Fetches the English captions of a YouTube video and returns an abstractive summary
// @Tags         Summary
// @Accept       json
// @Produce      json
// @Param        request  body      dto.SummarizeRequest   true  "Video to summarize"
// @Success      200      {object}  dto.SummarizeResponse  "Summary generated"
// @Failure      400      {object}  common.ErrorResponse   "Missing or invalid URL, or no English captions"
// @Failure      405      {object}  common.ErrorResponse   "Method not allowed"
// @Failure      500      {object}  common.ErrorResponse   "Failed to summarize video"
// @Router       /api/summarize [post]
func (sc *SummaryController) Summarize(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return HandleError(sc.logger, c, errors.ErrMethodNotAllowed())
	}

	var req dto.SummarizeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(sc.logger, c, errors.ErrInvalidPayload())
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(sc.logger, c, validationError(err))
	}

	if sc.logger != nil {
		sc.logger.Info("📥 Summarize request received",
			zap.String("request_id", getRequestID(c)),
			zap.String("video_url", req.VideoURL),
		)
	}

	ctx := jobcontext.JobBegin(c.Request().Context(), getRequestID(c))
	res, err := sc.svc.SummarizeVideo(ctx, req.VideoURL)
	if err != nil {
		return HandleError(sc.logger, c, toAppError(err))
	}

	if sc.logger != nil {
		meta := jobcontext.GetJobMetadata(ctx)
		sc.logger.Info("✅ Summary generated",
			zap.String("request_id", getRequestID(c)),
			zap.String("job_id", meta.JobID),
			zap.Duration("elapsed", meta.Elapsed()),
			zap.String("video_id", res.VideoID),
			zap.Int("chunks", res.ChunkCount),
			zap.Int("passes", res.Passes),
		)
	}
	return HandleSuccess(sc.logger, c, dto.SummarizeResponse{Summary: res.Summary})
}
