package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/yt-summarizer/errors"
	"github.com/johnquangdev/yt-summarizer/internal/adapter/dto/common"
	"github.com/johnquangdev/yt-summarizer/internal/usecase/summary"
	"github.com/johnquangdev/yt-summarizer/pkg/ai"
	pkgvalidator "github.com/johnquangdev/yt-summarizer/pkg/validator"
	"github.com/johnquangdev/yt-summarizer/pkg/youtube"
)

// getRequestID reads the id assigned by the RequestID middleware, falling
// back to the one sent by the client
func getRequestID(c echo.Context) string {
	if c == nil {
		return ""
	}
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	if c.Request() == nil {
		return ""
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as a 200 response and logs it
func HandleSuccess(logger *zap.Logger, c echo.Context, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
		)
	}
	return c.JSON(http.StatusOK, data)
}

// HandleError centralizes error handling and logging using provided logger
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	reqID := getRequestID(c)

	var appErr errors.AppError
	if stdErrors.As(err, &appErr) {
		if logger != nil {
			level := logger.Warn
			if appErr.HTTPCode >= http.StatusInternalServerError {
				level = logger.Error
			}
			level("http.response.error",
				zap.String("request_id", reqID),
				zap.String("path", c.Path()),
				zap.String("app_code", appErr.Code.String()),
				zap.Error(err),
			)
		}

		details := appErr.Details
		if details == "" && appErr.Raw != nil {
			details = appErr.Raw.Error()
		}
		if appErr.HTTPCode == http.StatusMethodNotAllowed {
			c.Response().Header().Set(echo.HeaderAllow, http.MethodPost)
		}

		return c.JSON(appErr.HTTPCode, common.ErrorResponse{
			Error:   appErr.Message,
			Details: details,
		})
	}

	return HandleError(logger, c, errors.ErrInternal(err))
}

// toAppError maps pipeline errors onto the application error taxonomy
func toAppError(err error) errors.AppError {
	var (
		appErr   errors.AppError
		upstream *ai.UpstreamError
	)
	switch {
	case stdErrors.As(err, &appErr):
		return appErr
	case stdErrors.Is(err, youtube.ErrInvalidURL):
		return errors.ErrInvalidVideoURL(youtube.SupportedURLFormats)
	case stdErrors.Is(err, youtube.ErrNoCaptions):
		return errors.ErrCaptionsNotFound(err)
	case stdErrors.Is(err, summary.ErrEmptyTranscript):
		return errors.ErrCaptionsEmpty()
	case stdErrors.Is(err, summary.ErrCaptionFetch):
		return errors.ErrCaptionFetchFailed(err)
	case stdErrors.Is(err, ai.ErrMissingAPIKey):
		return errors.ErrMisconfigured(err)
	case stdErrors.As(err, &upstream):
		return errors.ErrUpstreamFailed(err)
	case stdErrors.Is(err, ai.ErrInvalidResponse):
		return errors.ErrInvalidUpstreamResponse(err)
	default:
		return errors.ErrSummaryFailed(err)
	}
}

// validationError maps validator failures on SummarizeRequest
func validationError(err error) errors.AppError {
	var verrs validator.ValidationErrors
	if stdErrors.As(err, &verrs) {
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				return errors.ErrMissingVideoURL()
			case pkgvalidator.TagYouTubeURL:
				return errors.ErrInvalidVideoURL(youtube.SupportedURLFormats)
			}
		}
	}
	return errors.ErrInvalidPayload()
}
