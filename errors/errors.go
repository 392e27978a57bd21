package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// General Errors
func ErrInternal(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INTERNAL,
		Message:  "Internal server error",
	}
}

func ErrMethodNotAllowed() AppError {
	return AppError{
		HTTPCode: http.StatusMethodNotAllowed,
		Code:     ErrorCode_METHOD_NOT_ALLOWED,
		Message:  "Method not allowed",
	}
}

// Request Errors
func ErrInvalidPayload() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_PAYLOAD,
		Message:  "Invalid request payload",
	}
}

func ErrMissingVideoURL() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_MISSING_VIDEO_URL,
		Message:  "Video URL is required",
	}
}

func ErrInvalidVideoURL(formats []string) AppError {
	details := "Please provide a valid YouTube video URL in one of these formats:"
	for _, f := range formats {
		details += "\n• " + f
	}
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_INVALID_VIDEO_URL,
		Message:  "Invalid YouTube URL",
		Details:  details,
	}
}

// Caption Errors
const captionsHint = "You can check if a video has captions by looking for the CC (Closed Captions) button in the YouTube player."

func ErrCaptionsNotFound(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_CAPTIONS_NOT_FOUND,
		Message:  "No English captions available",
		Details:  "This video does not have English captions. Please try a different video that has English captions enabled. " + captionsHint,
	}
}

func ErrCaptionsEmpty() AppError {
	return AppError{
		HTTPCode: http.StatusBadRequest,
		Code:     ErrorCode_CAPTIONS_NOT_FOUND,
		Message:  "No English captions found for this video",
		Details:  "This video does not have English captions available. Please try a different video that has English captions enabled. " + captionsHint,
	}
}

func ErrCaptionFetchFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_CAPTION_FETCH_FAILED,
		Message:  "Failed to summarize video",
	}
}

// Summary Errors
const apiKeyHint = "Please make sure your API key is valid and has the necessary permissions."

func ErrSummaryFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_SUMMARY_FAILED,
		Message:  "Failed to summarize video",
	}
}

func ErrUpstreamFailed(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_UPSTREAM_ERROR,
		Message:  "Failed to summarize video",
		Details:  fmt.Sprintf("%v. %s", err, apiKeyHint),
	}
}

func ErrInvalidUpstreamResponse(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_INVALID_UPSTREAM_RESPONSE,
		Message:  "Failed to summarize video",
		Details:  fmt.Sprintf("%v. %s", err, apiKeyHint),
	}
}

func ErrMisconfigured(err error) AppError {
	return AppError{
		Raw:      err,
		HTTPCode: http.StatusInternalServerError,
		Code:     ErrorCode_MISCONFIGURED,
		Message:  "Failed to summarize video",
	}
}
