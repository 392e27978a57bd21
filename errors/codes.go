package errors

// ErrorCode identifies an application error independently of its HTTP status
type ErrorCode int32

const (
	ErrorCode_UNKNOWN                   ErrorCode = 0
	ErrorCode_INTERNAL                  ErrorCode = 1000
	ErrorCode_METHOD_NOT_ALLOWED        ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD           ErrorCode = 1003
	ErrorCode_MISSING_VIDEO_URL         ErrorCode = 2000
	ErrorCode_INVALID_VIDEO_URL         ErrorCode = 2001
	ErrorCode_CAPTIONS_NOT_FOUND        ErrorCode = 3000
	ErrorCode_CAPTION_FETCH_FAILED      ErrorCode = 3001
	ErrorCode_SUMMARY_FAILED            ErrorCode = 4000
	ErrorCode_UPSTREAM_ERROR            ErrorCode = 4001
	ErrorCode_INVALID_UPSTREAM_RESPONSE ErrorCode = 4002
	ErrorCode_MISCONFIGURED             ErrorCode = 4003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                   "UNKNOWN",
	ErrorCode_INTERNAL:                  "INTERNAL",
	ErrorCode_METHOD_NOT_ALLOWED:        "METHOD_NOT_ALLOWED",
	ErrorCode_INVALID_PAYLOAD:           "INVALID_PAYLOAD",
	ErrorCode_MISSING_VIDEO_URL:         "MISSING_VIDEO_URL",
	ErrorCode_INVALID_VIDEO_URL:         "INVALID_VIDEO_URL",
	ErrorCode_CAPTIONS_NOT_FOUND:        "CAPTIONS_NOT_FOUND",
	ErrorCode_CAPTION_FETCH_FAILED:      "CAPTION_FETCH_FAILED",
	ErrorCode_SUMMARY_FAILED:            "SUMMARY_FAILED",
	ErrorCode_UPSTREAM_ERROR:            "UPSTREAM_ERROR",
	ErrorCode_INVALID_UPSTREAM_RESPONSE: "INVALID_UPSTREAM_RESPONSE",
	ErrorCode_MISCONFIGURED:             "MISCONFIGURED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
