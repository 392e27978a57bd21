package jobcontext

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type KeyContext string

var (
	keyJobID        KeyContext = "job_id"
	keyVideoID      KeyContext = "video_id"
	keyPass         KeyContext = "pass"
	keyJobStartTime KeyContext = "job_start_time"
)

// JobMetadata holds metadata for one summarization run
type JobMetadata struct {
	JobID     string
	VideoID   string
	Pass      int
	StartTime time.Time
}

// JobBegin tags ctx with a job id and start time. An empty jobID gets a
// fresh UUID. A context that already carries a job is returned unchanged
// so nested entry points share one id.
func JobBegin(ctx context.Context, jobID string) context.Context {
	if _, ok := GetJobID(ctx); ok {
		return ctx
	}
	if jobID == "" {
		jobID = uuid.NewString()
	}
	ctx = context.WithValue(ctx, keyJobID, jobID)
	ctx = context.WithValue(ctx, keyJobStartTime, time.Now())
	return ctx
}

// GetJobID extracts job ID from context
func GetJobID(ctx context.Context) (string, bool) {
	jobID, ok := ctx.Value(keyJobID).(string)
	return jobID, ok && jobID != ""
}

// SetVideoID records the video being summarized
func SetVideoID(ctx context.Context, videoID string) context.Context {
	return context.WithValue(ctx, keyVideoID, videoID)
}

// GetVideoID extracts the video ID from context
func GetVideoID(ctx context.Context) (string, bool) {
	videoID, ok := ctx.Value(keyVideoID).(string)
	return videoID, ok
}

// SetPass records the current combine pass (1-based)
func SetPass(ctx context.Context, pass int) context.Context {
	return context.WithValue(ctx, keyPass, pass)
}

// GetPass extracts the current pass from context
func GetPass(ctx context.Context) int {
	pass, ok := ctx.Value(keyPass).(int)
	if !ok {
		return 0
	}
	return pass
}

// GetJobStartTime extracts job start time from context
func GetJobStartTime(ctx context.Context) (time.Time, bool) {
	startTime, ok := ctx.Value(keyJobStartTime).(time.Time)
	return startTime, ok
}

// Elapsed returns the time since the job began, or zero if it never did
func (m *JobMetadata) Elapsed() time.Duration {
	if m.StartTime.IsZero() {
		return 0
	}
	return time.Since(m.StartTime)
}

// GetJobMetadata extracts all job metadata from context
func GetJobMetadata(ctx context.Context) *JobMetadata {
	jobID, _ := GetJobID(ctx)
	videoID, _ := GetVideoID(ctx)
	startTime, _ := GetJobStartTime(ctx)

	return &JobMetadata{
		JobID:     jobID,
		VideoID:   videoID,
		Pass:      GetPass(ctx),
		StartTime: startTime,
	}
}

// Fields returns the job metadata present in ctx as zap fields
func Fields(ctx context.Context) []zap.Field {
	var fields []zap.Field
	if jobID, ok := GetJobID(ctx); ok {
		fields = append(fields, zap.String("job_id", jobID))
	}
	if videoID, ok := GetVideoID(ctx); ok {
		fields = append(fields, zap.String("video_id", videoID))
	}
	if pass := GetPass(ctx); pass > 0 {
		fields = append(fields, zap.Int("pass", pass))
	}
	if meta := GetJobMetadata(ctx); !meta.StartTime.IsZero() {
		fields = append(fields, zap.Duration("elapsed", meta.Elapsed()))
	}
	return fields
}
