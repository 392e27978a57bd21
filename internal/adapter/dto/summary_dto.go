package dto

// SummarizeRequest represents the request to summarize a video
type SummarizeRequest struct {
	VideoURL string `json:"videoUrl" validate:"required,youtube_url" example:"https://www.youtube.com/watch?v=dQw4w9WgXcQ"`
}

// SummarizeResponse represents the API response for a video summary
type SummarizeResponse struct {
	Summary string `json:"summary" example:"The speaker introduces the topic and walks through three examples."`
}
