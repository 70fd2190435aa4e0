package model

import "time"

// Clip is a scored sub-segment of an uploaded video.
type Clip struct {
	ID               string    `json:"id"`
	VideoID          string    `json:"video_id"`
	StartTimeSeconds float64   `json:"start_time_seconds"`
	EndTimeSeconds   float64   `json:"end_time_seconds"`
	DurationSeconds  float64   `json:"duration_seconds"`
	AttentionScore   *float64  `json:"attention_score,omitempty"`
	VisualIntensity  *float64  `json:"visual_intensity,omitempty"`
	AudioIntensity   *float64  `json:"audio_intensity,omitempty"`
	MotionScore      *float64  `json:"motion_score,omitempty"`
	SemanticHooks    []string  `json:"semantic_hooks"`
	EmotionDetected  string    `json:"emotion_detected,omitempty"`
	Embedding        []float64 `json:"embedding,omitempty"`
	ThumbnailPath    string    `json:"thumbnail_path,omitempty"`
	StoragePath      string    `json:"storage_path,omitempty"`
	Selected         bool      `json:"selected"`
	CreatedAt        time.Time `json:"created_at"`
}

type ClipAnalysis struct {
	AnalysisID          string           `json:"analysis_id"`
	VideoID             string           `json:"video_id"`
	Status              ProcessingStatus `json:"status"`
	Clips               []Clip           `json:"clips"`
	Progress            float64          `json:"progress"`
	EstimatedCompletion *time.Time       `json:"estimated_completion,omitempty"`
	ErrorMessage        string           `json:"error_message,omitempty"`
}
