package model

import (
	"encoding/json"
	"time"
)

type TaskType string

const (
	TaskAnalysis         TaskType = "analysis"
	TaskSpliceGeneration TaskType = "splice_generation"
	TaskExport           TaskType = "export"
)

type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobRunning   JobStatus = "running"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

type ProcessingJob struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	VideoID      string          `json:"video_id,omitempty"`
	TaskType     TaskType        `json:"task_type"`
	TaskID       string          `json:"task_id"`
	Status       JobStatus       `json:"status"`
	Progress     float64         `json:"progress"`
	Result       json.RawMessage `json:"result,omitempty"`
	ErrorMessage string          `json:"error_message,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type TrendingSource string

const (
	TrendingYouTube   TrendingSource = "youtube"
	TrendingTikTok    TrendingSource = "tiktok"
	TrendingInstagram TrendingSource = "instagram"
)

type TrendingVideo struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	ThumbnailURL  string         `json:"thumbnail_url,omitempty"`
	Duration      float64        `json:"duration,omitempty"`
	ViewCount     int64          `json:"view_count,omitempty"`
	TrendingScore float64        `json:"trending_score,omitempty"`
	Source        TrendingSource `json:"source"`
	VideoURL      string         `json:"video_url"`
	ExtractedAt   time.Time      `json:"extracted_at"`
}

type TrendingHashtag struct {
	Tag           string  `json:"tag"`
	Count         int     `json:"count"`
	TrendingScore float64 `json:"trending_score"`
	Category      string  `json:"category"`
}
