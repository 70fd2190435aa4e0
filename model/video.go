package model

import "time"

type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

type UploadSource string

const (
	SourceUpload   UploadSource = "upload"
	SourceYouTube  UploadSource = "youtube"
	SourceTrending UploadSource = "trending"
)

type Video struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	Title            string           `json:"title"`
	OriginalFilename string           `json:"original_filename,omitempty"`
	FileSize         int64            `json:"file_size,omitempty"`
	DurationSeconds  float64          `json:"duration_seconds,omitempty"`
	ResolutionWidth  int              `json:"resolution_width,omitempty"`
	ResolutionHeight int              `json:"resolution_height,omitempty"`
	Format           string           `json:"format,omitempty"`
	StoragePath      string           `json:"storage_path"`
	ThumbnailPath    string           `json:"thumbnail_path,omitempty"`
	UploadSource     UploadSource     `json:"upload_source"`
	YouTubeURL       string           `json:"youtube_url,omitempty"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	ErrorMessage     string           `json:"error_message,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

type VideoUpload struct {
	Title        string       `json:"title"`
	YouTubeURL   string       `json:"youtube_url,omitempty"`
	UploadSource UploadSource `json:"upload_source"`
}

type UploadStatus string

const (
	UploadUploading  UploadStatus = "uploading"
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadError      UploadStatus = "error"
)

type VideoUploadProgress struct {
	UploadID string       `json:"upload_id"`
	Progress float64      `json:"progress"`
	Speed    float64      `json:"speed"` // bytes per second
	ETA      float64      `json:"eta"`   // seconds remaining
	Status   UploadStatus `json:"status"`
}
