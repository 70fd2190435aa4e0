package model

import "time"

type ExportMetadata struct {
	Title        string   `json:"title,omitempty"`
	Description  string   `json:"description,omitempty"`
	Hashtags     []string `json:"hashtags,omitempty"`
	ThumbnailURL string   `json:"thumbnail_url,omitempty"`
}

type Export struct {
	ID               string           `json:"id"`
	UserID           string           `json:"user_id"`
	SpliceID         string           `json:"splice_id"`
	Filename         string           `json:"filename"`
	FileSize         int64            `json:"file_size,omitempty"`
	Resolution       string           `json:"resolution"`
	FPS              int              `json:"fps"`
	Codec            string           `json:"codec"`
	Bitrate          int              `json:"bitrate,omitempty"`
	DurationSeconds  float64          `json:"duration_seconds,omitempty"`
	StoragePath      string           `json:"storage_path"`
	DownloadURL      string           `json:"download_url,omitempty"`
	Metadata         *ExportMetadata  `json:"metadata,omitempty"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	ErrorMessage     string           `json:"error_message,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

const (
	Resolution720p  = "720x1280"
	Resolution1080p = "1080x1920"
)

type ExportFormat struct {
	Resolution string `json:"resolution"`
	FPS        int    `json:"fps"`
	Codec      string `json:"codec"`
	Bitrate    int    `json:"bitrate,omitempty"`
}

type ExportCreate struct {
	SpliceID string          `json:"splice_id"`
	Format   *ExportFormat   `json:"format,omitempty"`
	Metadata *ExportMetadata `json:"metadata,omitempty"`
}
