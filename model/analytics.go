package model

type ModeUsage struct {
	Semantic int `json:"semantic"`
	Eclectic int `json:"eclectic"`
	Trending int `json:"trending"`
}

type ExportFormatCount struct {
	Resolution string `json:"resolution"`
	Count      int    `json:"count"`
}

type UserAnalytics struct {
	VideosProcessed     int                 `json:"videos_processed"`
	ClipsExtracted      int                 `json:"clips_extracted"`
	SplicesCreated      int                 `json:"splices_created"`
	ExportsCompleted    int                 `json:"exports_completed"`
	TotalProcessingTime float64             `json:"total_processing_time"`
	AverageClipScore    float64             `json:"average_clip_score"`
	FavoriteModes       ModeUsage           `json:"favorite_modes"`
	ExportFormats       []ExportFormatCount `json:"export_formats"`
}

type FileUploadResponse struct {
	UploadID                string  `json:"upload_id"`
	FileSize                int64   `json:"file_size"`
	EstimatedProcessingTime float64 `json:"estimated_processing_time"`
	ChunkSize               int     `json:"chunk_size"`
	TotalChunks             int     `json:"total_chunks"`
}

type ErrorType string

const (
	ErrorUploadFailed         ErrorType = "UPLOAD_FAILED"
	ErrorAnalysisFailed       ErrorType = "ANALYSIS_FAILED"
	ErrorSpliceFailed         ErrorType = "SPLICE_FAILED"
	ErrorExportFailed         ErrorType = "EXPORT_FAILED"
	ErrorAuthenticationFailed ErrorType = "AUTHENTICATION_FAILED"
	ErrorPermissionDenied     ErrorType = "PERMISSION_DENIED"
	ErrorQuotaExceeded        ErrorType = "QUOTA_EXCEEDED"
	ErrorNetwork              ErrorType = "NETWORK_ERROR"
	ErrorValidation           ErrorType = "VALIDATION_ERROR"
)
