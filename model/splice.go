package model

import "time"

type SpliceMode string

const (
	SpliceSemantic SpliceMode = "semantic"
	SpliceEclectic SpliceMode = "eclectic"
	SpliceTrending SpliceMode = "trending"
)

type SpliceStatus string

const (
	SpliceDraft      SpliceStatus = "draft"
	SpliceProcessing SpliceStatus = "processing"
	SpliceCompleted  SpliceStatus = "completed"
	SpliceFailed     SpliceStatus = "failed"
)

type AudioMix struct {
	TopVolume    float64 `json:"top_volume"`
	BottomVolume float64 `json:"bottom_volume"`
}

type OverlayPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type OverlayAnimation struct {
	Type     string  `json:"type"` // fade_in, slide_up, typewriter
	Duration float64 `json:"duration"`
}

type OverlayStyle struct {
	Bold   bool `json:"bold"`
	Italic bool `json:"italic"`
	Shadow bool `json:"shadow"`
}

type TextOverlay struct {
	ID         string            `json:"id"`
	Text       string            `json:"text"`
	Position   OverlayPosition   `json:"position"`
	FontSize   int               `json:"font_size"`
	FontFamily string            `json:"font_family"`
	Color      string            `json:"color"`
	Animation  *OverlayAnimation `json:"animation,omitempty"`
	Style      *OverlayStyle     `json:"style,omitempty"`
}

// Splice is a split-screen composition of two clips.
type Splice struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	TopClipID       string        `json:"top_clip_id"`
	BottomClipID    string        `json:"bottom_clip_id"`
	Mode            SpliceMode    `json:"mode"`
	SimilarityScore *float64      `json:"similarity_score,omitempty"`
	ContrastScore   *float64      `json:"contrast_score,omitempty"`
	SplitRatio      float64       `json:"split_ratio"`
	AudioMix        AudioMix      `json:"audio_mix"`
	TextOverlays    []TextOverlay `json:"text_overlays"`
	PreviewPath     string        `json:"preview_path,omitempty"`
	Status          SpliceStatus  `json:"status"`
	ErrorMessage    string        `json:"error_message,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

type SpliceOptions struct {
	SplitRatio   *float64      `json:"split_ratio,omitempty"`
	AudioMix     *AudioMix     `json:"audio_mix,omitempty"`
	TextOverlays []TextOverlay `json:"text_overlays,omitempty"`
}

type SpliceCreate struct {
	ClipIDs [2]string      `json:"clip_ids"` // top, bottom
	Mode    SpliceMode     `json:"mode"`
	Options *SpliceOptions `json:"options,omitempty"`
}
