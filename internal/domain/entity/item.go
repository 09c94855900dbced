package entity

import "time"

// ItemRef identifies one media item in the shared catalog.
type ItemRef struct {
	ID       int64  `json:"id"`
	FileID   string `json:"file_id"` // Transport-side handle used to resend the media.
	Caption  string `json:"caption,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}

// ContentResult is what a content request hands back to the caller.
type ContentResult struct {
	Decision    *Decision  `json:"decision"`
	Item        *ItemRef   `json:"item,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
}
