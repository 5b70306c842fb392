package task

import "time"

// Status is the lifecycle state of a Task.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusSucceeded  Status = "succeeded"
	StatusFailed     Status = "failed"
)

// Terminal reports whether no further automatic transition follows s.
func (s Status) Terminal() bool {
	return s == StatusSucceeded || s == StatusFailed
}

// Task is one video-to-notes conversion request. PDFObjectKey and Error are
// empty when unset and are never both set.
type Task struct {
	ID           string    `json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	Title        string    `json:"title"`
	VideoURL     string    `json:"video_url"`
	Status       Status    `json:"status"`
	PDFObjectKey string    `json:"pdf_object_key,omitempty"`
	Error        string    `json:"error,omitempty"`
}

// Patch is a partial update. Nil fields are left untouched; a pointer to ""
// clears the optional string columns.
type Patch struct {
	Status       *Status
	PDFObjectKey *string
	Error        *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Status == nil && p.PDFObjectKey == nil && p.Error == nil
}

func MarkProcessing() Patch {
	s := StatusProcessing
	return Patch{Status: &s}
}

// MarkSucceeded records the artifact key and clears any earlier failure.
func MarkSucceeded(objectKey string) Patch {
	s := StatusSucceeded
	none := ""
	return Patch{Status: &s, PDFObjectKey: &objectKey, Error: &none}
}

// MarkFailed records the failure message and clears any earlier artifact key.
func MarkFailed(message string) Patch {
	if message == "" {
		message = "unknown error"
	}
	s := StatusFailed
	none := ""
	return Patch{Status: &s, PDFObjectKey: &none, Error: &message}
}
