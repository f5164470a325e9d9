//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// UploadEventSuccess is the event type reported once per uploaded file.
const UploadEventSuccess = "success"

// UploadInfo describes an uploaded asset.
type UploadInfo struct {
	SecureURL        string `json:"secure_url"`
	PublicID         string `json:"public_id,omitempty"`
	OriginalFilename string `json:"original_filename,omitempty"`
	Format           string `json:"format,omitempty"`
	Bytes            int64  `json:"bytes,omitempty"`
}

// UploadEvent is the descriptor the upload collaborator reports.
type UploadEvent struct {
	Event string     `json:"event"`
	Info  UploadInfo `json:"info"`
}

// UploadMessage carries either an error or an event, one per upload callback.
type UploadMessage struct {
	Err   error
	Event *UploadEvent
}

// SuccessURL returns the secure URL of a success event.
func (m UploadMessage) SuccessURL() (string, bool) {
	if m.Err != nil || m.Event == nil || m.Event.Event != UploadEventSuccess {
		return "", false
	}
	if m.Event.Info.SecureURL == "" {
		return "", false
	}
	return m.Event.Info.SecureURL, true
}
