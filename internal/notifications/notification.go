package notifications

// Type discriminates notification payloads on the wire.
type Type string

const (
	TYPE_MESSAGE       Type = "message"
	TYPE_STATUS_UPDATE Type = "status_update"
	TYPE_DOCUMENT      Type = "document"
	TYPE_APPOINTMENT   Type = "appointment"
	TYPE_CASE_UPDATE   Type = "case_update"
	TYPE_CONNECTED     Type = "connected"
)

// Notification is the payload pushed to clients. It is fire-and-forget:
// not persisted, not queued for offline users, never retried.
type Notification struct {
	Type    Type                   `json:"type"`
	Title   string                 `json:"title"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data,omitempty"`
}
