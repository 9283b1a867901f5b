package notifications

import (
	"fmt"
	"time"
)

// messagePreviewLength caps the message text carried in a notification.
const messagePreviewLength = 100

// Notifier builds typed notification payloads for the business events
// the REST layer commits, and fans them out through the hub. Every send
// is best-effort; callers never block or fail on delivery outcome.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{
		hub: hub,
	}
}

func (n *Notifier) Connected() Notification {
	return Notification{
		Type:    TYPE_CONNECTED,
		Title:   "Connected",
		Message: "Real-time notifications are active",
	}
}

// NotifyNewMessage alerts the recipient of a new direct message with a
// truncated preview.
func (n *Notifier) NotifyNewMessage(senderId, recipientId uint, content string) {
	n.hub.SendToUser(recipientId, Notification{
		Type:    TYPE_MESSAGE,
		Title:   "New Message",
		Message: truncate(content, messagePreviewLength),
		Data: map[string]interface{}{
			"sender_id": senderId,
		},
	})
}

// NotifyCaseStatusChange alerts the owning client and the staff group.
// The two sends are independent: a failure delivering one never
// suppresses the other.
func (n *Notifier) NotifyCaseStatusChange(clientId, caseId uint, newStatus, clientName string) {
	n.hub.SendToUser(clientId, Notification{
		Type:    TYPE_CASE_UPDATE,
		Title:   "Case Status Updated",
		Message: fmt.Sprintf("Your tax case status changed to: %s", newStatus),
		Data: map[string]interface{}{
			"case_id": caseId,
			"status":  newStatus,
		},
	})
	n.hub.SendToPreparers(Notification{
		Type:    TYPE_CASE_UPDATE,
		Title:   "Case Status Updated",
		Message: fmt.Sprintf("Case for %s changed to: %s", clientName, newStatus),
		Data: map[string]interface{}{
			"case_id":   caseId,
			"client_id": clientId,
			"status":    newStatus,
		},
	})
}

// NotifyDocumentUploaded alerts the staff group about a fresh upload.
func (n *Notifier) NotifyDocumentUploaded(uploaderName, fileName string, caseId *uint) {
	data := map[string]interface{}{
		"file_name": fileName,
	}
	if caseId != nil {
		data["case_id"] = *caseId
	}
	n.hub.SendToPreparers(Notification{
		Type:    TYPE_DOCUMENT,
		Title:   "Document Uploaded",
		Message: fmt.Sprintf("%s uploaded %s", uploaderName, fileName),
		Data:    data,
	})
}

// NotifyAppointmentCreated confirms to the client and alerts the staff
// group, both carrying the ISO-8601 appointment time.
func (n *Notifier) NotifyAppointmentCreated(clientId uint, clientName string, scheduledAt time.Time, service string) {
	n.hub.SendToUser(clientId, Notification{
		Type:    TYPE_APPOINTMENT,
		Title:   "Appointment Confirmed",
		Message: fmt.Sprintf("Your %s appointment is scheduled", service),
		Data: map[string]interface{}{
			"scheduled_at": scheduledAt.Format(time.RFC3339),
			"service":      service,
		},
	})
	n.hub.SendToPreparers(Notification{
		Type:    TYPE_APPOINTMENT,
		Title:   "New Appointment",
		Message: fmt.Sprintf("%s booked a %s appointment", clientName, service),
		Data: map[string]interface{}{
			"client_id":    clientId,
			"scheduled_at": scheduledAt.Format(time.RFC3339),
			"service":      service,
		},
	})
}

// NotifyAppointmentStatusChange alerts the client when staff complete
// or cancel an appointment.
func (n *Notifier) NotifyAppointmentStatusChange(clientId, appointmentId uint, status string) {
	n.hub.SendToUser(clientId, Notification{
		Type:    TYPE_STATUS_UPDATE,
		Title:   "Appointment Updated",
		Message: fmt.Sprintf("Your appointment is now %s", status),
		Data: map[string]interface{}{
			"appointment_id": appointmentId,
			"status":         status,
		},
	})
}

// truncate caps s at max characters, never splitting a multi-byte rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
