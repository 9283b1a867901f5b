package notifications

import (
	"errors"
	"strings"
	"taxOffice/internal/enums"
	"testing"
	"time"
	"unicode/utf8"
)

func TestNotifyNewMessageReachesRecipientOnly(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)

	clientConn := &fakeConn{}
	preparerConn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, clientConn)
	hub.Register(20, enums.ROLE_PREPARER, preparerConn)

	notifier.NotifyNewMessage(10, 20, "Hi")

	got := preparerConn.received()
	if len(got) != 1 {
		t.Fatalf("recipient should receive exactly one payload, got %d", len(got))
	}
	if got[0].Type != TYPE_MESSAGE {
		t.Fatalf("got type %q, want %q", got[0].Type, TYPE_MESSAGE)
	}
	if got[0].Data["sender_id"] != uint(10) {
		t.Fatalf("sender_id = %v, want 10", got[0].Data["sender_id"])
	}
	if len(clientConn.received()) != 0 {
		t.Fatal("sender should receive nothing")
	}
}

func TestNotifyNewMessageTruncatesPreview(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)
	conn := &fakeConn{}
	hub.Register(20, enums.ROLE_PREPARER, conn)

	long := strings.Repeat("a", 150)
	notifier.NotifyNewMessage(10, 20, long)

	got := conn.received()
	if len(got) != 1 {
		t.Fatalf("expected one delivery, got %d", len(got))
	}
	if len(got[0].Message) != 100 {
		t.Fatalf("preview length = %d, want 100", len(got[0].Message))
	}
}

func TestNotifyNewMessageTruncatesOnRuneBoundary(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)
	conn := &fakeConn{}
	hub.Register(20, enums.ROLE_PREPARER, conn)

	long := strings.Repeat("é", 150)
	notifier.NotifyNewMessage(10, 20, long)

	got := conn.received()
	if len(got) != 1 {
		t.Fatalf("expected one delivery, got %d", len(got))
	}
	if !utf8.ValidString(got[0].Message) {
		t.Fatal("preview contains invalid UTF-8")
	}
	if n := utf8.RuneCountInString(got[0].Message); n != 100 {
		t.Fatalf("preview rune count = %d, want 100", n)
	}
}

func TestNotifyCaseStatusChangeReachesClientAndStaff(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)

	ownerConn := &fakeConn{}
	otherClientConn := &fakeConn{}
	preparerConn := &fakeConn{}
	adminConn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, ownerConn)
	hub.Register(11, enums.ROLE_CLIENT, otherClientConn)
	hub.Register(20, enums.ROLE_PREPARER, preparerConn)
	hub.Register(30, enums.ROLE_ADMIN, adminConn)

	notifier.NotifyCaseStatusChange(10, 5, "approved", "Jane Doe")

	if got := ownerConn.received(); len(got) != 1 || got[0].Type != TYPE_CASE_UPDATE {
		t.Fatalf("owner should receive one case_update, got %v", got)
	}
	for name, conn := range map[string]*fakeConn{"preparer": preparerConn, "admin": adminConn} {
		got := conn.received()
		if len(got) != 1 || got[0].Type != TYPE_CASE_UPDATE {
			t.Fatalf("%s should receive one case_update, got %v", name, got)
		}
		if !strings.Contains(got[0].Message, "Jane Doe") {
			t.Fatalf("staff message should carry the client name, got %q", got[0].Message)
		}
	}
	if len(otherClientConn.received()) != 0 {
		t.Fatal("unrelated client should receive nothing")
	}
}

func TestNotifyCaseStatusChangeSendsAreIndependent(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)

	brokenOwner := &fakeConn{writeErr: errors.New("broken pipe")}
	adminConn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, brokenOwner)
	hub.Register(30, enums.ROLE_ADMIN, adminConn)

	notifier.NotifyCaseStatusChange(10, 5, "filed", "Jane Doe")

	// The owner's dead socket must not suppress the staff send.
	if len(adminConn.received()) != 1 {
		t.Fatalf("staff should still be notified, got %d deliveries", len(adminConn.received()))
	}
}

func TestNotifyDocumentUploaded(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)

	clientConn := &fakeConn{}
	preparerConn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, clientConn)
	hub.Register(20, enums.ROLE_PREPARER, preparerConn)

	caseId := uint(5)
	notifier.NotifyDocumentUploaded("Jane Doe", "w2.pdf", &caseId)

	got := preparerConn.received()
	if len(got) != 1 || got[0].Type != TYPE_DOCUMENT {
		t.Fatalf("staff should receive one document notification, got %v", got)
	}
	if got[0].Data["file_name"] != "w2.pdf" {
		t.Fatalf("file_name = %v, want w2.pdf", got[0].Data["file_name"])
	}
	if got[0].Data["case_id"] != uint(5) {
		t.Fatalf("case_id = %v, want 5", got[0].Data["case_id"])
	}
	if len(clientConn.received()) != 0 {
		t.Fatal("clients should not receive document notifications")
	}
}

func TestNotifyDocumentUploadedWithoutCase(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)
	conn := &fakeConn{}
	hub.Register(30, enums.ROLE_ADMIN, conn)

	notifier.NotifyDocumentUploaded("Jane Doe", "notes.txt", nil)

	got := conn.received()
	if len(got) != 1 {
		t.Fatalf("expected one delivery, got %d", len(got))
	}
	if _, exists := got[0].Data["case_id"]; exists {
		t.Fatal("case_id should be absent when the upload is not tied to a case")
	}
}

func TestNotifyAppointmentCreated(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)

	clientConn := &fakeConn{}
	adminConn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, clientConn)
	hub.Register(30, enums.ROLE_ADMIN, adminConn)

	scheduledAt := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	notifier.NotifyAppointmentCreated(10, "Jane Doe", scheduledAt, "tax filing")

	clientGot := clientConn.received()
	if len(clientGot) != 1 || clientGot[0].Type != TYPE_APPOINTMENT {
		t.Fatalf("client should receive one appointment confirmation, got %v", clientGot)
	}
	if clientGot[0].Data["scheduled_at"] != "2026-03-14T10:30:00Z" {
		t.Fatalf("scheduled_at = %v, want ISO-8601", clientGot[0].Data["scheduled_at"])
	}

	staffGot := adminConn.received()
	if len(staffGot) != 1 || staffGot[0].Type != TYPE_APPOINTMENT {
		t.Fatalf("staff should receive one appointment alert, got %v", staffGot)
	}
	if staffGot[0].Data["client_id"] != uint(10) {
		t.Fatalf("client_id = %v, want 10", staffGot[0].Data["client_id"])
	}
}

func TestNotifyAppointmentStatusChange(t *testing.T) {
	hub := NewHub(5)
	notifier := NewNotifier(hub)
	conn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, conn)

	notifier.NotifyAppointmentStatusChange(10, 7, "cancelled")

	got := conn.received()
	if len(got) != 1 || got[0].Type != TYPE_STATUS_UPDATE {
		t.Fatalf("client should receive one status_update, got %v", got)
	}
}

func TestConnectedPayload(t *testing.T) {
	notifier := NewNotifier(NewHub(5))
	payload := notifier.Connected()
	if payload.Type != TYPE_CONNECTED {
		t.Fatalf("got type %q, want %q", payload.Type, TYPE_CONNECTED)
	}
}
