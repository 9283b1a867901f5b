package notifications

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNotificationWireFormat(t *testing.T) {
	payload := Notification{
		Type:    TYPE_MESSAGE,
		Title:   "New Message",
		Message: "Hi",
		Data:    map[string]interface{}{"sender_id": 10},
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	for _, field := range []string{`"type":"message"`, `"title":"New Message"`, `"message":"Hi"`, `"sender_id":10`} {
		if !strings.Contains(string(raw), field) {
			t.Errorf("wire payload missing %s: %s", field, raw)
		}
	}
}

func TestNotificationOmitsEmptyData(t *testing.T) {
	raw, err := json.Marshal(Notification{Type: TYPE_CONNECTED, Title: "Connected"})
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if strings.Contains(string(raw), `"data"`) {
		t.Errorf("empty data should be omitted: %s", raw)
	}
}
