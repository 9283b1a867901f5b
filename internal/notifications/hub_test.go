package notifications

import (
	"encoding/json"
	"errors"
	"sync"
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"testing"
)

type fakeConn struct {
	mu       sync.Mutex
	written  []Notification
	writeErr error
	pings    int
	pingErr  error
	closed   bool
}

func (c *fakeConn) WriteJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return c.writeErr
	}
	c.written = append(c.written, v.(Notification))
	return nil
}

func (c *fakeConn) Ping() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pings++
	return c.pingErr
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) received() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Notification(nil), c.written...)
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func TestRegisterAndUnregister(t *testing.T) {
	hub := NewHub(5)
	conn := &fakeConn{}

	client, err := hub.Register(10, enums.ROLE_CLIENT, conn)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if !hub.IsUserConnected(10) {
		t.Fatal("user 10 should be connected after register")
	}
	if hub.UserCount() != 1 || hub.ConnectionCount() != 1 {
		t.Fatalf("expected 1 user / 1 connection, got %d / %d", hub.UserCount(), hub.ConnectionCount())
	}

	hub.Unregister(client)
	if hub.IsUserConnected(10) {
		t.Fatal("user 10 should not be connected after unregister")
	}
	if hub.UserCount() != 0 || hub.ConnectionCount() != 0 {
		t.Fatalf("expected empty registry, got %d users / %d connections", hub.UserCount(), hub.ConnectionCount())
	}

	// A second unregister of the same client must be harmless.
	hub.Unregister(client)
	if hub.UserCount() != 0 {
		t.Fatal("registry changed after repeated unregister")
	}
}

func TestRegistryEntryRemovedWithLastConnection(t *testing.T) {
	hub := NewHub(5)

	first, _ := hub.Register(10, enums.ROLE_CLIENT, &fakeConn{})
	second, _ := hub.Register(10, enums.ROLE_CLIENT, &fakeConn{})

	hub.Unregister(first)
	if !hub.IsUserConnected(10) {
		t.Fatal("user should stay connected while one connection remains")
	}
	hub.Unregister(second)
	if hub.UserCount() != 0 {
		t.Fatal("user entry should be removed with its last connection")
	}
}

func TestConnectionLimit(t *testing.T) {
	hub := NewHub(5)

	clients := make([]*Client, 0, 5)
	for i := 0; i < 5; i++ {
		client, err := hub.Register(10, enums.ROLE_CLIENT, &fakeConn{})
		if err != nil {
			t.Fatalf("connection %d rejected unexpectedly: %v", i+1, err)
		}
		clients = append(clients, client)
	}

	if _, err := hub.Register(10, enums.ROLE_CLIENT, &fakeConn{}); !errors.Is(err, errs.ErrTooManyConnections) {
		t.Fatalf("6th connection: got %v, want ErrTooManyConnections", err)
	}
	if hub.ConnectionCount() != 5 {
		t.Fatalf("rejected connection must not appear in registry, got %d", hub.ConnectionCount())
	}

	// Closing one frees a slot for a subsequent attempt.
	hub.Unregister(clients[0])
	if _, err := hub.Register(10, enums.ROLE_CLIENT, &fakeConn{}); err != nil {
		t.Fatalf("register after freeing a slot failed: %v", err)
	}
}

func TestSendToUserWithoutConnectionsIsNoop(t *testing.T) {
	hub := NewHub(5)
	conn := &fakeConn{}
	hub.Register(20, enums.ROLE_PREPARER, conn)

	hub.SendToUser(99, Notification{Type: TYPE_MESSAGE, Title: "x"})

	if len(conn.received()) != 0 {
		t.Fatal("notification for user 99 leaked to user 20")
	}
}

func TestSendToUserReachesAllConnections(t *testing.T) {
	hub := NewHub(5)
	tab := &fakeConn{}
	phone := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, tab)
	hub.Register(10, enums.ROLE_CLIENT, phone)

	hub.SendToUser(10, Notification{Type: TYPE_MESSAGE, Title: "New Message"})

	if len(tab.received()) != 1 || len(phone.received()) != 1 {
		t.Fatalf("expected one delivery per connection, got %d and %d", len(tab.received()), len(phone.received()))
	}
}

func TestRoleFanout(t *testing.T) {
	hub := NewHub(5)
	clientConn := &fakeConn{}
	preparerConn := &fakeConn{}
	adminConn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, clientConn)
	hub.Register(20, enums.ROLE_PREPARER, preparerConn)
	hub.Register(30, enums.ROLE_ADMIN, adminConn)

	hub.SendToAdmins(Notification{Type: TYPE_CASE_UPDATE, Title: "admins"})
	if len(adminConn.received()) != 1 {
		t.Fatal("admin should receive admin notification")
	}
	if len(preparerConn.received()) != 0 || len(clientConn.received()) != 0 {
		t.Fatal("admin notification leaked to non-admin connections")
	}

	hub.SendToPreparers(Notification{Type: TYPE_CASE_UPDATE, Title: "staff"})
	if len(adminConn.received()) != 2 || len(preparerConn.received()) != 1 {
		t.Fatal("staff notification should reach admins and preparers")
	}
	if len(clientConn.received()) != 0 {
		t.Fatal("staff notification leaked to a client connection")
	}

	hub.Broadcast(Notification{Type: TYPE_CONNECTED, Title: "all"})
	if len(clientConn.received()) != 1 || len(preparerConn.received()) != 2 || len(adminConn.received()) != 3 {
		t.Fatal("broadcast should reach every connection")
	}
}

func TestSweepReclaimsUnresponsiveConnection(t *testing.T) {
	hub := NewHub(5)
	conn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, conn)

	// First tick probes the connection.
	hub.Sweep()
	if conn.pings != 1 {
		t.Fatalf("expected 1 ping after first sweep, got %d", conn.pings)
	}
	if !hub.IsUserConnected(10) {
		t.Fatal("connection removed too early")
	}

	// No pong arrives; the second tick reclaims it.
	hub.Sweep()
	if hub.IsUserConnected(10) {
		t.Fatal("unresponsive connection should be reclaimed by the second sweep")
	}
	if !conn.isClosed() {
		t.Fatal("reclaimed connection should be closed")
	}
}

func TestSweepKeepsRespondingConnection(t *testing.T) {
	hub := NewHub(5)
	conn := &fakeConn{}
	client, _ := hub.Register(10, enums.ROLE_CLIENT, conn)

	for i := 0; i < 3; i++ {
		hub.Sweep()
		hub.MarkAlive(client)
	}

	if !hub.IsUserConnected(10) {
		t.Fatal("responding connection must survive sweeps")
	}
	if conn.pings != 3 {
		t.Fatalf("expected 3 pings, got %d", conn.pings)
	}
}

func TestSweepReclaimsFailedPing(t *testing.T) {
	hub := NewHub(5)
	conn := &fakeConn{pingErr: errors.New("broken pipe")}
	hub.Register(10, enums.ROLE_CLIENT, conn)

	hub.Sweep()

	if hub.IsUserConnected(10) {
		t.Fatal("connection with failing ping should be reclaimed")
	}
}

func TestFailedWriteTearsDownOnlyThatConnection(t *testing.T) {
	hub := NewHub(5)
	broken := &fakeConn{writeErr: errors.New("broken pipe")}
	healthy := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, broken)
	hub.Register(10, enums.ROLE_CLIENT, healthy)

	hub.SendToUser(10, Notification{Type: TYPE_MESSAGE, Title: "x"})

	if !broken.isClosed() {
		t.Fatal("broken connection should be closed after a failed write")
	}
	if hub.ConnectionCount() != 1 {
		t.Fatalf("expected only the healthy connection to remain, got %d", hub.ConnectionCount())
	}
	if len(healthy.received()) != 1 {
		t.Fatal("healthy connection should still receive the notification")
	}
}

func TestPayloadDeliveredUnmodified(t *testing.T) {
	hub := NewHub(5)
	conn := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, conn)

	sent := Notification{
		Type:    TYPE_CASE_UPDATE,
		Title:   "Case Status Updated",
		Message: "Your tax case status changed to: approved",
		Data: map[string]interface{}{
			"case_id": uint(5),
			"status":  "approved",
		},
	}
	hub.SendToUser(10, sent)

	got := conn.received()
	if len(got) != 1 {
		t.Fatalf("expected 1 delivery, got %d", len(got))
	}

	wantJson, _ := json.Marshal(sent)
	gotJson, _ := json.Marshal(got[0])
	if string(wantJson) != string(gotJson) {
		t.Fatalf("payload mutated in transit:\nwant %s\ngot  %s", wantJson, gotJson)
	}
}

func TestCloseAll(t *testing.T) {
	hub := NewHub(5)
	first := &fakeConn{}
	second := &fakeConn{}
	hub.Register(10, enums.ROLE_CLIENT, first)
	hub.Register(20, enums.ROLE_ADMIN, second)

	hub.CloseAll()

	if hub.UserCount() != 0 || hub.ConnectionCount() != 0 {
		t.Fatal("registry should be empty after CloseAll")
	}
	if !first.isClosed() || !second.isClosed() {
		t.Fatal("all connections should be closed")
	}
}
