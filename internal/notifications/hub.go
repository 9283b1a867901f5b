package notifications

import (
	"context"
	"log"
	"sync"
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"time"
)

const DefaultMaxConnectionsPerUser = 5

// Client is one live connection owned by the hub. A user may hold
// several at once (multiple tabs or devices).
type Client struct {
	conn        Conn
	UserID      uint
	Role        enums.Role
	ConnectedAt time.Time
	isAlive     bool
}

// Hub owns the mapping of user id to that user's live connections and
// fans notifications out over them. It holds no reference to the
// database; the registry is rebuilt from zero on restart.
type Hub struct {
	mu         sync.Mutex
	clients    map[uint][]*Client
	maxPerUser int
	now        func() time.Time
}

func NewHub(maxConnectionsPerUser int) *Hub {
	if maxConnectionsPerUser <= 0 {
		maxConnectionsPerUser = DefaultMaxConnectionsPerUser
	}
	return &Hub{
		clients:    make(map[uint][]*Client),
		maxPerUser: maxConnectionsPerUser,
		now:        time.Now,
	}
}

// Register admits a new authenticated connection. It fails with
// ErrTooManyConnections when the user is already at the cap, so the
// count never temporarily exceeds it.
func (h *Hub) Register(userId uint, role enums.Role, conn Conn) (*Client, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.clients[userId]) >= h.maxPerUser {
		return nil, errs.ErrTooManyConnections
	}

	client := &Client{
		conn:        conn,
		UserID:      userId,
		Role:        role,
		ConnectedAt: h.now(),
		isAlive:     true,
	}
	h.clients[userId] = append(h.clients[userId], client)
	log.Printf("User %v connected (%v connection(s))", userId, len(h.clients[userId]))
	return client, nil
}

// Unregister removes the client from the registry. The user's entry is
// deleted entirely when its last connection goes away. Safe to call
// more than once for the same client.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(client)
}

func (h *Hub) removeLocked(client *Client) {
	clients := h.clients[client.UserID]
	for i, c := range clients {
		if c == client {
			h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.clients[client.UserID]) == 0 {
		delete(h.clients, client.UserID)
	}
}

// MarkAlive is the pong callback: the peer answered the last probe.
func (h *Hub) MarkAlive(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	client.isAlive = true
}

// Sweep runs one heartbeat tick. Connections that never answered the
// previous probe are terminated and removed; the rest are marked
// not-alive and probed again. A connection that stays silent is
// therefore reclaimed within two ticks.
func (h *Hub) Sweep() {
	h.mu.Lock()
	defer h.mu.Unlock()

	var dead []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			if !client.isAlive {
				dead = append(dead, client)
				continue
			}
			client.isAlive = false
			if err := client.conn.Ping(); err != nil {
				log.Printf("Error pinging user %v: %v", client.UserID, err)
				dead = append(dead, client)
			}
		}
	}

	for _, client := range dead {
		log.Printf("Reclaiming unresponsive connection for user %v", client.UserID)
		if err := client.conn.Close(); err != nil {
			log.Printf("Error closing connection: %v", err)
		}
		h.removeLocked(client)
	}
}

// StartHeartbeat sweeps the registry on a fixed interval until ctx is
// cancelled.
func (h *Hub) StartHeartbeat(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				h.Sweep()
			}
		}
	}()
}

// SendToClient delivers to a single connection. Used for the initial
// connected payload.
func (h *Hub) SendToClient(client *Client, notification Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deliverLocked([]*Client{client}, notification)
}

// SendToUser delivers to every open connection registered for the user.
// No-op if the user has no live connections.
func (h *Hub) SendToUser(userId uint, notification Notification) {
	h.mu.Lock()
	defer h.mu.Unlock()
	clients, ok := h.clients[userId]
	if !ok {
		return
	}
	h.deliverLocked(append([]*Client(nil), clients...), notification)
}

// SendToAdmins delivers to every connection tagged with the admin role.
func (h *Hub) SendToAdmins(notification Notification) {
	h.sendWhere(notification, func(client *Client) bool {
		return client.Role.IsAdmin()
	})
}

// SendToPreparers delivers to every staff connection (preparers and
// admins both care about office-wide events).
func (h *Hub) SendToPreparers(notification Notification) {
	h.sendWhere(notification, func(client *Client) bool {
		return client.Role.IsStaff()
	})
}

// Broadcast delivers to every open connection regardless of role.
func (h *Hub) Broadcast(notification Notification) {
	h.sendWhere(notification, func(client *Client) bool {
		return true
	})
}

func (h *Hub) sendWhere(notification Notification, match func(*Client) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	var targets []*Client
	for _, clients := range h.clients {
		for _, client := range clients {
			if match(client) {
				targets = append(targets, client)
			}
		}
	}
	h.deliverLocked(targets, notification)
}

// deliverLocked writes the payload to each target sequentially. A
// failed write tears that connection down; delivery to the remaining
// targets continues.
func (h *Hub) deliverLocked(targets []*Client, notification Notification) {
	for _, client := range targets {
		if err := client.conn.WriteJSON(notification); err != nil {
			log.Printf("Error writing notification to user %v: %v", client.UserID, err)
			if closeErr := client.conn.Close(); closeErr != nil {
				log.Printf("Error closing connection: %v", closeErr)
			}
			h.removeLocked(client)
		}
	}
}

// UserCount returns the number of distinct users with at least one live
// connection.
func (h *Hub) UserCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// ConnectionCount returns the total number of live connections.
func (h *Hub) ConnectionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	total := 0
	for _, clients := range h.clients {
		total += len(clients)
	}
	return total
}

func (h *Hub) IsUserConnected(userId uint) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients[userId]) > 0
}

// CloseAll terminates every connection, used on server shutdown.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userId, clients := range h.clients {
		for _, client := range clients {
			if err := client.conn.Close(); err != nil {
				log.Printf("Error closing connection: %v", err)
			}
		}
		delete(h.clients, userId)
	}
}
