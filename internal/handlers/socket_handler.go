package handlers

import (
	"errors"
	"log"
	"net/http"
	"taxOffice/configs"
	"taxOffice/internal/notifications"
	"taxOffice/internal/utils"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Application close codes sent during the handshake so clients can tell
// "re-authenticate" apart from "give up".
const (
	CloseCodeMissingCredential  = 4001
	CloseCodeInvalidCredential  = 4002
	CloseCodeTooManyConnections = 4003
)

const writeWait = 10 * time.Second

// OnlineStatusStore persists a user's online flag; implemented by
// AuthenticationService.
type OnlineStatusStore interface {
	SetUserOnlineStatus(userId uint, isOnline bool) (bool, *time.Time, error)
}

// PresenceCache mirrors the flag into the cache read by the admin
// dashboard; implemented by PresenceService.
type PresenceCache interface {
	SetOnlineStatus(userId uint, status bool, lastSeen time.Time) error
}

type SocketHandler struct {
	upgrader        websocket.Upgrader
	hub             *notifications.Hub
	notifier        *notifications.Notifier
	statusStore     OnlineStatusStore
	presenceCache   PresenceCache
	maxInboundBytes int64
}

func NewSocketHandler(
	hub *notifications.Hub,
	notifier *notifications.Notifier,
	statusStore OnlineStatusStore,
	presenceCache PresenceCache,
	config *configs.Config,
) *SocketHandler {
	maxInbound := config.Viper.GetInt64("socket.max_inbound_message_bytes")
	if maxInbound <= 0 {
		maxInbound = 1024
	}
	return &SocketHandler{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		hub:             hub,
		notifier:        notifier,
		statusStore:     statusStore,
		presenceCache:   presenceCache,
		maxInboundBytes: maxInbound,
	}
}

// HandleNotificationSocketRoute upgrades the connection first and then
// authenticates, so rejections carry application close codes that
// browser clients can read.
func (sh *SocketHandler) HandleNotificationSocketRoute(ctx *gin.Context) {
	ws, err := sh.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}

	token := ctx.Query("token")
	if token == "" {
		sh.rejectConnection(ws, CloseCodeMissingCredential, "credential required")
		return
	}

	claims, err := utils.VerifyToken(token, utils.GetJwtKey())
	if err != nil {
		sh.rejectConnection(ws, CloseCodeInvalidCredential, "credential rejected")
		return
	}

	client, err := sh.hub.Register(claims.ID, claims.Role, &socketConn{ws: ws})
	if err != nil {
		sh.rejectConnection(ws, CloseCodeTooManyConnections, "connection limit reached")
		return
	}

	sh.setOnlineStatus(claims.ID, true)
	sh.hub.SendToClient(client, sh.notifier.Connected())

	// The service is push-only; inbound traffic is drained, size-capped
	// as a resource-exhaustion guard.
	ws.SetReadLimit(sh.maxInboundBytes)
	ws.SetPongHandler(func(string) error {
		sh.hub.MarkAlive(client)
		return nil
	})

	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			if errors.Is(err, websocket.ErrReadLimit) {
				log.Printf("Oversized inbound frame from user %v, terminating", claims.ID)
			} else if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading from user %v: %v", claims.ID, err)
			}
			break
		}
	}

	sh.hub.Unregister(client)
	sh.setOnlineStatus(claims.ID, false)
	if err := ws.Close(); err != nil {
		log.Printf("Error closing connection: %v", err)
	}
	log.Printf("User %v disconnected", claims.ID)
}

func (sh *SocketHandler) rejectConnection(ws *websocket.Conn, code int, reason string) {
	message := websocket.FormatCloseMessage(code, reason)
	if err := ws.WriteControl(websocket.CloseMessage, message, time.Now().Add(writeWait)); err != nil {
		log.Printf("Error writing close message: %v", err)
	}
	if err := ws.Close(); err != nil {
		log.Printf("Error closing connection: %v", err)
	}
}

func (sh *SocketHandler) setOnlineStatus(userId uint, status bool) {
	_, lastSeen, err := sh.statusStore.SetUserOnlineStatus(userId, status)
	if err != nil {
		log.Printf("Failed to set user %v online status in db: %v", userId, err)
		return
	}
	if lastSeen == nil {
		return
	}
	if err := sh.presenceCache.SetOnlineStatus(userId, status, *lastSeen); err != nil {
		log.Printf("Error while updating user %v online status in cache: %v", userId, err)
	}
}

// socketConn adapts *websocket.Conn to the hub's Conn interface.
type socketConn struct {
	ws *websocket.Conn
}

func (c *socketConn) WriteJSON(v interface{}) error {
	return c.ws.WriteJSON(v)
}

func (c *socketConn) Ping() error {
	return c.ws.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait))
}

func (c *socketConn) Close() error {
	return c.ws.Close()
}
