package notifications

// Conn is the subset of the websocket connection the hub drives. The
// handler layer adapts *websocket.Conn; tests use in-memory fakes.
type Conn interface {
	WriteJSON(v interface{}) error
	Ping() error
	Close() error
}
