package models

import "time"

type LoginResponse struct {
	Token string           `json:"token"`
	User  *ProfileResponse `json:"user"`
}

type SocketTokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

type ConnectionStatsResponse struct {
	ConnectedUsers   int        `json:"connected_users"`
	TotalConnections int        `json:"total_connections"`
	UserConnected    *bool      `json:"user_connected,omitempty"`
	LastSeen         *time.Time `json:"last_seen,omitempty"`
}
