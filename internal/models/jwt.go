package models

import (
	"taxOffice/internal/enums"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload of both the session token and the short-lived
// socket token. Both are signed with the same secret.
type Claims struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Role      enums.Role `json:"role"`
	jwt.RegisteredClaims
}
