package models

import "taxOffice/internal/enums"

type ProfileResponse struct {
	ID        uint       `json:"id"`
	Email     string     `json:"email"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     *string    `json:"phone"`
	Role      enums.Role `json:"role"`
}
