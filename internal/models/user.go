package models

import (
	"taxOffice/internal/enums"
	"time"

	"gorm.io/gorm"
)

// User represents an account in the office portal: a client, a tax
// preparer, or an admin.
type User struct {
	gorm.Model
	FirstName    string     `gorm:"not null" json:"first_name"`
	LastName     string     `gorm:"not null" json:"last_name"`
	Email        string     `gorm:"unique;not null" json:"email"`
	Phone        *string    `json:"phone"`
	PasswordHash string     `gorm:"not null" json:"-"`
	Password     string     `gorm:"-" json:"password"`
	Role         enums.Role `gorm:"type:varchar(16);default:'client'" json:"role"`
	IsOnline     bool       `gorm:"default:false" json:"is_online"`
	LastSeen     *time.Time `json:"last_seen"`
}

func (user *User) FullName() string {
	return user.FirstName + " " + user.LastName
}

func (user *User) ToUserResponse() *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		IsOnline:  user.IsOnline,
		LastSeen:  user.LastSeen,
	}
}

func (user *User) ToProfileResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Phone:     user.Phone,
		Role:      user.Role,
	}
}
