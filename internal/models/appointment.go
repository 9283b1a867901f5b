package models

import (
	"taxOffice/internal/enums"
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	gorm.Model
	ClientID    uint                    `gorm:"not null;index" json:"client_id"`
	Client      User                    `json:"-"`
	PreparerID  *uint                   `json:"preparer_id"`
	ScheduledAt time.Time               `gorm:"not null" json:"scheduled_at"`
	Service     string                  `gorm:"not null" json:"service"`
	Notes       string                  `json:"notes"`
	Status      enums.AppointmentStatus `gorm:"type:varchar(16);default:'scheduled'" json:"status"`
}
