package models

import (
	"taxOffice/internal/enums"

	"gorm.io/gorm"
)

// TaxCase is one tax year's engagement for a client.
type TaxCase struct {
	gorm.Model
	ClientID   uint             `gorm:"not null;index" json:"client_id"`
	Client     User             `json:"-"`
	PreparerID *uint            `json:"preparer_id"`
	TaxYear    int              `gorm:"not null" json:"tax_year"`
	Status     enums.CaseStatus `gorm:"type:varchar(32);default:'pending'" json:"status"`
	Notes      string           `json:"notes"`
	Documents  []Document       `json:"documents,omitempty"`
}
