package models

import "gorm.io/gorm"

type Document struct {
	gorm.Model
	UploaderID  uint   `gorm:"not null;index" json:"uploader_id"`
	Uploader    User   `json:"-"`
	TaxCaseID   *uint  `gorm:"index" json:"tax_case_id"`
	FileName    string `gorm:"not null" json:"file_name"`
	FileUrl     string `gorm:"not null" json:"file_url"`
	ContentType string `json:"content_type"`
	FileSize    int64  `json:"file_size"`
}
