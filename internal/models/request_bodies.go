package models

import "time"

type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateCaseRequestBody struct {
	TaxYear int    `json:"tax_year"`
	Notes   string `json:"notes"`
}

type UpdateCaseStatusRequestBody struct {
	Status string `json:"status"`
}

type CreateAppointmentRequestBody struct {
	ScheduledAt time.Time `json:"scheduled_at"`
	Service     string    `json:"service"`
	Notes       string    `json:"notes"`
}

type SendMessageRequestBody struct {
	RecipientID uint   `json:"recipient_id"`
	Content     string `json:"content"`
}
