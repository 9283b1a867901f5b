package validators

import (
	"taxOffice/internal/errs"
	"taxOffice/internal/models"
	"time"
)

func ValidateCreateCase(body *models.CreateCaseRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}
	currentYear := time.Now().Year()
	if body.TaxYear < 2000 || body.TaxYear > currentYear {
		errors = append(errors, errs.ErrInvalidTaxYear)
	}
	return errors
}

func ValidateCreateAppointment(body *models.CreateAppointmentRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}
	if body.Service == "" {
		errors = append(errors, errs.ErrInvalidAppointment)
	}
	if body.ScheduledAt.Before(time.Now()) {
		errors = append(errors, errs.ErrInvalidAppointment)
	}
	return errors
}

func ValidateSendMessage(body *models.SendMessageRequestBody) []error {
	var errors []error
	if body == nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		return errors
	}
	if body.RecipientID == 0 {
		errors = append(errors, errs.ErrInvalidParams)
	}
	if body.Content == "" {
		errors = append(errors, errs.ErrEmptyMessage)
	}
	return errors
}
