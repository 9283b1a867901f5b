package services

import (
	"taxOffice/internal/enums"
	"taxOffice/internal/models"
	"taxOffice/internal/repositories"
	"taxOffice/internal/validators"
)

type AppointmentService struct {
	appointmentRepo *repositories.AppointmentRepository
}

func NewAppointmentService(appointmentRepo *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{
		appointmentRepo: appointmentRepo,
	}
}

func (aps *AppointmentService) CreateAppointment(clientId uint, body *models.CreateAppointmentRequestBody) (*models.Appointment, []error) {
	validationErrs := validators.ValidateCreateAppointment(body)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}
	appointment := &models.Appointment{
		ClientID:    clientId,
		ScheduledAt: body.ScheduledAt,
		Service:     body.Service,
		Notes:       body.Notes,
		Status:      enums.APPOINTMENT_STATUS_SCHEDULED,
	}
	return aps.appointmentRepo.CreateAppointment(appointment)
}

func (aps *AppointmentService) GetAppointmentsForUser(userId uint, role enums.Role) ([]models.Appointment, []error) {
	if role.IsStaff() {
		return aps.appointmentRepo.GetAllAppointments()
	}
	return aps.appointmentRepo.GetAppointmentsByClientId(userId)
}

func (aps *AppointmentService) UpdateAppointmentStatus(appointmentId uint, status enums.AppointmentStatus) (*models.Appointment, []error) {
	return aps.appointmentRepo.UpdateAppointmentStatus(appointmentId, status)
}
