package repositories

import (
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"

	"gorm.io/gorm"
)

type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
	}
}

func (apr *AppointmentRepository) CreateAppointment(appointment *models.Appointment) (*models.Appointment, []error) {
	var errors []error
	result := apr.db.Create(appointment)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return appointment, nil
}

func (apr *AppointmentRepository) GetAppointmentById(appointmentId uint) (*models.Appointment, error) {
	var appointment models.Appointment
	result := apr.db.First(&appointment, appointmentId)
	if result.Error != nil {
		return nil, errs.ErrAppointmentNotFound
	}
	return &appointment, nil
}

func (apr *AppointmentRepository) GetAppointmentsByClientId(clientId uint) ([]models.Appointment, []error) {
	var errors []error
	var appointments []models.Appointment
	result := apr.db.Where("client_id = ?", clientId).Order("scheduled_at").Find(&appointments)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return appointments, nil
}

func (apr *AppointmentRepository) GetAllAppointments() ([]models.Appointment, []error) {
	var errors []error
	var appointments []models.Appointment
	result := apr.db.Preload("Client").Order("scheduled_at").Find(&appointments)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return appointments, nil
}

func (apr *AppointmentRepository) UpdateAppointmentStatus(appointmentId uint, status enums.AppointmentStatus) (*models.Appointment, []error) {
	var errors []error
	appointment, err := apr.GetAppointmentById(appointmentId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	result := apr.db.Model(appointment).Update("status", status)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	appointment.Status = status
	return appointment, nil
}
