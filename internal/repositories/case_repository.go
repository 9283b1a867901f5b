package repositories

import (
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"

	"gorm.io/gorm"
)

type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{
		db: db,
	}
}

func (cr *CaseRepository) CreateCase(taxCase *models.TaxCase) (*models.TaxCase, []error) {
	var errors []error
	result := cr.db.Create(taxCase)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return taxCase, nil
}

func (cr *CaseRepository) GetCaseById(caseId uint) (*models.TaxCase, error) {
	var taxCase models.TaxCase
	result := cr.db.Preload("Client").First(&taxCase, caseId)
	if result.Error != nil {
		return nil, errs.ErrCaseNotFound
	}
	return &taxCase, nil
}

func (cr *CaseRepository) GetCasesByClientId(clientId uint) ([]models.TaxCase, []error) {
	var errors []error
	var cases []models.TaxCase
	result := cr.db.Where("client_id = ?", clientId).Order("tax_year desc").Find(&cases)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return cases, nil
}

func (cr *CaseRepository) GetAllCases() ([]models.TaxCase, []error) {
	var errors []error
	var cases []models.TaxCase
	result := cr.db.Preload("Client").Order("updated_at desc").Find(&cases)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return cases, nil
}

func (cr *CaseRepository) UpdateCaseStatus(caseId uint, status enums.CaseStatus) (*models.TaxCase, []error) {
	var errors []error
	taxCase, err := cr.GetCaseById(caseId)
	if err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	result := cr.db.Model(taxCase).Update("status", status)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	taxCase.Status = status
	return taxCase, nil
}
