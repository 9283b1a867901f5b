package services

import (
	"taxOffice/internal/enums"
	"taxOffice/internal/errs"
	"taxOffice/internal/models"
	"taxOffice/internal/repositories"
	"taxOffice/internal/validators"
)

type CaseService struct {
	caseRepo *repositories.CaseRepository
}

func NewCaseService(caseRepo *repositories.CaseRepository) *CaseService {
	return &CaseService{
		caseRepo: caseRepo,
	}
}

func (cs *CaseService) CreateCase(clientId uint, body *models.CreateCaseRequestBody) (*models.TaxCase, []error) {
	validationErrs := validators.ValidateCreateCase(body)
	if len(validationErrs) > 0 {
		return nil, validationErrs
	}
	taxCase := &models.TaxCase{
		ClientID: clientId,
		TaxYear:  body.TaxYear,
		Status:   enums.CASE_STATUS_PENDING,
		Notes:    body.Notes,
	}
	return cs.caseRepo.CreateCase(taxCase)
}

func (cs *CaseService) GetCaseById(caseId uint) (*models.TaxCase, error) {
	return cs.caseRepo.GetCaseById(caseId)
}

func (cs *CaseService) GetCasesForUser(userId uint, role enums.Role) ([]models.TaxCase, []error) {
	if role.IsStaff() {
		return cs.caseRepo.GetAllCases()
	}
	return cs.caseRepo.GetCasesByClientId(userId)
}

func (cs *CaseService) UpdateCaseStatus(caseId uint, status string) (*models.TaxCase, []error) {
	caseStatus := enums.CaseStatus(status)
	if !caseStatus.IsValid() {
		return nil, []error{errs.ErrInvalidCaseStatus}
	}
	return cs.caseRepo.UpdateCaseStatus(caseId, caseStatus)
}
