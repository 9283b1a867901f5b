package repositories

import (
	"taxOffice/internal/models"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

func (dr *DocumentRepository) CreateDocument(document *models.Document) (*models.Document, []error) {
	var errors []error
	result := dr.db.Create(document)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return document, nil
}

func (dr *DocumentRepository) GetDocumentsByCaseId(caseId uint) ([]models.Document, []error) {
	var errors []error
	var documents []models.Document
	result := dr.db.Where("tax_case_id = ?", caseId).Order("created_at desc").Find(&documents)
	if result.Error != nil {
		errors = append(errors, result.Error)
		return nil, errors
	}
	return documents, nil
}
