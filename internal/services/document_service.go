package services

import (
	"fmt"
	"io"
	"taxOffice/internal/enums"
	"taxOffice/internal/interfaces"
	"taxOffice/internal/models"
	"taxOffice/internal/repositories"
	"time"
)

type DocumentService struct {
	documentRepo *repositories.DocumentRepository
	fileManager  interfaces.FileManager
}

func NewDocumentService(
	documentRepo *repositories.DocumentRepository,
	fileManager interfaces.FileManager,
) *DocumentService {
	return &DocumentService{
		documentRepo: documentRepo,
		fileManager:  fileManager,
	}
}

// UploadDocument stores the file in object storage and records its
// metadata.
func (ds *DocumentService) UploadDocument(
	uploaderId uint,
	caseId *uint,
	fileName string,
	file io.Reader,
	fileSize int64,
	contentType string,
) (*models.Document, []error) {
	objectName := fmt.Sprintf("%d_%d_%s", uploaderId, time.Now().UnixNano(), fileName)
	fileUrl, err := ds.fileManager.UploadFile(objectName, file, fileSize, contentType, enums.FILE_BUCKET_DOCUMENTS)
	if err != nil {
		return nil, []error{err}
	}

	document := &models.Document{
		UploaderID:  uploaderId,
		TaxCaseID:   caseId,
		FileName:    fileName,
		FileUrl:     fileUrl,
		ContentType: contentType,
		FileSize:    fileSize,
	}
	return ds.documentRepo.CreateDocument(document)
}

func (ds *DocumentService) GetDocumentsByCaseId(caseId uint) ([]models.Document, []error) {
	return ds.documentRepo.GetDocumentsByCaseId(caseId)
}
