package services

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

const MaxUploadSize = 10 * 1024 * 1024 // 10MB

var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".txt":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".xlsx": true,
}

var validDocumentCategories = map[string]bool{
	models.DocumentCategoryGeneral:        true,
	models.DocumentCategoryEvidence:       true,
	models.DocumentCategoryCorrespondence: true,
	models.DocumentCategoryHearingPackage: true,
	models.DocumentCategoryOrder:          true,
}

// ValidateDocumentUpload rejects oversized files and disallowed types.
func ValidateDocumentUpload(fileHeader *multipart.FileHeader) error {
	if fileHeader.Size > MaxUploadSize {
		return apperr.Validation("file size exceeds the 10MB limit")
	}
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedUploadExtensions[ext] {
		return apperr.Validation("file type %s not allowed; accepted formats: PDF, DOC, DOCX, TXT, JPG, PNG, XLSX", ext)
	}
	return nil
}

// UploadDocumentInput carries metadata alongside the file.
type UploadDocumentInput struct {
	Category    string
	Description *string
}

// UploadAppealDocument validates, stores, and records a document against an
// appeal. The storage write happens first; the database record and audit
// entry follow in one transaction, with the stored object removed if the
// transaction fails.
func UploadAppealDocument(ctx context.Context, db *gorm.DB, actx AuditContext, appealID string, fileHeader *multipart.FileHeader, in UploadDocumentInput) (*models.Document, error) {
	if err := ValidateDocumentUpload(fileHeader); err != nil {
		return nil, err
	}
	if in.Category == "" {
		in.Category = models.DocumentCategoryGeneral
	}
	if !validDocumentCategories[in.Category] {
		return nil, apperr.Validation("unknown document category %q", in.Category)
	}

	appeal, err := getAppealForUpdate(db, appealID)
	if err != nil {
		return nil, err
	}

	key := GenerateAppealDocumentKey(appeal.ID, fileHeader.Filename)
	stored, err := Storage.Upload(ctx, fileHeader, key)
	if err != nil {
		return nil, err
	}

	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), ".")
	doc := models.Document{
		AppealID:    appeal.ID,
		FileName:    filepath.Base(fileHeader.Filename),
		FileType:    &fileType,
		FileSize:    stored.FileSize,
		StorageKey:  stored.Key,
		Category:    in.Category,
		Description: in.Description,
		UploadedBy:  ptrIfNotEmpty(actx.UserID),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&doc).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpload, "Document", doc.ID, map[string]interface{}{
			"appeal_id": appeal.ID,
			"file_name": doc.FileName,
			"category":  doc.Category,
		})
	})
	if err != nil {
		// Best effort: the object is orphaned otherwise.
		_ = Storage.Delete(ctx, stored.Key)
		return nil, err
	}

	return &doc, nil
}

// UploadOrderDocument stores the signed PDF of an issued order and points
// the order's document_url at it. Only PDFs are accepted.
func UploadOrderDocument(ctx context.Context, db *gorm.DB, actx AuditContext, orderID string, fileHeader *multipart.FileHeader) (*models.Order, error) {
	if err := ValidateDocumentUpload(fileHeader); err != nil {
		return nil, err
	}
	if strings.ToLower(filepath.Ext(fileHeader.Filename)) != ".pdf" {
		return nil, apperr.Validation("order documents must be PDFs")
	}

	order, err := GetOrder(db, orderID)
	if err != nil {
		return nil, err
	}

	key := GenerateOrderDocumentKey(order.ID, fileHeader.Filename)
	stored, err := Storage.Upload(ctx, fileHeader, key)
	if err != nil {
		return nil, err
	}

	url := stored.URL
	if url == "" {
		url = stored.Key
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(order).Update("document_url", url).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionUpload, "Order", order.ID, map[string]interface{}{
			"order_number": order.OrderNumber,
			"file_name":    filepath.Base(fileHeader.Filename),
		})
	})
	if err != nil {
		_ = Storage.Delete(ctx, stored.Key)
		return nil, err
	}

	return GetOrder(db, orderID)
}

// OpenDocument returns a reader over a document's content for download,
// plus its content type.
func OpenDocument(ctx context.Context, db *gorm.DB, actx AuditContext, appealID, documentID string) (*models.Document, io.ReadCloser, string, error) {
	doc, err := getDocument(db, appealID, documentID)
	if err != nil {
		return nil, nil, "", err
	}

	reader, contentType, err := Storage.Get(ctx, doc.StorageKey)
	if err != nil {
		return nil, nil, "", apperr.Wrap(err, apperr.KindNotFound, "document content unavailable")
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return WriteAuditEntry(tx, actx, models.AuditActionDownload, "Document", doc.ID, map[string]interface{}{
			"appeal_id": appealID,
			"file_name": doc.FileName,
		})
	})
	if err != nil {
		reader.Close()
		return nil, nil, "", err
	}

	return doc, reader, contentType, nil
}

// DeleteDocument removes a document record and its stored object.
func DeleteDocument(ctx context.Context, db *gorm.DB, actx AuditContext, appealID, documentID string) error {
	doc, err := getDocument(db, appealID, documentID)
	if err != nil {
		return err
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(doc).Error; err != nil {
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionDelete, "Document", doc.ID, map[string]interface{}{
			"appeal_id": appealID,
			"file_name": doc.FileName,
		})
	})
	if err != nil {
		return err
	}

	return Storage.Delete(ctx, doc.StorageKey)
}

// ListDocuments returns all documents on an appeal, newest first.
func ListDocuments(db *gorm.DB, appealID string) ([]models.Document, error) {
	if _, err := getAppealForUpdate(db, appealID); err != nil {
		return nil, err
	}
	var docs []models.Document
	err := db.
		Where("appeal_id = ?", appealID).
		Order("created_at DESC").
		Find(&docs).Error
	return docs, err
}

func getDocument(db *gorm.DB, appealID, documentID string) (*models.Document, error) {
	var doc models.Document
	err := db.First(&doc, "id = ? AND appeal_id = ?", documentID, appealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("document not found on this appeal")
		}
		return nil, err
	}
	return &doc, nil
}
