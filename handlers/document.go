package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"
)

// UploadDocumentHandler accepts a multipart upload and attaches it to an appeal.
func UploadDocumentHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.Validation("a file is required")
	}

	in := services.UploadDocumentInput{Category: c.FormValue("category")}
	if desc := c.FormValue("description"); desc != "" {
		in.Description = &desc
	}

	doc, err := services.UploadAppealDocument(
		c.Request().Context(), db.DB, middleware.AuditContextFrom(c),
		c.Param("id"), fileHeader, in,
	)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, doc)
}

// UploadOrderDocumentHandler attaches the signed PDF to an issued order.
func UploadOrderDocumentHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.Validation("a file is required")
	}

	order, err := services.UploadOrderDocument(
		c.Request().Context(), db.DB, middleware.AuditContextFrom(c),
		c.Param("orderId"), fileHeader,
	)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, order)
}

// ListDocumentsHandler returns the document list for an appeal.
func ListDocumentsHandler(c echo.Context) error {
	docs, err := services.ListDocuments(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, docs)
}

// DownloadDocumentHandler streams a stored document back to the caller.
func DownloadDocumentHandler(c echo.Context) error {
	doc, reader, contentType, err := services.OpenDocument(
		c.Request().Context(), db.DB, middleware.AuditContextFrom(c),
		c.Param("id"), c.Param("documentId"),
	)
	if err != nil {
		return err
	}
	defer reader.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", doc.FileName))
	return c.Stream(http.StatusOK, contentType, reader)
}

// DeleteDocumentHandler removes a document from an appeal.
func DeleteDocumentHandler(c echo.Context) error {
	err := services.DeleteDocument(
		c.Request().Context(), db.DB, middleware.AuditContextFrom(c),
		c.Param("id"), c.Param("documentId"),
	)
	if err != nil {
		return err
	}
	return respondNoContent(c)
}

// CompileHearingPackageHandler renders the hearing package PDF for an appeal
// and stores it as a document.
func CompileHearingPackageHandler(c echo.Context) error {
	doc, err := services.CompileHearingPackage(
		c.Request().Context(), db.DB, middleware.AuditContextFrom(c), c.Param("id"),
	)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, doc)
}
