package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"
)

// ImportAppealsHandler ingests a legacy appeals workbook. Admin only.
func ImportAppealsHandler(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return apperr.Validation("a workbook file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperr.Validation("unable to read uploaded file")
	}
	defer file.Close()

	actx := middleware.AuditContextFrom(c)
	result, err := services.ImportAppealsWorkbook(db.DB, file, fileHeader.Filename, actx.UserName)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, result)
}
