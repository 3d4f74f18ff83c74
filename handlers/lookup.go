package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tribunal_app_go/db"
	"tribunal_app_go/services"
)

// ListSettlementsHandler returns the eight settlements in sort order.
func ListSettlementsHandler(c echo.Context) error {
	settlements, err := services.ListSettlements(db.DB)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, settlements)
}

// ListIssueTypesHandler returns the issue type vocabulary.
func ListIssueTypesHandler(c echo.Context) error {
	issueTypes, err := services.ListIssueTypes(db.DB)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, issueTypes)
}

// ListStatusesHandler returns the appeal status vocabulary.
func ListStatusesHandler(c echo.Context) error {
	statuses, err := services.ListStatuses(db.DB)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, statuses)
}

// ListStagesHandler returns the appeal stage vocabulary.
func ListStagesHandler(c echo.Context) error {
	stages, err := services.ListStages(db.DB)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, stages)
}

// ListStaffHandler returns names assignable as appeal staff.
func ListStaffHandler(c echo.Context) error {
	names, err := services.GetStaffNames(db.DB)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, names)
}
