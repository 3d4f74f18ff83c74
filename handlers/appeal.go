package handlers

import (
	"net/http"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
)

type createAppealRequest struct {
	SettlementID      string     `json:"settlement_id"`
	IssueType         string     `json:"issue_type"`
	Description       string     `json:"description"`
	PrimaryStaff      string     `json:"primary_staff"`
	AppellantClientID string     `json:"appellant_client_id"`
	LegalDescription  *string    `json:"legal_description"`
	ContactDate       *time.Time `json:"contact_date"`
}

// CreateAppealHandler files a new appeal.
func CreateAppealHandler(c echo.Context) error {
	var req createAppealRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	appeal, err := services.CreateAppeal(db.DB, middleware.AuditContextFrom(c), services.CreateAppealInput{
		SettlementID:      req.SettlementID,
		IssueType:         req.IssueType,
		Description:       req.Description,
		PrimaryStaff:      req.PrimaryStaff,
		AppellantClientID: req.AppellantClientID,
		LegalDescription:  req.LegalDescription,
		ContactDate:       req.ContactDate,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, appeal)
}

// ListAppealsHandler returns a filtered page of appeals.
func ListAppealsHandler(c echo.Context) error {
	page, limit := pageParams(c)

	filters := services.AppealFilters{
		Status:       c.QueryParam("status"),
		Stage:        c.QueryParam("stage"),
		IssueType:    c.QueryParam("issue_type"),
		PrimaryStaff: c.QueryParam("primary_staff"),
		Search:       c.QueryParam("search"),
		Page:         page,
		Limit:        limit,
	}

	appeals, total, err := services.ListAppeals(db.DB, filters)
	if err != nil {
		return err
	}
	return respondList(c, appeals, total, filters.Page, filters.Limit)
}

// GetAppealHandler returns one appeal with its relationships.
func GetAppealHandler(c echo.Context) error {
	appeal, err := services.GetAppeal(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, appeal)
}

type updateAppealRequest struct {
	IssueType        *string    `json:"issue_type"`
	Description      *string    `json:"description"`
	LegalDescription *string    `json:"legal_description"`
	Background       *string    `json:"background"`
	Notes            *string    `json:"notes"`
	PrimaryStaff     *string    `json:"primary_staff"`
	SecondaryStaff   *string    `json:"secondary_staff"`
	ContactDate      *time.Time `json:"contact_date"`
	ClosedDate       *time.Time `json:"closed_date"`
}

// UpdateAppealHandler applies a partial update to the descriptive fields.
func UpdateAppealHandler(c echo.Context) error {
	var req updateAppealRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	appeal, err := services.UpdateAppeal(db.DB, middleware.AuditContextFrom(c), c.Param("id"), services.UpdateAppealInput{
		IssueType:        req.IssueType,
		Description:      req.Description,
		LegalDescription: req.LegalDescription,
		Background:       req.Background,
		Notes:            req.Notes,
		PrimaryStaff:     req.PrimaryStaff,
		SecondaryStaff:   req.SecondaryStaff,
		ContactDate:      req.ContactDate,
		ClosedDate:       req.ClosedDate,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, appeal)
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// SetAppealStatusHandler changes an appeal's status.
func SetAppealStatusHandler(c echo.Context) error {
	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	appeal, err := services.SetStatus(db.DB, middleware.AuditContextFrom(c), c.Param("id"), req.Status)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, appeal)
}

type setStageRequest struct {
	Stage string `json:"stage"`
}

// SetAppealStageHandler changes an appeal's stage.
func SetAppealStageHandler(c echo.Context) error {
	var req setStageRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	appeal, err := services.SetStage(db.DB, middleware.AuditContextFrom(c), c.Param("id"), req.Stage)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, appeal)
}

// GetAppealAuditHandler returns the audit trail for an appeal.
func GetAppealAuditHandler(c echo.Context) error {
	history, err := services.GetEntityAuditHistory(db.DB, "Appeal", c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, history)
}
