package handlers

import (
	"time"

	"github.com/labstack/echo/v4"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/models"
	"tribunal_app_go/services"
)

// ListAuditLogsHandler returns paginated audit entries, filterable by user,
// entity type, action and date range. Admin only.
func ListAuditLogsHandler(c echo.Context) error {
	filters := services.AuditLogFilters{
		UserID:     c.QueryParam("user_id"),
		EntityType: c.QueryParam("entity_type"),
		Action:     models.AuditAction(c.QueryParam("action")),
	}

	if from := c.QueryParam("from"); from != "" {
		t, err := time.Parse("2006-01-02", from)
		if err != nil {
			return apperr.Validation("from must be in YYYY-MM-DD format")
		}
		filters.DateFrom = t
	}
	if to := c.QueryParam("to"); to != "" {
		t, err := time.Parse("2006-01-02", to)
		if err != nil {
			return apperr.Validation("to must be in YYYY-MM-DD format")
		}
		filters.DateTo = t
	}

	page, limit := pageParams(c)
	logs, total, err := services.GetAuditLogs(db.DB, filters, page, limit)
	if err != nil {
		return err
	}
	return respondList(c, logs, total, page, limit)
}
