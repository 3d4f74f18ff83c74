package handlers

import (
	"net/http"
	"strconv"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/config"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
)

type scheduleRequest struct {
	Date     time.Time `json:"date"`
	Time     *string   `json:"time"`
	Location *string   `json:"location"`
	IsPublic *bool     `json:"is_public"`
	Notes    *string   `json:"notes"`
}

// toInput maps the request onto the service input. Sittings are public
// unless the request says otherwise.
func (r *scheduleRequest) toInput() services.ScheduleInput {
	isPublic := true
	if r.IsPublic != nil {
		isPublic = *r.IsPublic
	}
	return services.ScheduleInput{
		Date:     r.Date,
		Time:     r.Time,
		Location: r.Location,
		IsPublic: isPublic,
		Notes:    r.Notes,
	}
}

// ScheduleMediationHandler books a mediation session.
func ScheduleMediationHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req scheduleRequest
		if err := c.Bind(&req); err != nil {
			return apperr.Validation("invalid request body")
		}

		entry, err := services.ScheduleMediation(db.DB, middleware.AuditContextFrom(c), c.Param("id"), req.toInput())
		if err != nil {
			return err
		}

		services.SendScheduleNotices(db.DB, cfg, entry.AppealID, entry)

		return respondData(c, http.StatusCreated, entry)
	}
}

// ScheduleHearingHandler books an oral hearing.
func ScheduleHearingHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req scheduleRequest
		if err := c.Bind(&req); err != nil {
			return apperr.Validation("invalid request body")
		}

		entry, err := services.ScheduleHearing(db.DB, middleware.AuditContextFrom(c), c.Param("id"), req.toInput())
		if err != nil {
			return err
		}

		services.SendScheduleNotices(db.DB, cfg, entry.AppealID, entry)

		return respondData(c, http.StatusCreated, entry)
	}
}

// ListScheduleHandler returns all schedule entries on an appeal.
func ListScheduleHandler(c echo.Context) error {
	entries, err := services.ListSchedule(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, entries)
}

type outcomeRequest struct {
	Outcome string `json:"outcome"`
}

// RecordOutcomeHandler stores the outcome of a past mediation or hearing.
func RecordOutcomeHandler(c echo.Context) error {
	var req outcomeRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	entry, err := services.RecordScheduleOutcome(db.DB, middleware.AuditContextFrom(c), c.Param("id"), c.Param("entryId"), req.Outcome)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, entry)
}

// PublicScheduleHandler returns upcoming public sittings. No auth.
func PublicScheduleHandler(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	entries, err := services.UpcomingPublicSchedule(db.DB, limit)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, entries)
}
