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

type assignPanelRequest struct {
	PanelChair   string     `json:"panel_chair"`
	PanelMember2 string     `json:"panel_member_2"`
	PanelMember3 *string    `json:"panel_member_3"`
	Mediator     *string    `json:"mediator"`
	DateAssigned *time.Time `json:"date_assigned"`
}

// AssignPanelHandler records a panel composition for an appeal.
func AssignPanelHandler(c echo.Context) error {
	var req assignPanelRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	panel, err := services.AssignPanel(db.DB, middleware.AuditContextFrom(c), c.Param("id"), services.AssignPanelInput{
		PanelChair:   req.PanelChair,
		PanelMember2: req.PanelMember2,
		PanelMember3: req.PanelMember3,
		Mediator:     req.Mediator,
		DateAssigned: req.DateAssigned,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, panel)
}

// GetCurrentPanelHandler returns the latest panel on an appeal.
func GetCurrentPanelHandler(c echo.Context) error {
	panel, err := services.CurrentPanel(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, panel)
}

// RemovePanelHandler deletes a panel composition.
func RemovePanelHandler(c echo.Context) error {
	err := services.RemovePanel(db.DB, middleware.AuditContextFrom(c), c.Param("id"), c.Param("panelId"))
	if err != nil {
		return err
	}
	return respondNoContent(c)
}

// GetBoardMembersHandler returns the known panel-member names for pickers.
func GetBoardMembersHandler(c echo.Context) error {
	names, err := services.GetBoardMemberNames(db.DB)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, names)
}
