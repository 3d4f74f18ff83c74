package handlers

import (
	"net/http"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
)

type addPartyRequest struct {
	ClientID       *string `json:"client_id"`
	OrganizationID *string `json:"organization_id"`
	PartyType      string  `json:"party_type"`
	Notes          *string `json:"notes"`
}

// AddPartyHandler attaches a client or organization to an appeal in a role.
func AddPartyHandler(c echo.Context) error {
	var req addPartyRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	party, err := services.AddParty(db.DB, middleware.AuditContextFrom(c), c.Param("id"), services.AddPartyInput{
		ClientID:       req.ClientID,
		OrganizationID: req.OrganizationID,
		PartyType:      req.PartyType,
		Notes:          req.Notes,
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, party)
}

// ListPartiesHandler returns all parties on an appeal.
func ListPartiesHandler(c echo.Context) error {
	parties, err := services.ListParties(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, parties)
}

// RemovePartyHandler detaches a party from an appeal.
func RemovePartyHandler(c echo.Context) error {
	err := services.RemoveParty(db.DB, middleware.AuditContextFrom(c), c.Param("id"), c.Param("partyId"))
	if err != nil {
		return err
	}
	return respondNoContent(c)
}
