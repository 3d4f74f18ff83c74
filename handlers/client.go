package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"
)

// CreateClientHandler registers a new client record.
func CreateClientHandler(c echo.Context) error {
	var in services.ClientInput
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}

	client, err := services.CreateClient(db.DB, middleware.AuditContextFrom(c), in)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, client)
}

// GetClientHandler returns a single client by id.
func GetClientHandler(c echo.Context) error {
	client, err := services.GetClient(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, client)
}

// UpdateClientHandler updates an existing client record.
func UpdateClientHandler(c echo.Context) error {
	var in services.ClientInput
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}

	client, err := services.UpdateClient(db.DB, middleware.AuditContextFrom(c), c.Param("id"), in)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, client)
}

// SearchClientsHandler searches clients by name, email or member id.
func SearchClientsHandler(c echo.Context) error {
	page, limit := pageParams(c)
	clients, total, err := services.SearchClients(db.DB, c.QueryParam("q"), page, limit)
	if err != nil {
		return err
	}
	return respondList(c, clients, total, page, limit)
}

// DeleteClientHandler removes a client that is not attached to any appeal.
func DeleteClientHandler(c echo.Context) error {
	if err := services.DeleteClient(db.DB, middleware.AuditContextFrom(c), c.Param("id")); err != nil {
		return err
	}
	return respondNoContent(c)
}
