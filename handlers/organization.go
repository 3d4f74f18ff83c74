package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tribunal_app_go/apperr"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/services"
)

// CreateOrganizationHandler registers a new organization.
func CreateOrganizationHandler(c echo.Context) error {
	var in services.OrganizationInput
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}

	org, err := services.CreateOrganization(db.DB, middleware.AuditContextFrom(c), in)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, org)
}

// GetOrganizationHandler returns a single organization by id.
func GetOrganizationHandler(c echo.Context) error {
	org, err := services.GetOrganization(db.DB, c.Param("id"))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, org)
}

// UpdateOrganizationHandler updates an existing organization.
func UpdateOrganizationHandler(c echo.Context) error {
	var in services.OrganizationInput
	if err := c.Bind(&in); err != nil {
		return apperr.Validation("invalid request body")
	}

	org, err := services.UpdateOrganization(db.DB, middleware.AuditContextFrom(c), c.Param("id"), in)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, org)
}

// SearchOrganizationsHandler searches organizations by name.
func SearchOrganizationsHandler(c echo.Context) error {
	page, limit := pageParams(c)
	orgs, total, err := services.SearchOrganizations(db.DB, c.QueryParam("q"), page, limit)
	if err != nil {
		return err
	}
	return respondList(c, orgs, total, page, limit)
}

// DeleteOrganizationHandler removes an organization with no appeal links.
func DeleteOrganizationHandler(c echo.Context) error {
	if err := services.DeleteOrganization(db.DB, middleware.AuditContextFrom(c), c.Param("id")); err != nil {
		return err
	}
	return respondNoContent(c)
}
