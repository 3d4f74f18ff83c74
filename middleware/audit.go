package middleware

import (
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
)

// AuditContextFrom builds the audit attribution for the current request:
// who acted, from where, with what client. Unauthenticated requests yield a
// context with only the network details filled in.
func AuditContextFrom(c echo.Context) services.AuditContext {
	actx := services.AuditContext{
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}
	if user := CurrentUser(c); user != nil {
		actx.UserID = user.ID
		actx.UserName = user.FullName()
		actx.UserRole = user.Role
	}
	return actx
}
