package middleware

import (
	"errors"
	"net/http"
	"strings"

	"tribunal_app_go/db"
	"tribunal_app_go/models"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	// ContextKeyUser is the context key for the authenticated user
	ContextKeyUser = "user"
	// ContextKeyClaims is the context key for the parsed token claims
	ContextKeyClaims = "claims"
)

// RequireAuth validates the Bearer token and loads the account it names.
// The request is rejected when the token is missing, invalid, expired, or
// belongs to a deactivated account.
func RequireAuth(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := services.ParseToken(strings.TrimPrefix(header, "Bearer "), jwtSecret)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			var user models.User
			if err := db.DB.First(&user, "id = ?", claims.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
				}
				return err
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusUnauthorized, "account is deactivated")
			}

			c.Set(ContextKeyUser, &user)
			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

// RequireRole allows only the named roles through. Superadmin passes every
// role gate.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextKeyUser).(*models.User)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if user.Role == models.RoleSuperadmin {
				return next(c)
			}
			for _, role := range roles {
				if user.Role == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, "insufficient role")
		}
	}
}

// CurrentUser returns the authenticated user stored by RequireAuth, or nil
// on unauthenticated routes.
func CurrentUser(c echo.Context) *models.User {
	user, _ := c.Get(ContextKeyUser).(*models.User)
	return user
}
