package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tribunal_app_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestRequireAuthMissingToken(t *testing.T) {
	e := echo.New()
	handler := RequireAuth("secret-secret-secret-secret-secret")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	err := handler(c)
	if assert.Error(t, err) {
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
	c = e.NewContext(req, httptest.NewRecorder())
	err = handler(c)
	if assert.Error(t, err) {
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	}
}

func TestRequireAuthMalformedToken(t *testing.T) {
	e := echo.New()
	handler := RequireAuth("secret-secret-secret-secret-secret")(okHandler)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer not.a.token")
	c := e.NewContext(req, httptest.NewRecorder())
	err := handler(c)
	if assert.Error(t, err) {
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	handler := RequireRole(models.RoleAdmin)(okHandler)

	// No user in context
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	err := handler(c)
	if assert.Error(t, err) {
		assert.Equal(t, http.StatusUnauthorized, err.(*echo.HTTPError).Code)
	}

	// Wrong role
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	c.Set(ContextKeyUser, &models.User{Role: models.RoleStaff})
	err = handler(c)
	if assert.Error(t, err) {
		assert.Equal(t, http.StatusForbidden, err.(*echo.HTTPError).Code)
	}

	// Matching role
	rec := httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(ContextKeyUser, &models.User{Role: models.RoleAdmin})
	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Superadmin passes every gate
	rec = httptest.NewRecorder()
	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	c.Set(ContextKeyUser, &models.User{Role: models.RoleSuperadmin})
	assert.NoError(t, handler(c))
}

func TestAuditContextFrom(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("User-Agent", "go-test")
	c := e.NewContext(req, httptest.NewRecorder())

	actx := AuditContextFrom(c)
	assert.Empty(t, actx.UserID)
	assert.Equal(t, "go-test", actx.UserAgent)

	c.Set(ContextKeyUser, &models.User{
		ID:        "user-1",
		FirstName: "Pat",
		LastName:  "Loyer",
		Role:      models.RoleStaff,
	})
	actx = AuditContextFrom(c)
	assert.Equal(t, "user-1", actx.UserID)
	assert.Equal(t, "Pat Loyer", actx.UserName)
	assert.Equal(t, models.RoleStaff, actx.UserRole)
}
