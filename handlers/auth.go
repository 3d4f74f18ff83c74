package handlers

import (
	"net/http"

	"tribunal_app_go/apperr"
	"tribunal_app_go/config"
	"tribunal_app_go/db"
	"tribunal_app_go/middleware"
	"tribunal_app_go/models"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// LoginHandler authenticates credentials and issues a JWT.
func LoginHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return apperr.Validation("invalid request body")
		}

		user, err := services.Authenticate(db.DB, req.Email, req.Password)
		if err != nil {
			return err
		}

		token, err := services.IssueToken(user, cfg.JWTSecret)
		if err != nil {
			return err
		}

		actx := middleware.AuditContextFrom(c)
		actx.UserID = user.ID
		actx.UserName = user.FullName()
		actx.UserRole = user.Role
		if err := services.WriteAuditEntry(db.DB, actx, models.AuditActionLogin, "User", user.ID, nil); err != nil {
			return err
		}

		return respondData(c, http.StatusOK, loginResponse{Token: token, User: user})
	}
}

// MeHandler returns the authenticated account.
func MeHandler(c echo.Context) error {
	return respondData(c, http.StatusOK, middleware.CurrentUser(c))
}

type createUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
}

// CreateUserHandler registers a new account. Admin only.
func CreateUserHandler(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid request body")
	}

	user, err := services.CreateUser(db.DB, middleware.AuditContextFrom(c), services.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	return respondData(c, http.StatusCreated, user)
}
