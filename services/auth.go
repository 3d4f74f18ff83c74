package services

import (
	"errors"
	"strings"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenLifetime = 24 * time.Hour

// Claims is the JWT payload issued at login.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Authenticate verifies credentials and returns the matching active user.
// The same message covers a missing account and a wrong password.
func Authenticate(db *gorm.DB, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}

	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Permission("invalid email or password")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperr.Permission("account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, apperr.Permission("invalid email or password")
	}

	now := time.Now()
	if err := db.Model(&user).Update("last_login_at", now).Error; err != nil {
		return nil, err
	}
	user.LastLoginAt = &now

	return &user, nil
}

// IssueToken signs a JWT for an authenticated user.
func IssueToken(user *models.User, secret string) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			Subject:   user.ID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a JWT and returns its claims.
func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Permission("invalid or expired token")
	}
	return claims, nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	if len(password) < 8 {
		return "", apperr.Validation("password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CreateUserInput carries a new staff or board member account.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      string
}

// CreateUser registers an account. Email addresses are unique and stored
// lowercase.
func CreateUser(db *gorm.DB, actx AuditContext, in CreateUserInput) (*models.User, error) {
	in.FirstName = SanitizePlain(in.FirstName)
	in.LastName = SanitizePlain(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if in.FirstName == "" || in.LastName == "" {
		return nil, apperr.Validation("first and last name are required")
	}
	if in.Email == "" || !strings.Contains(in.Email, "@") {
		return nil, apperr.Validation("a valid email is required")
	}

	user := models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Role:      in.Role,
		IsActive:  true,
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if !models.IsValidRole(user.Role) {
		return nil, apperr.Validation("unknown role %q", in.Role)
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user.Password = hash

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isUniqueViolation(err) {
				return apperr.Wrap(err, apperr.KindConflict, "an account with email %s already exists", in.Email)
			}
			return err
		}
		return WriteAuditEntry(tx, actx, models.AuditActionCreate, "User", user.ID, map[string]interface{}{
			"email": user.Email,
			"role":  user.Role,
		})
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}
