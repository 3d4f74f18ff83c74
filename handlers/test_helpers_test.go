package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"tribunal_app_go/db"
	"tribunal_app_go/models"
	"tribunal_app_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = testDB.AutoMigrate(
		&models.Settlement{},
		&models.IssueType{},
		&models.AppealStatus{},
		&models.AppealStage{},
		&models.Client{},
		&models.Organization{},
		&models.Appeal{},
		&models.AppealParty{},
		&models.PanelComposition{},
		&models.ScheduleEntry{},
		&models.Order{},
		&models.OrderSubjects{},
		&models.Document{},
		&models.User{},
		&models.AuditLog{},
		&models.Notification{},
		&models.ImportHistory{},
		&models.FileNumberCounter{},
		&models.OrderNumberCounter{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	if err := services.SeedLookups(testDB); err != nil {
		t.Fatalf("failed to seed lookups: %v", err)
	}

	// Initialize Storage for tests if not already set
	if services.Storage == nil {
		services.Storage = services.NewLocalStorage(t.TempDir())
	}

	// Set global DB
	db.DB = testDB

	return testDB
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

// call runs a handler, routing any returned error through the error handler
// the way a live server would.
func call(h echo.HandlerFunc, c echo.Context) {
	if err := h(c); err != nil {
		HTTPErrorHandler(err, c)
	}
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	err := json.Unmarshal(rec.Body.Bytes(), &resp)
	assert.NoError(t, err)
	return resp
}

func createTestClient(t *testing.T, testDB *gorm.DB, firstName, lastName string) *models.Client {
	t.Helper()
	client := models.Client{FirstName: firstName, LastName: lastName}
	if err := testDB.Create(&client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return &client
}

func createTestAppeal(t *testing.T, testDB *gorm.DB) *models.Appeal {
	t.Helper()
	client := createTestClient(t, testDB, "Jane", "Cardinal")
	var settlement models.Settlement
	if err := testDB.First(&settlement, "code = ?", "EP").Error; err != nil {
		t.Fatalf("settlement not seeded: %v", err)
	}
	appeal, err := services.CreateAppeal(testDB, services.AuditContext{UserName: "Test Staff", UserRole: models.RoleStaff}, services.CreateAppealInput{
		SettlementID:      settlement.ID,
		IssueType:         "Land",
		Description:       "Test appeal",
		PrimaryStaff:      "Test Staff",
		AppellantClientID: client.ID,
	})
	if err != nil {
		t.Fatalf("failed to create test appeal: %v", err)
	}
	return appeal
}

func createTestUser(t *testing.T, testDB *gorm.DB, email, password, role string) *models.User {
	t.Helper()
	hash, err := services.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user := models.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  hash,
		Role:      role,
		IsActive:  true,
	}
	if err := testDB.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return &user
}
