package services

import (
	"testing"

	"tribunal_app_go/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
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

	if err := SeedLookups(db); err != nil {
		t.Fatalf("failed to seed lookups: %v", err)
	}

	return db
}

func testAuditContext() AuditContext {
	return AuditContext{
		UserID:    "",
		UserName:  "Test Staff",
		UserRole:  models.RoleStaff,
		IPAddress: "127.0.0.1",
	}
}

func createTestClient(t *testing.T, db *gorm.DB, firstName, lastName string) *models.Client {
	t.Helper()
	client := models.Client{FirstName: firstName, LastName: lastName}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return &client
}

func createTestAppeal(t *testing.T, db *gorm.DB) *models.Appeal {
	t.Helper()
	client := createTestClient(t, db, "Jane", "Cardinal")
	appeal, err := CreateAppeal(db, testAuditContext(), CreateAppealInput{
		SettlementID:      settlementIDByCode(t, db, "EP"),
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

func settlementIDByCode(t *testing.T, db *gorm.DB, code string) string {
	t.Helper()
	var s models.Settlement
	if err := db.First(&s, "code = ?", code).Error; err != nil {
		t.Fatalf("settlement %s not seeded: %v", code, err)
	}
	return s.ID
}
