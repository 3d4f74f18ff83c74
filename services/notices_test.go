package services

import (
	"testing"
	"time"

	"tribunal_app_go/config"
	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
)

func noticesTestConfig() *config.Config {
	return &config.Config{EmailTestMode: true}
}

func TestSendScheduleNotices(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	staff := models.User{
		FirstName: "Test",
		LastName:  "Staff",
		Email:     "staff@tribunal.test",
		Password:  "x",
		Role:      models.RoleStaff,
		IsActive:  true,
	}
	assert.NoError(t, db.Create(&staff).Error)

	entry, err := ScheduleMediation(db, testAuditContext(), appeal.ID, ScheduleInput{
		Date: time.Date(2026, 4, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	SendScheduleNotices(db, noticesTestConfig(), appeal.ID, entry)

	var notifications []models.Notification
	assert.NoError(t, db.Where("user_id = ?", staff.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Message, appeal.FileNumber)
	assert.Equal(t, &appeal.ID, notifications[0].AppealID)
}

func TestSendOrderNotices(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	staff := models.User{
		FirstName: "Test",
		LastName:  "Staff",
		Email:     "staff2@tribunal.test",
		Password:  "x",
		Role:      models.RoleStaff,
		IsActive:  true,
	}
	assert.NoError(t, db.Create(&staff).Error)

	order, err := RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{
		IssueDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	assert.NoError(t, err)

	SendOrderNotices(db, noticesTestConfig(), appeal.ID, order)

	var notifications []models.Notification
	assert.NoError(t, db.Where("user_id = ?", staff.ID).Find(&notifications).Error)
	assert.Len(t, notifications, 1)
	assert.Contains(t, notifications[0].Title, "Order No. 1")
}
