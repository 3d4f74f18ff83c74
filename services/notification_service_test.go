package services

import (
	"testing"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestNotifyAndMarkRead(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "staff@msat.ca", "long-enough-pass", models.RoleStaff)

	err := NotifyUser(db, user.ID, nil, models.NotificationTypeSystem, "Welcome", "Account created", "/")
	assert.NoError(t, err)

	unread, err := UnreadCount(db, user.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, unread)

	list, err := ListNotifications(db, user.ID, true, 10)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, MarkNotificationRead(db, user.ID, list[0].ID))

	unread, err = UnreadCount(db, user.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, unread)

	// Marking again keeps it read and stays an error-free no-op
	assert.NoError(t, MarkNotificationRead(db, user.ID, list[0].ID))

	err = MarkNotificationRead(db, user.ID, "missing-id")
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestMarkAllNotificationsRead(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "staff@msat.ca", "long-enough-pass", models.RoleStaff)

	for i := 0; i < 3; i++ {
		assert.NoError(t, NotifyUser(db, user.ID, nil, models.NotificationTypeSystem, "n", "m", "/"))
	}

	assert.NoError(t, MarkAllNotificationsRead(db, user.ID))

	unread, err := UnreadCount(db, user.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, unread)
}

func TestNotifyAppealStaff(t *testing.T) {
	db := setupTestDB(t)

	staff, err := CreateUser(db, testAuditContext(), CreateUserInput{
		FirstName: "Test",
		LastName:  "Staff",
		Email:     "staff@msat.ca",
		Password:  "long-enough-pass",
		Role:      models.RoleStaff,
	})
	assert.NoError(t, err)

	// createTestAppeal assigns "Test Staff" as primary staff
	appeal := createTestAppeal(t, db)

	err = NotifyAppealStaff(db, appeal, models.NotificationTypeAppealUpdate, "Status changed", "Appeal placed on hold")
	assert.NoError(t, err)

	unread, err := UnreadCount(db, staff.ID)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, unread)
}
