package services

import (
	"errors"
	"fmt"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// NotifyUser records an in-app notification for one user.
func NotifyUser(db *gorm.DB, userID string, appealID *string, notifType, title, message, linkURL string) error {
	n := models.Notification{
		UserID:   userID,
		AppealID: appealID,
		Type:     notifType,
		Title:    title,
		Message:  message,
		LinkURL:  linkURL,
	}
	return db.Create(&n).Error
}

// NotifyAppealStaff notifies the staff assigned to an appeal about a change
// to it. Staff are matched by name against active accounts; unmatched names
// (legacy imports) are skipped.
func NotifyAppealStaff(db *gorm.DB, appeal *models.Appeal, notifType, title, message string) error {
	names := []string{appeal.PrimaryStaff}
	if appeal.SecondaryStaff != nil && *appeal.SecondaryStaff != "" {
		names = append(names, *appeal.SecondaryStaff)
	}

	var users []models.User
	err := db.
		Where("is_active = ?", true).
		Where("(first_name || ' ' || last_name) IN ?", names).
		Find(&users).Error
	if err != nil {
		return err
	}

	linkURL := fmt.Sprintf("/appeals/%s", appeal.ID)
	for _, u := range users {
		if err := NotifyUser(db, u.ID, &appeal.ID, notifType, title, message, linkURL); err != nil {
			return err
		}
	}
	return nil
}

// ListNotifications returns a user's notifications, newest first. When
// unreadOnly is set, read notifications are excluded.
func ListNotifications(db *gorm.DB, userID string, unreadOnly bool, limit int) ([]models.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}

	q := db.Where("user_id = ?", userID)
	if unreadOnly {
		q = q.Where("read_at IS NULL")
	}

	var notifications []models.Notification
	err := q.Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

// UnreadCount returns how many notifications a user has not read.
func UnreadCount(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}

// MarkNotificationRead stamps a single notification as read. Marking an
// already-read notification keeps its original read time.
func MarkNotificationRead(db *gorm.DB, userID, notificationID string) error {
	var n models.Notification
	err := db.First(&n, "id = ? AND user_id = ?", notificationID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("notification not found")
		}
		return err
	}
	if n.IsRead() {
		return nil
	}
	return db.Model(&n).Update("read_at", time.Now()).Error
}

// MarkAllNotificationsRead stamps every unread notification for a user.
func MarkAllNotificationsRead(db *gorm.DB, userID string) error {
	return db.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", time.Now()).Error
}
