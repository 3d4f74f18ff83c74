package services

import (
	"fmt"
	"log"

	"tribunal_app_go/config"
	"tribunal_app_go/models"

	"gorm.io/gorm"
)

// SendScheduleNotices emails the appeal's parties about a newly booked
// mediation or hearing and records in-app notifications for the assigned
// staff. The booking has already committed, so failures here are logged
// rather than surfaced.
func SendScheduleNotices(db *gorm.DB, cfg *config.Config, appealID string, entry *models.ScheduleEntry) {
	appeal, err := GetAppeal(db, appealID)
	if err != nil {
		log.Printf("[NOTIFY] failed to load appeal %s: %v", appealID, err)
		return
	}

	kind := "Oral hearing"
	if entry.EntryType == models.EntryTypeMediation {
		kind = "Mediation"
	}

	for _, party := range appeal.Parties {
		if party.Client == nil || party.Client.Email == nil || *party.Client.Email == "" {
			continue
		}
		email, err := BuildScheduledEmail(party.Client.FullName(), *party.Client.Email,
			kind, appeal.FileNumber, entry.Date, entry.Time, entry.Location)
		if err != nil {
			log.Printf("[NOTIFY] failed to build schedule notice for appeal %s: %v", appeal.FileNumber, err)
			continue
		}
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("[NOTIFY] failed to send schedule notice for appeal %s: %v", appeal.FileNumber, err)
		}
	}

	title := fmt.Sprintf("%s scheduled", kind)
	message := fmt.Sprintf("%s scheduled for appeal %s on %s", kind, appeal.FileNumber,
		entry.Date.Format("January 2, 2006"))
	if err := NotifyAppealStaff(db, appeal, models.NotificationTypeSchedule, title, message); err != nil {
		log.Printf("[NOTIFY] failed to notify staff for appeal %s: %v", appeal.FileNumber, err)
	}
}

// SendOrderNotices emails the appeal's parties that an order has been
// issued and records in-app notifications for the assigned staff.
func SendOrderNotices(db *gorm.DB, cfg *config.Config, appealID string, order *models.Order) {
	appeal, err := GetAppeal(db, appealID)
	if err != nil {
		log.Printf("[NOTIFY] failed to load appeal %s: %v", appealID, err)
		return
	}

	for _, party := range appeal.Parties {
		if party.Client == nil || party.Client.Email == nil || *party.Client.Email == "" {
			continue
		}
		email, err := BuildOrderIssuedEmail(party.Client.FullName(), *party.Client.Email,
			appeal.FileNumber, order.OrderNumber, order.IssueDate)
		if err != nil {
			log.Printf("[NOTIFY] failed to build order notice for appeal %s: %v", appeal.FileNumber, err)
			continue
		}
		if err := SendEmail(cfg, email); err != nil {
			log.Printf("[NOTIFY] failed to send order notice for appeal %s: %v", appeal.FileNumber, err)
		}
	}

	title := fmt.Sprintf("Order No. %d issued", order.OrderNumber)
	message := fmt.Sprintf("Order No. %d issued on appeal %s", order.OrderNumber, appeal.FileNumber)
	if err := NotifyAppealStaff(db, appeal, models.NotificationTypeAppealUpdate, title, message); err != nil {
		log.Printf("[NOTIFY] failed to notify staff for appeal %s: %v", appeal.FileNumber, err)
	}
}
