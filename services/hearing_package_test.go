package services

import (
	"testing"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderHearingPackageHTML(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	_, err := AssignPanel(db, testAuditContext(), appeal.ID, AssignPanelInput{
		PanelChair:   "Harold Janvier",
		PanelMember2: "Lucille Poitras",
	})
	assert.NoError(t, err)

	_, err = ScheduleHearing(db, testAuditContext(), appeal.ID, ScheduleInput{Date: time.Now().AddDate(0, 1, 0)})
	assert.NoError(t, err)

	_, err = RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{
		IssueDate: time.Now(),
		Subjects:  models.OrderSubjects{Land: true},
	})
	assert.NoError(t, err)

	html, err := RenderHearingPackageHTML(db, appeal.ID)
	assert.NoError(t, err)

	assert.Contains(t, html, appeal.FileNumber)
	assert.Contains(t, html, "Jane Cardinal")
	assert.Contains(t, html, "Harold Janvier")
	assert.Contains(t, html, "Oral")
}

func TestRenderHearingPackageHTMLMissingAppeal(t *testing.T) {
	db := setupTestDB(t)

	_, err := RenderHearingPackageHTML(db, "no-such-appeal")
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}
