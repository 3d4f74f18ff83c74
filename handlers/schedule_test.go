package handlers

import (
	"net/http"
	"strings"
	"testing"

	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestScheduleMediationHandler(t *testing.T) {
	testDB := setupTestDB(t)
	appeal := createTestAppeal(t, testDB)

	body := `{"date": "2026-04-20T00:00:00Z", "location": "Tribunal office", "is_public": true}`
	_, c, rec := setupEcho(http.MethodPost, "/api/appeals/"+appeal.ID+"/schedule/mediation", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(appeal.ID)

	call(ScheduleMediationHandler(testConfig()), c)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var updated models.Appeal
	testDB.First(&updated, "id = ?", appeal.ID)
	assert.Equal(t, models.Stage2a, updated.Stage)
	assert.NotNil(t, updated.MediationDate)
}

func TestScheduleVisibilityDefaults(t *testing.T) {
	testDB := setupTestDB(t)
	appeal := createTestAppeal(t, testDB)

	t.Run("Public when omitted", func(t *testing.T) {
		body := `{"date": "2026-04-20T00:00:00Z"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/appeals/"+appeal.ID+"/schedule/mediation", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)
		call(ScheduleMediationHandler(testConfig()), c)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var entry models.ScheduleEntry
		assert.NoError(t, testDB.Order("created_at DESC").First(&entry, "appeal_id = ?", appeal.ID).Error)
		assert.True(t, entry.IsPublic)
	})

	t.Run("Private when requested", func(t *testing.T) {
		body := `{"date": "2026-04-27T00:00:00Z", "is_public": false}`
		_, c, rec := setupEcho(http.MethodPost, "/api/appeals/"+appeal.ID+"/schedule/mediation", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)
		call(ScheduleMediationHandler(testConfig()), c)

		assert.Equal(t, http.StatusCreated, rec.Code)
		var entries []models.ScheduleEntry
		assert.NoError(t, testDB.Find(&entries, "appeal_id = ? AND is_public = ?", appeal.ID, false).Error)
		assert.Len(t, entries, 1)
	})
}

func TestScheduleHearingHandler(t *testing.T) {
	testDB := setupTestDB(t)
	appeal := createTestAppeal(t, testDB)

	t.Run("Rejected without panel", func(t *testing.T) {
		body := `{"date": "2026-05-11T00:00:00Z"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/appeals/"+appeal.ID+"/schedule/hearing", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)

		call(ScheduleHearingHandler(testConfig()), c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Contains(t, resp["error"], "panel")
	})

	t.Run("Allowed with panel", func(t *testing.T) {
		panelBody := `{"panel_chair": "Dorothy Anderson", "panel_member_2": "Sam Johnson"}`
		_, c, _ := setupEcho(http.MethodPost, "/api/appeals/"+appeal.ID+"/panel", strings.NewReader(panelBody))
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)
		call(AssignPanelHandler, c)

		body := `{"date": "2026-05-11T00:00:00Z"}`
		_, c, rec := setupEcho(http.MethodPost, "/api/appeals/"+appeal.ID+"/schedule/hearing", strings.NewReader(body))
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)

		call(ScheduleHearingHandler(testConfig()), c)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var updated models.Appeal
		testDB.First(&updated, "id = ?", appeal.ID)
		assert.Equal(t, models.Stage4, updated.Stage)
	})
}
