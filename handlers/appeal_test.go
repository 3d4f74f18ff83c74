package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateAppealHandler(t *testing.T) {
	testDB := setupTestDB(t)

	t.Run("Files an appeal", func(t *testing.T) {
		client := createTestClient(t, testDB, "Joseph", "Laboucan")
		var settlement models.Settlement
		testDB.First(&settlement, "code = ?", "GL")

		body := `{
			"settlement_id": "` + settlement.ID + `",
			"issue_type": "Membership",
			"description": "Membership dispute",
			"primary_staff": "Case Officer",
			"appellant_client_id": "` + client.ID + `"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/appeals", strings.NewReader(body))

		call(CreateAppealHandler, c)

		assert.Equal(t, http.StatusCreated, rec.Code)
		resp := decodeEnvelope(t, rec)
		data := resp["data"].(map[string]interface{})
		wantFileNumber := fmt.Sprintf("05-0001-%02d", time.Now().Year()%100)
		assert.Equal(t, wantFileNumber, data["file_number"])
		assert.Equal(t, models.StatusActive, data["status"])
		assert.Equal(t, models.Stage1, data["stage"])
	})

	t.Run("Unknown settlement", func(t *testing.T) {
		client := createTestClient(t, testDB, "Rose", "Collins")
		body := `{
			"settlement_id": "no-such-settlement",
			"issue_type": "Land",
			"description": "x",
			"primary_staff": "Case Officer",
			"appellant_client_id": "` + client.ID + `"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/appeals", strings.NewReader(body))

		call(CreateAppealHandler, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		resp := decodeEnvelope(t, rec)
		assert.Equal(t, false, resp["success"])
	})

	t.Run("Missing description", func(t *testing.T) {
		client := createTestClient(t, testDB, "Ed", "Gauthier")
		var settlement models.Settlement
		testDB.First(&settlement, "code = ?", "GL")

		body := `{
			"settlement_id": "` + settlement.ID + `",
			"issue_type": "Land",
			"primary_staff": "Case Officer",
			"appellant_client_id": "` + client.ID + `"
		}`
		_, c, rec := setupEcho(http.MethodPost, "/api/appeals", strings.NewReader(body))

		call(CreateAppealHandler, c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetAppealHandler(t *testing.T) {
	testDB := setupTestDB(t)
	appeal := createTestAppeal(t, testDB)

	t.Run("Found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/appeals/"+appeal.ID, nil)
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)

		call(GetAppealHandler, c)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, appeal.FileNumber, data["file_number"])
	})

	t.Run("Not found", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/api/appeals/missing", nil)
		c.SetParamNames("id")
		c.SetParamValues("missing")

		call(GetAppealHandler, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSetAppealStatusHandler(t *testing.T) {
	testDB := setupTestDB(t)
	appeal := createTestAppeal(t, testDB)

	t.Run("Valid status", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPut, "/api/appeals/"+appeal.ID+"/status",
			strings.NewReader(`{"status": "On Hold"}`))
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)

		call(SetAppealStatusHandler, c)

		assert.Equal(t, http.StatusOK, rec.Code)
		resp := decodeEnvelope(t, rec)
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, models.StatusOnHold, data["status"])
		assert.NotNil(t, data["on_hold_start"])
	})

	t.Run("Unknown status", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodPut, "/api/appeals/"+appeal.ID+"/status",
			strings.NewReader(`{"status": "Vanished"}`))
		c.SetParamNames("id")
		c.SetParamValues(appeal.ID)

		call(SetAppealStatusHandler, c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListAppealsHandler(t *testing.T) {
	testDB := setupTestDB(t)
	createTestAppeal(t, testDB)
	createTestAppeal(t, testDB)

	_, c, rec := setupEcho(http.MethodGet, "/api/appeals?status=Active", nil)

	call(ListAppealsHandler, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, float64(2), resp["total"])
	assert.Len(t, resp["data"], 2)
}
