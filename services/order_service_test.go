package services

import (
	"testing"
	"time"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestRecordOrderForcesStatus(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	_, err := SetStatus(db, testAuditContext(), appeal.ID, models.StatusMediation)
	assert.NoError(t, err)

	order, err := RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{
		IssueDate: time.Now(),
		IsPublic:  true,
		Subjects:  models.OrderSubjects{Land: true},
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, order.OrderNumber)

	refreshed, err := GetAppeal(db, appeal.ID)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusOrderIssued, refreshed.Status)
}

func TestRecordOrderGlobalNumbering(t *testing.T) {
	db := setupTestDB(t)
	first := createTestAppeal(t, db)
	second := createTestAppeal(t, db)

	o1, err := RecordOrder(db, testAuditContext(), first.ID, RecordOrderInput{IssueDate: time.Now()})
	assert.NoError(t, err)
	o2, err := RecordOrder(db, testAuditContext(), second.ID, RecordOrderInput{IssueDate: time.Now()})
	assert.NoError(t, err)
	o3, err := RecordOrder(db, testAuditContext(), first.ID, RecordOrderInput{IssueDate: time.Now()})
	assert.NoError(t, err)

	// Numbers run across appeals, not per appeal
	assert.Equal(t, 1, o1.OrderNumber)
	assert.Equal(t, 2, o2.OrderNumber)
	assert.Equal(t, 3, o3.OrderNumber)
}

func TestRecordOrderRequiresIssueDate(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	_, err := RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)
}

func TestRecordOrderSubjectsStored(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	order, err := RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{
		IssueDate: time.Now(),
		Subjects:  models.OrderSubjects{Membership: true, Trespass: true},
	})
	assert.NoError(t, err)

	fetched, err := GetOrder(db, order.ID)
	assert.NoError(t, err)
	if assert.NotNil(t, fetched.Subjects) {
		assert.True(t, fetched.Subjects.Membership)
		assert.True(t, fetched.Subjects.Trespass)
		assert.False(t, fetched.Subjects.Land)
	}
}

func TestUpdateOrder(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	order, err := RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{IssueDate: time.Now()})
	assert.NoError(t, err)

	keyword := "land allotment"
	isPublic := false
	updated, err := UpdateOrder(db, testAuditContext(), order.ID, UpdateOrderInput{
		Keyword:  &keyword,
		IsPublic: &isPublic,
	})
	assert.NoError(t, err)
	if assert.NotNil(t, updated.Keyword) {
		assert.Equal(t, keyword, *updated.Keyword)
	}
	assert.False(t, updated.IsPublic)
	assert.Equal(t, order.OrderNumber, updated.OrderNumber)
}

func TestSearchPublicDecisions(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	keyword := "boundary"
	_, err := RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{
		IssueDate: time.Now(),
		IsPublic:  true,
		Keyword:   &keyword,
		Subjects:  models.OrderSubjects{Land: true},
	})
	assert.NoError(t, err)

	private, err := RecordOrder(db, testAuditContext(), appeal.ID, RecordOrderInput{
		IssueDate: time.Now(),
		IsPublic:  false,
	})
	assert.NoError(t, err)

	// The false value must survive the insert
	var storedPrivate models.Order
	assert.NoError(t, db.First(&storedPrivate, "id = ?", private.ID).Error)
	assert.False(t, storedPrivate.IsPublic)

	// Only published orders are searchable
	results, total, err := SearchPublicDecisions(db, DecisionFilters{})
	assert.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, results, 1)

	results, _, err = SearchPublicDecisions(db, DecisionFilters{Keyword: "boundary"})
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, _, err = SearchPublicDecisions(db, DecisionFilters{Subject: "land"})
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, _, err = SearchPublicDecisions(db, DecisionFilters{Subject: "membership"})
	assert.NoError(t, err)
	assert.Len(t, results, 0)

	_, _, err = SearchPublicDecisions(db, DecisionFilters{Subject: "weather"})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	// The test appeal is at East Prairie (sort order 2)
	results, _, err = SearchPublicDecisions(db, DecisionFilters{Settlement: "East Prairie"})
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, _, err = SearchPublicDecisions(db, DecisionFilters{Settlement: "Kikino"})
	assert.NoError(t, err)
	assert.Len(t, results, 0)

	_, _, err = SearchPublicDecisions(db, DecisionFilters{Settlement: "Atlantis"})
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	results, _, err = SearchPublicDecisions(db, DecisionFilters{IssueType: "Land"})
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, _, err = SearchPublicDecisions(db, DecisionFilters{Year: time.Now().Year()})
	assert.NoError(t, err)
	assert.Len(t, results, 1)

	results, _, err = SearchPublicDecisions(db, DecisionFilters{Year: 1999})
	assert.NoError(t, err)
	assert.Len(t, results, 0)
}
