package services

import (
	"testing"

	"tribunal_app_go/apperr"

	"github.com/stretchr/testify/assert"
)

func TestAssignPanel(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	member3 := "Corinne Belcourt"
	panel, err := AssignPanel(db, testAuditContext(), appeal.ID, AssignPanelInput{
		PanelChair:   "Harold Janvier",
		PanelMember2: "Lucille Poitras",
		PanelMember3: &member3,
	})
	assert.NoError(t, err)
	assert.NotNil(t, panel.DateAssigned)
	assert.Len(t, panel.Names(), 3)

	current, err := CurrentPanel(db, appeal.ID)
	assert.NoError(t, err)
	assert.Equal(t, panel.ID, current.ID)
}

func TestAssignPanelRequiresChairAndSecond(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	_, err := AssignPanel(db, testAuditContext(), appeal.ID, AssignPanelInput{
		PanelMember2: "Lucille Poitras",
	})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	_, err = AssignPanel(db, testAuditContext(), appeal.ID, AssignPanelInput{
		PanelChair: "Harold Janvier",
	})
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)
}

func TestAssignPanelRejectsDuplicateNames(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	_, err := AssignPanel(db, testAuditContext(), appeal.ID, AssignPanelInput{
		PanelChair:   "Harold Janvier",
		PanelMember2: "Harold Janvier",
	})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	// Comparison ignores case
	mediator := "HAROLD JANVIER"
	_, err = AssignPanel(db, testAuditContext(), appeal.ID, AssignPanelInput{
		PanelChair:   "Harold Janvier",
		PanelMember2: "Lucille Poitras",
		Mediator:     &mediator,
	})
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)
}

func TestCurrentPanelNoneAssigned(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	_, err := CurrentPanel(db, appeal.ID)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}
