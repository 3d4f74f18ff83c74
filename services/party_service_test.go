package services

import (
	"testing"

	"tribunal_app_go/apperr"
	"tribunal_app_go/models"

	"github.com/stretchr/testify/assert"
)

func TestAddPartyClient(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)
	respondent := createTestClient(t, db, "Albert", "Gauthier")

	party, err := AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		ClientID:  &respondent.ID,
		PartyType: models.PartyTypeRespondent,
	})
	assert.NoError(t, err)
	assert.Equal(t, models.PartyTypeRespondent, party.PartyType)
	if assert.NotNil(t, party.Client) {
		assert.Equal(t, "Albert Gauthier", party.Client.FullName())
	}
}

func TestAddPartyDuplicateRoleRejected(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)
	respondent := createTestClient(t, db, "Albert", "Gauthier")

	_, err := AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		ClientID:  &respondent.ID,
		PartyType: models.PartyTypeRespondent,
	})
	assert.NoError(t, err)

	_, err = AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		ClientID:  &respondent.ID,
		PartyType: models.PartyTypeRespondent,
	})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindConflict, kind)

	// The same person in a different role is allowed
	_, err = AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		ClientID:  &respondent.ID,
		PartyType: models.PartyTypeRepresentative,
	})
	assert.NoError(t, err)
}

func TestAddPartyOrganization(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	org, err := CreateOrganization(db, testAuditContext(), OrganizationInput{Name: "Elizabeth Settlement Council"})
	assert.NoError(t, err)

	party, err := AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		OrganizationID: &org.ID,
		PartyType:      models.PartyTypeRespondent,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Elizabeth Settlement Council", party.DisplayName())

	_, err = AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		OrganizationID: &org.ID,
		PartyType:      models.PartyTypeRespondent,
	})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindConflict, kind)
}

func TestAddPartyRequiresExactlyOneSubject(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)
	client := createTestClient(t, db, "Dora", "Anderson")
	org, err := CreateOrganization(db, testAuditContext(), OrganizationInput{Name: "Some Council"})
	assert.NoError(t, err)

	_, err = AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{PartyType: models.PartyTypeRespondent})
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)

	_, err = AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		ClientID:       &client.ID,
		OrganizationID: &org.ID,
		PartyType:      models.PartyTypeRespondent,
	})
	kind, _ = apperr.KindOf(err)
	assert.Equal(t, apperr.KindValidation, kind)
}

func TestRemoveParty(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)
	respondent := createTestClient(t, db, "Albert", "Gauthier")

	party, err := AddParty(db, testAuditContext(), appeal.ID, AddPartyInput{
		ClientID:  &respondent.ID,
		PartyType: models.PartyTypeRespondent,
	})
	assert.NoError(t, err)

	assert.NoError(t, RemoveParty(db, testAuditContext(), appeal.ID, party.ID))

	err = RemoveParty(db, testAuditContext(), appeal.ID, party.ID)
	kind, _ := apperr.KindOf(err)
	assert.Equal(t, apperr.KindNotFound, kind)
}

func TestListParties(t *testing.T) {
	db := setupTestDB(t)
	appeal := createTestAppeal(t, db)

	parties, err := ListParties(db, appeal.ID)
	assert.NoError(t, err)
	assert.Len(t, parties, 1) // the applicant from creation
}
