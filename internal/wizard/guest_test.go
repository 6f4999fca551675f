package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thegoanwedding/marketplace/internal/models"
)

func sampleInvitation() models.Invitation {
	return models.Invitation{
		InvitationCode: "a1b2c3d4e5f6g7h8",
		GuestName:      "Alice",
		GuestEmail:     "alice@example.com",
		MaxGuests:      3,
	}
}

func filledForm(t *testing.T) *GuestForm {
	t.Helper()
	f := NewGuestForm(sampleInvitation(), nil)
	f.NumberOfGuests = 2
	f.AttendingCeremony = true
	f.AttendingReception = true
	f.CeremonyType = "church"
	f.CeremonyTime = TimeOfDay{Hour: "4", Minute: "30", Period: "pm"}
	return f
}

func requireFieldError(t *testing.T, err error, field string) {
	t.Helper()
	var fe *FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, field, fe.Field)
}

func TestGuestForm_WalksAllSteps(t *testing.T) {
	f := filledForm(t)
	assert.Equal(t, StepGuestInfo, f.Step())

	require.NoError(t, f.Next())
	assert.Equal(t, StepPartySize, f.Step())
	require.NoError(t, f.Next())
	assert.Equal(t, StepAttendance, f.Step())
	require.NoError(t, f.Next())
	assert.Equal(t, StepDetails, f.Step())

	assert.ErrorIs(t, f.Next(), ErrLastStep)
	assert.Equal(t, StepDetails, f.Step())
}

func TestGuestForm_Back(t *testing.T) {
	f := filledForm(t)
	assert.ErrorIs(t, f.Back(), ErrFirstStep)

	require.NoError(t, f.Next())
	f.NumberOfGuests = 99 // Back does not validate
	require.NoError(t, f.Back())
	assert.Equal(t, StepGuestInfo, f.Step())
}

func TestGuestForm_StepOneRequiresNameAndEmail(t *testing.T) {
	f := filledForm(t)
	f.GuestName = "   "
	requireFieldError(t, f.Next(), "guestName")
	assert.Equal(t, StepGuestInfo, f.Step())

	f.GuestName = "Alice"
	f.GuestEmail = "alice@example"
	requireFieldError(t, f.Next(), "guestEmail")
}

func TestGuestForm_PartySizeBounds(t *testing.T) {
	for _, n := range []int{0, -1, 4} {
		f := filledForm(t)
		require.NoError(t, f.Next())
		f.NumberOfGuests = n
		requireFieldError(t, f.Next(), "numberOfGuests")
		assert.Equal(t, StepPartySize, f.Step(), "n=%d", n)
	}

	f := filledForm(t)
	require.NoError(t, f.Next())
	f.NumberOfGuests = 3
	assert.NoError(t, f.Next())
}

func TestGuestForm_IncompleteCeremonyTimeBlocksStepThree(t *testing.T) {
	f := filledForm(t)
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())

	f.CeremonyTime = TimeOfDay{Hour: "4"}
	requireFieldError(t, f.Next(), "ceremonyTime")
	assert.Equal(t, StepAttendance, f.Step())

	f.CeremonyTime = TimeOfDay{Hour: "4", Minute: "30", Period: "PM"}
	f.ReceptionTime = TimeOfDay{Hour: "8", Period: "PM"}
	requireFieldError(t, f.Next(), "receptionTime")

	f.ReceptionTime = TimeOfDay{}
	assert.NoError(t, f.Next())
}

func TestGuestForm_CeremonyTypeRequired(t *testing.T) {
	f := filledForm(t)
	f.CeremonyType = ""
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	requireFieldError(t, f.Next(), "ceremonyType")
}

func TestGuestForm_RequiredQuestion(t *testing.T) {
	questions := []models.CustomQuestion{
		{ID: 7, Question: "Song request?", Required: true},
		{ID: 8, Question: "Allergies?"},
	}
	f := NewGuestForm(sampleInvitation(), questions)
	f.CeremonyType = "catholic"
	f.CeremonyTime = TimeOfDay{Hour: "11", Minute: "00", Period: "AM"}

	_, err := f.Submit()
	requireFieldError(t, err, "responses")
	assert.Equal(t, StepDetails, f.Step())

	f.Answers[7] = " Sossegado "
	f.Answers[8] = ""
	req, err := f.Submit()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"7": "Sossegado"}, req.Responses)
}

func TestGuestForm_SubmitFormatsTimes(t *testing.T) {
	f := filledForm(t)
	f.ReceptionTime = TimeOfDay{Hour: "8", Minute: "5", Period: "pm"}
	f.Message = "  See you in Goa!  "

	req, err := f.Submit()
	require.NoError(t, err)

	assert.Equal(t, "a1b2c3d4e5f6g7h8", req.InvitationCode)
	assert.Equal(t, "04:30 PM", req.CeremonyTime)
	assert.Equal(t, "08:05 PM", req.ReceptionTime)
	assert.Equal(t, 2, req.NumberOfGuests)
	assert.Equal(t, "See you in Goa!", req.Message)
	assert.Nil(t, req.Responses)
}

func TestGuestForm_SubmitJumpsToFirstInvalidStep(t *testing.T) {
	f := filledForm(t)
	f.NumberOfGuests = 10

	_, err := f.Submit()
	requireFieldError(t, err, "numberOfGuests")
	assert.Equal(t, StepPartySize, f.Step())
}
