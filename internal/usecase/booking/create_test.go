package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/studioarcadia/prenota/internal/domain/booking"
	"github.com/studioarcadia/prenota/internal/httperr"
)

func validInput() CreateBookingInput {
	return CreateBookingInput{
		Nome:     "Mario",
		Cognome:  "Rossi",
		Telefono: "3331234567",
		Email:    "mario.rossi@example.com",
		Data:     domain.Today().Format(domain.DateLayout),
		Ora:      "09:00",
		Privacy:  true,
		Actor:    ActorPublic,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newTestDispatcher())

	b, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, string(domain.StatusBooked), b.Status)
	assert.NotEmpty(t, b.Token)
	assert.False(t, b.CreatedAt.IsZero())
	assert.Nil(t, b.CanceledAt)
}

func TestCreateBooking_TrimsFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newTestDispatcher())

	in := validInput()
	in.Nome = "  Mario "
	in.Note = " porta i documenti "

	b, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Mario", b.Nome)
	assert.Equal(t, "porta i documenti", b.Note)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newTestDispatcher())

	in := validInput()
	in.Telefono = "   "

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "missing_fields"))
}

func TestCreateBooking_PublicRequiresPrivacyConsent(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newTestDispatcher())

	in := validInput()
	in.Privacy = false

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "privacy_required"))

	// The admin panel books on the client's behalf, no consent flag there.
	in.Actor = ActorAdmin
	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateBooking_InvalidDate(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newTestDispatcher())

	in := validInput()
	in.Data = "10-03-2025"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}

func TestCreateBooking_DateWindowBoundaries(t *testing.T) {
	today := domain.Today()

	cases := []struct {
		offset int
		code   string
	}{
		{0, ""},
		{domain.WindowDays - 1, ""},
		{-1, "date_out_of_range"},
		{domain.WindowDays, "date_out_of_range"},
	}

	for _, tc := range cases {
		repo := newFakeRepo()
		uc := NewCreateBooking(repo, newTestDispatcher())

		in := validInput()
		in.Data = today.AddDate(0, 0, tc.offset).Format(domain.DateLayout)

		_, err := uc.Execute(context.Background(), in)
		if tc.code == "" {
			assert.NoError(t, err, "offset %d", tc.offset)
		} else {
			assert.True(t, httperr.IsBusiness(err, tc.code), "offset %d", tc.offset)
		}
	}
}

func TestCreateBooking_InvalidSlot(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newTestDispatcher())

	in := validInput()
	in.Ora = "12:30"

	_, err := uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, "invalid_slot"))
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCreateBooking(repo, newTestDispatcher())

	first, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// Same slot again conflicts.
	_, err = uc.Execute(context.Background(), validInput())
	assert.True(t, httperr.IsBusiness(err, "slot_taken"))

	// Canceling the first booking frees the slot.
	cancel := NewCancelByID(repo, newTestDispatcher())
	_, err = cancel.Execute(context.Background(), first.ID)
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), validInput())
	assert.NoError(t, err)
}
