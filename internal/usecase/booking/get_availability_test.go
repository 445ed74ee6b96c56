package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/studioarcadia/prenota/internal/domain/booking"
)

func TestGetAvailability_Window(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo)

	result, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)

	require.Len(t, result.Dates, domain.WindowDays)
	assert.Equal(t, domain.TimeSlots, result.TimeSlots)

	today := domain.Today()
	assert.Equal(t, today.Format(domain.DateLayout), result.MinDate)
	assert.Equal(t,
		today.AddDate(0, 0, domain.WindowDays-1).Format(domain.DateLayout),
		result.MaxDate,
	)

	// Empty table: every slot of every day is free.
	for _, day := range result.Dates {
		assert.Equal(t, domain.TimeSlots, day.Available)
		assert.NotEmpty(t, day.Label)
	}
}

func TestGetAvailability_BookedSlotsRemoved(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, newTestDispatcher())
	uc := NewGetAvailability(repo)

	in := validInput()
	in.Ora = "09:00"
	_, err := create.Execute(context.Background(), in)
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)

	day := result.Dates[0]
	assert.NotContains(t, day.Available, "09:00")
	assert.Contains(t, day.Available, "09:30")
	assert.Len(t, day.Available, len(domain.TimeSlots)-1)

	// Other days are untouched.
	assert.Equal(t, domain.TimeSlots, result.Dates[1].Available)
}

func TestGetAvailability_CanceledSlotsStayFree(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, newTestDispatcher())
	cancel := NewCancelByID(repo, newTestDispatcher())
	uc := NewGetAvailability(repo)

	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	_, err = cancel.Execute(context.Background(), b.ID)
	require.NoError(t, err)

	result, err := uc.Execute(context.Background(), 0)
	require.NoError(t, err)

	assert.Contains(t, result.Dates[0].Available, "09:00")
}
