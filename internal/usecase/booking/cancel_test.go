package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/studioarcadia/prenota/internal/domain/booking"
	"github.com/studioarcadia/prenota/internal/httperr"
)

func TestCancelByToken_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, newTestDispatcher())
	cancel := NewCancelByToken(repo, newTestDispatcher())

	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	first, already, err := cancel.Execute(context.Background(), b.Token)
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, string(domain.StatusCanceled), first.Status)
	require.NotNil(t, first.CanceledAt)

	second, already, err := cancel.Execute(context.Background(), b.Token)
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, *first.CanceledAt, *second.CanceledAt)
}

func TestCancelByToken_NotFound(t *testing.T) {
	repo := newFakeRepo()
	cancel := NewCancelByToken(repo, newTestDispatcher())

	_, _, err := cancel.Execute(context.Background(), "no-such-token")
	assert.True(t, httperr.IsBusiness(err, "token_not_found"))
}

func TestCancelByID(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, newTestDispatcher())
	cancel := NewCancelByID(repo, newTestDispatcher())

	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	canceled, err := cancel.Execute(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), canceled.Status)

	_, err = cancel.Execute(context.Background(), 9999)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}

func TestDeleteBooking(t *testing.T) {
	repo := newFakeRepo()
	create := NewCreateBooking(repo, newTestDispatcher())
	del := NewDeleteBooking(repo, newTestDispatcher())

	b, err := create.Execute(context.Background(), validInput())
	require.NoError(t, err)

	require.NoError(t, del.Execute(context.Background(), b.ID))

	err = del.Execute(context.Background(), b.ID)
	assert.True(t, httperr.IsBusiness(err, "booking_not_found"))
}
