package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studioarcadia/prenota/internal/models"
)

func TestCancelIsOneWayAndIdempotent(t *testing.T) {
	b := &models.Booking{Status: string(StatusBooked)}

	first := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	require.True(t, Cancel(b, first))
	assert.Equal(t, string(StatusCanceled), b.Status)
	require.NotNil(t, b.CanceledAt)
	assert.Equal(t, first, *b.CanceledAt)

	// Second cancel changes nothing, canceled_at keeps the first timestamp.
	assert.False(t, Cancel(b, first.Add(time.Hour)))
	assert.Equal(t, first, *b.CanceledAt)
}

func TestMarkThankedOnlyOnce(t *testing.T) {
	b := &models.Booking{}

	now := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	require.True(t, MarkThanked(b, now))
	require.NotNil(t, b.ThankedAt)

	assert.False(t, MarkThanked(b, now.Add(time.Hour)))
	assert.Equal(t, now, *b.ThankedAt)
}
