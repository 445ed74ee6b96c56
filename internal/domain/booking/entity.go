package booking

import (
	"time"

	"github.com/studioarcadia/prenota/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves a booking to canceled. It reports whether anything changed:
// canceling an already canceled booking is a no-op, not an error.
func Cancel(b *models.Booking, now time.Time) bool {
	if IsCanceled(b.Status) {
		return false
	}

	b.Status = string(StatusCanceled)
	b.CanceledAt = &now
	return true
}

// MarkThanked records that the thank-you email went out. thanked_at only ever
// transitions from unset to set.
func MarkThanked(b *models.Booking, now time.Time) bool {
	if b.ThankedAt != nil {
		return false
	}

	b.ThankedAt = &now
	return true
}
