package booking

import (
	"context"

	"github.com/studioarcadia/prenota/internal/models"
)

type Repository interface {
	// -------- Booking (create / conflict) --------
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	SlotTaken(
		ctx context.Context,
		data string,
		ora string,
	) (bool, error)

	// -------- Booking (lookup) --------
	GetByToken(
		ctx context.Context,
		token string,
	) (*models.Booking, error)

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.Booking, error)

	// -------- Booking (state change) --------
	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	DeleteBooking(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing / availability --------
	ListBookings(
		ctx context.Context,
	) ([]models.Booking, error)

	ListBookedSlots(
		ctx context.Context,
	) ([]models.Booking, error)
}
