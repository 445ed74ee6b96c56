package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/studioarcadia/prenota/internal/domain/booking"
	"github.com/studioarcadia/prenota/internal/httperr"
	"github.com/studioarcadia/prenota/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Create / conflict
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	err := r.db.WithContext(ctx).Create(b).Error
	if err == nil {
		return nil
	}

	// The partial unique index on (data, ora) for booked rows is the
	// authoritative conflict signal; the SlotTaken pre-check only exists
	// for a friendlier error path.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness("slot_taken")
	}

	return err
}

func (r *BookingGormRepository) SlotTaken(
	ctx context.Context,
	data string,
	ora string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where(
			"data = ? AND ora = ? AND status = ?",
			data, ora, string(domain.StatusBooked),
		).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}

// --------------------------------------------------
// Lookup
// --------------------------------------------------

func (r *BookingGormRepository) GetByToken(
	ctx context.Context,
	token string,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).
		Where("token = ?", token).
		First(&b).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

// --------------------------------------------------
// State change
// --------------------------------------------------

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.Booking{}, id).Error
}

// --------------------------------------------------
// Listing / availability
// --------------------------------------------------

// ListBookings returns the whole table in schedule order: date, then time,
// then creation. Legacy rows without date or time sort last.
func (r *BookingGormRepository) ListBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Order("CASE WHEN data IS NULL OR data = '' THEN 1 ELSE 0 END, data ASC").
		Order("CASE WHEN ora IS NULL OR ora = '' THEN 1 ELSE 0 END, ora ASC").
		Order("created_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookedSlots(
	ctx context.Context,
) ([]models.Booking, error) {

	var rows []models.Booking
	if err := r.db.WithContext(ctx).
		Select("data", "ora").
		Where(
			"status = ? AND data IS NOT NULL AND data != '' AND ora IS NOT NULL AND ora != ''",
			string(domain.StatusBooked),
		).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return rows, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
