package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/studioarcadia/prenota/internal/audit"
	domain "github.com/studioarcadia/prenota/internal/domain/booking"
	"github.com/studioarcadia/prenota/internal/httperr"
	"github.com/studioarcadia/prenota/internal/models"
)

// fakeRepo is an in-memory Repository with the same conflict semantics as
// the sqlite partial unique index.
type fakeRepo struct {
	bookings map[uint]models.Booking
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[uint]models.Booking)}
}

func (f *fakeRepo) CreateBooking(_ context.Context, b *models.Booking) error {
	for _, existing := range f.bookings {
		if existing.Status == string(domain.StatusBooked) &&
			existing.Data == b.Data && existing.Ora == b.Ora {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	f.nextID++
	b.ID = f.nextID
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeRepo) SlotTaken(_ context.Context, data, ora string) (bool, error) {
	for _, b := range f.bookings {
		if b.Status == string(domain.StatusBooked) && b.Data == data && b.Ora == ora {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) GetByToken(_ context.Context, token string) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.Token == token {
			copy := b
			return &copy, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copy := b
	return &copy, nil
}

func (f *fakeRepo) UpdateBooking(_ context.Context, b *models.Booking) error {
	if _, ok := f.bookings[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	f.bookings[b.ID] = *b
	return nil
}

func (f *fakeRepo) DeleteBooking(_ context.Context, id uint) error {
	delete(f.bookings, id)
	return nil
}

func (f *fakeRepo) ListBookings(_ context.Context) ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) ListBookedSlots(_ context.Context) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Status == string(domain.StatusBooked) && b.Data != "" && b.Ora != "" {
			out = append(out, models.Booking{Data: b.Data, Ora: b.Ora})
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// fakeSender counts thank-you sends and can simulate a relay outage.
type fakeSender struct {
	sent int
	fail bool
}

func (f *fakeSender) SendThankYou(_ context.Context, _ *models.Booking) (bool, error) {
	if f.fail {
		return false, errors.New("smtp unreachable")
	}
	f.sent++
	return true, nil
}

type nopAuditWriter struct{}

func (nopAuditWriter) Write(audit.Event) error { return nil }

func newTestDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(nopAuditWriter{}, zap.NewNop())
}
