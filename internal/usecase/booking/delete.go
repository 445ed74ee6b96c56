package booking

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/studioarcadia/prenota/internal/audit"
	domain "github.com/studioarcadia/prenota/internal/domain/booking"
	"github.com/studioarcadia/prenota/internal/httperr"
)

type DeleteBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteBooking {
	return &DeleteBooking{
		repo:  repo,
		audit: audit,
	}
}

// Execute hard-deletes a booking; cancellation is the soft path.
func (uc *DeleteBooking) Execute(ctx context.Context, id uint) error {
	if _, err := uc.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httperr.ErrBusiness("booking_not_found")
		}
		return err
	}

	if err := uc.repo.DeleteBooking(ctx, id); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    ActorAdmin,
		Action:   "booking_deleted",
		Entity:   "booking",
		EntityID: &id,
	})

	return nil
}
