package booking

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/studioarcadia/prenota/internal/audit"
	domain "github.com/studioarcadia/prenota/internal/domain/booking"
	"github.com/studioarcadia/prenota/internal/httperr"
	"github.com/studioarcadia/prenota/internal/models"
)

type CancelByID struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByID(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelByID {
	return &CancelByID{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelByID) Execute(
	ctx context.Context,
	id uint,
) (*models.Booking, error) {

	b, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("booking_not_found")
		}
		return nil, err
	}

	if !domain.Cancel(b, time.Now().UTC()) {
		return b, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    ActorAdmin,
		Action:   "booking_canceled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, nil
}
