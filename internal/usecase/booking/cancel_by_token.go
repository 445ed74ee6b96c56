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

type CancelByToken struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelByToken(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelByToken {
	return &CancelByToken{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels the booking the token points at. Canceling twice is fine:
// the second call reports alreadyCanceled and leaves canceled_at untouched.
func (uc *CancelByToken) Execute(
	ctx context.Context,
	token string,
) (b *models.Booking, alreadyCanceled bool, err error) {

	b, err = uc.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, httperr.ErrBusiness("token_not_found")
		}
		return nil, false, err
	}

	if !domain.Cancel(b, time.Now().UTC()) {
		return b, true, nil
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, false, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    ActorPublic,
		Action:   "booking_canceled",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, false, nil
}
