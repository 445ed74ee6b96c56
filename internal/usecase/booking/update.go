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

// ThankYouSender is the slice of the mailer the update path needs.
type ThankYouSender interface {
	SendThankYou(ctx context.Context, b *models.Booking) (bool, error)
}

type UpdateBookingInput struct {
	ID       uint
	Attended *bool
	Paid     *bool
}

type UpdateBooking struct {
	repo   domain.Repository
	mailer ThankYouSender
	audit  *audit.Dispatcher
}

func NewUpdateBooking(
	repo domain.Repository,
	mailer ThankYouSender,
	audit *audit.Dispatcher,
) *UpdateBooking {
	return &UpdateBooking{
		repo:   repo,
		mailer: mailer,
		audit:  audit,
	}
}

// Execute applies the admin's partial update. Marking a booking attended
// triggers the one-shot thank-you email: thanked_at is only set when the send
// succeeds, so a failed send can be retried by a later update.
func (uc *UpdateBooking) Execute(
	ctx context.Context,
	in UpdateBookingInput,
) (b *models.Booking, thankYouSent bool, err error) {

	b, err = uc.repo.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, httperr.ErrBusiness("booking_not_found")
		}
		return nil, false, err
	}

	if in.Attended != nil {
		b.Attended = *in.Attended
	}
	if in.Paid != nil {
		b.Paid = *in.Paid
	}

	if in.Attended != nil && *in.Attended && b.ThankedAt == nil {
		sent, sendErr := uc.mailer.SendThankYou(ctx, b)
		if sent {
			domain.MarkThanked(b, time.Now().UTC())
			thankYouSent = true
		} else if sendErr != nil {
			// Transport failure is non-fatal; thanked_at stays unset.
			uc.audit.Dispatch(audit.Event{
				Actor:    ActorAdmin,
				Action:   "thank_you_failed",
				Entity:   "booking",
				EntityID: &b.ID,
			})
		}
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, false, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    ActorAdmin,
		Action:   "booking_updated",
		Entity:   "booking",
		EntityID: &b.ID,
	})

	return b, thankYouSent, nil
}
