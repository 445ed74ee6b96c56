package booking

import (
	"context"
	"strings"
	"time"

	"github.com/studioarcadia/prenota/internal/audit"
	domain "github.com/studioarcadia/prenota/internal/domain/booking"
	"github.com/studioarcadia/prenota/internal/httperr"
	"github.com/studioarcadia/prenota/internal/models"
)

// ======================================================
// INPUT
// ======================================================

const (
	ActorPublic = "public"
	ActorAdmin  = "admin"
)

type CreateBookingInput struct {
	Nome     string
	Cognome  string
	Telefono string
	Email    string

	Data string // YYYY-MM-DD
	Ora  string // HH:mm, catalog member
	Note string

	// Privacy is the consent flag from the public form. Only checked when
	// Actor is public; the admin panel books on the client's behalf.
	Privacy bool
	Actor   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	nome := strings.TrimSpace(in.Nome)
	cognome := strings.TrimSpace(in.Cognome)
	telefono := strings.TrimSpace(in.Telefono)
	email := strings.TrimSpace(in.Email)
	data := strings.TrimSpace(in.Data)
	ora := strings.TrimSpace(in.Ora)

	if nome == "" || cognome == "" || telefono == "" || email == "" || data == "" || ora == "" {
		return nil, httperr.ErrBusiness("missing_fields")
	}

	if in.Actor == ActorPublic && !in.Privacy {
		return nil, httperr.ErrBusiness("privacy_required")
	}

	date, err := domain.ParseDate(data)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !domain.WithinWindow(date, domain.Today()) {
		return nil, httperr.ErrBusiness("date_out_of_range")
	}

	if !domain.IsValidSlot(ora) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	taken, err := uc.repo.SlotTaken(ctx, data, ora)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	token, err := newCancelToken()
	if err != nil {
		return nil, err
	}

	b := &models.Booking{
		Nome:      nome,
		Cognome:   cognome,
		Telefono:  telefono,
		Email:     email,
		Data:      data,
		Ora:       ora,
		Note:      strings.TrimSpace(in.Note),
		Status:    string(domain.InitialStatus()),
		Token:     token,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: &b.ID,
		Metadata: map[string]string{"data": data, "ora": ora},
	})

	return b, nil
}
