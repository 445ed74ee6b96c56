package booking

import (
	"context"

	domain "github.com/studioarcadia/prenota/internal/domain/booking"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute computes the free slots for each day of the rolling window by
// subtracting booked rows from the catalog. Canceled rows never claim a slot.
// Recomputed on every request: the table is tiny and reads are human-paced.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	days int,
) (*domain.Availability, error) {

	if days <= 0 {
		days = domain.WindowDays
	}

	rows, err := uc.repo.ListBookedSlots(ctx)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]map[string]bool, days)
	for _, row := range rows {
		if booked[row.Data] == nil {
			booked[row.Data] = make(map[string]bool)
		}
		booked[row.Data][row.Ora] = true
	}

	today := domain.Today()
	dates := make([]domain.DayAvailability, 0, days)

	for i := 0; i < days; i++ {
		day := today.AddDate(0, 0, i)
		key := day.Format(domain.DateLayout)

		available := make([]string, 0, len(domain.TimeSlots))
		for _, slot := range domain.TimeSlots {
			if !booked[key][slot] {
				available = append(available, slot)
			}
		}

		dates = append(dates, domain.DayAvailability{
			Date:      key,
			Label:     domain.FormatDateLabel(day),
			Available: available,
		})
	}

	return &domain.Availability{
		Dates:     dates,
		TimeSlots: domain.TimeSlots,
		MinDate:   dates[0].Date,
		MaxDate:   dates[len(dates)-1].Date,
	}, nil
}
