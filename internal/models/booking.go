package models

import "time"

// Booking keeps the original Italian column names so existing databases
// keep working. The separate data/ora columns are the source of truth; the
// combined display string is derived, never stored.
type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Nome     string `gorm:"size:100;not null" json:"nome"`
	Cognome  string `gorm:"size:100;not null" json:"cognome"`
	Telefono string `gorm:"size:30;not null" json:"telefono"`
	Email    string `gorm:"size:100;not null" json:"email"`

	Data string `gorm:"size:10;index" json:"data"`
	Ora  string `gorm:"size:5" json:"ora"`

	Note string `gorm:"size:500" json:"note"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`
	Token  string `gorm:"size:64;uniqueIndex" json:"-"`

	Attended bool `gorm:"default:false" json:"attended"`
	Paid     bool `gorm:"default:false" json:"paid"`

	CreatedAt  time.Time  `json:"created_at"`
	CanceledAt *time.Time `json:"canceled_at"`
	ThankedAt  *time.Time `json:"thanked_at"`
}

// DataOra is the combined slot string shown to humans and in emails.
func (b *Booking) DataOra() string {
	return b.Data + " " + b.Ora
}

// FullName joins first and last name for display.
func (b *Booking) FullName() string {
	return b.Nome + " " + b.Cognome
}
