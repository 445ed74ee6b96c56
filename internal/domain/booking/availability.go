package booking

// DayAvailability is one calendar day of the booking window with the slots
// still free on that day.
type DayAvailability struct {
	Date      string   `json:"date"`
	Label     string   `json:"label"`
	Available []string `json:"available"`
}

type Availability struct {
	Dates     []DayAvailability `json:"dates"`
	TimeSlots []string          `json:"timeSlots"`
	MinDate   string            `json:"minDate"`
	MaxDate   string            `json:"maxDate"`
}
