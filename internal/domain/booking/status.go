package booking

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusBooked   Status = "booked"
	StatusCanceled Status = "canceled"
)

// InitialStatus is the status every new booking starts in.
func InitialStatus() Status {
	return StatusBooked
}

// IsCanceled reports whether a stored status string means canceled.
func IsCanceled(current string) bool {
	return Status(current) == StatusCanceled
}
