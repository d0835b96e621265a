// README: Booking quote domain model, reason codes, and slot constants.
package booking

import (
	"time"

	"evconnect/internal/types"
)

// Reason identifies which validation check rejected a quote request.
type Reason string

const (
	ReasonUnknownStation     Reason = "UnknownStation"
	ReasonStationUnavailable Reason = "StationUnavailable"
	ReasonInvalidDate        Reason = "InvalidDate"
	ReasonInvalidDuration    Reason = "InvalidDuration"
)

// AllowedDurations are the bookable charging durations in minutes.
var AllowedDurations = []int{30, 60, 90, 120, 180, 240}

// TimeSlots are the hourly start slots offered by the booking form.
var TimeSlots = []string{
	"06:00 AM", "07:00 AM", "08:00 AM", "09:00 AM", "10:00 AM", "11:00 AM",
	"12:00 PM", "01:00 PM", "02:00 PM", "03:00 PM", "04:00 PM", "05:00 PM",
	"06:00 PM", "07:00 PM", "08:00 PM", "09:00 PM", "10:00 PM",
}

// QuoteRequest carries the prospective booking parameters. All fields are
// explicit; there is no ambient request state.
type QuoteRequest struct {
	StationID       types.ID
	Date            time.Time
	TimeSlot        string
	DurationMinutes int
}

// QuoteResult is a computed price and validity verdict, not a reservation.
// Validation failures are data, never errors: quoting is a query.
type QuoteResult struct {
	Valid      bool
	Reason     Reason
	TotalPrice types.Money
}

func durationAllowed(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}
