package model

import "time"

// Reservation statuses as stored in the reservations.status column.
// A reservation always starts out pending; the admin moves it to one
// of the other values from the back office.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusDeclined  = "declined"
	StatusCancelled = "cancelled"
)

// Reservation records a table booking request for the restaurant.
// The calendar date and the wall-clock time are stored in separate
// columns so that time-of-day ordering stays a plain string compare.
//
// Fields:
//  ID             – primary key identifier.
//  Name           – customer name as entered on the form.
//  Email          – customer email, always lowercase.
//  Date           – reservation date in YYYY-MM-DD form (DATE column).
//  Time           – reservation time in HH:MM form (TIME column).
//  Adults         – number of adults, at least 1.
//  Children       – number of children, may be zero.
//  SpecialRemarks – free text: birthday, allergy, terrace, etc.
//  Status         – one of pending, confirmed, declined, cancelled.
//  CreatedAt      – creation timestamp, immutable.
type Reservation struct {
	ID             uint64    // reservations.id
	Name           string    // reservations.name
	Email          string    // reservations.email
	Date           string    // reservations.reservation_date
	Time           string    // reservations.reservation_time
	Adults         int       // reservations.adults
	Children       int       // reservations.children
	SpecialRemarks string    // reservations.special_remarks
	Status         string    // reservations.status
	CreatedAt      time.Time // reservations.created_at
}
