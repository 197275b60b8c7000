// Package queue defines message payloads exchanged over the message broker.
package queue

// StatusQueueName is the broker queue reservation lifecycle events go
// through. The queue is durable and declared by both ends.
const StatusQueueName = "reservation.status"

// ReservationStatusEvent is published whenever a reservation changes
// status, including the initial transition into "pending" at creation.
// It carries enough for downstream consumers to log or notify without
// querying the primary database.
type ReservationStatusEvent struct {
	ReservationID uint64 `json:"reservation_id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	OldStatus     string `json:"old_status"`
	NewStatus     string `json:"new_status"`
	ChangedAt     string `json:"changed_at"`
}
