package model

import "time"

// ContactRequest is a message sent through the public contact form.
// Creation runs through the same denylist check as reservations.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – sender name.
//  Email     – sender email, always lowercase.
//  Phone     – optional phone number (nullable).
//  Message   – free-text message body.
//  CreatedAt – when the message was received.
type ContactRequest struct {
	ID        uint64    // requests.id
	Name      string    // requests.name
	Email     string    // requests.email
	Phone     *string   // requests.phone (nullable)
	Message   string    // requests.message
	CreatedAt time.Time // requests.created_at
}
