package model

import "time"

// BannedCustomer is an email address that may no longer create
// reservations or contact requests.  The email column carries a
// unique constraint so a customer can be banned at most once.
//
// Fields:
//  ID        – primary key identifier.
//  Email     – banned email, always lowercase, unique.
//  Reason    – optional note for the staff (nullable).
//  CreatedAt – when the ban was created.
type BannedCustomer struct {
	ID        uint64    // banned_customers.id
	Email     string    // banned_customers.email
	Reason    *string   // banned_customers.reason (nullable)
	CreatedAt time.Time // banned_customers.created_at
}
