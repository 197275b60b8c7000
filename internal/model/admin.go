package model

import "time"

// Admin roles accepted in the JWT "role" claim.  Superadmins can
// additionally manage other admin accounts.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Admin is a back-office account.  Passwords are stored as bcrypt
// hashes only; the hash never leaves the repository layer.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – display name.
//  Email        – unique login email, always lowercase.
//  PasswordHash – bcrypt hash of the password.
//  Role         – admin or superadmin.
//  CreatedAt    – account creation timestamp.
type Admin struct {
	ID           uint64    // admins.id
	Name         string    // admins.name
	Email        string    // admins.email
	PasswordHash string    // admins.password_hash
	Role         string    // admins.role
	CreatedAt    time.Time // admins.created_at
}
