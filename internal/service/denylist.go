package service

import (
	"context"
	"strings"
)

// BanChecker is the read-only view of the denylist store that the
// guard needs.  *repository.BannedCustomerRepo satisfies it; tests
// substitute an in-memory set.
type BanChecker interface {
	IsBanned(ctx context.Context, email string) (bool, error)
}

// DenylistGuard answers whether an email may create reservations or
// contact requests.  It has no side effects and is consulted as a
// precondition check, never wired into persistence.
type DenylistGuard struct {
	bans BanChecker
}

// NewDenylistGuard returns a guard backed by the given checker.
func NewDenylistGuard(bans BanChecker) *DenylistGuard {
	if bans == nil {
		panic("nil ban checker passed to NewDenylistGuard")
	}
	return &DenylistGuard{bans: bans}
}

// IsBlocked normalizes the email to lowercase and looks it up in the
// denylist.
func (g *DenylistGuard) IsBlocked(ctx context.Context, email string) (bool, error) {
	return g.bans.IsBanned(ctx, strings.ToLower(strings.TrimSpace(email)))
}
