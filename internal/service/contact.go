package service

import (
	"context"
	"strings"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

// ContactStore is the slice of the request repository the contact
// intake needs.
type ContactStore interface {
	Create(ctx context.Context, req model.ContactRequest) (model.ContactRequest, error)
}

// ContactService handles the public contact-form intake.  It shares
// the reservation denylist: a banned email can neither book a table
// nor send a message.
type ContactService struct {
	store ContactStore
	guard *DenylistGuard
}

// NewContactService wires the intake to a store and the denylist guard.
func NewContactService(store ContactStore, guard *DenylistGuard) *ContactService {
	if store == nil || guard == nil {
		panic("nil dependency passed to NewContactService")
	}
	return &ContactService{store: store, guard: guard}
}

// ContactInput carries the public contact form fields.
type ContactInput struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   *string `json:"phone"`
	Message string  `json:"message"`
}

// Create validates the form, checks the denylist and persists the
// message.  *ValidationError for missing fields, ErrEmailBanned for a
// denylisted sender.
func (s *ContactService) Create(ctx context.Context, in ContactInput) (model.ContactRequest, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Message = strings.TrimSpace(in.Message)

	var missing []string
	if in.Name == "" {
		missing = append(missing, "name")
	}
	if in.Email == "" {
		missing = append(missing, "email")
	}
	if in.Message == "" {
		missing = append(missing, "message")
	}
	if len(missing) > 0 {
		return model.ContactRequest{}, requiredError(missing...)
	}

	blocked, err := s.guard.IsBlocked(ctx, in.Email)
	if err != nil {
		return model.ContactRequest{}, err
	}
	if blocked {
		return model.ContactRequest{}, ErrEmailBanned
	}

	return s.store.Create(ctx, model.ContactRequest{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	})
}
