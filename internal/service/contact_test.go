package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

type fakeContactStore struct {
	created []model.ContactRequest
}

func (s *fakeContactStore) Create(_ context.Context, req model.ContactRequest) (model.ContactRequest, error) {
	req.ID = uint64(len(s.created) + 1)
	req.CreatedAt = time.Now()
	s.created = append(s.created, req)
	return req, nil
}

func TestContactCreate(t *testing.T) {
	store := &fakeContactStore{}
	svc := NewContactService(store, NewDenylistGuard(&fakeBans{banned: map[string]bool{}}))

	req, err := svc.Create(context.Background(), ContactInput{
		Name:    " Marie ",
		Email:   "Marie@Example.com",
		Message: "Une table en terrasse ?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Marie", req.Name)
	assert.Equal(t, "marie@example.com", req.Email)
	assert.Len(t, store.created, 1)
}

func TestContactCreateMissingFields(t *testing.T) {
	store := &fakeContactStore{}
	svc := NewContactService(store, NewDenylistGuard(&fakeBans{banned: map[string]bool{}}))

	_, err := svc.Create(context.Background(), ContactInput{Email: "a@b.fr"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name", "message"}, verr.Fields)
	assert.Empty(t, store.created)
}

func TestContactCreateBannedSender(t *testing.T) {
	store := &fakeContactStore{}
	svc := NewContactService(store, NewDenylistGuard(&fakeBans{banned: map[string]bool{"spam@example.com": true}}))

	_, err := svc.Create(context.Background(), ContactInput{
		Name:    "Spam",
		Email:   "SPAM@example.com",
		Message: "hello",
	})
	assert.ErrorIs(t, err, ErrEmailBanned)
	assert.Empty(t, store.created)
}
