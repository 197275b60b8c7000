package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilnabucco/restaurant-reservation/internal/model"
)

func TestStatusMachineValidStatus(t *testing.T) {
	var m StatusMachine
	for _, s := range []string{model.StatusPending, model.StatusConfirmed, model.StatusDeclined, model.StatusCancelled} {
		assert.True(t, m.ValidStatus(s), s)
	}
	for _, s := range []string{"", "PENDING", "archived", "confirmed "} {
		assert.False(t, m.ValidStatus(s), s)
	}
}

func TestStatusMachineAllTransitionsAllowed(t *testing.T) {
	var m StatusMachine
	all := []string{model.StatusPending, model.StatusConfirmed, model.StatusDeclined, model.StatusCancelled}
	for _, from := range all {
		for _, to := range all {
			next, err := m.Transition(from, to)
			require.NoError(t, err)
			assert.Equal(t, to, next)
		}
	}
}

func TestStatusMachineRejectsUnknownStatus(t *testing.T) {
	var m StatusMachine
	next, err := m.Transition(model.StatusConfirmed, "archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Equal(t, model.StatusConfirmed, next)
}
