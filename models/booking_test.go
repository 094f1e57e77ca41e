package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBrunchSlot(t *testing.T) {
	first := BrunchSlotFirst
	second := BrunchSlotSecond
	evening := "20:00"

	assert.True(t, IsBrunchSlot(&first))
	assert.True(t, IsBrunchSlot(&second))
	assert.False(t, IsBrunchSlot(&evening))
	assert.False(t, IsBrunchSlot(nil))
}

func TestBookingBeforeCreateGeneratesToken(t *testing.T) {
	b := &Booking{Name: "Ali Veli"}

	require.NoError(t, b.BeforeCreate(nil))
	_, err := uuid.Parse(b.CancellationToken)
	assert.NoError(t, err, "token geçerli bir UUID olmalı")

	// Var olan token üzerine yazılmaz.
	token := b.CancellationToken
	require.NoError(t, b.BeforeCreate(nil))
	assert.Equal(t, token, b.CancellationToken)
}
