package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to PaymentStatus
		ok       bool
	}{
		{PaymentPending, PaymentApproved, true},
		{PaymentPending, PaymentCancelled, true},
		{PaymentPending, PaymentFailed, true},
		{PaymentPending, PaymentCompleted, false},
		{PaymentApproved, PaymentCompleted, true},
		{PaymentApproved, PaymentFailed, true},
		{PaymentApproved, PaymentPending, false},
		{PaymentCompleted, PaymentApproved, false},
		{PaymentCompleted, PaymentCompleted, false},
		{PaymentCancelled, PaymentApproved, false},
		{PaymentFailed, PaymentCompleted, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestJSONMapRoundTrip(t *testing.T) {
	m := JSONMap{"service": "ai_tools", "amount": 10.5}

	value, err := m.Value()
	require.NoError(t, err)

	var decoded JSONMap
	require.NoError(t, decoded.Scan(value))
	assert.Equal(t, "ai_tools", decoded["service"])
	assert.Equal(t, 10.5, decoded["amount"])
}

func TestJSONMapNil(t *testing.T) {
	var m JSONMap

	value, err := m.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", value)

	var decoded JSONMap
	require.NoError(t, decoded.Scan(nil))
	assert.NotNil(t, decoded)
}
