package mykafka

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEventEnvelope(t *testing.T) {
	e := Event("order_created", map[string]any{
		"order_id": uint(7),
		"user_id":  "u1",
	})

	require.Equal(t, "order_created", e["type"])
	require.Equal(t, uint(7), e["order_id"])
	require.Equal(t, "u1", e["user_id"])
	require.NotEmpty(t, e["event_id"])
	require.NotEmpty(t, e["timestamp"])
}

func TestEventEnvelopeIDsUnique(t *testing.T) {
	a := Event("cart_cleared", nil)
	b := Event("cart_cleared", nil)
	require.NotEqual(t, a["event_id"], b["event_id"])
}
