package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/messaging"
)

func TestNewMessage(t *testing.T) {
	placedAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	event := messaging.OrderPlaced{
		OrderID:       "order-1",
		InvoiceID:     "invoice-1",
		InvoiceNumber: "INV-1000",
		CustomerEmail: "ada@example.com",
		Total:         decimal.RequireFromString("49.99"),
		Shipping:      decimal.RequireFromString("9.99"),
		PlacedAt:      placedAt,
	}

	msg, err := newMessage("order-1", event)
	require.NoError(t, err)

	assert.Equal(t, []byte("order-1"), msg.Key)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "event-type", msg.Headers[0].Key)
	assert.Equal(t, "OrderPlaced", string(msg.Headers[0].Value))

	var decoded messaging.OrderPlaced
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "INV-1000", decoded.InvoiceNumber)
	assert.True(t, decoded.Total.Equal(event.Total))
	assert.True(t, decoded.PlacedAt.Equal(placedAt))
}

func TestNewPublisher_BoundsRetries(t *testing.T) {
	p := NewPublisher([]string{"localhost:9092"}, "orders.placed").(*kafkaPublisher)
	t.Cleanup(func() { _ = p.Close() })

	assert.Equal(t, "orders.placed", p.writer.Topic)
	assert.Equal(t, maxAttempts, p.writer.MaxAttempts)
	assert.Equal(t, time.Second, p.writer.WriteTimeout)
}
