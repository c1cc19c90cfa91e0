package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type MessageType string

const (
	MessageTypeOrderCreated        MessageType = "ORDER_CREATED"
	MessageTypeWithdrawalProcessed MessageType = "WITHDRAWAL_PROCESSED"
)

// Message is the envelope published to the notification topic.
type Message struct {
	ID        uuid.UUID   `json:"id"`
	Type      MessageType `json:"type"`
	Payload   interface{} `json:"payload"`
	CreatedAt time.Time   `json:"created_at"`
}

// OrderCreatedPayload announces a successful order issuance.
type OrderCreatedPayload struct {
	OrderID     uuid.UUID `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	EventID     uuid.UUID `json:"event_id"`
	Quantity    int       `json:"quantity"`
	TotalAmount float64   `json:"total_amount"`
}

// WithdrawalProcessedPayload announces a withdrawal reaching a terminal
// status.
type WithdrawalProcessedPayload struct {
	WithdrawalID uuid.UUID `json:"withdrawal_id"`
	VendorID     uuid.UUID `json:"vendor_id"`
	Status       string    `json:"status"`
	Amount       float64   `json:"amount"`
	ProcessedBy  uuid.UUID `json:"processed_by"`
}

func newMessage(msgType MessageType, payload interface{}) *Message {
	return &Message{
		ID:        uuid.New(),
		Type:      msgType,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
}

// ToJSON serializes the message for the wire.
func (m *Message) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// PartitionKey routes related messages to the same partition.
func (m *Message) PartitionKey() string {
	switch p := m.Payload.(type) {
	case OrderCreatedPayload:
		return p.EventID.String()
	case WithdrawalProcessedPayload:
		return p.VendorID.String()
	default:
		return m.ID.String()
	}
}
