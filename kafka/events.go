package kafka

import "time"

// ProductDeletedEvent announces that a product row was removed, either by a
// safe delete or by a cascading force delete.
type ProductDeletedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	OwnerID   uint      `json:"owner_id"`
	Mode      string    `json:"mode"` // "safe" or "force"
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductDeleted = "product.deleted"
)

// Delete modes. Soft deletes deactivate the row in place and publish no
// event; the constant exists for metric labels.
const (
	DeleteModeSafe  = "safe"
	DeleteModeSoft  = "soft"
	DeleteModeForce = "force"
)

// Kafka topics
const (
	TopicProductDeleted = "product-deleted"
)
