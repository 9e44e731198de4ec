package models

import "time"

// EventPaymentStatus tracks whether an event's currency order has been paid for
type EventPaymentStatus string

const (
	EventPaymentPending    EventPaymentStatus = "pending"
	EventPaymentSuccessful EventPaymentStatus = "successful"
	EventPaymentFailed     EventPaymentStatus = "failed"
	EventPaymentRefunded   EventPaymentStatus = "refunded"
)

// EventDeliveryStatus tracks the fulfilment of a paid currency order
type EventDeliveryStatus string

const (
	EventDeliveryPendingPayment EventDeliveryStatus = "pending payment"
	EventDeliveryPending        EventDeliveryStatus = "pending"
	EventDeliveryDelivered      EventDeliveryStatus = "delivered"
	EventDeliveryCancelled      EventDeliveryStatus = "cancelled"
)

// Event represents a party event with its payment and delivery ledger fields
type Event struct {
	EventID            string              `json:"event_id" db:"event_id"`
	EventName          string              `json:"event_name" db:"event_name"`
	EventAuthor        string              `json:"event_author" db:"event_author"` // owner email
	EventDescription   string              `json:"event_description" db:"event_description"`
	StartDate          time.Time           `json:"start_date" db:"start_date"`
	EndDate            time.Time           `json:"end_date" db:"end_date"`
	DeliveryAddress    string              `json:"delivery_address" db:"delivery_address"`
	TransactionID      *string             `json:"transaction_id" db:"transaction_id"` // last payment reference
	HasReservedAccount bool                `json:"has_reserved_account" db:"has_reserved_account"`
	PaymentStatus      EventPaymentStatus  `json:"payment_status" db:"payment_status"`
	DeliveryStatus     EventDeliveryStatus `json:"delivery_status" db:"delivery_status"`
	CreatedAt          time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at" db:"updated_at"`
}
