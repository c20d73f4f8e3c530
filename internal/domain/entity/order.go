// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus represents the lifecycle state of an order as seen by the
// settlement core. Upstream order management owns the full state machine;
// settlement only cares whether an order is completed.
type OrderStatus string

const (
	// OrderStatusPending is an order that has not been delivered yet.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusCompleted is a delivered order eligible for settlement.
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled is an order that will never settle.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// Order carries the financial fields of a marketplace order. Items, customer
// details and courier tracking live outside this service.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	RestaurantID uuid.UUID   `json:"restaurant_id"`
	DriverID     uuid.UUID   `json:"driver_id"`
	Subtotal     float64     `json:"subtotal"`     // Sum of item prices, before delivery fee.
	DeliveryFee  float64     `json:"delivery_fee"` // Billed delivery fee from the quote attached at checkout.
	Status       OrderStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// Settlement records how a completed order's monetary value was distributed
// across the restaurant, the driver and the platform. Exactly one settlement
// exists per order; the unique order reference is the idempotency key.
type Settlement struct {
	ID                   uuid.UUID `json:"id"`
	OrderID              uuid.UUID `json:"order_id"`
	Subtotal             float64   `json:"subtotal"`
	DeliveryFee          float64   `json:"delivery_fee"`
	RestaurantEarnings   float64   `json:"restaurant_earnings"`
	DriverEarnings       float64   `json:"driver_earnings"`
	CompanyCommission    float64   `json:"company_commission"`     // Platform share of the subtotal.
	CompanyDeliveryShare float64   `json:"company_delivery_share"` // Platform share of the delivery fee.
	CreatedAt            time.Time `json:"created_at"`
}

// CompanyTotal is the platform's combined take from the order.
func (s *Settlement) CompanyTotal() float64 {
	return s.CompanyCommission + s.CompanyDeliveryShare
}
