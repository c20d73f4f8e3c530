// Package entity contains the core business objects of the project.
package entity

// FeeQuote is the ephemeral result of a delivery-fee calculation. It is
// recomputed per request and never persisted on its own; the order-submission
// flow copies the billed fee onto the order.
//
// A quote is always produced, even when the calculation cannot complete:
// Success=false with FailureReason set means the caller must not charge a
// delivery fee and should prompt for a location instead.
type FeeQuote struct {
	Success            bool    `json:"success"`
	Fee                float64 `json:"fee"`                            // Billed fee; 0 when delivery is free.
	OriginalFee        float64 `json:"original_fee,omitempty"`         // Pre-discount fee, kept for struck-through display.
	DistanceKm         float64 `json:"distance_km"`
	EstimatedTime      string  `json:"estimated_time,omitempty"`
	IsFreeDelivery     bool    `json:"is_free_delivery"`
	FreeDeliveryReason string  `json:"free_delivery_reason,omitempty"`
	FailureReason      string  `json:"failure_reason,omitempty"`
}

// FailedQuote builds the degraded quote returned when coordinates are missing
// or invalid.
func FailedQuote(reason string) *FeeQuote {
	return &FeeQuote{
		Success:       false,
		FailureReason: reason,
	}
}
