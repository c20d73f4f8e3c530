// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WithdrawalStatus represents the lifecycle state of a withdrawal request.
//
// Allowed transitions: pending -> approved | rejected; approved -> completed.
// The wallet is debited at approval time. Rejected and completed are terminal;
// a rejected request is never resubmitted in place, a new request is created.
type WithdrawalStatus string

const (
	// WithdrawalStatusPending awaits an admin decision.
	WithdrawalStatusPending WithdrawalStatus = "pending"
	// WithdrawalStatusApproved has been approved and the wallet debited.
	WithdrawalStatusApproved WithdrawalStatus = "approved"
	// WithdrawalStatusRejected was declined; no balance change.
	WithdrawalStatusRejected WithdrawalStatus = "rejected"
	// WithdrawalStatusCompleted marks the out-of-band payout as executed.
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
)

// String returns the string representation of the WithdrawalStatus.
func (s WithdrawalStatus) String() string {
	return string(s)
}

// IsValid checks if the WithdrawalStatus is a valid value.
func (s WithdrawalStatus) IsValid() bool {
	switch s {
	case WithdrawalStatusPending, WithdrawalStatusApproved, WithdrawalStatusRejected, WithdrawalStatusCompleted:
		return true
	default:
		return false
	}
}

// WithdrawalRequest is a driver's or restaurant's request to pay out part of
// their wallet balance to a bank account. Requests are immutable once created
// except for the status transition fields.
type WithdrawalRequest struct {
	ID            uuid.UUID        `json:"id"`
	OwnerType     OwnerType        `json:"owner_type"`
	OwnerID       uuid.UUID        `json:"owner_id"`
	Amount        float64          `json:"amount"`
	AccountNumber string           `json:"account_number"`
	BankName      string           `json:"bank_name"`
	AccountHolder string           `json:"account_holder"`
	RequestedBy   string           `json:"requested_by"`
	Status        WithdrawalStatus `json:"status"`
	ApprovedBy    string           `json:"approved_by,omitempty"`
	RejectReason  string           `json:"reject_reason,omitempty"`
	ApprovedAt    *time.Time       `json:"approved_at,omitempty"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CanApprove reports whether the request may transition to approved.
func (w *WithdrawalRequest) CanApprove() bool {
	return w.Status == WithdrawalStatusPending
}

// CanReject reports whether the request may transition to rejected.
func (w *WithdrawalRequest) CanReject() bool {
	return w.Status == WithdrawalStatusPending
}

// CanComplete reports whether the request may transition to completed.
func (w *WithdrawalRequest) CanComplete() bool {
	return w.Status == WithdrawalStatusApproved
}
