package models

import (
	"time"

	dErrors "lifeline/pkg/domain-errors"
)

// DonationID identifies a donation event ("DON-<n>").
type DonationID string

// Donation is an immutable event linking a donor to a request fulfillment.
// Append-only: never mutated or deleted.
type Donation struct {
	ID         DonationID `json:"id"`
	DonorID    UserID     `json:"donorId"`
	RequestID  RequestID  `json:"requestId"`
	OccurredAt time.Time  `json:"occurredAt"`
}

// NewDonation constructs a donation event.
func NewDonation(id DonationID, donorID UserID, requestID RequestID, occurredAt time.Time) (*Donation, error) {
	if id == "" || donorID == "" || requestID == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "donation requires id, donor and request")
	}
	return &Donation{
		ID:         id,
		DonorID:    donorID,
		RequestID:  requestID,
		OccurredAt: occurredAt,
	}, nil
}
