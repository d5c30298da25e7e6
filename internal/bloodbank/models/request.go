package models

import (
	"strings"
	"time"

	dErrors "lifeline/pkg/domain-errors"
)

// RequestID identifies a blood request ("REQ-<n>").
type RequestID string

// Seriousness grades how urgent a blood request is.
type Seriousness string

const (
	SeriousnessLow      Seriousness = "LOW"
	SeriousnessModerate Seriousness = "MODERATE"
	SeriousnessHigh     Seriousness = "HIGH"
)

// ParseSeriousness resolves a seriousness string case-insensitively.
func ParseSeriousness(s string) (Seriousness, error) {
	switch Seriousness(strings.ToUpper(strings.TrimSpace(s))) {
	case SeriousnessLow:
		return SeriousnessLow, nil
	case SeriousnessModerate:
		return SeriousnessModerate, nil
	case SeriousnessHigh:
		return SeriousnessHigh, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown seriousness level")
	}
}

// RequestStatus is the fulfillment state of a blood request.
type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "OPEN"
	RequestStatusFulfilled RequestStatus = "FULFILLED"
)

// CanTransitionTo reports whether the status may move to target.
// The only legal transition is OPEN -> FULFILLED; fulfillment never reverts.
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	return s == RequestStatusOpen && target == RequestStatusFulfilled
}

// Limits on units requested at creation.
const (
	MinUnitsNeeded = 1
	MaxUnitsNeeded = 10
)

// BloodRequest is the aggregate root for a standing need for blood units.
//
// Invariants:
//   - RequesterID references a RECEIVER (enforced by the façade before the
//     store is touched)
//   - UnitsNeeded starts in [1, 10] and is monotonically non-increasing,
//     never below 0
//   - Status is FULFILLED iff UnitsNeeded is 0; once FULFILLED it never
//     reverts to OPEN
//   - Mutated only by the donation-recording operation; never deleted
type BloodRequest struct {
	ID           RequestID     `json:"id"`
	RequesterID  UserID        `json:"requesterId"`
	BloodType    BloodType     `json:"bloodType"`
	HospitalArea string        `json:"hospitalArea"`
	UnitsNeeded  int           `json:"unitsNeeded"`
	Seriousness  Seriousness   `json:"seriousness"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// NewBloodRequest constructs an OPEN request, validating creation invariants.
func NewBloodRequest(id RequestID, requesterID UserID, bloodType BloodType, hospitalArea string, unitsNeeded int, seriousness Seriousness, now time.Time) (*BloodRequest, error) {
	if id == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "request id cannot be empty")
	}
	if requesterID == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "requester id cannot be empty")
	}
	if bloodType == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "request blood type cannot be empty")
	}
	if strings.TrimSpace(hospitalArea) == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "hospital area cannot be empty")
	}
	if unitsNeeded < MinUnitsNeeded || unitsNeeded > MaxUnitsNeeded {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "units needed must be between 1 and 10")
	}
	return &BloodRequest{
		ID:           id,
		RequesterID:  requesterID,
		BloodType:    bloodType,
		HospitalArea: hospitalArea,
		UnitsNeeded:  unitsNeeded,
		Seriousness:  seriousness,
		Status:       RequestStatusOpen,
		CreatedAt:    now,
	}, nil
}

// IsOpen reports whether the request still accepts donations.
func (r *BloodRequest) IsOpen() bool {
	return r.Status == RequestStatusOpen
}

// CanAcceptDonation checks the state precondition for recording a donation.
// Use with ApplyDonation inside the store's exclusive section so the check
// and the mutation are atomic with respect to concurrent donors.
func (r *BloodRequest) CanAcceptDonation() error {
	if !r.IsOpen() || r.UnitsNeeded <= 0 {
		return dErrors.New(dErrors.CodeInvalidState, "request is not open")
	}
	return nil
}

// ApplyDonation consumes one unit and flips the request to FULFILLED when the
// remaining count reaches 0. The count clamps at 0 as a defensive invariant;
// the façade rejects closed requests before this runs.
func (r *BloodRequest) ApplyDonation() {
	if r.UnitsNeeded > 0 {
		r.UnitsNeeded--
	}
	if r.UnitsNeeded == 0 && r.Status.CanTransitionTo(RequestStatusFulfilled) {
		r.Status = RequestStatusFulfilled
	}
}
