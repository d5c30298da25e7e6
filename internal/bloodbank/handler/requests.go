package handler

import (
	"strings"
	"time"

	dErrors "lifeline/pkg/domain-errors"
)

// dateOnly is the wire format for date fields.
const dateOnly = "2006-01-02"

// RegisterDonorRequest is the HTTP request body for POST /api/register-donor.
// LastDonated is optional: empty or "NEVER" (any case) means no prior
// donation; otherwise it must be a 2006-01-02 date.
type RegisterDonorRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Mobile      string `json:"mobile"`
	BloodType   string `json:"bloodType"`
	Location    string `json:"location"`
	Gender      string `json:"gender"`
	LastDonated string `json:"lastDonated"`

	// Parsed values (populated by Validate)
	parsedLastDonated *time.Time
}

// Validate parses the optional donation date. Field-level rules are the
// service's job; the adapter only settles the wire format.
// Implements the Validatable interface for httputil.DecodeAndPrepare.
func (r *RegisterDonorRequest) Validate() error {
	raw := strings.TrimSpace(r.LastDonated)
	if raw == "" || strings.EqualFold(raw, "never") {
		r.parsedLastDonated = nil
		return nil
	}
	t, err := time.Parse(dateOnly, raw)
	if err != nil {
		return dErrors.New(dErrors.CodeInvalidInput, "lastDonated must be a YYYY-MM-DD date or NEVER")
	}
	r.parsedLastDonated = &t
	return nil
}

// ParsedLastDonated returns the validated prior donation date, nil for none.
func (r *RegisterDonorRequest) ParsedLastDonated() *time.Time {
	return r.parsedLastDonated
}

// RegisterReceiverRequest is the HTTP request body for POST /api/register-receiver.
type RegisterReceiverRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Location string `json:"location"`
	Gender   string `json:"gender"`
}

// PostRequestRequest is the HTTP request body for POST /api/post-request.
type PostRequestRequest struct {
	RequesterID  string `json:"requesterId"`
	BloodType    string `json:"bloodType"`
	HospitalArea string `json:"hospitalArea"`
	UnitsNeeded  int    `json:"unitsNeeded"`
	Seriousness  string `json:"seriousness"`
}

// Validate requires the requester reference; everything else is validated
// against domain rules by the service.
func (r *PostRequestRequest) Validate() error {
	r.RequesterID = strings.TrimSpace(r.RequesterID)
	if r.RequesterID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "requesterId is required")
	}
	return nil
}

// RecordDonationRequest is the HTTP request body for POST /api/record-donation.
type RecordDonationRequest struct {
	DonorID   string `json:"donorId"`
	RequestID string `json:"requestId"`
}

// Validate requires both references.
func (r *RecordDonationRequest) Validate() error {
	r.DonorID = strings.TrimSpace(r.DonorID)
	r.RequestID = strings.TrimSpace(r.RequestID)
	if r.DonorID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "donorId is required")
	}
	if r.RequestID == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "requestId is required")
	}
	return nil
}
