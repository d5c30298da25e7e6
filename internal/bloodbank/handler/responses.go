package handler

import (
	"time"

	"lifeline/internal/bloodbank/models"
	"lifeline/internal/bloodbank/service"
)

// neverDonated is the wire rendering of a missing donation date.
const neverDonated = "Never"

// RegisterResponse is the HTTP response for both registration endpoints.
type RegisterResponse struct {
	UserID string `json:"userId"`
}

// PostRequestResponse is the HTTP response for POST /api/post-request.
type PostRequestResponse struct {
	RequestID string `json:"requestId"`
}

// DonationResponse is the HTTP response for POST /api/record-donation.
type DonationResponse struct {
	DonationID     string    `json:"donationId"`
	RequestID      string    `json:"requestId"`
	UnitsRemaining int       `json:"unitsRemaining"`
	Status         string    `json:"status"`
	OccurredAt     time.Time `json:"occurredAt"`
}

// FromReceipt converts a donation receipt to its HTTP response.
func FromReceipt(receipt service.DonationReceipt) DonationResponse {
	return DonationResponse{
		DonationID:     string(receipt.DonationID),
		RequestID:      string(receipt.RequestID),
		UnitsRemaining: receipt.UnitsRemaining,
		Status:         string(receipt.RequestStatus),
		OccurredAt:     receipt.OccurredAt,
	}
}

// RequestResponse is one blood request in list responses.
type RequestResponse struct {
	RequestID    string    `json:"requestId"`
	RequesterID  string    `json:"requesterId"`
	BloodType    string    `json:"bloodType"`
	HospitalArea string    `json:"hospitalArea"`
	UnitsNeeded  int       `json:"unitsNeeded"`
	Seriousness  string    `json:"seriousness"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// FromRequests converts blood requests to their HTTP list response. It always
// renders a JSON array, never null.
func FromRequests(requests []models.BloodRequest) []RequestResponse {
	out := make([]RequestResponse, 0, len(requests))
	for _, req := range requests {
		out = append(out, RequestResponse{
			RequestID:    string(req.ID),
			RequesterID:  string(req.RequesterID),
			BloodType:    string(req.BloodType),
			HospitalArea: req.HospitalArea,
			UnitsNeeded:  req.UnitsNeeded,
			Seriousness:  string(req.Seriousness),
			Status:       string(req.Status),
			CreatedAt:    req.CreatedAt,
		})
	}
	return out
}

// DonorResponse is one donor in the eligible-donor list.
type DonorResponse struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	BloodType   string `json:"bloodType"`
	Location    string `json:"location"`
	Mobile      string `json:"mobile"`
	LastDonated string `json:"lastDonated"`
}

// FromDonors converts donors to their HTTP list response.
func FromDonors(donors []models.User) []DonorResponse {
	out := make([]DonorResponse, 0, len(donors))
	for _, d := range donors {
		out = append(out, DonorResponse{
			UserID:      string(d.ID),
			Name:        d.Name,
			BloodType:   string(d.BloodType),
			Location:    d.Location,
			Mobile:      d.Mobile,
			LastDonated: renderLastDonated(d.LastDonatedAt),
		})
	}
	return out
}

// DonorProfileResponse is the HTTP response for GET /api/donor-details.
type DonorProfileResponse struct {
	UserID      string `json:"userId"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	BloodType   string `json:"bloodType"`
	Location    string `json:"location"`
	Mobile      string `json:"mobile"`
	Gender      string `json:"gender"`
	LastDonated string `json:"lastDonated"`
	Eligible    bool   `json:"eligible"`
}

// FromProfile converts a donor profile to its HTTP response.
func FromProfile(p service.DonorProfile) DonorProfileResponse {
	return DonorProfileResponse{
		UserID:      string(p.ID),
		Name:        p.Name,
		Email:       p.Email,
		BloodType:   string(p.BloodType),
		Location:    p.Location,
		Mobile:      p.Mobile,
		Gender:      string(p.Gender),
		LastDonated: renderLastDonated(p.LastDonatedAt),
		Eligible:    p.Eligible,
	}
}

func renderLastDonated(t *time.Time) string {
	if t == nil {
		return neverDonated
	}
	return t.Format(dateOnly)
}
