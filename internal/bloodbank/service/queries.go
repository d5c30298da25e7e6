package service

import (
	"context"
	"errors"

	"lifeline/internal/bloodbank/matching"
	"lifeline/internal/bloodbank/models"
	dErrors "lifeline/pkg/domain-errors"
	"lifeline/pkg/platform/sentinel"
	"lifeline/pkg/requestcontext"
)

// ListOpenRequests returns all requests still accepting donations, in
// posting order.
func (s *Service) ListOpenRequests(ctx context.Context) ([]models.BloodRequest, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.ListOpenRequests")
	defer span.End()

	return s.store.FindRequestsByStatus(ctx, models.RequestStatusOpen), nil
}

// ListEligibleDonors returns all donors currently allowed to donate, in
// registration order. Eligibility is evaluated against the request-scoped
// clock, so one call observes one consistent "now".
func (s *Service) ListEligibleDonors(ctx context.Context) ([]models.User, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.ListEligibleDonors")
	defer span.End()

	now := requestcontext.Now(ctx)
	donors := s.store.FindUsersByRole(ctx, models.RoleDonor)

	eligible := donors[:0]
	for i := range donors {
		if matching.IsEligible(&donors[i], now) {
			eligible = append(eligible, donors[i])
		}
	}
	return eligible, nil
}

// GetDonorProfile returns a donor's profile with the current eligibility
// flag. Unknown IDs and non-donor IDs both report not found; receivers have
// no donor profile.
func (s *Service) GetDonorProfile(ctx context.Context, userID string) (DonorProfile, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.GetDonorProfile")
	defer span.End()

	u, err := s.store.FindUser(ctx, models.UserID(userID))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return DonorProfile{}, dErrors.New(dErrors.CodeNotFound, "donor not found")
		}
		return DonorProfile{}, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up donor")
	}
	if !u.IsDonor() {
		return DonorProfile{}, dErrors.New(dErrors.CodeNotFound, "donor not found")
	}

	return DonorProfile{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		BloodType:     u.BloodType,
		Location:      u.Location,
		Mobile:        u.Mobile,
		Gender:        u.Gender,
		LastDonatedAt: u.LastDonatedAt,
		Eligible:      matching.IsEligible(&u, requestcontext.Now(ctx)),
	}, nil
}

// ListRequestsByUser returns every request the user has posted, any status,
// in posting order. Unknown users yield an empty list, not an error.
func (s *Service) ListRequestsByUser(ctx context.Context, userID string) ([]models.BloodRequest, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.ListRequestsByUser")
	defer span.End()

	return s.store.FindRequestsByRequester(ctx, models.UserID(userID)), nil
}
