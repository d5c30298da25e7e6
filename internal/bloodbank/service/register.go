package service

import (
	"context"
	"errors"
	"strings"

	"lifeline/internal/bloodbank/models"
	"lifeline/internal/bloodbank/store"
	"lifeline/internal/bloodbank/validate"
	dErrors "lifeline/pkg/domain-errors"
	"lifeline/pkg/platform/sentinel"
	"lifeline/pkg/requestcontext"
)

// RegisterDonor validates and registers a new donor, returning the assigned
// user ID. A returning donor may declare a prior donation date, which counts
// against the cooldown immediately.
func (s *Service) RegisterDonor(ctx context.Context, in RegisterDonorInput) (models.UserID, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.RegisterDonor")
	defer span.End()

	if !validate.Name(in.Name) ||
		!validate.Email(in.Email) ||
		!validate.Mobile(in.Mobile) ||
		!validate.BloodType(in.BloodType) ||
		strings.TrimSpace(in.Location) == "" ||
		!validate.Gender(in.Gender) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid input data")
	}

	bloodType, err := models.ParseBloodType(in.BloodType)
	if err != nil {
		return "", err
	}
	gender, err := models.ParseGender(in.Gender)
	if err != nil {
		return "", err
	}

	u, err := s.store.CreateUser(ctx, store.NewUser{
		Name:          strings.TrimSpace(in.Name),
		Email:         in.Email,
		Mobile:        in.Mobile,
		Location:      strings.TrimSpace(in.Location),
		Role:          models.RoleDonor,
		Gender:        gender,
		BloodType:     bloodType,
		LastDonatedAt: in.LastDonated,
	})
	if err != nil {
		return "", translateCreateUserErr(err)
	}

	s.logger.InfoContext(ctx, "donor registered",
		"request_id", requestcontext.RequestID(ctx),
		"user_id", u.ID,
		"blood_type", u.BloodType,
	)
	if s.metrics != nil {
		s.metrics.IncrementDonorsRegistered()
	}
	return u.ID, nil
}

// RegisterReceiver validates and registers a new receiver, returning the
// assigned user ID.
func (s *Service) RegisterReceiver(ctx context.Context, in RegisterReceiverInput) (models.UserID, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.RegisterReceiver")
	defer span.End()

	if !validate.Name(in.Name) ||
		!validate.Email(in.Email) ||
		!validate.Mobile(in.Mobile) ||
		strings.TrimSpace(in.Location) == "" ||
		!validate.Gender(in.Gender) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid input data")
	}

	gender, err := models.ParseGender(in.Gender)
	if err != nil {
		return "", err
	}

	u, err := s.store.CreateUser(ctx, store.NewUser{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Mobile:   in.Mobile,
		Location: strings.TrimSpace(in.Location),
		Role:     models.RoleReceiver,
		Gender:   gender,
	})
	if err != nil {
		return "", translateCreateUserErr(err)
	}

	s.logger.InfoContext(ctx, "receiver registered",
		"request_id", requestcontext.RequestID(ctx),
		"user_id", u.ID,
	)
	if s.metrics != nil {
		s.metrics.IncrementReceiversRegistered()
	}
	return u.ID, nil
}

// PostRequest validates and creates a new OPEN blood request on behalf of a
// receiver.
func (s *Service) PostRequest(ctx context.Context, in PostRequestInput) (models.RequestID, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.PostRequest")
	defer span.End()

	requester, err := s.store.FindUser(ctx, models.UserID(in.RequesterID))
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return "", dErrors.New(dErrors.CodeNotFound, "requester not found")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up requester")
	}
	if requester.Role != models.RoleReceiver {
		return "", dErrors.New(dErrors.CodeInvalidState, "only receivers can post blood requests")
	}

	if !validate.BloodType(in.BloodType) ||
		strings.TrimSpace(in.HospitalArea) == "" ||
		in.UnitsNeeded < models.MinUnitsNeeded || in.UnitsNeeded > models.MaxUnitsNeeded ||
		!validate.Seriousness(in.Seriousness) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid request data")
	}

	bloodType, err := models.ParseBloodType(in.BloodType)
	if err != nil {
		return "", err
	}
	seriousness, err := models.ParseSeriousness(in.Seriousness)
	if err != nil {
		return "", err
	}

	r, err := s.store.CreateRequest(ctx, store.NewRequest{
		RequesterID:  requester.ID,
		BloodType:    bloodType,
		HospitalArea: strings.TrimSpace(in.HospitalArea),
		UnitsNeeded:  in.UnitsNeeded,
		Seriousness:  seriousness,
	}, requestcontext.Now(ctx))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to create request")
	}

	s.logger.InfoContext(ctx, "blood request posted",
		"request_id", requestcontext.RequestID(ctx),
		"blood_request_id", r.ID,
		"blood_type", r.BloodType,
		"units_needed", r.UnitsNeeded,
		"seriousness", r.Seriousness,
	)
	if s.metrics != nil {
		s.metrics.IncrementRequestsPosted()
	}
	return r.ID, nil
}

// translateCreateUserErr maps store uniqueness sentinels to domain conflicts.
func translateCreateUserErr(err error) error {
	switch {
	case errors.Is(err, store.ErrDuplicateEmail):
		return dErrors.New(dErrors.CodeConflict, "email already registered")
	case errors.Is(err, store.ErrDuplicateMobile):
		return dErrors.New(dErrors.CodeConflict, "mobile number already registered")
	case dErrors.HasCode(err, dErrors.CodeInvariantViolation):
		return err
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to create user")
	}
}
