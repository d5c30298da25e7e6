package service

import (
	"context"
	"errors"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"lifeline/internal/bloodbank/matching"
	"lifeline/internal/bloodbank/models"
	"lifeline/internal/bloodbank/store"
	dErrors "lifeline/pkg/domain-errors"
	"lifeline/pkg/platform/sentinel"
	"lifeline/pkg/requestcontext"
)

// Donation rejection reasons, used as metric labels.
const (
	rejectDonorNotFound    = "donor_not_found"
	rejectDonorIneligible  = "donor_ineligible"
	rejectRequestNotOpen   = "request_not_open"
	rejectIncompatibleType = "incompatible_blood_type"
)

// RecordDonation records a donation from donor to request. The whole
// sequence — donor exists and is an eligible donor, request is OPEN, blood
// types are compatible, then append event / stamp donor / consume one unit —
// runs inside a single exclusive store section, so no concurrent call can
// interleave between the checks and the mutations. All four preconditions
// are verified before any state changes.
func (s *Service) RecordDonation(ctx context.Context, donorID, requestID string) (DonationReceipt, error) {
	ctx, span := s.tracer.Start(ctx, "bloodbank.RecordDonation")
	defer span.End()
	span.SetAttributes(
		attribute.String("donor_id", donorID),
		attribute.String("blood_request_id", requestID),
	)

	start := time.Now()
	now := requestcontext.Now(ctx)
	var receipt DonationReceipt

	err := s.store.Exclusive(ctx, func(tx *store.Txn) error {
		donor, err := tx.User(models.UserID(donorID))
		if err != nil || !donor.IsDonor() {
			return s.reject(ctx, rejectDonorNotFound,
				dErrors.New(dErrors.CodeNotFound, "donor not found"))
		}
		if !matching.IsEligible(&donor, now) {
			return s.reject(ctx, rejectDonorIneligible,
				dErrors.New(dErrors.CodeInvalidState, "donor not eligible for donation yet"))
		}

		req, err := tx.Request(models.RequestID(requestID))
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return s.reject(ctx, rejectRequestNotOpen,
					dErrors.New(dErrors.CodeInvalidState, "request not found or already fulfilled"))
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up request")
		}
		if err := req.CanAcceptDonation(); err != nil {
			return s.reject(ctx, rejectRequestNotOpen,
				dErrors.New(dErrors.CodeInvalidState, "request not found or already fulfilled"))
		}

		if !matching.CanDonateTo(donor.BloodType, req.BloodType) {
			return s.reject(ctx, rejectIncompatibleType,
				dErrors.New(dErrors.CodeInvalidState, "blood type not compatible"))
		}

		// All preconditions hold; mutate.
		donation, err := tx.RecordDonation(donor.ID, req.ID, now)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record donation")
		}
		if err := tx.SetLastDonated(donor.ID, now); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to update donor")
		}
		remaining, err := tx.DecrementRequestUnits(req.ID)
		if err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to decrement request units")
		}

		status := models.RequestStatusOpen
		if remaining == 0 {
			status = models.RequestStatusFulfilled
		}
		receipt = DonationReceipt{
			DonationID:     donation.ID,
			RequestID:      req.ID,
			UnitsRemaining: remaining,
			RequestStatus:  status,
			OccurredAt:     now,
		}
		return nil
	})
	if err != nil {
		return DonationReceipt{}, err
	}

	s.logger.InfoContext(ctx, "donation recorded",
		"request_id", requestcontext.RequestID(ctx),
		"donation_id", receipt.DonationID,
		"donor_id", donorID,
		"blood_request_id", receipt.RequestID,
		"units_remaining", receipt.UnitsRemaining,
		"status", receipt.RequestStatus,
	)
	if s.metrics != nil {
		s.metrics.IncrementDonationsRecorded()
		if receipt.RequestStatus == models.RequestStatusFulfilled {
			s.metrics.IncrementRequestsFulfilled()
		}
		s.metrics.ObserveRecordDonation(start)
	}
	return receipt, nil
}

// reject counts and logs a rejected donation attempt, then returns the
// domain error unchanged.
func (s *Service) reject(ctx context.Context, reason string, err error) error {
	s.logger.WarnContext(ctx, "donation rejected",
		"request_id", requestcontext.RequestID(ctx),
		"reason", reason,
	)
	if s.metrics != nil {
		s.metrics.IncrementDonationsRejected(reason)
	}
	return err
}
