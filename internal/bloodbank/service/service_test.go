package service_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"

	"lifeline/internal/bloodbank/models"
	"lifeline/internal/bloodbank/service"
	"lifeline/internal/bloodbank/store"
	dErrors "lifeline/pkg/domain-errors"
	"lifeline/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	store *store.Store
	svc   *service.Service
	now   time.Time
	ctx   context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.store = store.New()
	s.svc = service.New(s.store,
		service.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	s.now = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
}

// at shifts the pinned clock, for calls that happen "later".
func (s *ServiceSuite) at(d time.Duration) context.Context {
	return requestcontext.WithTime(context.Background(), s.now.Add(d))
}

func (s *ServiceSuite) registerDonor(email, mobile, bloodType string) models.UserID {
	s.T().Helper()
	id, err := s.svc.RegisterDonor(s.ctx, service.RegisterDonorInput{
		Name:      "John",
		Email:     email,
		Mobile:    mobile,
		BloodType: bloodType,
		Location:  "Chennai",
		Gender:    "MALE",
	})
	s.Require().NoError(err)
	return id
}

func (s *ServiceSuite) registerReceiver(email, mobile string) models.UserID {
	s.T().Helper()
	id, err := s.svc.RegisterReceiver(s.ctx, service.RegisterReceiverInput{
		Name:     "Priya",
		Email:    email,
		Mobile:   mobile,
		Location: "Chennai",
		Gender:   "FEMALE",
	})
	s.Require().NoError(err)
	return id
}

func (s *ServiceSuite) postRequest(requester models.UserID, bloodType string, units int) models.RequestID {
	s.T().Helper()
	id, err := s.svc.PostRequest(s.ctx, service.PostRequestInput{
		RequesterID:  string(requester),
		BloodType:    bloodType,
		HospitalArea: "Apollo",
		UnitsNeeded:  units,
		Seriousness:  "HIGH",
	})
	s.Require().NoError(err)
	return id
}

func (s *ServiceSuite) TestRegisterDonor() {
	s.Run("valid input returns assigned ID", func() {
		id := s.registerDonor("john@gmail.com", "9876543210", "O-")
		s.Equal(models.UserID("1"), id)
	})

	s.Run("rejects bad email", func() {
		_, err := s.svc.RegisterDonor(s.ctx, service.RegisterDonorInput{
			Name:      "John",
			Email:     "John@Gmail.com",
			Mobile:    "9876543211",
			BloodType: "O-",
			Location:  "Chennai",
			Gender:    "MALE",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("rejects bad mobile", func() {
		_, err := s.svc.RegisterDonor(s.ctx, service.RegisterDonorInput{
			Name:      "John",
			Email:     "john2@gmail.com",
			Mobile:    "1234567890",
			BloodType: "O-",
			Location:  "Chennai",
			Gender:    "MALE",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	s.Run("duplicate email is a conflict even with different case", func() {
		s.registerDonor("dup@gmail.com", "9876543212", "A+")
		_, err := s.svc.RegisterDonor(s.ctx, service.RegisterDonorInput{
			Name:      "John",
			Email:     "dup@gmail.com",
			Mobile:    "9876543213",
			BloodType: "A+",
			Location:  "Chennai",
			Gender:    "MALE",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("duplicate mobile is a conflict across roles", func() {
		s.registerReceiver("priya@gmail.com", "9876543214")
		_, err := s.svc.RegisterDonor(s.ctx, service.RegisterDonorInput{
			Name:      "John",
			Email:     "fresh@gmail.com",
			Mobile:    "9876543214",
			BloodType: "A+",
			Location:  "Chennai",
			Gender:    "MALE",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("returning donor may declare a prior donation date", func() {
		last := s.now.AddDate(0, 0, -30)
		id, err := s.svc.RegisterDonor(s.ctx, service.RegisterDonorInput{
			Name:        "Arun",
			Email:       "arun@gmail.com",
			Mobile:      "9876543215",
			BloodType:   "B+",
			Location:    "Chennai",
			Gender:      "MALE",
			LastDonated: &last,
		})
		s.Require().NoError(err)

		profile, err := s.svc.GetDonorProfile(s.ctx, string(id))
		s.Require().NoError(err)
		s.Require().NotNil(profile.LastDonatedAt)
		s.Equal(last, *profile.LastDonatedAt)
		s.False(profile.Eligible, "30 days is inside the 120-day cooldown")
	})
}

func (s *ServiceSuite) TestPostRequest() {
	receiver := s.registerReceiver("rec@gmail.com", "9123456780")
	donor := s.registerDonor("don@gmail.com", "9123456781", "O-")

	s.Run("unknown requester", func() {
		_, err := s.svc.PostRequest(s.ctx, service.PostRequestInput{
			RequesterID:  "REC-999",
			BloodType:    "AB+",
			HospitalArea: "Apollo",
			UnitsNeeded:  1,
			Seriousness:  "HIGH",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("donors cannot post requests", func() {
		_, err := s.svc.PostRequest(s.ctx, service.PostRequestInput{
			RequesterID:  string(donor),
			BloodType:    "AB+",
			HospitalArea: "Apollo",
			UnitsNeeded:  1,
			Seriousness:  "HIGH",
		})
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("units out of range", func() {
		for _, units := range []int{0, 11, -1} {
			_, err := s.svc.PostRequest(s.ctx, service.PostRequestInput{
				RequesterID:  string(receiver),
				BloodType:    "AB+",
				HospitalArea: "Apollo",
				UnitsNeeded:  units,
				Seriousness:  "HIGH",
			})
			s.True(dErrors.HasCode(err, dErrors.CodeInvalidInput), "units=%d", units)
		}
	})

	s.Run("valid request is OPEN and listed", func() {
		id := s.postRequest(receiver, "AB+", 3)
		open, err := s.svc.ListOpenRequests(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(open, 1)
		s.Equal(id, open[0].ID)
		s.Equal(models.RequestStatusOpen, open[0].Status)
		s.Equal(3, open[0].UnitsNeeded)
	})
}

func (s *ServiceSuite) TestRecordDonation() {
	s.Run("golden path fulfills a one-unit request", func() {
		s.SetupTest()
		donor := s.registerDonor("john@gmail.com", "9876543210", "O-")
		receiver := s.registerReceiver("rec@gmail.com", "9123456780")
		reqID := s.postRequest(receiver, "AB+", 1)

		receipt, err := s.svc.RecordDonation(s.ctx, string(donor), string(reqID))
		s.Require().NoError(err)
		s.Equal(reqID, receipt.RequestID)
		s.Equal(0, receipt.UnitsRemaining)
		s.Equal(models.RequestStatusFulfilled, receipt.RequestStatus)
		s.Equal(s.now, receipt.OccurredAt)

		open, err := s.svc.ListOpenRequests(s.ctx)
		s.Require().NoError(err)
		s.Empty(open)

		profile, err := s.svc.GetDonorProfile(s.ctx, string(donor))
		s.Require().NoError(err)
		s.False(profile.Eligible, "donor enters cooldown immediately")
	})

	s.Run("second donation next day is rejected for cooldown", func() {
		s.SetupTest()
		donor := s.registerDonor("john@gmail.com", "9876543210", "O-")
		receiver := s.registerReceiver("rec@gmail.com", "9123456780")
		first := s.postRequest(receiver, "AB+", 1)
		second := s.postRequest(receiver, "A+", 2)

		_, err := s.svc.RecordDonation(s.ctx, string(donor), string(first))
		s.Require().NoError(err)

		_, err = s.svc.RecordDonation(s.at(24*time.Hour), string(donor), string(second))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("cooldown expires after the gender window", func() {
		s.SetupTest()
		donor := s.registerDonor("john@gmail.com", "9876543210", "O-")
		receiver := s.registerReceiver("rec@gmail.com", "9123456780")
		first := s.postRequest(receiver, "AB+", 1)
		second := s.postRequest(receiver, "A+", 2)

		_, err := s.svc.RecordDonation(s.ctx, string(donor), string(first))
		s.Require().NoError(err)

		receipt, err := s.svc.RecordDonation(s.at(120*24*time.Hour), string(donor), string(second))
		s.Require().NoError(err)
		s.Equal(1, receipt.UnitsRemaining)
		s.Equal(models.RequestStatusOpen, receipt.RequestStatus)
	})

	s.Run("incompatible blood type is rejected", func() {
		s.SetupTest()
		donor := s.registerDonor("abplus@gmail.com", "9876543210", "AB+")
		receiver := s.registerReceiver("rec@gmail.com", "9123456780")
		reqID := s.postRequest(receiver, "O-", 1)

		_, err := s.svc.RecordDonation(s.ctx, string(donor), string(reqID))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("unknown donor", func() {
		s.SetupTest()
		receiver := s.registerReceiver("rec@gmail.com", "9123456780")
		reqID := s.postRequest(receiver, "AB+", 1)

		_, err := s.svc.RecordDonation(s.ctx, "42", string(reqID))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("receiver ID is not a donor", func() {
		s.SetupTest()
		receiver := s.registerReceiver("rec@gmail.com", "9123456780")
		reqID := s.postRequest(receiver, "AB+", 1)

		_, err := s.svc.RecordDonation(s.ctx, string(receiver), string(reqID))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("fulfilled request accepts no more donations", func() {
		s.SetupTest()
		first := s.registerDonor("a@gmail.com", "9876543210", "O-")
		second := s.registerDonor("b@gmail.com", "9876543211", "O-")
		receiver := s.registerReceiver("rec@gmail.com", "9123456780")
		reqID := s.postRequest(receiver, "AB+", 1)

		_, err := s.svc.RecordDonation(s.ctx, string(first), string(reqID))
		s.Require().NoError(err)

		_, err = s.svc.RecordDonation(s.ctx, string(second), string(reqID))
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})
}

func (s *ServiceSuite) TestConcurrentDonationsOnLastUnit() {
	receiver := s.registerReceiver("rec@gmail.com", "9123456780")
	reqID := s.postRequest(receiver, "AB+", 1)

	const donors = 8
	donorIDs := make([]models.UserID, donors)
	for i := range donorIDs {
		donorIDs[i] = s.registerDonor(
			fmt.Sprintf("donor%d@gmail.com", i),
			fmt.Sprintf("98765432%02d", i),
			"O-",
		)
	}

	var succeeded atomic.Int64
	var g errgroup.Group
	for _, id := range donorIDs {
		id := id
		g.Go(func() error {
			_, err := s.svc.RecordDonation(s.ctx, string(id), string(reqID))
			if err == nil {
				succeeded.Add(1)
				return nil
			}
			if dErrors.HasCode(err, dErrors.CodeInvalidState) {
				return nil
			}
			return err
		})
	}
	s.Require().NoError(g.Wait())
	s.Equal(int64(1), succeeded.Load(), "exactly one donation may consume the last unit")

	open, err := s.svc.ListOpenRequests(s.ctx)
	s.Require().NoError(err)
	s.Empty(open)
}

func (s *ServiceSuite) TestQueries() {
	donor := s.registerDonor("john@gmail.com", "9876543210", "O-")
	receiver := s.registerReceiver("rec@gmail.com", "9123456780")

	s.Run("eligible donors excludes those in cooldown", func() {
		eligible, err := s.svc.ListEligibleDonors(s.ctx)
		s.Require().NoError(err)
		s.Require().Len(eligible, 1)
		s.Equal(donor, eligible[0].ID)

		reqID := s.postRequest(receiver, "AB+", 2)
		_, err = s.svc.RecordDonation(s.ctx, string(donor), string(reqID))
		s.Require().NoError(err)

		eligible, err = s.svc.ListEligibleDonors(s.ctx)
		s.Require().NoError(err)
		s.Empty(eligible)
	})

	s.Run("donor profile for a receiver is not found", func() {
		_, err := s.svc.GetDonorProfile(s.ctx, string(receiver))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("requests by user includes fulfilled ones", func() {
		reqID := s.postRequest(receiver, "B-", 1)

		mine, err := s.svc.ListRequestsByUser(s.ctx, string(receiver))
		s.Require().NoError(err)
		s.Require().Len(mine, 2)
		s.Equal(reqID, mine[1].ID)

		none, err := s.svc.ListRequestsByUser(s.ctx, "REC-999")
		s.Require().NoError(err)
		s.Empty(none)
	})
}
