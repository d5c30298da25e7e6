// Package store is the exclusive, concurrency-safe owner of all entity
// state: the user, request, and donation collections, the three ID
// sequences, and the email/mobile uniqueness indexes.
//
// Every exported operation is atomic with respect to concurrent callers.
// Multi-step read-modify-write sequences (the donation-recording flow) are
// composed by the façade through Exclusive, which holds the write lock for
// the whole callback. Reads return value copies, so no caller ever holds a
// mutable reference into the store.
package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"lifeline/internal/bloodbank/models"
	"lifeline/pkg/platform/sentinel"
)

// Duplicate sentinels wrap the shared conflict sentinel so callers can match
// either the specific reason or the general fact.
var (
	ErrDuplicateEmail  = fmt.Errorf("email already registered: %w", sentinel.ErrConflict)
	ErrDuplicateMobile = fmt.Errorf("mobile already registered: %w", sentinel.ErrConflict)
)

// Store holds all domain state behind a single coarse-grained lock.
// Contention is low (a handful of request-handling goroutines), so one
// RWMutex over the whole store keeps the atomicity story simple.
type Store struct {
	mu sync.RWMutex

	users     map[models.UserID]*models.User
	userOrder []models.UserID

	requests     map[models.RequestID]*models.BloodRequest
	requestOrder []models.RequestID

	donations []*models.Donation

	emailIndex  map[string]models.UserID // key: lowercased email
	mobileIndex map[string]models.UserID

	// Sequences are incremented exactly once per successful create, never
	// reused, never decremented. The user sequence is shared by donors and
	// receivers.
	userSeq     int
	requestSeq  int
	donationSeq int
}

// New creates an empty store.
func New() *Store {
	return &Store{
		users:       make(map[models.UserID]*models.User),
		requests:    make(map[models.RequestID]*models.BloodRequest),
		emailIndex:  make(map[string]models.UserID),
		mobileIndex: make(map[string]models.UserID),
	}
}

// NewUser is the candidate payload for CreateUser. BloodType and
// LastDonatedAt apply to donors only.
type NewUser struct {
	Name          string
	Email         string
	Mobile        string
	Location      string
	Role          models.Role
	Gender        models.Gender
	BloodType     models.BloodType
	LastDonatedAt *time.Time
}

// CreateUser inserts a new user, assigning the next user ID. It fails with
// ErrDuplicateEmail or ErrDuplicateMobile if either uniqueness invariant
// would be violated; the sequence is only consumed on success.
func (s *Store) CreateUser(_ context.Context, c NewUser) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emailIndex[strings.ToLower(c.Email)]; taken {
		return models.User{}, ErrDuplicateEmail
	}
	if _, taken := s.mobileIndex[c.Mobile]; taken {
		return models.User{}, ErrDuplicateMobile
	}

	id := s.nextUserID(c.Role)
	var (
		u   *models.User
		err error
	)
	if c.Role == models.RoleDonor {
		u, err = models.NewDonor(id, c.Name, c.Email, c.Mobile, c.BloodType, c.Location, c.Gender, c.LastDonatedAt)
	} else {
		u, err = models.NewReceiver(id, c.Name, c.Email, c.Mobile, c.Location, c.Gender)
	}
	if err != nil {
		return models.User{}, err
	}

	s.userSeq++
	s.users[u.ID] = u
	s.userOrder = append(s.userOrder, u.ID)
	s.emailIndex[strings.ToLower(u.Email)] = u.ID
	s.mobileIndex[u.Mobile] = u.ID
	return *u, nil
}

// nextUserID previews the ID the next successful create will take. Donor IDs
// are the bare sequence value; receiver IDs carry the REC prefix. The shared
// sequence is consumed by the caller on success.
func (s *Store) nextUserID(role models.Role) models.UserID {
	n := s.userSeq + 1
	if role == models.RoleReceiver {
		return models.UserID("REC-" + strconv.Itoa(n))
	}
	return models.UserID(strconv.Itoa(n))
}

// FindUser returns a copy of the user, or sentinel.ErrNotFound.
func (s *Store) FindUser(_ context.Context, id models.UserID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findUserLocked(id)
}

// FindUsersByRole returns copies of all users with the given role, in
// insertion order.
func (s *Store) FindUsersByRole(_ context.Context, role models.Role) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for _, id := range s.userOrder {
		if u := s.users[id]; u.Role == role {
			out = append(out, *u)
		}
	}
	return out
}

// UpdateUserLastDonation overwrites the single mutable user field.
func (s *Store) UpdateUserLastDonation(_ context.Context, id models.UserID, ts time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLastDonatedLocked(id, ts)
}

// NewRequest is the candidate payload for CreateRequest. The caller has
// already validated the requester's existence and role.
type NewRequest struct {
	RequesterID  models.UserID
	BloodType    models.BloodType
	HospitalArea string
	UnitsNeeded  int
	Seriousness  models.Seriousness
}

// CreateRequest inserts a new OPEN request, assigning the next request ID.
func (s *Store) CreateRequest(_ context.Context, c NewRequest, now time.Time) (models.BloodRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := models.RequestID("REQ-" + strconv.Itoa(s.requestSeq+1))
	r, err := models.NewBloodRequest(id, c.RequesterID, c.BloodType, c.HospitalArea, c.UnitsNeeded, c.Seriousness, now)
	if err != nil {
		return models.BloodRequest{}, err
	}

	s.requestSeq++
	s.requests[r.ID] = r
	s.requestOrder = append(s.requestOrder, r.ID)
	return *r, nil
}

// FindRequest returns a copy of the request, or sentinel.ErrNotFound.
func (s *Store) FindRequest(_ context.Context, id models.RequestID) (models.BloodRequest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findRequestLocked(id)
}

// FindRequestsByStatus returns copies of all requests in the given status,
// in insertion order.
func (s *Store) FindRequestsByStatus(_ context.Context, status models.RequestStatus) []models.BloodRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BloodRequest
	for _, id := range s.requestOrder {
		if r := s.requests[id]; r.Status == status {
			out = append(out, *r)
		}
	}
	return out
}

// FindRequestsByRequester returns copies of all requests a user posted, any
// status, in insertion order.
func (s *Store) FindRequestsByRequester(_ context.Context, userID models.UserID) []models.BloodRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.BloodRequest
	for _, id := range s.requestOrder {
		if r := s.requests[id]; r.RequesterID == userID {
			out = append(out, *r)
		}
	}
	return out
}

// DecrementRequestUnits atomically consumes one unit and returns the new
// count. The count clamps at 0 and the status flips to FULFILLED when it
// gets there.
func (s *Store) DecrementRequestUnits(_ context.Context, id models.RequestID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decrementRequestUnitsLocked(id)
}

// RecordDonation appends an immutable donation event, assigning the next
// donation ID.
func (s *Store) RecordDonation(_ context.Context, donorID models.UserID, requestID models.RequestID, occurredAt time.Time) (models.Donation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recordDonationLocked(donorID, requestID, occurredAt)
}

// Donations returns a copy of the donation log in insertion order.
func (s *Store) Donations(_ context.Context) []models.Donation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Donation, 0, len(s.donations))
	for _, d := range s.donations {
		out = append(out, *d)
	}
	return out
}

// Exclusive runs fn while holding the store's write lock, making the whole
// callback a single critical section. The Txn passed to fn exposes unlocked
// variants of the store operations; the façade uses this to make the
// donation-recording sequence (check donor, check request, record event,
// update donor, decrement units) appear atomic to every other caller.
//
// fn must not retain the Txn or call back into the Store's locking methods.
func (s *Store) Exclusive(ctx context.Context, fn func(tx *Txn) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Txn{s: s, ctx: ctx})
}

// Txn provides read/modify operations inside an Exclusive section. All
// methods assume the store's write lock is held.
type Txn struct {
	s   *Store
	ctx context.Context
}

// User returns a copy of the user, or sentinel.ErrNotFound.
func (t *Txn) User(id models.UserID) (models.User, error) {
	return t.s.findUserLocked(id)
}

// Request returns a copy of the request, or sentinel.ErrNotFound.
func (t *Txn) Request(id models.RequestID) (models.BloodRequest, error) {
	return t.s.findRequestLocked(id)
}

// RecordDonation appends a donation event.
func (t *Txn) RecordDonation(donorID models.UserID, requestID models.RequestID, occurredAt time.Time) (models.Donation, error) {
	return t.s.recordDonationLocked(donorID, requestID, occurredAt)
}

// SetLastDonated overwrites the donor's last-donation timestamp.
func (t *Txn) SetLastDonated(id models.UserID, ts time.Time) error {
	return t.s.setLastDonatedLocked(id, ts)
}

// DecrementRequestUnits consumes one unit and returns the new count.
func (t *Txn) DecrementRequestUnits(id models.RequestID) (int, error) {
	return t.s.decrementRequestUnitsLocked(id)
}

// ----------------------------------------------------------------------------
// Unlocked internals, shared by the exported methods and Txn.
// ----------------------------------------------------------------------------

func (s *Store) findUserLocked(id models.UserID) (models.User, error) {
	if u, ok := s.users[id]; ok {
		return *u, nil
	}
	return models.User{}, sentinel.ErrNotFound
}

func (s *Store) findRequestLocked(id models.RequestID) (models.BloodRequest, error) {
	if r, ok := s.requests[id]; ok {
		return *r, nil
	}
	return models.BloodRequest{}, sentinel.ErrNotFound
}

func (s *Store) setLastDonatedLocked(id models.UserID, ts time.Time) error {
	u, ok := s.users[id]
	if !ok {
		return sentinel.ErrNotFound
	}
	u.ApplyDonation(ts)
	return nil
}

func (s *Store) decrementRequestUnitsLocked(id models.RequestID) (int, error) {
	r, ok := s.requests[id]
	if !ok {
		return 0, sentinel.ErrNotFound
	}
	r.ApplyDonation()
	return r.UnitsNeeded, nil
}

func (s *Store) recordDonationLocked(donorID models.UserID, requestID models.RequestID, occurredAt time.Time) (models.Donation, error) {
	id := models.DonationID("DON-" + strconv.Itoa(s.donationSeq+1))
	d, err := models.NewDonation(id, donorID, requestID, occurredAt)
	if err != nil {
		return models.Donation{}, err
	}
	s.donationSeq++
	s.donations = append(s.donations, d)
	return *d, nil
}
