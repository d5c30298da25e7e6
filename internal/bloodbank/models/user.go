package models

import (
	"strings"
	"time"

	dErrors "lifeline/pkg/domain-errors"
)

// UserID identifies a registered user. Donors carry the bare user sequence
// value ("1", "2", ...); receivers are prefixed ("REC-3"). The store owns
// the sequence.
type UserID string

// Role distinguishes the two kinds of registered users.
type Role string

const (
	RoleDonor    Role = "DONOR"
	RoleReceiver Role = "RECEIVER"
)

// ParseRole resolves a role string case-insensitively.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleDonor:
		return RoleDonor, nil
	case RoleReceiver:
		return RoleReceiver, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown role")
	}
}

// Gender of a registered user. It feeds the donation cooldown rule.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// ParseGender resolves a gender string case-insensitively.
func ParseGender(s string) (Gender, error) {
	switch Gender(strings.ToUpper(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderOther:
		return GenderOther, nil
	default:
		return "", dErrors.New(dErrors.CodeInvalidInput, "unknown gender")
	}
}

// BloodType is one of the eight ABO/Rh types.
type BloodType string

const (
	BloodTypeAPos  BloodType = "A+"
	BloodTypeANeg  BloodType = "A-"
	BloodTypeBPos  BloodType = "B+"
	BloodTypeBNeg  BloodType = "B-"
	BloodTypeABPos BloodType = "AB+"
	BloodTypeABNeg BloodType = "AB-"
	BloodTypeOPos  BloodType = "O+"
	BloodTypeONeg  BloodType = "O-"
)

// BloodTypes lists all valid types in display order.
var BloodTypes = []BloodType{
	BloodTypeAPos, BloodTypeANeg,
	BloodTypeBPos, BloodTypeBNeg,
	BloodTypeABPos, BloodTypeABNeg,
	BloodTypeOPos, BloodTypeONeg,
}

// ParseBloodType resolves a blood type string case-insensitively.
func ParseBloodType(s string) (BloodType, error) {
	candidate := BloodType(strings.ToUpper(strings.TrimSpace(s)))
	for _, bt := range BloodTypes {
		if bt == candidate {
			return bt, nil
		}
	}
	return "", dErrors.New(dErrors.CodeInvalidInput, "unknown blood type")
}

// User is the aggregate root for a registered identity, donor or receiver.
//
// Invariants:
//   - Email and Mobile are globally unique across all users regardless of
//     role (enforced by the store's uniqueness indexes, not here)
//   - BloodType is set iff Role is DONOR
//   - LastDonatedAt is the only mutable field; it moves forward only, and
//     only through ApplyDonation
//   - Users are never deleted
type User struct {
	ID            UserID     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	BloodType     BloodType  `json:"bloodType,omitempty"`
	Location      string     `json:"location"`
	Mobile        string     `json:"mobile"`
	Role          Role       `json:"role"`
	Gender        Gender     `json:"gender"`
	LastDonatedAt *time.Time `json:"lastDonatedAt,omitempty"`
}

// NewDonor constructs a donor. Inputs are assumed syntactically valid
// (validate package); this enforces structural invariants only.
// lastDonated may be nil for first-time donors.
func NewDonor(id UserID, name, email, mobile string, bloodType BloodType, location string, gender Gender, lastDonated *time.Time) (*User, error) {
	if bloodType == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "donor requires a blood type")
	}
	u, err := newUser(id, name, email, mobile, location, gender, RoleDonor)
	if err != nil {
		return nil, err
	}
	u.BloodType = bloodType
	u.LastDonatedAt = lastDonated
	return u, nil
}

// NewReceiver constructs a receiver. Receivers carry no blood type; the type
// they need is stated per request.
func NewReceiver(id UserID, name, email, mobile, location string, gender Gender) (*User, error) {
	return newUser(id, name, email, mobile, location, gender, RoleReceiver)
}

func newUser(id UserID, name, email, mobile, location string, gender Gender, role Role) (*User, error) {
	if id == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user id cannot be empty")
	}
	if name == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user name cannot be empty")
	}
	if email == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user email cannot be empty")
	}
	if mobile == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user mobile cannot be empty")
	}
	if location == "" {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "user location cannot be empty")
	}
	return &User{
		ID:       id,
		Name:     name,
		Email:    email,
		Mobile:   mobile,
		Location: location,
		Role:     role,
		Gender:   gender,
	}, nil
}

// IsDonor reports whether the user registered as a donor.
func (u *User) IsDonor() bool {
	return u.Role == RoleDonor
}

// ApplyDonation records that the donor gave blood at the given time. Call
// only from within the store's exclusive section, after eligibility and
// compatibility have been checked.
func (u *User) ApplyDonation(now time.Time) {
	t := now
	u.LastDonatedAt = &t
}
