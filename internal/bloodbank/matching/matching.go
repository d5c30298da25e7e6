// Package matching holds the stateless medical rules: the ABO/Rh donor
// compatibility matrix and the donation cooldown. All functions are pure
// evaluations over snapshots; the store and façade own all state.
package matching

import (
	"time"

	"lifeline/internal/bloodbank/models"
)

// compatibleReceivers maps each donor blood type to the set of receiver
// types it can serve. The relation is asymmetric: O- donates to everyone but
// receives only O-.
var compatibleReceivers = map[models.BloodType][]models.BloodType{
	models.BloodTypeONeg: {
		models.BloodTypeAPos, models.BloodTypeANeg,
		models.BloodTypeBPos, models.BloodTypeBNeg,
		models.BloodTypeABPos, models.BloodTypeABNeg,
		models.BloodTypeOPos, models.BloodTypeONeg,
	},
	models.BloodTypeOPos: {
		models.BloodTypeAPos, models.BloodTypeBPos,
		models.BloodTypeABPos, models.BloodTypeOPos,
	},
	models.BloodTypeANeg: {
		models.BloodTypeAPos, models.BloodTypeANeg,
		models.BloodTypeABPos, models.BloodTypeABNeg,
	},
	models.BloodTypeAPos: {
		models.BloodTypeAPos, models.BloodTypeABPos,
	},
	models.BloodTypeBNeg: {
		models.BloodTypeBPos, models.BloodTypeBNeg,
		models.BloodTypeABPos, models.BloodTypeABNeg,
	},
	models.BloodTypeBPos: {
		models.BloodTypeBPos, models.BloodTypeABPos,
	},
	models.BloodTypeABNeg: {
		models.BloodTypeABPos, models.BloodTypeABNeg,
	},
	models.BloodTypeABPos: {
		models.BloodTypeABPos,
	},
}

// CanDonateTo reports whether blood of the donor's type can be given to a
// receiver of the given type. Unrecognized donor types are not compatible
// with anything.
func CanDonateTo(donor, receiver models.BloodType) bool {
	for _, r := range compatibleReceivers[donor] {
		if r == receiver {
			return true
		}
	}
	return false
}

// Cooldown thresholds in whole days between donations.
const (
	cooldownDaysMale  = 120
	cooldownDaysOther = 180
)

// CooldownDays returns the minimum number of whole days a donor of the given
// gender must wait between donations.
func CooldownDays(g models.Gender) int {
	if g == models.GenderMale {
		return cooldownDaysMale
	}
	return cooldownDaysOther
}

// IsEligible reports whether the user may donate at the given time.
// Only donors are eligible; a donor who has never donated is always
// eligible; otherwise the elapsed whole days since the last donation must
// reach the gender-specific cooldown.
func IsEligible(u *models.User, now time.Time) bool {
	if u == nil || !u.IsDonor() {
		return false
	}
	if u.LastDonatedAt == nil {
		return true
	}
	elapsedDays := int(now.Sub(*u.LastDonatedAt).Hours() / 24)
	return elapsedDays >= CooldownDays(u.Gender)
}
