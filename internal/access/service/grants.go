package service

import (
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/utn-integrador-III/security-service/internal/access/domain"
	autherror "github.com/utn-integrador-III/security-service/internal/errors"
	"github.com/utn-integrador-III/security-service/pkg/constant"
)

// CodeGenerator produces a one-time verification code. Both policies below
// are in use and codes issued by either must stay valid.
type CodeGenerator func() string

// CryptoCode is the generator used by the single-pair enrollment shape and
// the password-reset flow.
func CryptoCode() string {
	return uuid.NewString()
}

// NumericCode is the generator used by the batch enrollment shape: a 6-digit
// code in [100000, 999999].
func NumericCode() string {
	return strconv.Itoa(rand.IntN(900000) + 100000)
}

// BuildGrant assembles a fresh Pending grant for a resolved (role, app) pair.
// The code expires CodeTTL after creation.
func BuildGrant(roleID, appID bson.ObjectID, generate CodeGenerator) (domain.Grant, error) {
	if roleID.IsZero() || appID.IsZero() {
		return domain.Grant{}, autherror.ErrMissingAssignment
	}

	return domain.Grant{
		Role:            roleID,
		App:             appID,
		Code:            generate(),
		Token:           "",
		Status:          domain.StatusPending,
		CodeExpiration:  time.Now().UTC().Add(constant.CodeTTL).Format(constant.CodeExpirationLayout),
		IsSessionActive: false,
	}, nil
}

// IsDuplicate reports whether a grant for the candidate's (role, app) pair
// already exists, comparing canonical IDs as strings. The existing grant's
// status is irrelevant: even an Inactive grant blocks re-enrollment.
func IsDuplicate(existing []domain.Grant, candidate domain.Grant) bool {
	for _, g := range existing {
		if g.Role.Hex() == candidate.Role.Hex() && g.App.Hex() == candidate.App.Hex() {
			return true
		}
	}
	return false
}
