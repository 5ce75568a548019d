package user

import (
	"errors"
	"strings"
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrVerificationIsNotConstructed is returned when a Verification instance was
// not created through the NewVerification or RestoreVerification factory methods.
var ErrVerificationIsNotConstructed = errors.New(
	"Verification must be created via NewVerification or RestoreVerification constructor",
)

// Verification is a one-shot email verification code bound to a user.
// A new code is issued on account creation and on every email change.
// The code is a random UUID with dashes stripped, matching the format
// clients already receive in verification links.
type Verification struct {
	id        int64
	code      string
	userID    int64
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewVerification issues a fresh verification code for the given user.
func NewVerification(userID int64) (*Verification, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}

	return &Verification{
		code:      strings.ReplaceAll(uuid.NewString(), "-", ""),
		userID:    userID,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreVerification reconstructs a Verification from persistence.
func RestoreVerification(id int64, code string, userID int64, createdAt time.Time) (*Verification, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}
	if code == "" {
		return nil, errs.NewValueIsRequiredError("code")
	}
	if userID <= 0 {
		return nil, errs.NewValueIsRequiredError("userID")
	}

	return &Verification{
		id:        id,
		code:      code,
		userID:    userID,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Verification instance was properly constructed.
func (v *Verification) Validate() error {
	if v == nil {
		return ErrVerificationIsNotConstructed
	}
	return v.guard.Validate(ErrVerificationIsNotConstructed)
}

// ID returns the storage identifier, or zero for an unpersisted verification.
func (v *Verification) ID() int64 {
	return v.id
}

// Code returns the verification code sent to the user.
func (v *Verification) Code() string {
	return v.code
}

// UserID returns the identifier of the user being verified.
func (v *Verification) UserID() int64 {
	return v.userID
}

// CreatedAt returns the issue time of the code.
func (v *Verification) CreatedAt() time.Time {
	return v.createdAt
}

// MarkPersisted records the identifier assigned by storage.
func (v *Verification) MarkPersisted(id int64) error {
	if v.id != 0 {
		return errs.NewValueIsInvalidError("id")
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	v.id = id
	return nil
}
