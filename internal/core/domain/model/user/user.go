package user

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not created
	// through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrUserAlreadyPersisted is returned when MarkPersisted is called on a
	// user that already carries a storage identifier.
	ErrUserAlreadyPersisted = errors.New("user already has an identifier")
)

// User is the aggregate root for an account in the system.
//
// User follows these invariants:
//   - Email must be present and syntactically plausible
//   - The credential is only ever held in hashed form
//   - Role must be one of the concrete roles (Customer, Owner, Delivery)
//   - Changing the email resets the verified flag
//   - Can only be created through NewUser or RestoreUser
//
// The identifier is assigned by storage on first persist; a freshly
// constructed user has ID zero until the repository calls MarkPersisted.
type User struct {
	id           int64
	email        string
	passwordHash string
	role         Role
	verified     bool

	guard guard.ConstructorGuard
}

// NewUser creates a new, unpersisted User with validation. The password must
// already be hashed by the external hashing capability; the domain never sees
// plain credentials.
func NewUser(email, passwordHash string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persistence. Used by repositories when
// mapping stored rows back to the domain.
func RestoreUser(id int64, email, passwordHash string, role Role, verified bool) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsRequiredError("id")
	}

	u, err := NewUser(email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	u.id = id
	u.verified = verified
	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

// ID returns the storage identifier, or zero for an unpersisted user.
func (u *User) ID() int64 {
	return u.id
}

// Email returns the account email.
func (u *User) Email() string {
	return u.email
}

// PasswordHash returns the hashed credential.
// Transport layers must never serialize this value.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// Role returns the account role.
func (u *User) Role() Role {
	return u.role
}

// Verified reports whether the account email has been verified.
func (u *User) Verified() bool {
	return u.verified
}

// MarkPersisted records the identifier assigned by storage.
// Called by repositories after the first insert; fails if an identifier
// was already assigned.
func (u *User) MarkPersisted(id int64) error {
	if u.id != 0 {
		return ErrUserAlreadyPersisted
	}
	if id <= 0 {
		return errs.NewValueIsRequiredError("id")
	}
	u.id = id
	return nil
}

// ChangeEmail updates the account email and resets the verified flag.
// The caller is responsible for issuing a fresh verification code.
func (u *User) ChangeEmail(email string) error {
	if err := u.setEmail(email); err != nil {
		return err
	}
	u.verified = false
	return nil
}

// ChangePassword replaces the hashed credential.
func (u *User) ChangePassword(passwordHash string) error {
	return u.setPasswordHash(passwordHash)
}

// MarkVerified records a successful email verification.
func (u *User) MarkVerified() {
	u.verified = true
}

func (u *User) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !strings.Contains(email, "@") {
		return errs.NewValueIsInvalidError("email")
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(passwordHash string) error {
	if passwordHash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = passwordHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
