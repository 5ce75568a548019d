package ports

import (
	"context"
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for user aggregates.
type UserRepository interface {
	// Add persists a new user and records the assigned identifier on the
	// aggregate. Fails when the email is already taken.
	Add(ctx context.Context, aggregate *user.User) error

	// Update persists changes to an existing user aggregate.
	Update(ctx context.Context, aggregate *user.User) error

	// Get retrieves a user by identifier.
	Get(ctx context.Context, id int64) (*user.User, error)

	// GetByEmail retrieves a user by email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)

	// ExistsByEmail reports whether an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// VerificationRepository defines the persistence contract for email
// verification codes.
type VerificationRepository interface {
	// Add persists a new verification code and records the assigned
	// identifier on the aggregate.
	Add(ctx context.Context, aggregate *user.Verification) error

	// GetByCode retrieves a verification by its code.
	GetByCode(ctx context.Context, code string) (*user.Verification, error)

	// Delete removes a verification by identifier.
	Delete(ctx context.Context, id int64) error

	// DeleteForUser removes any verification bound to the user.
	// Issuing a fresh code replaces the previous one.
	DeleteForUser(ctx context.Context, userID int64) error

	// DeleteOlderThan removes verifications issued before the cutoff and
	// returns how many were purged.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
