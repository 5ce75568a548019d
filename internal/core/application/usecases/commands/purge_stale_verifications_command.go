package commands

import (
	"errors"
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrPurgeStaleVerificationsCommandIsNotConstructed = errors.New(
		"PurgeStaleVerificationsCommand must be created via NewPurgeStaleVerificationsCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// PurgeStaleVerificationsCommand represents a maintenance request to drop
// verification codes older than a maximum age. Issued by the background
// scheduler, not by users.
type PurgeStaleVerificationsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeStaleVerificationsCommand creates a command to purge stale codes.
func NewPurgeStaleVerificationsCommand(maxAge time.Duration) (PurgeStaleVerificationsCommand, error) {
	purgeCommand := PurgeStaleVerificationsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := purgeCommand.setMaxAge(maxAge); err != nil {
		return PurgeStaleVerificationsCommand{}, err
	}

	return purgeCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPurgeStaleVerificationsCommandIsNotConstructed if validation fails.
func (c PurgeStaleVerificationsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleVerificationsCommandIsNotConstructed)
}

// MaxAge returns how old a code may be before it is purged.
func (c PurgeStaleVerificationsCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *PurgeStaleVerificationsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
