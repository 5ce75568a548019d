package commands

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrEditProfileCommandIsNotConstructed = errors.New(
		"EditProfileCommand must be created via NewEditProfileCommand constructor",
	)
	ErrNoProfileChanges = errors.New("at least one of email or password must be provided")
)

// EditProfileCommand represents a request to change the actor's own email,
// password, or both. Nil fields are left untouched.
type EditProfileCommand struct { //nolint:recvcheck //using for validation
	actor    *user.User
	email    *string
	password *string

	guard guard.ConstructorGuard
}

// NewEditProfileCommand creates a command to update the actor's profile.
// At least one change must be requested.
func NewEditProfileCommand(actor *user.User, email, password *string) (EditProfileCommand, error) {
	profileCommand := EditProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		profileCommand.setActor(actor),
		profileCommand.setChanges(email, password),
	); err != nil {
		return EditProfileCommand{}, err
	}

	return profileCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrEditProfileCommandIsNotConstructed if validation fails.
func (c EditProfileCommand) Validate() error {
	return c.guard.Validate(ErrEditProfileCommandIsNotConstructed)
}

// Actor returns the user editing their own profile.
func (c EditProfileCommand) Actor() *user.User {
	return c.actor
}

// Email returns the new email, or nil to keep the current one.
func (c EditProfileCommand) Email() *string {
	return c.email
}

// Password returns the new plain password, or nil to keep the current one.
func (c EditProfileCommand) Password() *string {
	return c.password
}

func (c *EditProfileCommand) setActor(actor *user.User) error {
	if actor == nil {
		return ErrActorIsRequired
	}

	c.actor = actor
	return nil
}

func (c *EditProfileCommand) setChanges(email, password *string) error {
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			return ErrEmailIsRequired
		}
		c.email = &trimmed
	}

	if password != nil {
		if *password == "" {
			return ErrPasswordIsRequired
		}
		c.password = password
	}

	if c.email == nil && c.password == nil {
		return ErrNoProfileChanges
	}

	return nil
}
