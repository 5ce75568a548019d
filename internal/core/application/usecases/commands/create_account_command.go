package commands

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrCreateAccountCommandIsNotConstructed = errors.New(
		"CreateAccountCommand must be created via NewCreateAccountCommand constructor",
	)
	ErrEmailIsRequired    = errors.New("email is required")
	ErrPasswordIsRequired = errors.New("password is required")
	ErrEmailAlreadyTaken  = errors.New("there is already a user with that email")
)

// CreateAccountCommand represents a request to register a new account
// with one of the three roles.
type CreateAccountCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string
	role     user.Role

	guard guard.ConstructorGuard
}

// NewCreateAccountCommand creates a command to register a new account.
// The password travels in plain form inside the command and is hashed by
// the handler before it ever reaches a repository.
func NewCreateAccountCommand(email, password string, role user.Role) (CreateAccountCommand, error) {
	accountCommand := CreateAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		accountCommand.setEmail(email),
		accountCommand.setPassword(password),
		accountCommand.setRole(role),
	); err != nil {
		return CreateAccountCommand{}, err
	}

	return accountCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateAccountCommandIsNotConstructed if validation fails.
func (c CreateAccountCommand) Validate() error {
	return c.guard.Validate(ErrCreateAccountCommandIsNotConstructed)
}

// Email returns the registration email.
func (c CreateAccountCommand) Email() string {
	return c.email
}

// Password returns the plain password to hash.
func (c CreateAccountCommand) Password() string {
	return c.password
}

// Role returns the requested account role.
func (c CreateAccountCommand) Role() user.Role {
	return c.role
}

func (c *CreateAccountCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *CreateAccountCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}

func (c *CreateAccountCommand) setRole(role user.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
