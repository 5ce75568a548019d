package commands

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrLoginCommandIsNotConstructed = errors.New(
		"LoginCommand must be created via NewLoginCommand constructor",
	)
	ErrWrongPassword = errors.New("wrong password")
)

// LoginCommand represents an authentication attempt with email credentials.
type LoginCommand struct { //nolint:recvcheck //using for validation
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a command to authenticate a user.
func NewLoginCommand(email, password string) (LoginCommand, error) {
	loginCommand := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loginCommand.setEmail(email),
		loginCommand.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return loginCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrLoginCommandIsNotConstructed if validation fails.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Email returns the login email.
func (c LoginCommand) Email() string {
	return c.email
}

// Password returns the plain password to check.
func (c LoginCommand) Password() string {
	return c.password
}

func (c *LoginCommand) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return ErrPasswordIsRequired
	}

	c.password = password
	return nil
}
