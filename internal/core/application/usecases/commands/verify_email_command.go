package commands

import (
	"errors"
	"strings"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrVerifyEmailCommandIsNotConstructed = errors.New(
		"VerifyEmailCommand must be created via NewVerifyEmailCommand constructor",
	)
	ErrVerificationCodeIsRequired = errors.New("verification code is required")
)

// VerifyEmailCommand represents a request to confirm an email address
// with the code that was mailed to it.
type VerifyEmailCommand struct { //nolint:recvcheck //using for validation
	code string

	guard guard.ConstructorGuard
}

// NewVerifyEmailCommand creates a command to verify an email address.
func NewVerifyEmailCommand(code string) (VerifyEmailCommand, error) {
	verifyCommand := VerifyEmailCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := verifyCommand.setCode(code); err != nil {
		return VerifyEmailCommand{}, err
	}

	return verifyCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrVerifyEmailCommandIsNotConstructed if validation fails.
func (c VerifyEmailCommand) Validate() error {
	return c.guard.Validate(ErrVerifyEmailCommandIsNotConstructed)
}

// Code returns the mailed verification code.
func (c VerifyEmailCommand) Code() string {
	return c.code
}

func (c *VerifyEmailCommand) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrVerificationCodeIsRequired
	}

	c.code = code
	return nil
}
