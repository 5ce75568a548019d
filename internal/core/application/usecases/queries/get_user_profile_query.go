package queries

import (
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/guard"
)

var (
	ErrGetUserProfileQueryIsNotConstructed = errors.New(
		"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
	)
	ErrUserIDIsInvalid = errors.New("user id must be greater than 0")
)

// GetUserProfileQuery retrieves the public profile of a user by id.
// Also serves the "me" endpoint, with the actor's own id.
type GetUserProfileQuery struct {
	userID int64

	guard guard.ConstructorGuard
}

// NewGetUserProfileQuery creates a query for a user profile.
func NewGetUserProfileQuery(userID int64) (GetUserProfileQuery, error) {
	if userID <= 0 {
		return GetUserProfileQuery{}, ErrUserIDIsInvalid
	}

	return GetUserProfileQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUserProfileQueryIsNotConstructed if validation fails.
func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

// UserID returns the requested user.
func (q GetUserProfileQuery) UserID() int64 {
	return q.userID
}

// GetUserProfileQueryResponse represents a user profile. The password hash
// never leaves the persistence layer through this query.
type GetUserProfileQueryResponse struct {
	ID       int64
	Email    string
	Role     string
	Verified bool
}
