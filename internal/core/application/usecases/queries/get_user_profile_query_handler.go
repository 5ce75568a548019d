package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetUserProfileQueryHandler reads user profiles from the database.
type GetUserProfileQueryHandler struct {
	db *gorm.DB
}

// NewGetUserProfileQueryHandler creates a handler for profile reads.
func NewGetUserProfileQueryHandler(db *gorm.DB) GetUserProfileQueryHandler {
	return GetUserProfileQueryHandler{db: db}
}

// Handle executes the profile read.
func (h GetUserProfileQueryHandler) Handle(
	ctx context.Context,
	query GetUserProfileQuery,
) (GetUserProfileQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetUserProfileQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT id, email, role, verified
		FROM users
		WHERE id = ?
	`, query.UserID()).Row()

	var resp GetUserProfileQueryResponse
	err := row.Scan(&resp.ID, &resp.Email, &resp.Role, &resp.Verified)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetUserProfileQueryResponse{}, errs.NewObjectNotFoundError("userID", query.UserID())
		}
		return GetUserProfileQueryResponse{}, err
	}

	return resp, nil
}
