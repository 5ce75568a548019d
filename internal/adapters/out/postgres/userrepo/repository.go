package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
	"github.com/ghk0409/ongs-eats-backend/internal/pkg/errs"

	"gorm.io/gorm"
)

var ErrEmailIsTaken = errors.New("email is already taken")

// GormUserRepository implements ports.UserRepository using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

// Add saves a new user and records the database-assigned id on the aggregate.
func (r *GormUserRepository) Add(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsTaken)
		}
		return err
	}

	return aggregate.MarkPersisted(dto.ID)
}

// Update saves an existing user to the database.
func (r *GormUserRepository) Update(ctx context.Context, aggregate *user.User) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&UserDTO{}).Where("id = ?", dto.ID).
		Select("email", "password_hash", "verified").
		Updates(map[string]any{
			"email":         dto.Email,
			"password_hash": dto.PasswordHash,
			"verified":      dto.Verified,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsTaken)
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("userID", aggregate.ID())
	}

	return nil
}

// Get retrieves a user by id.
func (r *GormUserRepository) Get(ctx context.Context, id int64) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("userID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByEmail retrieves a user by email.
func (r *GormUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByEmail reports whether an account with the email exists.
func (r *GormUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserDTO{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GormVerificationRepository implements ports.VerificationRepository using GORM.
type GormVerificationRepository struct {
	db *gorm.DB
}

// NewGormVerificationRepository creates a new GORM verification repository.
func NewGormVerificationRepository(db *gorm.DB) *GormVerificationRepository {
	return &GormVerificationRepository{db: db}
}

// Add saves a new verification code and records the assigned id on the aggregate.
func (r *GormVerificationRepository) Add(ctx context.Context, aggregate *user.Verification) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := verificationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	return aggregate.MarkPersisted(dto.ID)
}

// GetByCode retrieves a verification by its code.
func (r *GormVerificationRepository) GetByCode(ctx context.Context, code string) (*user.Verification, error) {
	var dto VerificationDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("code", code)
		}
		return nil, err
	}

	return verificationToDomain(dto)
}

// Delete removes a verification by id.
func (r *GormVerificationRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&VerificationDTO{}, "id = ?", id).Error
}

// DeleteForUser removes any verification bound to the user.
func (r *GormVerificationRepository) DeleteForUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Delete(&VerificationDTO{}, "user_id = ?", userID).Error
}

// DeleteOlderThan removes verifications issued before the cutoff and returns
// how many were purged.
func (r *GormVerificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&VerificationDTO{}, "created_at < ?", cutoff)
	return result.RowsAffected, result.Error
}
