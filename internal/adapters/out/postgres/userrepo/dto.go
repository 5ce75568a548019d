// Package userrepo provides data transfer objects and mapping functions for
// user and verification persistence. It implements the repository pattern for
// the user domain aggregate, handling the conversion between domain entities
// and database representations.
package userrepo

import (
	"time"

	"github.com/ghk0409/ongs-eats-backend/internal/core/domain/model/user"
)

// UserDTO represents the database structure for persisting user aggregates.
// The email column carries a unique index; the database is the final arbiter
// of email uniqueness under concurrent registration.
type UserDTO struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;index"`
	Verified     bool   `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for user entities.
func (UserDTO) TableName() string {
	return "users"
}

// VerificationDTO represents the database structure for email verification
// codes. A user holds at most one live code; deleting the user cascades to
// the code.
type VerificationDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Code      string    `gorm:"uniqueIndex;not null"`
	UserID    int64     `gorm:"uniqueIndex;not null"`
	User      *UserDTO  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for verification entities.
func (VerificationDTO) TableName() string {
	return "verifications"
}

func fromDomain(aggregate *user.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID(),
		Email:        aggregate.Email(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Verified:     aggregate.Verified(),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	return user.RestoreUser(dto.ID, dto.Email, dto.PasswordHash, role, dto.Verified)
}

func verificationFromDomain(aggregate *user.Verification) VerificationDTO {
	return VerificationDTO{
		ID:        aggregate.ID(),
		Code:      aggregate.Code(),
		UserID:    aggregate.UserID(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

func verificationToDomain(dto VerificationDTO) (*user.Verification, error) {
	return user.RestoreVerification(dto.ID, dto.Code, dto.UserID, dto.CreatedAt)
}
