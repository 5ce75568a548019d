// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, role check, transaction
// management, and persistence.
package commands

import (
	"context"

	"github.com/ghk0409/ongs-eats-backend/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// VerificationRepoFactory provides access to the email verification
	// repository within a transaction.
	VerificationRepoFactory interface {
		VerificationRepository() ports.VerificationRepository
	}

	// RestaurantRepoFactory provides access to the restaurant repository within a transaction.
	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// CategoryRepoFactory provides access to the category repository within a transaction.
	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	// DishRepoFactory provides access to the dish repository within a transaction.
	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserUoW manages transactions for account and verification operations.
	// Account creation writes the user and its verification code atomically.
	UserUoW interface {
		TxManager
		UserRepoFactory
		VerificationRepoFactory
	}

	// UserUoWFactory creates new user unit of work instances.
	UserUoWFactory interface {
		Create() UserUoW
	}

	// RestaurantUoW manages transactions for catalog operations:
	// restaurants, their categories and their dishes.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		CategoryRepoFactory
		DishRepoFactory
	}

	// RestaurantUoWFactory creates new restaurant unit of work instances.
	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// OrderUoW manages transactions for order placement and lifecycle.
	// Placing an order reads the catalog inside the same transaction
	// that writes the order, so catalog repositories are included.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		DishRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
