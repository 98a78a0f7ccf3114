package repository

import (
	"context"

	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)
	// GetByEmailOrUsername retrieves the first user whose email or
	// username matches the identifier
	GetByEmailOrUsername(ctx context.Context, identifier string) (*domain.User, error)
	// ExistsByEmail checks if a user exists with the given email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// Update updates a user
	Update(ctx context.Context, user *domain.User) error
}

// JobRepository defines the interface for job listing data access
type JobRepository interface {
	// Create creates a new job listing
	Create(ctx context.Context, job *domain.Job) error
	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	// ListByProvider retrieves a provider's listings, newest first
	ListByProvider(ctx context.Context, providerID string) ([]*domain.Job, error)
	// ListOpen retrieves open listings, newest first
	ListOpen(ctx context.Context) ([]*domain.Job, error)
	// Delete removes a listing owned by providerID; reports whether a
	// row was deleted
	Delete(ctx context.Context, id, providerID string) (bool, error)
}
