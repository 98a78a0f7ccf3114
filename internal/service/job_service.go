package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/dto"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/repository"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrJobNotFound   = errors.New("job not found")
	ErrRoleForbidden = errors.New("role not allowed for this operation")
)

// JobService defines the interface for job listing operations
type JobService interface {
	// Create publishes a new job listing owned by the provider
	Create(ctx context.Context, claims *domain.Claims, req *dto.CreateJobRequest) (*domain.Job, error)
	// ListForUser returns the listings relevant to the caller's role:
	// providers see their own listings, seekers see every open listing.
	ListForUser(ctx context.Context, claims *domain.Claims) ([]*domain.Job, error)
	// Get retrieves a single listing
	Get(ctx context.Context, id string) (*domain.Job, error)
	// Delete removes a listing owned by the caller
	Delete(ctx context.Context, claims *domain.Claims, id string) error
}

// jobService implements JobService
type jobService struct {
	jobRepo repository.JobRepository
}

// NewJobService creates a new JobService
func NewJobService(jobRepo repository.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

// Create publishes a new job listing owned by the provider
func (s *jobService) Create(ctx context.Context, claims *domain.Claims, req *dto.CreateJobRequest) (*domain.Job, error) {
	ctx, span := telemetry.StartSpan(ctx, "JobService.Create")
	defer span.End()

	if claims.Role != domain.RoleJobProvider {
		return nil, ErrRoleForbidden
	}

	scheduledAt, err := req.ScheduledTime()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	job := &domain.Job{
		ID:          uuid.New().String(),
		ProviderID:  claims.UserID,
		Title:       req.Title,
		Description: req.Description,
		Categories:  req.Categories,
		Location:    req.Location,
		PriceRate:   req.PriceRate,
		Status:      domain.JobStatusOpen,
		ScheduledAt: scheduledAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.String("job.id", job.ID))
	return job, nil
}

// ListForUser returns the listings relevant to the caller's role
func (s *jobService) ListForUser(ctx context.Context, claims *domain.Claims) ([]*domain.Job, error) {
	ctx, span := telemetry.StartSpan(ctx, "JobService.ListForUser")
	defer span.End()

	if claims.Role == domain.RoleJobProvider {
		return s.jobRepo.ListByProvider(ctx, claims.UserID)
	}
	return s.jobRepo.ListOpen(ctx)
}

// Get retrieves a single listing
func (s *jobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, ErrJobNotFound
	}
	return job, nil
}

// Delete removes a listing owned by the caller
func (s *jobService) Delete(ctx context.Context, claims *domain.Claims, id string) error {
	ctx, span := telemetry.StartSpan(ctx, "JobService.Delete")
	defer span.End()

	if claims.Role != domain.RoleJobProvider {
		return ErrRoleForbidden
	}

	deleted, err := s.jobRepo.Delete(ctx, id, claims.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	return nil
}
