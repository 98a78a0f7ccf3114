package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/dto"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/repository"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/service"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/logger"
	"go.uber.org/zap"
)

type demoUser struct {
	username string
	password string
	role     string
	fullName string
	city     string
	province string
}

var demoUsers = []demoUser{
	{username: "budi_provider", password: "password123", role: "jobprovider", fullName: "Budi Santoso", city: "Jakarta Selatan", province: "DKI Jakarta"},
	{username: "siti_seeker", password: "password123", role: "jobseeker", fullName: "Siti Rahma", city: "Bandung", province: "Jawa Barat"},
}

// DemoData inserts a couple of demo accounts and one open listing so a
// fresh install has something to show. Inserts are skipped when the
// account already exists, so restarts are safe.
func DemoData(ctx context.Context, authSvc service.AuthService, userRepo repository.UserRepository, jobRepo repository.JobRepository) error {
	log := logger.Get()

	var providerID string
	for _, du := range demoUsers {
		existing, err := userRepo.GetByEmailOrUsername(ctx, du.username)
		if err != nil {
			return fmt.Errorf("check demo user %s: %w", du.username, err)
		}
		if existing != nil {
			if existing.Role == domain.RoleJobProvider {
				providerID = existing.ID
			}
			continue
		}

		user, err := authSvc.Register(ctx, &dto.RegisterRequest{
			Username:        du.username,
			Password:        du.password,
			ConfirmPassword: du.password,
			Role:            du.role,
			PersonalInfo: dto.PersonalInfo{
				FullName:    du.fullName,
				Email:       du.username + "@example.com",
				PhoneNumber: "081200000000",
				Address:     "Jl. Merdeka 1",
				Province:    du.province,
				City:        du.city,
			},
		})
		if err != nil {
			return fmt.Errorf("insert demo user %s: %w", du.username, err)
		}
		if user.Role == domain.RoleJobProvider {
			providerID = user.ID
		}
		log.Info("seeded demo user", zap.String("username", du.username), zap.String("role", du.role))
	}

	if providerID == "" {
		return nil
	}

	jobs, err := jobRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return fmt.Errorf("list demo jobs: %w", err)
	}
	if len(jobs) > 0 {
		return nil
	}

	now := time.Now()
	job := &domain.Job{
		ID:          uuid.New().String(),
		ProviderID:  providerID,
		Title:       "Bersih-bersih rumah dua lantai",
		Description: "Butuh bantuan bersih-bersih rumah menjelang akhir pekan.",
		Categories:  []string{"kebersihan"},
		Location:    "Jakarta Selatan",
		PriceRate:   150000,
		Status:      domain.JobStatusOpen,
		ScheduledAt: now.AddDate(0, 0, 7),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := jobRepo.Create(ctx, job); err != nil {
		return fmt.Errorf("insert demo job: %w", err)
	}
	log.Info("seeded demo job", zap.String("job_id", job.ID))
	return nil
}
