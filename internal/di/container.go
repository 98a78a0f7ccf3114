package di

import (
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/config"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/handler"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/repository"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/service"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/token"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/database"
)

// Container holds all dependencies for the service
type Container struct {
	// Infrastructure
	DB     *database.PostgresDB
	Tokens *token.Manager

	// Repositories
	UserRepo repository.UserRepository
	JobRepo  repository.JobRepository

	// Services
	AuthService service.AuthService
	JobService  service.JobService

	// Handlers
	HealthHandler *handler.HealthHandler
	AuthHandler   *handler.AuthHandler
	JobHandler    *handler.JobHandler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, db *database.PostgresDB) *Container {
	c := &Container{
		DB:     db,
		Tokens: token.NewManager(cfg.JWT.Secret, cfg.JWT.SessionTTL),
	}

	// Repositories
	c.UserRepo = repository.NewPostgresUserRepository(db.Pool())
	c.JobRepo = repository.NewPostgresJobRepository(db.Pool())

	// Services
	c.AuthService = service.NewAuthService(c.UserRepo, c.Tokens, &service.AuthServiceConfig{
		BcryptCost: cfg.JWT.BcryptCost,
	})
	c.JobService = service.NewJobService(c.JobRepo)

	// Handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService, c.Tokens, cfg)
	c.JobHandler = handler.NewJobHandler(c.JobService)

	return c
}
