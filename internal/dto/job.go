package dto

import (
	"time"

	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
)

// CreateJobRequest represents a new job listing payload
type CreateJobRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Categories  []string `json:"categories" binding:"required,min=1"`
	Location    string   `json:"location" binding:"required"`
	PriceRate   float64  `json:"priceRate" binding:"required,gt=0"`
	ScheduledAt string   `json:"scheduledAt"`
}

// ScheduledTime parses the optional RFC3339 scheduled timestamp.
// An absent timestamp is a zero time, not an error.
func (r *CreateJobRequest) ScheduledTime() (time.Time, error) {
	if r.ScheduledAt == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, r.ScheduledAt)
}

// JobResponse represents a job listing in API responses
type JobResponse struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	Location    string    `json:"location"`
	PriceRate   float64   `json:"price_rate"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewJobResponse converts a domain job to its API representation
func NewJobResponse(job *domain.Job) JobResponse {
	return JobResponse{
		ID:          job.ID,
		ProviderID:  job.ProviderID,
		Title:       job.Title,
		Description: job.Description,
		Categories:  job.Categories,
		Location:    job.Location,
		PriceRate:   job.PriceRate,
		Status:      string(job.Status),
		ScheduledAt: job.ScheduledAt,
		CreatedAt:   job.CreatedAt,
	}
}
