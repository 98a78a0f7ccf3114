package domain

import (
	"time"
)

// JobStatus represents the lifecycle state of a job listing
type JobStatus string

const (
	JobStatusOpen     JobStatus = "open"
	JobStatusAssigned JobStatus = "assigned"
	JobStatusClosed   JobStatus = "closed"
)

// Job represents a job listing published by a provider
type Job struct {
	ID          string    `json:"id"`
	ProviderID  string    `json:"provider_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Categories  []string  `json:"categories"`
	Location    string    `json:"location"`
	PriceRate   float64   `json:"price_rate"`
	Status      JobStatus `json:"status"`
	ScheduledAt time.Time `json:"scheduled_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
