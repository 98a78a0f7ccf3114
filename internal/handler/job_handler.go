package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/dto"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/middleware"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/service"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/response"
)

// JobHandler handles job listing HTTP requests
type JobHandler struct {
	jobService service.JobService
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobService service.JobService) *JobHandler {
	return &JobHandler{jobService: jobService}
}

// Create publishes a new job listing
// POST /api/jobs
func (h *JobHandler) Create(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), claims, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleForbidden):
			response.Forbidden(c, "Only job providers can publish listings")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Created(c, dto.NewJobResponse(job))
}

// List returns the listings relevant to the caller
// GET /api/jobs
func (h *JobHandler) List(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	jobs, err := h.jobService.ListForUser(c.Request.Context(), claims)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	// empty list, not null
	items := make([]dto.JobResponse, 0, len(jobs))
	for _, job := range jobs {
		items = append(items, dto.NewJobResponse(job))
	}
	response.Success(c, items)
}

// Get returns a single listing
// GET /api/jobs/:id
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrJobNotFound) {
			response.NotFound(c, "Job not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, dto.NewJobResponse(job))
}

// Delete removes a listing owned by the caller
// DELETE /api/jobs/:id
func (h *JobHandler) Delete(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	err := h.jobService.Delete(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoleForbidden):
			response.Forbidden(c, "Only job providers can remove listings")
		case errors.Is(err, service.ErrJobNotFound):
			response.NotFound(c, "Job not found")
		default:
			response.InternalError(c, err)
		}
		return
	}

	response.Success(c, gin.H{"deleted": true})
}
