package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/dto"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/middleware"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/service"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/response"
)

// stubJobService is a stub implementation of service.JobService
type stubJobService struct {
	createJob *domain.Job
	createErr error
	listJobs  []*domain.Job
	listErr   error
	getJob    *domain.Job
	getErr    error
	deleteErr error
}

func (s *stubJobService) Create(ctx context.Context, claims *domain.Claims, req *dto.CreateJobRequest) (*domain.Job, error) {
	return s.createJob, s.createErr
}

func (s *stubJobService) ListForUser(ctx context.Context, claims *domain.Claims) ([]*domain.Job, error) {
	return s.listJobs, s.listErr
}

func (s *stubJobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	return s.getJob, s.getErr
}

func (s *stubJobService) Delete(ctx context.Context, claims *domain.Claims, id string) error {
	return s.deleteErr
}

// withClaims fakes what the session gate does for an authenticated request
func withClaims(userID string, role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextKeyUserID, userID)
		c.Set(middleware.ContextKeyRole, string(role))
		c.Next()
	}
}

func jobTestRouter(svc service.JobService, authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewJobHandler(svc)

	router := gin.New()
	group := router.Group("/api/jobs")
	if authed {
		group.Use(withClaims("provider-1", domain.RoleJobProvider))
	}
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.DELETE("/:id", h.Delete)
	return router
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	return resp
}

func TestJobHandler_Create(t *testing.T) {
	body := `{"title":"Perbaikan pagar","description":"Pagar depan roboh","categories":["renovasi"],"location":"Depok","priceRate":200000}`

	t.Run("created", func(t *testing.T) {
		svc := &stubJobService{createJob: &domain.Job{ID: "j1", ProviderID: "provider-1", Status: domain.JobStatusOpen}}
		router := jobTestRouter(svc, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201, body = %s", w.Code, w.Body.String())
		}
		resp := decodeEnvelope(t, w)
		if !resp.Success {
			t.Error("envelope success = false")
		}
	})

	t.Run("seeker forbidden", func(t *testing.T) {
		svc := &stubJobService{createErr: service.ErrRoleForbidden}
		router := jobTestRouter(svc, true)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d, want 403", w.Code)
		}
		resp := decodeEnvelope(t, w)
		if resp.Error == nil || resp.Error.Code != "FORBIDDEN" {
			t.Errorf("error = %+v", resp.Error)
		}
	})

	t.Run("no claims", func(t *testing.T) {
		router := jobTestRouter(&stubJobService{}, false)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/jobs", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
	})
}

func TestJobHandler_List(t *testing.T) {
	t.Run("empty list is an array", func(t *testing.T) {
		router := jobTestRouter(&stubJobService{}, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"data":[]`) {
			t.Errorf("empty list should serialize to [], body = %s", w.Body.String())
		}
	})

	t.Run("lists jobs", func(t *testing.T) {
		svc := &stubJobService{listJobs: []*domain.Job{
			{ID: "j1", ProviderID: "provider-1", Status: domain.JobStatusOpen},
			{ID: "j2", ProviderID: "provider-1", Status: domain.JobStatusOpen},
		}}
		router := jobTestRouter(svc, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
		resp := decodeEnvelope(t, w)
		items, ok := resp.Data.([]interface{})
		if !ok || len(items) != 2 {
			t.Errorf("data = %+v, want 2 items", resp.Data)
		}
	})
}

func TestJobHandler_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		router := jobTestRouter(&stubJobService{deleteErr: service.ErrJobNotFound}, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/jobs/j9", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
	})

	t.Run("deleted", func(t *testing.T) {
		router := jobTestRouter(&stubJobService{}, true)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/jobs/j1", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", w.Code)
		}
	})
}
