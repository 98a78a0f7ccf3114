package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/config"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/domain"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/dto"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/service"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/token"
)

// stubAuthService is a stub implementation of service.AuthService
type stubAuthService struct {
	registerUser *domain.User
	registerErr  error
	loginUser    *domain.User
	loginToken   string
	loginErr     error
	currentUser  *domain.User
	currentErr   error
}

func (s *stubAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*domain.User, error) {
	return s.registerUser, s.registerErr
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*domain.User, string, error) {
	return s.loginUser, s.loginToken, s.loginErr
}

func (s *stubAuthService) CurrentUser(ctx context.Context, claims *domain.Claims) (*domain.User, error) {
	return s.currentUser, s.currentErr
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "temu-kerja", Environment: "development"},
	}
}

func authTestRouter(svc service.AuthService) (*gin.Engine, *token.Manager) {
	gin.SetMode(gin.TestMode)
	tokens := token.NewManager("handler-secret", 7*24*time.Hour)
	h := NewAuthHandler(svc, tokens, testConfig())

	router := gin.New()
	router.POST("/api/register", h.Register)
	router.POST("/api/login", h.Login)
	router.POST("/api/logout", h.Logout)
	return router, tokens
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func validRegisterBody() map[string]any {
	return map[string]any{
		"username":        "budi",
		"password":        "Password1!",
		"confirmPassword": "Password1!",
		"role":            "jobseeker",
		"personalInfo": map[string]any{
			"fullName":    "Budi Santoso",
			"email":       "budi@example.com",
			"phoneNumber": "081234567890",
			"address":     "Jl. Sudirman 1",
			"province":    "DKI Jakarta",
			"city":        "Jakarta Selatan",
		},
	}
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success returns id and email", func(t *testing.T) {
		svc := &stubAuthService{registerUser: &domain.User{ID: "u1", Email: "budi@example.com"}}
		router, _ := authTestRouter(svc)

		w := postJSON(router, "/api/register", validRegisterBody())

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
		}
		var resp dto.RegisterResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.ID != "u1" || resp.Email != "budi@example.com" {
			t.Errorf("body = %+v", resp)
		}
		if len(w.Result().Cookies()) != 0 {
			t.Error("register should not set a session cookie")
		}
	})

	t.Run("password mismatch", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{})
		body := validRegisterBody()
		body["confirmPassword"] = "Different1!"

		w := postJSON(router, "/api/register", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "Passwords do not match." {
			t.Errorf("error = %q", resp["error"])
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{})
		body := validRegisterBody()
		body["role"] = "admin"

		w := postJSON(router, "/api/register", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "Role must be jobseeker or jobprovider." {
			t.Errorf("error = %q", resp["error"])
		}
	})

	t.Run("bad email", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{})
		body := validRegisterBody()
		body["personalInfo"].(map[string]any)["email"] = "not-an-email"

		w := postJSON(router, "/api/register", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("duplicate email maps to 400", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{registerErr: service.ErrEmailTaken})

		w := postJSON(router, "/api/register", validRegisterBody())
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{})

		w := postJSON(router, "/api/register", map[string]any{"username": "budi"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success sets session cookie", func(t *testing.T) {
		svc := &stubAuthService{
			loginUser:  &domain.User{ID: "u1", Role: domain.RoleJobProvider},
			loginToken: "session-token-value",
		}
		router, tokens := authTestRouter(svc)

		w := postJSON(router, "/api/login", map[string]any{
			"emailOrUsername": "budi@example.com",
			"password":        "Password1!",
		})

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200, body = %s", w.Code, w.Body.String())
		}

		var resp dto.LoginResponse
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if resp.Message != "Login successful" {
			t.Errorf("message = %q, want Login successful", resp.Message)
		}
		if resp.Role != "jobprovider" {
			t.Errorf("role = %q, want jobprovider", resp.Role)
		}

		cookies := w.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("got %d cookies, want 1", len(cookies))
		}
		cookie := cookies[0]
		if cookie.Name != "token" || cookie.Value != "session-token-value" {
			t.Errorf("cookie = %s=%s", cookie.Name, cookie.Value)
		}
		if !cookie.HttpOnly {
			t.Error("cookie should be HttpOnly")
		}
		if cookie.Secure {
			t.Error("cookie should not be Secure outside production")
		}
		if cookie.Path != "/" {
			t.Errorf("cookie Path = %q, want /", cookie.Path)
		}
		if cookie.SameSite != http.SameSiteLaxMode {
			t.Errorf("cookie SameSite = %v, want Lax", cookie.SameSite)
		}
		if want := int(tokens.TTL().Seconds()); cookie.MaxAge != want {
			t.Errorf("cookie MaxAge = %d, want %d", cookie.MaxAge, want)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{loginErr: service.ErrUserNotFound})

		w := postJSON(router, "/api/login", map[string]any{
			"emailOrUsername": "ghost@example.com",
			"password":        "Password1!",
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "User not found." {
			t.Errorf("error = %q", resp["error"])
		}
		if len(w.Result().Cookies()) != 0 {
			t.Error("failed login should not set a cookie")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{loginErr: service.ErrIncorrectPassword})

		w := postJSON(router, "/api/login", map[string]any{
			"emailOrUsername": "budi@example.com",
			"password":        "Wrong1!",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want 401", w.Code)
		}
		var resp map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["error"] != "Incorrect password." {
			t.Errorf("error = %q", resp["error"])
		}
		if len(w.Result().Cookies()) != 0 {
			t.Error("failed login should not set a cookie")
		}
	})

	t.Run("missing fields", func(t *testing.T) {
		router, _ := authTestRouter(&stubAuthService{})

		w := postJSON(router, "/api/login", map[string]any{"emailOrUsername": "budi"})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	router, _ := authTestRouter(&stubAuthService{})

	w := postJSON(router, "/api/logout", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["message"] != "Logout successful" {
		t.Errorf("message = %q, want Logout successful", resp["message"])
	}

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("got %d cookies, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != "token" || cookie.Value != "" {
		t.Errorf("cookie = %s=%q, want empty token", cookie.Name, cookie.Value)
	}
	if cookie.MaxAge != 0 && cookie.MaxAge != -1 {
		t.Errorf("cookie MaxAge = %d, want expired", cookie.MaxAge)
	}
	if !cookie.HttpOnly {
		t.Error("cookie should stay HttpOnly")
	}
}
