package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/config"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/dto"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/middleware"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/service"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/internal/token"
	"github.com/r3gulus-4rcturus/temu-kerja-sub001/pkg/response"
)

// sessionCookieName is the cookie the browser carries between requests.
const sessionCookieName = "token"

// AuthHandler handles account and session HTTP requests.
//
// The register/login/logout endpoints keep the flat {"error": "..."} and
// {"message": "..."} bodies the web client already parses, so they bypass
// the response envelope used everywhere else.
type AuthHandler struct {
	authService service.AuthService
	tokens      *token.Manager
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService service.AuthService, tokens *token.Manager, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, tokens: tokens, cfg: cfg}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionToken string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, sessionToken, int(h.tokens.TTL().Seconds()), "/", "", h.cfg.IsProduction(), true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	// maxAge -1 renders as Max-Age=0, expiring the cookie immediately
	c.SetCookie(sessionCookieName, "", -1, "/", "", h.cfg.IsProduction(), true)
}

// Register handles account creation
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	if valid, msg := req.ValidatePasswords(); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if valid, msg := req.ValidateRole(); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}
	if valid, msg := req.ValidateEmail(); !valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{ID: user.ID, Email: user.Email})
}

// Login handles credential verification and starts a session
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email/username and password are required."})
		return
	}

	user, sessionToken, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
		case errors.Is(err, service.ErrIncorrectPassword):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong. Please try again."})
		}
		return
	}

	h.setSessionCookie(c, sessionToken)
	c.JSON(http.StatusOK, dto.LoginResponse{Message: "Login successful", Role: string(user.Role)})
}

// Logout ends the session by expiring the cookie
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

// Me returns the profile behind the current session
// GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.ClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, "User not found")
			return
		}
		response.InternalError(c, err)
		return
	}

	response.Success(c, dto.MeResponse{
		ID:       user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		City:     user.City,
		Province: user.Province,
	})
}
