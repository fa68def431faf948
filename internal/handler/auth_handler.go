package handler

import (
	"errors"
	"net/http"

	"wildcats_backend/internal/middleware"
	"wildcats_backend/internal/model"
	"wildcats_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler handles authentication requests
type AuthHandler struct {
	service    service.AuthService
	logger     zerolog.Logger
	production bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, logger zerolog.Logger, production bool) *AuthHandler {
	return &AuthHandler{service: s, logger: logger, production: production}
}

// LoginAdmin handles POST /login for the configured operator accounts.
func (h *AuthHandler) LoginAdmin(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedJSON(c)
		return
	}

	token, role, err := h.service.LoginAdmin(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "role": role})
}

// RegisterClient handles POST /client/register.
func (h *AuthHandler) RegisterClient(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedJSON(c)
		return
	}

	_, err := h.service.RegisterClient(req.Username, req.Email, req.Password)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Errors})
			return
		}
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("client registration failed")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
}

// LoginClient handles POST /client/login. Clients may log in with either
// username or email in the username field.
func (h *AuthHandler) LoginClient(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedJSON(c)
		return
	}

	client, token, err := h.service.LoginClient(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		h.logger.Error().Err(err).Msg("client login failed")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": client.PublicView()})
}

// Me handles GET /me from the verified token claims.
func (h *AuthHandler) Me(c *gin.Context) {
	user := gin.H{
		"username": c.GetString(middleware.AuthUserKey),
		"role":     c.GetString(middleware.AuthRoleKey),
	}
	if id := c.GetString(middleware.AuthIDKey); id != "" {
		user["id"] = id
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// RegisterAuthRoutes registers auth routes
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW, strictLimitMW gin.HandlerFunc) {
	rg.POST("/login", strictLimitMW, h.LoginAdmin)
	rg.POST("/client/register", strictLimitMW, h.RegisterClient)
	rg.POST("/client/login", strictLimitMW, h.LoginClient)
	rg.GET("/me", authMW, h.Me)
}
