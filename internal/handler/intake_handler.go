package handler

import (
	"errors"
	"net/http"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// IntakeHandler handles submission and service-request endpoints.
type IntakeHandler struct {
	service    service.IntakeService
	logger     zerolog.Logger
	production bool
}

// NewIntakeHandler creates a new IntakeHandler
func NewIntakeHandler(s service.IntakeService, logger zerolog.Logger, production bool) *IntakeHandler {
	return &IntakeHandler{service: s, logger: logger, production: production}
}

// CreateSubmission handles the public contact form.
func (h *IntakeHandler) CreateSubmission(c *gin.Context) {
	var req model.CreateSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedJSON(c)
		return
	}

	submission, err := h.service.CreateSubmission(req, c.ClientIP())
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"errors": validationErr.Errors})
			return
		}
		h.logger.Error().Err(err).Msg("failed to save submission")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Submission saved successfully", "id": submission.ID})
}

// ListSubmissions returns every stored submission for the admin dashboard.
func (h *IntakeHandler) ListSubmissions(c *gin.Context) {
	submissions, err := h.service.ListSubmissions()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read submissions")
		respondServerError(c, h.production, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// CreatePublicServiceRequest handles the unauthenticated quote form.
func (h *IntakeHandler) CreatePublicServiceRequest(c *gin.Context) {
	var body model.PublicServiceRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondMalformedJSON(c)
		return
	}

	request, err := h.service.CreatePublicServiceRequest(body)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validationErr.Errors})
			return
		}
		h.logger.Error().Err(err).Msg("failed to save public service request")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    gin.H{"id": request.ID},
		"message": "Service request received, we will be in touch shortly",
	})
}

// CreateClientServiceRequest handles authenticated intake from the client
// dashboard.
func (h *IntakeHandler) CreateClientServiceRequest(c *gin.Context) {
	var body model.ClientServiceRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respondMalformedJSON(c)
		return
	}

	request, err := h.service.CreateClientServiceRequest(body)
	if err != nil {
		var validationErr *service.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "errors": validationErr.Errors})
			return
		}
		h.logger.Error().Err(err).Msg("failed to save client service request")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

// ListServiceRequests returns a user's service requests.
func (h *IntakeHandler) ListServiceRequests(c *gin.Context) {
	requests, err := h.service.ListServiceRequests(c.Param("id"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read service requests")
		respondServerError(c, h.production, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": requests})
}

// TransitionServiceRequest moves a request one step along its lifecycle.
// Admin only.
func (h *IntakeHandler) TransitionServiceRequest(c *gin.Context) {
	var body struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		respondMalformedJSON(c)
		return
	}

	request, err := h.service.TransitionServiceRequest(c.Param("id"), body.Status)
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
			return
		}
		if errors.Is(err, service.ErrBadTransition) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to transition service request")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": request})
}

// Dashboard aggregates a user's service requests.
func (h *IntakeHandler) Dashboard(c *gin.Context) {
	data, err := h.service.Dashboard(c.Param("userId"))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to build dashboard")
		respondServerError(c, h.production, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// RegisterIntakeRoutes registers submission and service-request routes
func (h *IntakeHandler) RegisterIntakeRoutes(rg *gin.RouterGroup, authMW, adminMW, strictLimitMW gin.HandlerFunc) {
	rg.POST("/submissions", strictLimitMW, h.CreateSubmission)
	rg.GET("/submissions", authMW, h.ListSubmissions)
	rg.POST("/public-service-request", strictLimitMW, h.CreatePublicServiceRequest)
	rg.POST("/service-request", authMW, h.CreateClientServiceRequest)
	// gin requires one wildcard name per segment, so both routes share :id
	// (the GET treats it as the user id)
	rg.GET("/service-requests/:id", authMW, h.ListServiceRequests)
	rg.PATCH("/service-requests/:id/status", authMW, adminMW, h.TransitionServiceRequest)
	rg.GET("/dashboard/:userId", authMW, h.Dashboard)
}
