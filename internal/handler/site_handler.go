package handler

import (
	"errors"
	"net/http"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// SiteHandler handles the editable site surface: uploads, team, content.
type SiteHandler struct {
	service    service.SiteService
	logger     zerolog.Logger
	production bool
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(s service.SiteService, logger zerolog.Logger, production bool) *SiteHandler {
	return &SiteHandler{service: s, logger: logger, production: production}
}

// Upload handles POST /upload, a bare authenticated multipart upload.
func (h *SiteHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded"})
		return
	}

	filepath, err := h.service.SaveUpload(file, c.SaveUploadedFile)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to save upload")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "File uploaded successfully", "filepath": filepath})
}

// UpsertTeamMember handles POST /team: multipart form with member (slug),
// title, and an optional photo file.
func (h *SiteHandler) UpsertTeamMember(c *gin.Context) {
	member := c.PostForm("member")
	title := c.PostForm("title")
	// photo is optional; an existing photo survives an upsert without one
	file, err := c.FormFile("photo")
	if err != nil {
		file = nil
	}

	team, err := h.service.UpsertTeamMember(member, title, file, c.SaveUploadedFile)
	if err != nil {
		if errors.Is(err, service.ErrEmptySlug) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to upsert team member")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member updated successfully", "team": team})
}

// ListTeam handles GET /team.
func (h *SiteHandler) ListTeam(c *gin.Context) {
	team, err := h.service.ListTeam()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read team")
		respondServerError(c, h.production, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// SetContent handles POST /content; last write per location wins.
func (h *SiteHandler) SetContent(c *gin.Context) {
	var req model.ContentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMalformedJSON(c)
		return
	}

	if err := h.service.SetContent(req); err != nil {
		if errors.Is(err, service.ErrContentIncomplete) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to set content")
		respondServerError(c, h.production, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Content updated successfully"})
}

// GetContent handles GET /content.
func (h *SiteHandler) GetContent(c *gin.Context) {
	content, err := h.service.GetContent()
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to read content")
		respondServerError(c, h.production, err)
		return
	}
	c.JSON(http.StatusOK, content)
}

// RegisterSiteRoutes registers upload, team and content routes
func (h *SiteHandler) RegisterSiteRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/upload", authMW, h.Upload)
	rg.POST("/team", authMW, h.UpsertTeamMember)
	rg.GET("/team", h.ListTeam)
	rg.POST("/content", authMW, h.SetContent)
	rg.GET("/content", h.GetContent)
}
