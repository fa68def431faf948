package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"wildcats_backend/internal/config"
	"wildcats_backend/internal/mailer"
	"wildcats_backend/internal/middleware"
	"wildcats_backend/internal/model"
	"wildcats_backend/internal/repository"
	"wildcats_backend/internal/service"
	"wildcats_backend/internal/store"
	"wildcats_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newTestRouter wires the full API against a temp-dir store, mirroring the
// wiring in cmd/server but without rate limiting so tests cannot trip 429s.
func newTestRouter(t *testing.T) (*gin.Engine, *utils.JWTUtil) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zerolog.Nop()
	jwtUtil := utils.NewJWTUtil("test-secret", 1)
	st := store.New(t.TempDir())
	uploadsDir := t.TempDir()

	accounts := []model.AdminAccount{
		{Username: "owner", Password: "yukon2025owner", Role: model.RoleOwner},
		{Username: "admin", Password: "wildcats2025", Role: model.RoleAdmin},
	}

	authService := service.NewAuthService(accounts, repository.NewClientRepository(st), jwtUtil)
	intakeService := service.NewIntakeService(
		repository.NewSubmissionRepository(st),
		repository.NewServiceRequestRepository(st),
		mailer.New(config.SMTPConfig{}),
		logger,
	)
	siteService := service.NewSiteService(
		repository.NewTeamRepository(st),
		repository.NewContentRepository(st),
		uploadsDir,
	)

	authHandler := NewAuthHandler(authService, logger, false)
	intakeHandler := NewIntakeHandler(intakeService, logger, false)
	siteHandler := NewSiteHandler(siteService, logger, false)
	diagHandler := NewDiagHandler(false)

	router := gin.New()
	router.NoRoute(NotFoundHandler())

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware()
	noLimit := func(c *gin.Context) { c.Next() }

	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup, jwtAuthMW, noLimit)
	intakeHandler.RegisterIntakeRoutes(apiGroup, jwtAuthMW, adminMW, noLimit)
	siteHandler.RegisterSiteRoutes(apiGroup, jwtAuthMW)
	diagHandler.RegisterDiagRoutes(apiGroup)

	return router, jwtUtil
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func doRaw(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func adminToken(t *testing.T, router *gin.Engine) string {
	t.Helper()
	rec := doJSON(t, router, http.MethodPost, "/api/login", "", gin.H{
		"username": "admin",
		"password": "wildcats2025",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	return decodeBody(t, rec)["token"].(string)
}

// multipartForm builds a multipart body with text fields and an optional
// file part.
func multipartForm(t *testing.T, fields map[string]string, fileField, fileName string, fileContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}
