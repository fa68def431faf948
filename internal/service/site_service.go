package service

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/repository"
	"wildcats_backend/internal/utils"
	"wildcats_backend/internal/validate"
)

var (
	ErrNoFile            = errors.New("no file uploaded")
	ErrEmptySlug         = errors.New("member slug is required")
	ErrContentIncomplete = errors.New("location and type are required")
)

// SiteService manages the editable site surface: team members, keyed
// content, and raw file uploads.
type SiteService interface {
	SaveUpload(file *multipart.FileHeader, save SaveFileFunc) (string, error)
	UpsertTeamMember(slug, title string, file *multipart.FileHeader, save SaveFileFunc) ([]model.TeamMember, error)
	ListTeam() ([]model.TeamMember, error)
	SetContent(req model.ContentUpdateRequest) error
	GetContent() (map[string]model.ContentEntry, error)
}

// SaveFileFunc persists a multipart file to a destination path. Handlers
// pass gin's SaveUploadedFile so the service stays framework-free.
type SaveFileFunc func(file *multipart.FileHeader, dst string) error

type siteService struct {
	team       repository.TeamRepository
	content    repository.ContentRepository
	uploadsDir string
}

// NewSiteService creates a new SiteService
func NewSiteService(team repository.TeamRepository, content repository.ContentRepository, uploadsDir string) SiteService {
	return &siteService{team: team, content: content, uploadsDir: uploadsDir}
}

// SaveUpload stores the file under a millisecond-timestamp name, the same
// naming the previous deployment used, and returns the public path.
func (s *siteService) SaveUpload(file *multipart.FileHeader, save SaveFileFunc) (string, error) {
	if file == nil {
		return "", ErrNoFile
	}
	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create uploads directory: %w", err)
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Ext(file.Filename)
	dst := filepath.Join(s.uploadsDir, name)
	if err := save(file, dst); err != nil {
		return "", fmt.Errorf("failed to save uploaded file: %w", err)
	}
	return "/uploads/" + name, nil
}

// UpsertTeamMember updates or inserts the member keyed by slug. The display
// name is derived from the slug; a missing photo keeps whatever photo is
// already on file.
func (s *siteService) UpsertTeamMember(slug, title string, file *multipart.FileHeader, save SaveFileFunc) ([]model.TeamMember, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrEmptySlug
	}

	member := model.TeamMember{
		ID:    slug,
		Name:  utils.DisplayName(slug),
		Title: validate.Truncate(strings.TrimSpace(title), 100),
	}

	if file != nil {
		photo, err := s.SaveUpload(file, save)
		if err != nil {
			return nil, err
		}
		member.Photo = photo
	}

	team, err := s.team.Upsert(member)
	if err != nil {
		return nil, err
	}
	return team, nil
}

func (s *siteService) ListTeam() ([]model.TeamMember, error) {
	team, err := s.team.FindAll()
	if err != nil {
		return nil, err
	}
	if team == nil {
		team = []model.TeamMember{}
	}
	return team, nil
}

// SetContent overwrites the entry at a location; last write wins.
func (s *siteService) SetContent(req model.ContentUpdateRequest) error {
	if strings.TrimSpace(req.Location) == "" || strings.TrimSpace(req.Type) == "" {
		return ErrContentIncomplete
	}
	return s.content.Set(req.Location, model.ContentEntry{Type: req.Type, Content: req.Content})
}

func (s *siteService) GetContent() (map[string]model.ContentEntry, error) {
	return s.content.FindAll()
}
