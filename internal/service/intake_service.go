package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"wildcats_backend/internal/mailer"
	"wildcats_backend/internal/model"
	"wildcats_backend/internal/repository"
	"wildcats_backend/internal/validate"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	ErrRequestNotFound = errors.New("service request not found")
	ErrBadTransition   = errors.New("status transition not allowed")
)

// IntakeService handles everything the public and client-facing forms feed
// into: contact submissions, service requests, and the dashboard built from
// them.
type IntakeService interface {
	CreateSubmission(req model.CreateSubmissionRequest, clientIP string) (*model.Submission, error)
	ListSubmissions() ([]model.Submission, error)
	CreatePublicServiceRequest(body model.PublicServiceRequestBody) (*model.ServiceRequest, error)
	CreateClientServiceRequest(body model.ClientServiceRequestBody) (*model.ServiceRequest, error)
	ListServiceRequests(userID string) ([]model.ServiceRequest, error)
	TransitionServiceRequest(id, status string) (*model.ServiceRequest, error)
	Dashboard(userID string) (*model.DashboardData, error)
}

type intakeService struct {
	submissions repository.SubmissionRepository
	requests    repository.ServiceRequestRepository
	mail        *mailer.Mailer
	logger      zerolog.Logger
}

// NewIntakeService creates a new IntakeService
func NewIntakeService(submissions repository.SubmissionRepository, requests repository.ServiceRequestRepository, mail *mailer.Mailer, logger zerolog.Logger) IntakeService {
	return &intakeService{
		submissions: submissions,
		requests:    requests,
		mail:        mail,
		logger:      logger,
	}
}

// CreateSubmission validates the contact form and appends an immutable
// record stamped with the caller's IP and an RFC3339 timestamp.
func (s *intakeService) CreateSubmission(req model.CreateSubmissionRequest, clientIP string) (*model.Submission, error) {
	res := validate.Check(validate.Fields{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Message:      req.Message,
		RequirePhone: true,
	})
	if !res.OK() {
		return nil, &ValidationError{Errors: res.Errors}
	}

	submission := &model.Submission{
		ID:        uuid.NewString(),
		Name:      res.Name,
		Email:     res.Email,
		Phone:     res.Phone,
		Service:   validate.Truncate(strings.TrimSpace(req.Service), 100),
		Message:   res.Message,
		Timestamp: time.Now().Format(time.RFC3339),
		IP:        clientIP,
	}

	if err := s.submissions.Append(submission); err != nil {
		return nil, fmt.Errorf("failed to save submission: %w", err)
	}
	return submission, nil
}

func (s *intakeService) ListSubmissions() ([]model.Submission, error) {
	submissions, err := s.submissions.FindAll()
	if err != nil {
		return nil, err
	}
	if submissions == nil {
		submissions = []model.Submission{}
	}
	return submissions, nil
}

// CreatePublicServiceRequest saves an unauthenticated quote inquiry and
// fires a best-effort notification mail. Mail failure never fails the
// request; it is logged and swallowed.
func (s *intakeService) CreatePublicServiceRequest(body model.PublicServiceRequestBody) (*model.ServiceRequest, error) {
	res := validate.Check(validate.Fields{
		Name:    body.Name,
		Email:   body.Email,
		Phone:   body.Phone,
		Message: body.Message,
	})
	serviceType := validate.Truncate(strings.TrimSpace(body.ServiceType), 100)
	if serviceType == "" {
		res.Errors = append(res.Errors, "Service type is required")
	}
	if !res.OK() {
		return nil, &ValidationError{Errors: res.Errors}
	}

	now := time.Now()
	request := &model.ServiceRequest{
		ID:             uuid.NewString(),
		Name:           res.Name,
		Email:          res.Email,
		Phone:          res.Phone,
		Company:        validate.Truncate(strings.TrimSpace(body.Company), 100),
		ServiceType:    serviceType,
		PackageDetails: validate.Truncate(strings.TrimSpace(body.PackageDetails), 500),
		Timeline:       validate.Truncate(strings.TrimSpace(body.Timeline), 100),
		Budget:         validate.Truncate(strings.TrimSpace(body.Budget), 100),
		Message:        res.Message,
		Status:         model.StatusPending,
		Source:         model.SourcePublicForm,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.requests.Append(request); err != nil {
		return nil, fmt.Errorf("failed to save service request: %w", err)
	}

	subject := "New service request: " + request.ServiceType
	mailBody := fmt.Sprintf("From: %s <%s>\nService: %s\nTimeline: %s\nBudget: %s\n\n%s",
		request.Name, request.Email, request.ServiceType, request.Timeline, request.Budget, request.Message)
	if err := s.mail.Notify(subject, mailBody); err != nil {
		s.logger.Warn().Err(err).Str("request_id", request.ID).Msg("notification mail failed")
	}

	return request, nil
}

// CreateClientServiceRequest records an inquiry made from the client
// dashboard. UserID is a loose reference; the original never enforced it
// against the client collection and the contract keeps that.
func (s *intakeService) CreateClientServiceRequest(body model.ClientServiceRequestBody) (*model.ServiceRequest, error) {
	serviceType := validate.Truncate(strings.TrimSpace(body.ServiceType), 100)
	if body.UserID == "" || serviceType == "" {
		return nil, &ValidationError{Errors: []string{"userId and serviceType are required"}}
	}

	now := time.Now()
	request := &model.ServiceRequest{
		ID:          uuid.NewString(),
		UserID:      body.UserID,
		ServiceType: serviceType,
		Message:     validate.Truncate(strings.TrimSpace(body.Description), 2000),
		Company:     validate.Truncate(strings.TrimSpace(body.ContactInfo), 200),
		Status:      model.StatusPending,
		Source:      model.SourceDashboard,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.requests.Append(request); err != nil {
		return nil, fmt.Errorf("failed to save service request: %w", err)
	}
	return request, nil
}

func (s *intakeService) ListServiceRequests(userID string) ([]model.ServiceRequest, error) {
	requests, err := s.requests.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []model.ServiceRequest{}
	}
	return requests, nil
}

// TransitionServiceRequest advances a request one step along
// pending -> in-progress -> completed.
func (s *intakeService) TransitionServiceRequest(id, status string) (*model.ServiceRequest, error) {
	updated, err := s.requests.UpdateStatus(id, status)
	if err != nil {
		if errors.Is(err, repository.ErrIllegalTransition) {
			return nil, ErrBadTransition
		}
		return nil, err
	}
	if updated == nil {
		return nil, ErrRequestNotFound
	}
	return updated, nil
}

// Dashboard aggregates a client's service requests: active count, total
// count, budget spend over completed requests, and the five most recently
// updated entries.
func (s *intakeService) Dashboard(userID string) (*model.DashboardData, error) {
	requests, err := s.requests.FindByUser(userID)
	if err != nil {
		return nil, err
	}

	data := &model.DashboardData{RecentActivity: []model.DashboardEntry{}}
	for _, req := range requests {
		data.TotalContracts++
		if req.Status == model.StatusPending || req.Status == model.StatusInProgress {
			data.ActiveServices++
		}
		if req.Status == model.StatusCompleted {
			data.TotalSpent += parseBudget(req.Budget)
		}
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].UpdatedAt.After(requests[j].UpdatedAt)
	})
	for i, req := range requests {
		if i == 5 {
			break
		}
		data.RecentActivity = append(data.RecentActivity, model.DashboardEntry{
			ID:          req.ID,
			ServiceType: req.ServiceType,
			Status:      req.Status,
			UpdatedAt:   req.UpdatedAt,
		})
	}
	return data, nil
}

// parseBudget pulls the first integer out of free-text budget values like
// "$5,000" or "5000-8000". Unparseable budgets count as zero.
func parseBudget(budget string) int64 {
	var digits strings.Builder
	for _, r := range budget {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			continue
		}
		if r == ',' && digits.Len() > 0 {
			continue
		}
		if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
