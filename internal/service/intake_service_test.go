package service

import (
	"testing"

	"wildcats_backend/internal/config"
	"wildcats_backend/internal/mailer"
	"wildcats_backend/internal/model"
	"wildcats_backend/internal/repository"
	"wildcats_backend/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntakeService(t *testing.T) IntakeService {
	t.Helper()
	st := store.New(t.TempDir())
	return NewIntakeService(
		repository.NewSubmissionRepository(st),
		repository.NewServiceRequestRepository(st),
		mailer.New(config.SMTPConfig{}), // mail disabled
		zerolog.Nop(),
	)
}

func TestCreateSubmission(t *testing.T) {
	svc := newIntakeService(t)

	submission, err := svc.CreateSubmission(model.CreateSubmissionRequest{
		Name:    "Jane Doe",
		Email:   "Jane@Example.com",
		Phone:   "(907) 555-0123",
		Service: "Snow Removal",
		Message: "driveway and walkway",
	}, "203.0.113.7")

	require.NoError(t, err)
	assert.NotEmpty(t, submission.ID)
	assert.Equal(t, "jane@example.com", submission.Email)
	assert.Equal(t, "203.0.113.7", submission.IP)
	assert.NotEmpty(t, submission.Timestamp)

	stored, err := svc.ListSubmissions()
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, submission.ID, stored[0].ID)
}

func TestCreateSubmission_Validation(t *testing.T) {
	svc := newIntakeService(t)

	_, err := svc.CreateSubmission(model.CreateSubmissionRequest{
		Name: "x", Email: "nope", Phone: "123",
	}, "203.0.113.7")

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Len(t, validationErr.Errors, 3)
}

func TestListSubmissions_EmptyIsNotNil(t *testing.T) {
	svc := newIntakeService(t)

	submissions, err := svc.ListSubmissions()
	require.NoError(t, err)
	assert.NotNil(t, submissions)
	assert.Empty(t, submissions)
}

func TestPublicServiceRequest_Lifecycle(t *testing.T) {
	svc := newIntakeService(t)

	request, err := svc.CreatePublicServiceRequest(model.PublicServiceRequestBody{
		Name:        "Jane Doe",
		Email:       "jane@example.com",
		ServiceType: "Web Development",
		Budget:      "$5,000",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusPending, request.Status)
	assert.Equal(t, model.SourcePublicForm, request.Source)

	// pending -> in-progress
	updated, err := svc.TransitionServiceRequest(request.ID, model.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, updated.Status)

	// skipping back to pending is not allowed
	_, err = svc.TransitionServiceRequest(request.ID, model.StatusPending)
	assert.ErrorIs(t, err, ErrBadTransition)

	// in-progress -> completed
	updated, err = svc.TransitionServiceRequest(request.ID, model.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, updated.Status)

	// completed is terminal
	_, err = svc.TransitionServiceRequest(request.ID, model.StatusInProgress)
	assert.ErrorIs(t, err, ErrBadTransition)
}

func TestTransitionServiceRequest_Unknown(t *testing.T) {
	svc := newIntakeService(t)

	_, err := svc.TransitionServiceRequest("no-such-id", model.StatusInProgress)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestPublicServiceRequest_RequiresServiceType(t *testing.T) {
	svc := newIntakeService(t)

	_, err := svc.CreatePublicServiceRequest(model.PublicServiceRequestBody{
		Name:  "Jane Doe",
		Email: "jane@example.com",
	})

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestDashboard(t *testing.T) {
	svc := newIntakeService(t)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateClientServiceRequest(model.ClientServiceRequestBody{
			UserID:      "user-1",
			ServiceType: "Landscaping",
		})
		require.NoError(t, err)
	}
	requests, err := svc.ListServiceRequests("user-1")
	require.NoError(t, err)
	require.Len(t, requests, 3)

	// complete one of them
	_, err = svc.TransitionServiceRequest(requests[0].ID, model.StatusInProgress)
	require.NoError(t, err)
	_, err = svc.TransitionServiceRequest(requests[0].ID, model.StatusCompleted)
	require.NoError(t, err)

	data, err := svc.Dashboard("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), data.ActiveServices)
	assert.Equal(t, int64(3), data.TotalContracts)
	assert.Len(t, data.RecentActivity, 3)
	// most recently updated first
	assert.Equal(t, requests[0].ID, data.RecentActivity[0].ID)
}

func TestDashboard_OtherUsersExcluded(t *testing.T) {
	svc := newIntakeService(t)

	_, err := svc.CreateClientServiceRequest(model.ClientServiceRequestBody{UserID: "user-1", ServiceType: "A"})
	require.NoError(t, err)
	_, err = svc.CreateClientServiceRequest(model.ClientServiceRequestBody{UserID: "user-2", ServiceType: "B"})
	require.NoError(t, err)

	data, err := svc.Dashboard("user-1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), data.TotalContracts)
}

func TestParseBudget(t *testing.T) {
	assert.Equal(t, int64(5000), parseBudget("$5,000"))
	assert.Equal(t, int64(5000), parseBudget("5000-8000"))
	assert.Equal(t, int64(0), parseBudget("call us"))
	assert.Equal(t, int64(0), parseBudget(""))
}
