package repository

import (
	"fmt"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/store"
)

const submissionsCollection = "submissions"

// SubmissionRepository defines operations for contact-form submissions.
// Records are append-only; the API never updates or deletes them.
type SubmissionRepository interface {
	Append(submission *model.Submission) error
	FindAll() ([]model.Submission, error)
}

type submissionRepository struct {
	store *store.Store
}

// NewSubmissionRepository creates a new SubmissionRepository
func NewSubmissionRepository(s *store.Store) SubmissionRepository {
	return &submissionRepository{store: s}
}

// Append adds a submission inside one serialized load-modify-save cycle.
func (r *submissionRepository) Append(submission *model.Submission) error {
	err := r.store.Update(submissionsCollection, func(load func(interface{}) error, save func(interface{}) error) error {
		var submissions []model.Submission
		if err := load(&submissions); err != nil {
			return err
		}
		submissions = append(submissions, *submission)
		return save(submissions)
	})
	if err != nil {
		return fmt.Errorf("failed to append submission: %w", err)
	}
	return nil
}

// FindAll returns every stored submission, oldest first.
func (r *submissionRepository) FindAll() ([]model.Submission, error) {
	var submissions []model.Submission
	if err := r.store.Load(submissionsCollection, &submissions); err != nil {
		return nil, fmt.Errorf("failed to load submissions: %w", err)
	}
	return submissions, nil
}
