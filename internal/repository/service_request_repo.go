package repository

import (
	"errors"
	"fmt"
	"time"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/store"
)

const serviceRequestsCollection = "service_requests"

// ServiceRequestRepository defines operations for quote/service inquiries.
type ServiceRequestRepository interface {
	Append(request *model.ServiceRequest) error
	FindByUser(userID string) ([]model.ServiceRequest, error)
	// UpdateStatus moves a request to the given status when the transition
	// is legal. Returns the updated record, or nil when the id is unknown.
	UpdateStatus(id, status string) (*model.ServiceRequest, error)
}

// ErrIllegalTransition is returned by UpdateStatus for a known id whose
// current status does not allow the requested step.
var ErrIllegalTransition = errors.New("illegal status transition")

type serviceRequestRepository struct {
	store *store.Store
}

// NewServiceRequestRepository creates a new ServiceRequestRepository
func NewServiceRequestRepository(s *store.Store) ServiceRequestRepository {
	return &serviceRequestRepository{store: s}
}

func (r *serviceRequestRepository) Append(request *model.ServiceRequest) error {
	err := r.store.Update(serviceRequestsCollection, func(load func(interface{}) error, save func(interface{}) error) error {
		var requests []model.ServiceRequest
		if err := load(&requests); err != nil {
			return err
		}
		requests = append(requests, *request)
		return save(requests)
	})
	if err != nil {
		return fmt.Errorf("failed to append service request: %w", err)
	}
	return nil
}

func (r *serviceRequestRepository) FindByUser(userID string) ([]model.ServiceRequest, error) {
	var requests []model.ServiceRequest
	if err := r.store.Load(serviceRequestsCollection, &requests); err != nil {
		return nil, fmt.Errorf("failed to load service requests: %w", err)
	}
	var matched []model.ServiceRequest
	for _, req := range requests {
		if req.UserID == userID {
			matched = append(matched, req)
		}
	}
	return matched, nil
}

func (r *serviceRequestRepository) UpdateStatus(id, status string) (*model.ServiceRequest, error) {
	var updated *model.ServiceRequest
	err := r.store.Update(serviceRequestsCollection, func(load func(interface{}) error, save func(interface{}) error) error {
		var requests []model.ServiceRequest
		if err := load(&requests); err != nil {
			return err
		}
		for i := range requests {
			if requests[i].ID != id {
				continue
			}
			if !model.NextStatus(requests[i].Status, status) {
				return ErrIllegalTransition
			}
			requests[i].Status = status
			requests[i].UpdatedAt = time.Now()
			updated = &requests[i]
			return save(requests)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrIllegalTransition) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update service request status: %w", err)
	}
	return updated, nil
}
