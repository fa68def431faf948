package repository

import (
	"fmt"
	"strings"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/store"
)

const clientsCollection = "clients"

// ClientRepository defines operations for self-registered client accounts.
type ClientRepository interface {
	// CreateUnique inserts the client unless another record already holds
	// its username or email (case-insensitive). Returns true when inserted.
	// The uniqueness scan and the insert happen under one collection lock.
	CreateUnique(client *model.Client) (bool, error)
	FindByUsernameOrEmail(usernameOrEmail string) (*model.Client, error)
	FindByID(id string) (*model.Client, error)
}

type clientRepository struct {
	store *store.Store
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(s *store.Store) ClientRepository {
	return &clientRepository{store: s}
}

func (r *clientRepository) CreateUnique(client *model.Client) (bool, error) {
	inserted := false
	err := r.store.Update(clientsCollection, func(load func(interface{}) error, save func(interface{}) error) error {
		var clients []model.Client
		if err := load(&clients); err != nil {
			return err
		}
		for _, existing := range clients {
			if strings.EqualFold(existing.Username, client.Username) || strings.EqualFold(existing.Email, client.Email) {
				return nil
			}
		}
		clients = append(clients, *client)
		inserted = true
		return save(clients)
	})
	if err != nil {
		return false, fmt.Errorf("failed to create client: %w", err)
	}
	return inserted, nil
}

// FindByUsernameOrEmail matches either field case-insensitively. A miss is
// not an error; the service layer decides what a nil client means.
func (r *clientRepository) FindByUsernameOrEmail(usernameOrEmail string) (*model.Client, error) {
	var clients []model.Client
	if err := r.store.Load(clientsCollection, &clients); err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	for i := range clients {
		if strings.EqualFold(clients[i].Username, usernameOrEmail) || strings.EqualFold(clients[i].Email, usernameOrEmail) {
			return &clients[i], nil
		}
	}
	return nil, nil
}

func (r *clientRepository) FindByID(id string) (*model.Client, error) {
	var clients []model.Client
	if err := r.store.Load(clientsCollection, &clients); err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	for i := range clients {
		if clients[i].ID == id {
			return &clients[i], nil
		}
	}
	return nil, nil
}
