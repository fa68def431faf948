package repository

import (
	"fmt"

	"wildcats_backend/internal/model"
	"wildcats_backend/internal/store"
)

const teamCollection = "team"

// TeamRepository defines operations for team members.
type TeamRepository interface {
	// Upsert updates the member with a matching id or appends a new one.
	// An empty incoming photo keeps the photo already on file. Returns the
	// whole team after the write, matching the POST /team response shape.
	Upsert(member model.TeamMember) ([]model.TeamMember, error)
	FindAll() ([]model.TeamMember, error)
}

type teamRepository struct {
	store *store.Store
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(s *store.Store) TeamRepository {
	return &teamRepository{store: s}
}

func (r *teamRepository) Upsert(member model.TeamMember) ([]model.TeamMember, error) {
	var team []model.TeamMember
	err := r.store.Update(teamCollection, func(load func(interface{}) error, save func(interface{}) error) error {
		if err := load(&team); err != nil {
			return err
		}
		for i := range team {
			if team[i].ID == member.ID {
				if member.Photo == "" {
					member.Photo = team[i].Photo
				}
				team[i] = member
				return save(team)
			}
		}
		team = append(team, member)
		return save(team)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert team member: %w", err)
	}
	return team, nil
}

func (r *teamRepository) FindAll() ([]model.TeamMember, error) {
	var team []model.TeamMember
	if err := r.store.Load(teamCollection, &team); err != nil {
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	return team, nil
}
