package service

import (
	"context"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"
)

type gardenService struct {
	gardens repository.GardenRepository
	users   repository.UserRepository
	invites InviteService
}

func NewGardenService(gardens repository.GardenRepository, users repository.UserRepository, invites InviteService) GardenService {
	return &gardenService{
		gardens: gardens,
		users:   users,
		invites: invites,
	}
}

func (s *gardenService) GetGarden(ctx context.Context, actorID, gardenID int32) (*domain.Garden, error) {
	garden, err := s.gardens.GetByID(ctx, gardenID)
	if err != nil {
		return nil, err
	}
	if !garden.HasManager(actorID) {
		return nil, ErrNotPermitted
	}
	return garden, nil
}

func (s *gardenService) ListGardens(ctx context.Context, actorID int32) ([]domain.Garden, error) {
	return s.gardens.ListByManager(ctx, actorID)
}

func (s *gardenService) UpdateGarden(ctx context.Context, actorID int32, garden *domain.Garden, managerEmails []string) (*domain.Garden, error) {
	current, err := s.gardens.GetByID(ctx, garden.ID)
	if err != nil {
		return nil, err
	}
	if !current.HasManager(actorID) {
		return nil, ErrNotPermitted
	}

	current.Title = garden.Title
	current.Address = garden.Address
	current.PhotoURL = garden.PhotoURL
	current.MapImageURL = garden.MapImageURL
	if err := s.gardens.Update(ctx, current); err != nil {
		return nil, err
	}

	if managerEmails != nil {
		actor, err := s.users.GetByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		resolved, err := s.invites.ResolveOrInvite(ctx, managerEmails, actor)
		if err != nil {
			return nil, err
		}
		ids := make([]int32, 0, len(resolved))
		for _, r := range resolved {
			ids = append(ids, r.User.ID)
		}
		if err := s.gardens.SetManagers(ctx, current.ID, ids); err != nil {
			return nil, err
		}
	}
	return s.gardens.GetByID(ctx, current.ID)
}
