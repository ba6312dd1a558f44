package service

import (
	"context"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"
)

type plotService struct {
	plots   repository.PlotRepository
	gardens repository.GardenRepository
	crops   repository.CropRepository
	users   repository.UserRepository
	invites InviteService
}

func NewPlotService(
	plots repository.PlotRepository,
	gardens repository.GardenRepository,
	crops repository.CropRepository,
	users repository.UserRepository,
	invites InviteService,
) PlotService {
	return &plotService{
		plots:   plots,
		gardens: gardens,
		crops:   crops,
		users:   users,
		invites: invites,
	}
}

func (s *plotService) GetPlot(ctx context.Context, actorID, plotID int32) (*domain.Plot, error) {
	plot, err := s.loadWithGarden(ctx, plotID)
	if err != nil {
		return nil, err
	}
	if !plot.CanEdit(actorID) {
		return nil, ErrNotPermitted
	}
	return plot, nil
}

func (s *plotService) ListPlots(ctx context.Context, actorID int32) ([]domain.Plot, error) {
	return s.plots.ListEditableBy(ctx, actorID)
}

func (s *plotService) CreatePlot(ctx context.Context, actorID, gardenID int32, title string) (*domain.Plot, error) {
	garden, err := s.gardens.GetByID(ctx, gardenID)
	if err != nil {
		return nil, err
	}
	if !garden.HasManager(actorID) {
		return nil, ErrNotPermitted
	}
	verrs := domain.ValidationErrors{}
	if title == "" {
		verrs.Add("title", "Title is required.")
	}
	if verrs.HasErrors() {
		return nil, verrs
	}
	plot := &domain.Plot{GardenID: gardenID, Title: title}
	if err := s.plots.Create(ctx, plot); err != nil {
		return nil, err
	}
	plot.Garden = garden
	return plot, nil
}

func (s *plotService) UpdatePlot(ctx context.Context, actorID, plotID int32, req UpdatePlotRequest) (*domain.Plot, error) {
	plot, err := s.loadWithGarden(ctx, plotID)
	if err != nil {
		return nil, err
	}
	if !plot.CanEdit(actorID) {
		return nil, ErrNotPermitted
	}

	isManager := plot.Garden.HasManager(actorID)
	// Moving a plot between gardens or renaming it is manager
	// territory; plain gardeners may only tend the gardener and crop
	// assignments.
	if isManager {
		dirty := false
		if req.GardenID != 0 && req.GardenID != plot.GardenID {
			target, err := s.gardens.GetByID(ctx, req.GardenID)
			if err != nil {
				return nil, err
			}
			if !target.HasManager(actorID) {
				return nil, ErrNotPermitted
			}
			plot.GardenID = target.ID
			plot.Garden = target
			dirty = true
		}
		if req.Title != "" && req.Title != plot.Title {
			plot.Title = req.Title
			dirty = true
		}
		if dirty {
			if err := s.plots.Update(ctx, plot); err != nil {
				return nil, err
			}
		}
	}

	if req.CropIDs != nil {
		cropIDs := uniqueIDs(req.CropIDs)
		n, err := s.crops.CountByIDs(ctx, cropIDs)
		if err != nil {
			return nil, err
		}
		if int(n) != len(cropIDs) {
			verrs := domain.ValidationErrors{}
			verrs.Add("crops", "One or more selected crops do not exist.")
			return nil, verrs
		}
		if err := s.plots.SetCrops(ctx, plot.ID, cropIDs); err != nil {
			return nil, err
		}
	}

	if req.GardenerEmails != nil {
		actor, err := s.users.GetByID(ctx, actorID)
		if err != nil {
			return nil, err
		}
		resolved, err := s.invites.ResolveOrInvite(ctx, req.GardenerEmails, actor)
		if err != nil {
			return nil, err
		}
		ids := make([]int32, 0, len(resolved))
		for _, r := range resolved {
			ids = append(ids, r.User.ID)
		}
		if err := s.plots.SetGardeners(ctx, plot.ID, ids); err != nil {
			return nil, err
		}
	}
	return s.loadWithGarden(ctx, plot.ID)
}

func (s *plotService) loadWithGarden(ctx context.Context, plotID int32) (*domain.Plot, error) {
	plot, err := s.plots.GetByID(ctx, plotID)
	if err != nil {
		return nil, err
	}
	garden, err := s.gardens.GetByID(ctx, plot.GardenID)
	if err != nil {
		return nil, err
	}
	plot.Garden = garden
	return plot, nil
}
