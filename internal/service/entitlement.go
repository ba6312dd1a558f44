package service

import (
	"context"
	"database/sql"
	"errors"

	"gardenhub-backend/internal/clock"
	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"
	"gardenhub-backend/internal/utils"
)

type entitlementService struct {
	users   repository.UserRepository
	gardens repository.GardenRepository
	plots   repository.PlotRepository
	orders  repository.OrderRepository
	clk     clock.Clock
}

func NewEntitlementService(
	users repository.UserRepository,
	gardens repository.GardenRepository,
	plots repository.PlotRepository,
	orders repository.OrderRepository,
	clk clock.Clock,
) EntitlementService {
	return &entitlementService{
		users:   users,
		gardens: gardens,
		plots:   plots,
		orders:  orders,
		clk:     clk,
	}
}

func (s *entitlementService) IsGardener(ctx context.Context, userID int32) (bool, error) {
	n, err := s.plots.CountEditableBy(ctx, userID)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	// Managers of a garden that has plots count as gardeners even
	// without a plot assignment of their own.
	m, err := s.gardens.CountManagedWithPlotsBy(ctx, userID)
	if err != nil {
		return false, err
	}
	return m > 0, nil
}

func (s *entitlementService) IsGardenManager(ctx context.Context, userID int32) (bool, error) {
	n, err := s.gardens.CountManagedBy(ctx, userID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *entitlementService) IsPicker(ctx context.Context, userID int32) (bool, error) {
	n, err := s.gardens.CountPickedBy(ctx, userID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *entitlementService) IsAnything(ctx context.Context, userID int32) (bool, error) {
	gardener, err := s.IsGardener(ctx, userID)
	if err != nil {
		return false, err
	}
	if gardener {
		return true, nil
	}
	return s.IsGardenManager(ctx, userID)
}

func (s *entitlementService) CanEditGarden(ctx context.Context, userID, gardenID int32) (bool, error) {
	garden, err := s.gardens.GetByID(ctx, gardenID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return garden.HasManager(userID), nil
}

func (s *entitlementService) CanEditPlot(ctx context.Context, userID, plotID int32) (bool, error) {
	plot, err := s.loadPlotWithGarden(ctx, plotID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return plot.CanEdit(userID), nil
}

func (s *entitlementService) CanEditOrder(ctx context.Context, userID, orderID int32) (bool, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return s.CanEditPlot(ctx, userID, order.PlotID)
}

func (s *entitlementService) IsOrderPicker(ctx context.Context, userID, orderID int32) (bool, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	plot, err := s.loadPlotWithGarden(ctx, order.PlotID)
	if err != nil {
		return false, err
	}
	return plot.Garden.HasPicker(userID), nil
}

func (s *entitlementService) GetGardens(ctx context.Context, userID int32) ([]domain.Garden, error) {
	return s.gardens.ListByManager(ctx, userID)
}

func (s *entitlementService) GetPlots(ctx context.Context, userID int32) ([]domain.Plot, error) {
	return s.plots.ListEditableBy(ctx, userID)
}

func (s *entitlementService) GetOrders(ctx context.Context, userID int32) ([]domain.Order, error) {
	return s.orders.ListEditableBy(ctx, userID)
}

func (s *entitlementService) GetPickerGardens(ctx context.Context, userID int32) ([]domain.Garden, error) {
	return s.gardens.ListByPicker(ctx, userID)
}

// GetPickerOrders returns the currently active orders in gardens where
// the user picks. Upcoming and closed orders are not picker work.
func (s *entitlementService) GetPickerOrders(ctx context.Context, userID int32) ([]domain.Order, error) {
	orders, err := s.orders.ListByPicker(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := utils.DateOf(s.clk.Today())
	active := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if o.IsActive(today) {
			active = append(active, o)
		}
	}
	return active, nil
}

func (s *entitlementService) GetPeers(ctx context.Context, userID int32) ([]domain.User, error) {
	return s.users.Peers(ctx, userID)
}

func (s *entitlementService) loadPlotWithGarden(ctx context.Context, plotID int32) (*domain.Plot, error) {
	plot, err := s.plots.GetByID(ctx, plotID)
	if err != nil {
		return nil, err
	}
	if plot.Garden == nil {
		garden, err := s.gardens.GetByID(ctx, plot.GardenID)
		if err != nil {
			return nil, err
		}
		plot.Garden = garden
	}
	return plot, nil
}
