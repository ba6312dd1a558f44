package service

import (
	"context"

	"gardenhub-backend/internal/clock"
	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/repository"
	"gardenhub-backend/internal/utils"
)

type pickService struct {
	picks         repository.PickRepository
	plots         repository.PlotRepository
	gardens       repository.GardenRepository
	orders        repository.OrderRepository
	users         repository.UserRepository
	crops         repository.CropRepository
	notifications repository.NotificationRepository
	emails        EmailService
	clk           clock.Clock
}

func NewPickService(
	picks repository.PickRepository,
	plots repository.PlotRepository,
	gardens repository.GardenRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	crops repository.CropRepository,
	notifications repository.NotificationRepository,
	emails EmailService,
	clk clock.Clock,
) PickService {
	return &pickService{
		picks:         picks,
		plots:         plots,
		gardens:       gardens,
		orders:        orders,
		users:         users,
		crops:         crops,
		notifications: notifications,
		emails:        emails,
		clk:           clk,
	}
}

func (s *pickService) CreatePick(ctx context.Context, pickerID, plotID int32, cropIDs []int32, comment string) (*domain.Pick, error) {
	plot, err := s.plots.GetByID(ctx, plotID)
	if err != nil {
		return nil, err
	}
	garden, err := s.gardens.GetByID(ctx, plot.GardenID)
	if err != nil {
		return nil, err
	}
	plot.Garden = garden
	// Picking rights come from garden membership, not from any single
	// order; a picker may record a harvest on any plot in their garden.
	if !garden.HasPicker(pickerID) {
		return nil, ErrNotPermitted
	}

	cropIDs = uniqueIDs(cropIDs)

	verrs := domain.ValidationErrors{}
	if len(cropIDs) == 0 {
		verrs.Add("crops", "Please select at least one crop that was picked.")
	} else {
		n, err := s.crops.CountByIDs(ctx, cropIDs)
		if err != nil {
			return nil, err
		}
		if int(n) != len(cropIDs) {
			verrs.Add("crops", "One or more selected crops do not exist.")
		}
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	pick := &domain.Pick{
		PlotID:   plotID,
		PickerID: pickerID,
		CropIDs:  cropIDs,
		Comment:  comment,
	}
	if err := s.picks.Create(ctx, pick); err != nil {
		return nil, err
	}

	s.notifyNewPick(ctx, pick, plot, garden)
	return pick, nil
}

// notifyNewPick tells the plot's gardeners and the requesters of the
// plot's active orders that a harvest was recorded. Failures are
// logged; the pick itself already stands.
func (s *pickService) notifyNewPick(ctx context.Context, pick *domain.Pick, plot *domain.Plot, garden *domain.Garden) {
	gardeners, err := s.plots.ListGardeners(ctx, plot.ID)
	if err != nil {
		logger.Error("failed to load gardeners for pick notification", "pick_id", pick.ID, "error", err)
		return
	}

	today := utils.DateOf(s.clk.Today())
	active, err := s.orders.ListActiveByPlot(ctx, plot.ID, today)
	if err != nil {
		logger.Error("failed to load active orders for pick notification", "pick_id", pick.ID, "error", err)
		return
	}
	requesterIDs := make([]int32, 0, len(active))
	for _, o := range active {
		requesterIDs = append(requesterIDs, o.RequesterID)
	}
	requesters, err := s.users.ListByIDs(ctx, requesterIDs)
	if err != nil {
		logger.Error("failed to load requesters for pick notification", "pick_id", pick.ID, "error", err)
		return
	}

	for _, r := range RecipientsForNewPick(pick, plot, garden, gardeners, requesters) {
		n := &domain.Notification{
			UserID:     r.User.ID,
			Title:      "Harvest recorded",
			Message:    "A harvest was recorded on plot '" + plot.Title + "' in " + garden.Title + ".",
			Attributes: r.Context,
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			logger.Error("failed to store pick notification", "user_id", r.User.ID, "error", err)
		}
		if err := s.emails.SendNewPickNotification(ctx, r.User.Email, plot.Title, garden.Title); err != nil {
			logger.Error("failed to email pick notification", "user_id", r.User.ID, "error", err)
		}
	}
}
