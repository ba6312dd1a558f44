package service

import (
	"context"

	"gardenhub-backend/internal/clock"
	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/repository"
	"gardenhub-backend/internal/utils"
)

type orderService struct {
	orders        repository.OrderRepository
	plots         repository.PlotRepository
	gardens       repository.GardenRepository
	crops         repository.CropRepository
	picks         repository.PickRepository
	notifications repository.NotificationRepository
	emails        EmailService
	clk           clock.Clock
}

func NewOrderService(
	orders repository.OrderRepository,
	plots repository.PlotRepository,
	gardens repository.GardenRepository,
	crops repository.CropRepository,
	picks repository.PickRepository,
	notifications repository.NotificationRepository,
	emails EmailService,
	clk clock.Clock,
) OrderService {
	return &orderService{
		orders:        orders,
		plots:         plots,
		gardens:       gardens,
		crops:         crops,
		picks:         picks,
		notifications: notifications,
		emails:        emails,
		clk:           clk,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, requesterID int32, req CreateOrderRequest) (*domain.Order, error) {
	plot, err := s.plots.GetByID(ctx, req.PlotID)
	if err != nil {
		return nil, err
	}
	garden, err := s.gardens.GetByID(ctx, plot.GardenID)
	if err != nil {
		return nil, err
	}
	plot.Garden = garden
	if !plot.CanEdit(requesterID) {
		return nil, ErrNotPermitted
	}

	verrs := domain.ValidationErrors{}
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		verrs.Add("start_date", err.Error())
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		verrs.Add("end_date", err.Error())
	}

	cropIDs := uniqueIDs(req.CropIDs)
	if req.PickAll {
		// "Pick everything" orders carry no crop list, whatever the
		// client sent.
		cropIDs = nil
	} else if len(cropIDs) == 0 {
		verrs.Add("crops", "Please select at least one crop, or choose to pick everything.")
	} else {
		n, err := s.crops.CountByIDs(ctx, cropIDs)
		if err != nil {
			return nil, err
		}
		if int(n) != len(cropIDs) {
			verrs.Add("crops", "One or more selected crops do not exist.")
		}
	}

	today := utils.DateOf(s.clk.Today())
	if !verrs.HasErrors() {
		if start.Before(today) {
			verrs.Add("start_date", "Start date cannot be in the past.")
		} else if !start.After(today) {
			// Pickers need at least a day of notice, so today itself is
			// not an acceptable start.
			verrs.Add("start_date", "Start date must be at least one day from now.")
		}
	}
	if verrs.HasErrors() {
		return nil, verrs
	}

	order := &domain.Order{
		PlotID:      plot.ID,
		RequesterID: requesterID,
		StartDate:   start,
		EndDate:     end,
		PickAll:     req.PickAll,
		CropIDs:     cropIDs,
		Comment:     req.Comment,
	}
	ok, err := s.orders.CreateIfNoActiveOverlap(ctx, order, today)
	if err != nil {
		return nil, err
	}
	if !ok {
		verrs.Add("start_date", "The dates overlap with an order already on this plot. Cancel the other order or pick a different range.")
		return nil, verrs
	}

	order.Plot = plot
	s.notifyNewOrder(ctx, order, plot, garden)
	return order, nil
}

// notifyNewOrder fans a new-order notification out to the garden's
// pickers. Delivery problems are logged, never surfaced to the
// requester: the order is already placed.
func (s *orderService) notifyNewOrder(ctx context.Context, order *domain.Order, plot *domain.Plot, garden *domain.Garden) {
	pickers, err := s.gardens.ListPickers(ctx, garden.ID)
	if err != nil {
		logger.Error("failed to load pickers for new order notification", "order_id", order.ID, "error", err)
		return
	}
	for _, r := range RecipientsForNewOrder(order, plot, garden, pickers) {
		n := &domain.Notification{
			UserID:     r.User.ID,
			Title:      "New picking order",
			Message:    "A new picking order was placed for plot '" + plot.Title + "' in " + garden.Title + ".",
			Attributes: r.Context,
		}
		if err := s.notifications.Create(ctx, n); err != nil {
			logger.Error("failed to store new order notification", "user_id", r.User.ID, "error", err)
		}
		if err := s.emails.SendNewOrderNotification(ctx, r.User.Email, plot.Title, garden.Title); err != nil {
			logger.Error("failed to email new order notification", "user_id", r.User.ID, "error", err)
		}
	}
}

func (s *orderService) GetOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	plot, err := s.plots.GetByID(ctx, order.PlotID)
	if err != nil {
		return nil, err
	}
	garden, err := s.gardens.GetByID(ctx, plot.GardenID)
	if err != nil {
		return nil, err
	}
	plot.Garden = garden
	if !plot.CanEdit(userID) && !garden.HasPicker(userID) {
		return nil, ErrNotPermitted
	}
	order.Plot = plot
	return order, nil
}

func (s *orderService) CancelOrder(ctx context.Context, actorID, orderID int32) (*domain.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	plot, err := s.plots.GetByID(ctx, order.PlotID)
	if err != nil {
		return nil, err
	}
	garden, err := s.gardens.GetByID(ctx, plot.GardenID)
	if err != nil {
		return nil, err
	}
	plot.Garden = garden
	if !plot.CanEdit(actorID) {
		return nil, ErrNotPermitted
	}
	today := utils.DateOf(s.clk.Today())
	if !order.IsOpen(today) {
		return nil, ErrOrderNotOpen
	}
	if err := s.orders.Cancel(ctx, orderID, s.clk.Now()); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}

func (s *orderService) ListOrders(ctx context.Context, userID int32) ([]domain.Order, error) {
	return s.orders.ListEditableBy(ctx, userID)
}

func (s *orderService) GetOrderPicks(ctx context.Context, userID, orderID int32) ([]domain.Pick, error) {
	order, err := s.GetOrder(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	// Picks count toward the order from the first moment of its start
	// date through the last moment of its end date, local time.
	loc := s.clk.Location()
	from := order.StartDate.Time(loc)
	to := order.EndDate.AddDays(1).Time(loc)
	return s.picks.ListByPlotBetween(ctx, order.PlotID, from, to)
}

func (s *orderService) WasPickedToday(ctx context.Context, order *domain.Order) (bool, error) {
	from, to := utils.DayBounds(s.clk.Now(), s.clk.Location())
	return s.picks.ExistsForPlotBetween(ctx, order.PlotID, from, to)
}

// uniqueIDs drops repeated IDs while keeping first-seen order, so a
// client submitting the same crop twice is not mistaken for selecting a
// crop that does not exist.
func uniqueIDs(ids []int32) []int32 {
	if len(ids) == 0 {
		return ids
	}
	seen := make(map[int32]struct{}, len(ids))
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
