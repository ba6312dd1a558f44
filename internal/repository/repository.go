package repository

import (
	"context"
	"time"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/utils"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByActivationToken(ctx context.Context, token string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	ListByIDs(ctx context.Context, ids []int32) ([]domain.User, error)

	// Peers returns every user co-assigned on a garden the given user
	// manages or a plot the user can edit, excluding the user itself.
	Peers(ctx context.Context, userID int32) ([]domain.User, error)

	// ClearStaleActivationTokens nulls activation tokens issued before
	// the cutoff on accounts that never activated. Returns the number
	// of tokens cleared.
	ClearStaleActivationTokens(ctx context.Context, cutoff time.Time) (int64, error)
}

type GardenRepository interface {
	Create(ctx context.Context, garden *domain.Garden) error
	GetByID(ctx context.Context, id int32) (*domain.Garden, error)
	Update(ctx context.Context, garden *domain.Garden) error
	ListByManager(ctx context.Context, userID int32) ([]domain.Garden, error)
	ListByPicker(ctx context.Context, userID int32) ([]domain.Garden, error)
	SetManagers(ctx context.Context, gardenID int32, userIDs []int32) error
	SetPickers(ctx context.Context, gardenID int32, userIDs []int32) error
	ListPickers(ctx context.Context, gardenID int32) ([]domain.User, error)
	CountManagedBy(ctx context.Context, userID int32) (int32, error)
	CountManagedWithPlotsBy(ctx context.Context, userID int32) (int32, error)
	CountPickedBy(ctx context.Context, userID int32) (int32, error)
}

type PlotRepository interface {
	Create(ctx context.Context, plot *domain.Plot) error
	GetByID(ctx context.Context, id int32) (*domain.Plot, error)
	Update(ctx context.Context, plot *domain.Plot) error
	ListByGarden(ctx context.Context, gardenID int32) ([]domain.Plot, error)
	// ListEditableBy returns every plot the user is a gardener on, plus
	// every plot of every garden the user manages, deduplicated.
	ListEditableBy(ctx context.Context, userID int32) ([]domain.Plot, error)
	CountEditableBy(ctx context.Context, userID int32) (int32, error)
	SetGardeners(ctx context.Context, plotID int32, userIDs []int32) error
	SetCrops(ctx context.Context, plotID int32, cropIDs []int32) error
	ListGardeners(ctx context.Context, plotID int32) ([]domain.User, error)
}

type CropRepository interface {
	Create(ctx context.Context, crop *domain.Crop) error
	GetByID(ctx context.Context, id int32) (*domain.Crop, error)
	List(ctx context.Context) ([]domain.Crop, error)
	CountByIDs(ctx context.Context, ids []int32) (int32, error)
}

type OrderRepository interface {
	// CreateIfNoActiveOverlap inserts the order unless an active
	// (not canceled, currently in range on the given day) order on the
	// same plot overlaps the candidate's inclusive range. Check and
	// insert run in one serializable transaction so two concurrent
	// requests cannot both pass the check. Returns false without error
	// when an overlap blocked the insert.
	CreateIfNoActiveOverlap(ctx context.Context, order *domain.Order, today utils.Date) (bool, error)
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	Cancel(ctx context.Context, orderID int32, at time.Time) error
	// ListEditableBy returns orders for every plot the user can edit.
	ListEditableBy(ctx context.Context, userID int32) ([]domain.Order, error)
	// ListByPicker returns orders on plots of gardens the user picks for.
	ListByPicker(ctx context.Context, userID int32) ([]domain.Order, error)
	// ListActiveByPlot returns the plot's orders that are active on the
	// given day: not canceled, start_date <= today <= end_date.
	ListActiveByPlot(ctx context.Context, plotID int32, today utils.Date) ([]domain.Order, error)
}

type PickRepository interface {
	Create(ctx context.Context, pick *domain.Pick) error
	// ListByPlotBetween returns picks on the plot whose timestamp falls
	// in the half-open window [from, to).
	ListByPlotBetween(ctx context.Context, plotID int32, from, to time.Time) ([]domain.Pick, error)
	// ExistsForPlotBetween reports whether at least one pick on the plot
	// has a timestamp in [from, to).
	ExistsForPlotBetween(ctx context.Context, plotID int32, from, to time.Time) (bool, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}
