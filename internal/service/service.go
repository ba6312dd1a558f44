package service

import (
	"context"
	"errors"

	"gardenhub-backend/internal/domain"
)

var (
	ErrNotPermitted = errors.New("not permitted")
	ErrOrderNotOpen = errors.New("order is not open")
)

// EntitlementService answers who may see or edit what. Role membership
// is always derived by live relationship queries, never from stored
// flags, so a membership change takes effect on the next check.
type EntitlementService interface {
	// IsGardener is true for anyone assigned to at least one plot, and
	// for managers of any garden that has at least one plot.
	IsGardener(ctx context.Context, userID int32) (bool, error)
	IsGardenManager(ctx context.Context, userID int32) (bool, error)
	IsPicker(ctx context.Context, userID int32) (bool, error)
	// IsAnything is true for gardeners and garden managers. Picker
	// status alone does not qualify; pickers use a separate area.
	IsAnything(ctx context.Context, userID int32) (bool, error)

	CanEditGarden(ctx context.Context, userID, gardenID int32) (bool, error)
	CanEditPlot(ctx context.Context, userID, plotID int32) (bool, error)
	CanEditOrder(ctx context.Context, userID, orderID int32) (bool, error)
	IsOrderPicker(ctx context.Context, userID, orderID int32) (bool, error)

	GetGardens(ctx context.Context, userID int32) ([]domain.Garden, error)
	GetPlots(ctx context.Context, userID int32) ([]domain.Plot, error)
	GetOrders(ctx context.Context, userID int32) ([]domain.Order, error)
	GetPickerGardens(ctx context.Context, userID int32) ([]domain.Garden, error)
	GetPickerOrders(ctx context.Context, userID int32) ([]domain.Order, error)
	GetPeers(ctx context.Context, userID int32) ([]domain.User, error)
}

// CreateOrderRequest is the candidate record submitted for admission.
type CreateOrderRequest struct {
	PlotID    int32   `json:"plot_id"`
	CropIDs   []int32 `json:"crop_ids"`
	PickAll   bool    `json:"pick_all"`
	StartDate string  `json:"start_date"` // yyyy-mm-dd
	EndDate   string  `json:"end_date"`   // yyyy-mm-dd
	Comment   string  `json:"comment"`
}

type OrderService interface {
	// CreateOrder validates the candidate against the admission rules
	// and persists it. Rule violations come back as
	// domain.ValidationErrors; authorization failures as ErrNotPermitted.
	CreateOrder(ctx context.Context, requesterID int32, req CreateOrderRequest) (*domain.Order, error)
	// GetOrder returns the order if the user can edit it or is assigned
	// to pick it.
	GetOrder(ctx context.Context, userID, orderID int32) (*domain.Order, error)
	// CancelOrder soft-cancels an open order. Requires edit rights on
	// the order; a closed or already-canceled order returns
	// ErrOrderNotOpen.
	CancelOrder(ctx context.Context, actorID, orderID int32) (*domain.Order, error)
	ListOrders(ctx context.Context, userID int32) ([]domain.Order, error)
	// GetOrderPicks returns the picks recorded on the order's plot
	// during the order's date range. Same visibility rules as GetOrder.
	GetOrderPicks(ctx context.Context, userID, orderID int32) ([]domain.Pick, error)
	// WasPickedToday reports whether at least one pick landed on the
	// order's plot during the current local calendar day.
	WasPickedToday(ctx context.Context, order *domain.Order) (bool, error)
}

type PickService interface {
	// CreatePick records a harvest. Only a picker assigned to the
	// plot's garden may submit one; picks are immutable afterwards.
	CreatePick(ctx context.Context, pickerID, plotID int32, cropIDs []int32, comment string) (*domain.Pick, error)
}

type GardenService interface {
	GetGarden(ctx context.Context, actorID, gardenID int32) (*domain.Garden, error)
	ListGardens(ctx context.Context, actorID int32) ([]domain.Garden, error)
	// UpdateGarden edits the garden and replaces its manager set from
	// email addresses, inviting any address without an account.
	UpdateGarden(ctx context.Context, actorID int32, garden *domain.Garden, managerEmails []string) (*domain.Garden, error)
}

type UpdatePlotRequest struct {
	GardenID       int32    `json:"garden_id"`
	Title          string   `json:"title"`
	GardenerEmails []string `json:"gardener_emails"`
	CropIDs        []int32  `json:"crop_ids"`
}

type PlotService interface {
	GetPlot(ctx context.Context, actorID, plotID int32) (*domain.Plot, error)
	ListPlots(ctx context.Context, actorID int32) ([]domain.Plot, error)
	// CreatePlot is restricted to garden managers of the target garden.
	CreatePlot(ctx context.Context, actorID, gardenID int32, title string) (*domain.Plot, error)
	// UpdatePlot edits the plot and replaces its gardener set from
	// email addresses. Only managers of the plot's garden may move the
	// plot or rename it; plain gardeners may still reassign gardeners
	// and crops.
	UpdatePlot(ctx context.Context, actorID, plotID int32, req UpdatePlotRequest) (*domain.Plot, error)
}

type InviteService interface {
	// ResolveOrInvite finds or creates a user per email, tagging each
	// result Existing or Invited. Creation is idempotent per email;
	// invitation emails go out only for Invited results.
	ResolveOrInvite(ctx context.Context, emails []string, inviter *domain.User) ([]domain.ResolvedUser, error)
}

type AuthService interface {
	// Login authenticates an active account and returns access and
	// refresh tokens.
	Login(ctx context.Context, email, password string) (string, string, error)
	// ActivateAccount redeems an activation token: fills in the
	// profile, sets the password and marks the account active.
	ActivateAccount(ctx context.Context, token, firstName, lastName, phone, password string) (*domain.User, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UpdateProfileRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	PhotoURL    string `json:"photo_url"`
	// Password change is applied only when all three are supplied.
	OldPassword  string `json:"old_password"`
	NewPassword1 string `json:"new_password1"`
	NewPassword2 string `json:"new_password2"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, req UpdateProfileRequest) error
}

type NotificationService interface {
	GetNotifications(ctx context.Context, userID int32, page, pageSize int32) ([]domain.Notification, int32, error)
	MarkAsRead(ctx context.Context, userID, notificationID int32) error
}

type CropService interface {
	ListCrops(ctx context.Context) ([]domain.Crop, error)
}

type EmailService interface {
	SendInvitation(ctx context.Context, email, inviterName, activateURL string) error
	SendNewOrderNotification(ctx context.Context, email, plotTitle, gardenTitle string) error
	SendNewPickNotification(ctx context.Context, email, plotTitle, gardenTitle string) error
	SendPickerReminder(ctx context.Context, email, gardenTitle string, unpickedPlots int) error
}
