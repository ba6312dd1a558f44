package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/utils"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByActivationToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) ListByIDs(ctx context.Context, ids []int32) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) Peers(ctx context.Context, userID int32) ([]domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserRepo) ClearStaleActivationTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockGardenRepo
type MockGardenRepo struct {
	mock.Mock
}

func (m *MockGardenRepo) Create(ctx context.Context, garden *domain.Garden) error {
	args := m.Called(ctx, garden)
	return args.Error(0)
}
func (m *MockGardenRepo) GetByID(ctx context.Context, id int32) (*domain.Garden, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Garden), args.Error(1)
}
func (m *MockGardenRepo) Update(ctx context.Context, garden *domain.Garden) error {
	args := m.Called(ctx, garden)
	return args.Error(0)
}
func (m *MockGardenRepo) ListByManager(ctx context.Context, userID int32) ([]domain.Garden, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Garden), args.Error(1)
}
func (m *MockGardenRepo) ListByPicker(ctx context.Context, userID int32) ([]domain.Garden, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Garden), args.Error(1)
}
func (m *MockGardenRepo) SetManagers(ctx context.Context, gardenID int32, userIDs []int32) error {
	args := m.Called(ctx, gardenID, userIDs)
	return args.Error(0)
}
func (m *MockGardenRepo) SetPickers(ctx context.Context, gardenID int32, userIDs []int32) error {
	args := m.Called(ctx, gardenID, userIDs)
	return args.Error(0)
}
func (m *MockGardenRepo) ListPickers(ctx context.Context, gardenID int32) ([]domain.User, error) {
	args := m.Called(ctx, gardenID)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockGardenRepo) CountManagedBy(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockGardenRepo) CountManagedWithPlotsBy(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockGardenRepo) CountPickedBy(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}

// MockPlotRepo
type MockPlotRepo struct {
	mock.Mock
}

func (m *MockPlotRepo) Create(ctx context.Context, plot *domain.Plot) error {
	args := m.Called(ctx, plot)
	return args.Error(0)
}
func (m *MockPlotRepo) GetByID(ctx context.Context, id int32) (*domain.Plot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Plot), args.Error(1)
}
func (m *MockPlotRepo) Update(ctx context.Context, plot *domain.Plot) error {
	args := m.Called(ctx, plot)
	return args.Error(0)
}
func (m *MockPlotRepo) ListByGarden(ctx context.Context, gardenID int32) ([]domain.Plot, error) {
	args := m.Called(ctx, gardenID)
	return args.Get(0).([]domain.Plot), args.Error(1)
}
func (m *MockPlotRepo) ListEditableBy(ctx context.Context, userID int32) ([]domain.Plot, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Plot), args.Error(1)
}
func (m *MockPlotRepo) CountEditableBy(ctx context.Context, userID int32) (int32, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockPlotRepo) SetGardeners(ctx context.Context, plotID int32, userIDs []int32) error {
	args := m.Called(ctx, plotID, userIDs)
	return args.Error(0)
}
func (m *MockPlotRepo) SetCrops(ctx context.Context, plotID int32, cropIDs []int32) error {
	args := m.Called(ctx, plotID, cropIDs)
	return args.Error(0)
}
func (m *MockPlotRepo) ListGardeners(ctx context.Context, plotID int32) ([]domain.User, error) {
	args := m.Called(ctx, plotID)
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockCropRepo
type MockCropRepo struct {
	mock.Mock
}

func (m *MockCropRepo) Create(ctx context.Context, crop *domain.Crop) error {
	args := m.Called(ctx, crop)
	return args.Error(0)
}
func (m *MockCropRepo) GetByID(ctx context.Context, id int32) (*domain.Crop, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Crop), args.Error(1)
}
func (m *MockCropRepo) List(ctx context.Context) ([]domain.Crop, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Crop), args.Error(1)
}
func (m *MockCropRepo) CountByIDs(ctx context.Context, ids []int32) (int32, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int32), args.Error(1)
}

// MockOrderRepo
type MockOrderRepo struct {
	mock.Mock
}

func (m *MockOrderRepo) CreateIfNoActiveOverlap(ctx context.Context, order *domain.Order, today utils.Date) (bool, error) {
	args := m.Called(ctx, order, today)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepo) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}
func (m *MockOrderRepo) Cancel(ctx context.Context, orderID int32, at time.Time) error {
	args := m.Called(ctx, orderID, at)
	return args.Error(0)
}
func (m *MockOrderRepo) ListEditableBy(ctx context.Context, userID int32) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListByPicker(ctx context.Context, userID int32) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Order), args.Error(1)
}
func (m *MockOrderRepo) ListActiveByPlot(ctx context.Context, plotID int32, today utils.Date) ([]domain.Order, error) {
	args := m.Called(ctx, plotID, today)
	return args.Get(0).([]domain.Order), args.Error(1)
}

// MockPickRepo
type MockPickRepo struct {
	mock.Mock
}

func (m *MockPickRepo) Create(ctx context.Context, pick *domain.Pick) error {
	args := m.Called(ctx, pick)
	return args.Error(0)
}
func (m *MockPickRepo) ListByPlotBetween(ctx context.Context, plotID int32, from, to time.Time) ([]domain.Pick, error) {
	args := m.Called(ctx, plotID, from, to)
	return args.Get(0).([]domain.Pick), args.Error(1)
}
func (m *MockPickRepo) ExistsForPlotBetween(ctx context.Context, plotID int32, from, to time.Time) (bool, error) {
	args := m.Called(ctx, plotID, from, to)
	return args.Bool(0), args.Error(1)
}

// MockNotificationRepo
type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) Create(ctx context.Context, note *domain.Notification) error {
	args := m.Called(ctx, note)
	return args.Error(0)
}
func (m *MockNotificationRepo) List(ctx context.Context, userID int32, limit, offset int32) ([]domain.Notification, int32, error) {
	args := m.Called(ctx, userID, limit, offset)
	return args.Get(0).([]domain.Notification), args.Get(1).(int32), args.Error(2)
}
func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, id, userID int32) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendInvitation(ctx context.Context, email, inviterName, activateURL string) error {
	args := m.Called(ctx, email, inviterName, activateURL)
	return args.Error(0)
}
func (m *MockEmailService) SendNewOrderNotification(ctx context.Context, email, plotTitle, gardenTitle string) error {
	args := m.Called(ctx, email, plotTitle, gardenTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendNewPickNotification(ctx context.Context, email, plotTitle, gardenTitle string) error {
	args := m.Called(ctx, email, plotTitle, gardenTitle)
	return args.Error(0)
}
func (m *MockEmailService) SendPickerReminder(ctx context.Context, email, gardenTitle string, unpickedPlots int) error {
	args := m.Called(ctx, email, gardenTitle, unpickedPlots)
	return args.Error(0)
}

// MockInviteService
type MockInviteService struct {
	mock.Mock
}

func (m *MockInviteService) ResolveOrInvite(ctx context.Context, emails []string, inviter *domain.User) ([]domain.ResolvedUser, error) {
	args := m.Called(ctx, emails, inviter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ResolvedUser), args.Error(1)
}
