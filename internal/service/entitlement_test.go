package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gardenhub-backend/internal/clock"
	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/utils"
)

func newEntitlementFixture(t *testing.T) (*MockUserRepo, *MockGardenRepo, *MockPlotRepo, *MockOrderRepo, EntitlementService) {
	t.Helper()
	users := new(MockUserRepo)
	gardens := new(MockGardenRepo)
	plots := new(MockPlotRepo)
	orders := new(MockOrderRepo)
	svc := NewEntitlementService(users, gardens, plots, orders, clock.NewFixed(testNow))
	return users, gardens, plots, orders, svc
}

func TestIsGardenerViaPlotAssignment(t *testing.T) {
	_, _, plots, _, svc := newEntitlementFixture(t)
	plots.On("CountEditableBy", mock.Anything, int32(10)).Return(int32(2), nil)

	ok, err := svc.IsGardener(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsGardenerViaManagedGardenWithPlots(t *testing.T) {
	// A manager with no plot of their own still counts as a gardener
	// as soon as their garden has any plot.
	_, gardens, plots, _, svc := newEntitlementFixture(t)
	plots.On("CountEditableBy", mock.Anything, int32(99)).Return(int32(0), nil)
	gardens.On("CountManagedWithPlotsBy", mock.Anything, int32(99)).Return(int32(1), nil)

	ok, err := svc.IsGardener(context.Background(), 99)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsGardenerFalseForManagerOfEmptyGarden(t *testing.T) {
	_, gardens, plots, _, svc := newEntitlementFixture(t)
	plots.On("CountEditableBy", mock.Anything, int32(99)).Return(int32(0), nil)
	gardens.On("CountManagedWithPlotsBy", mock.Anything, int32(99)).Return(int32(0), nil)

	ok, err := svc.IsGardener(context.Background(), 99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIsAnythingExcludesPureWorkers(t *testing.T) {
	// A picker with no gardening or management role gets no access to
	// the gardening area.
	_, gardens, plots, _, svc := newEntitlementFixture(t)
	plots.On("CountEditableBy", mock.Anything, int32(20)).Return(int32(0), nil)
	gardens.On("CountManagedWithPlotsBy", mock.Anything, int32(20)).Return(int32(0), nil)
	gardens.On("CountManagedBy", mock.Anything, int32(20)).Return(int32(0), nil)
	gardens.On("CountPickedBy", mock.Anything, int32(20)).Return(int32(3), nil)

	picker, err := svc.IsPicker(context.Background(), 20)
	require.NoError(t, err)
	assert.True(t, picker)

	anything, err := svc.IsAnything(context.Background(), 20)
	require.NoError(t, err)
	assert.False(t, anything)
}

func TestCanEditOrderFollowsPlotRights(t *testing.T) {
	_, gardens, plots, orders, svc := newEntitlementFixture(t)
	orders.On("GetByID", mock.Anything, int32(42)).Return(&domain.Order{ID: 42, PlotID: 7}, nil)
	plots.On("GetByID", mock.Anything, int32(7)).Return(&domain.Plot{
		ID:          7,
		GardenID:    3,
		GardenerIDs: []int32{10},
	}, nil)
	gardens.On("GetByID", mock.Anything, int32(3)).Return(&domain.Garden{
		ID:         3,
		ManagerIDs: []int32{99},
	}, nil)

	for user, want := range map[int32]bool{10: true, 99: true, 55: false} {
		got, err := svc.CanEditOrder(context.Background(), user, 42)
		require.NoError(t, err)
		assert.Equal(t, want, got, "user %d", user)
	}
}

func TestGetPickerOrdersFiltersToActive(t *testing.T) {
	_, _, _, orders, svc := newEntitlementFixture(t)
	orders.On("ListByPicker", mock.Anything, int32(20)).Return([]domain.Order{
		{ID: 1, StartDate: utils.Date{Year: 2024, Month: 6, Day: 14}, EndDate: utils.Date{Year: 2024, Month: 6, Day: 16}},
		{ID: 2, StartDate: utils.Date{Year: 2024, Month: 6, Day: 20}, EndDate: utils.Date{Year: 2024, Month: 6, Day: 25}}, // upcoming
		{ID: 3, StartDate: utils.Date{Year: 2024, Month: 6, Day: 1}, EndDate: utils.Date{Year: 2024, Month: 6, Day: 10}}, // closed
		{ID: 4, StartDate: utils.Date{Year: 2024, Month: 6, Day: 14}, EndDate: utils.Date{Year: 2024, Month: 6, Day: 16}, Canceled: true},
	}, nil)

	active, err := svc.GetPickerOrders(context.Background(), 20)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, int32(1), active[0].ID)
}

func TestGetPeersDelegatesToRepository(t *testing.T) {
	users, _, _, _, svc := newEntitlementFixture(t)
	users.On("Peers", mock.Anything, int32(10)).Return([]domain.User{{ID: 11}, {ID: 12}}, nil)

	peers, err := svc.GetPeers(context.Background(), 10)
	require.NoError(t, err)
	assert.Len(t, peers, 2)
}
