package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/utils"
)

func newOrder() *domain.Order {
	return &domain.Order{
		PlotID:      7,
		RequesterID: 10,
		StartDate:   utils.Date{Year: 2024, Month: 6, Day: 17},
		EndDate:     utils.Date{Year: 2024, Month: 6, Day: 20},
		CropIDs:     []int32{1, 2},
		Comment:     "please pick the tomatoes",
	}
}

func TestCreateIfNoActiveOverlapInserts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	order := newOrder()
	today := utils.Date{Year: 2024, Month: 6, Day: 15}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders`).
		WithArgs(order.PlotID, today.String(), order.EndDate.String(), order.StartDate.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO orders`).
		WithArgs(order.PlotID, order.RequesterID, order.StartDate.String(), order.EndDate.String(), order.PickAll, order.Comment, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))
	mock.ExpectExec(`INSERT INTO order_crops`).
		WithArgs(int32(42), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	ok, err := repo.CreateIfNoActiveOverlap(context.Background(), order, today)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int32(42), order.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfNoActiveOverlapBlocksOnOverlap(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	order := newOrder()
	today := utils.Date{Year: 2024, Month: 6, Day: 15}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders`).
		WithArgs(order.PlotID, today.String(), order.EndDate.String(), order.StartDate.String()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	ok, err := repo.CreateIfNoActiveOverlap(context.Background(), order, today)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfNoActiveOverlapSkipsCropRowsForPickAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	order := newOrder()
	order.PickAll = true
	order.CropIDs = nil
	today := utils.Date{Year: 2024, Month: 6, Day: 15}

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM orders`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery(`INSERT INTO orders`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(43))
	mock.ExpectCommit()

	ok, err := repo.CreateIfNoActiveOverlap(context.Background(), order, today)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByIDScansDatesAndCrops(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	created := time.Date(2024, 6, 14, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM orders o WHERE o.id = \$1`).
		WithArgs(int32(42)).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "plot_id", "requester_id", "start_date", "end_date", "pick_all", "canceled", "canceled_on", "comment", "created_on",
		}).AddRow(42, 7, 10, time.Date(2024, 6, 17, 0, 0, 0, 0, time.UTC), time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), false, false, nil, "hi", created))
	mock.ExpectQuery(`SELECT crop_id FROM order_crops`).
		WithArgs(int32(42)).
		WillReturnRows(sqlmock.NewRows([]string{"crop_id"}).AddRow(1).AddRow(2))

	order, err := repo.GetByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, utils.Date{Year: 2024, Month: 6, Day: 17}, order.StartDate)
	assert.Equal(t, utils.Date{Year: 2024, Month: 6, Day: 20}, order.EndDate)
	assert.Equal(t, []int32{1, 2}, order.CropIDs)
	assert.Nil(t, order.CanceledOn)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelSetsFlagAndTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOrderRepository(db)
	at := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE orders SET canceled = TRUE, canceled_on = \$1 WHERE id = \$2`).
		WithArgs(at, int32(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Cancel(context.Background(), 42, at))
	assert.NoError(t, mock.ExpectationsWereMet())
}
