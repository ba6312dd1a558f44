package postgres

import (
	"context"
	"database/sql"
	"time"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/repository"
	"gardenhub-backend/internal/utils"

	"github.com/lib/pq"
)

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `o.id, o.plot_id, o.requester_id, o.start_date, o.end_date, o.pick_all, o.canceled, o.canceled_on, COALESCE(o.comment, ''), o.created_on`

func (r *orderRepository) CreateIfNoActiveOverlap(ctx context.Context, o *domain.Order, today utils.Date) (bool, error) {
	logger.DatabaseCall("INSERT", "orders", "plotID", o.PlotID)

	// The overlap check and the insert share one serializable
	// transaction; two concurrent submissions for the same plot cannot
	// both pass the check.
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	// Only active orders block: not canceled and currently in range.
	checkQuery := `SELECT COUNT(*) FROM orders
	               WHERE plot_id = $1 AND canceled = FALSE
	                 AND start_date <= $2 AND end_date >= $2
	                 AND start_date <= $3 AND end_date >= $4`
	var overlapping int32
	err = tx.QueryRowContext(ctx, checkQuery, o.PlotID, today.String(), o.EndDate.String(), o.StartDate.String()).Scan(&overlapping)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "plotID", o.PlotID)
		return false, err
	}
	if overlapping > 0 {
		return false, nil
	}

	insertQuery := `INSERT INTO orders (plot_id, requester_id, start_date, end_date, pick_all, canceled, comment, created_on)
	                VALUES ($1, $2, $3, $4, $5, FALSE, $6, $7) RETURNING id`
	o.CreatedOn = time.Now()
	err = tx.QueryRowContext(ctx, insertQuery, o.PlotID, o.RequesterID, o.StartDate.String(), o.EndDate.String(), o.PickAll, o.Comment, o.CreatedOn).Scan(&o.ID)
	if err != nil {
		logger.DatabaseResult("INSERT", 0, err, "plotID", o.PlotID)
		return false, err
	}

	if len(o.CropIDs) > 0 {
		cropQuery := `INSERT INTO order_crops (order_id, crop_id) SELECT $1, unnest($2::int[])`
		if _, err := tx.ExecContext(ctx, cropQuery, o.ID, pq.Array(o.CropIDs)); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	logger.DatabaseResult("INSERT", 1, nil, "orderID", o.ID)
	return true, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o WHERE o.id = $1`
	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, err
	}
	o.CropIDs, err = r.cropIDs(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) Cancel(ctx context.Context, orderID int32, at time.Time) error {
	query := `UPDATE orders SET canceled = TRUE, canceled_on = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, at, orderID)
	return err
}

func (r *orderRepository) ListEditableBy(ctx context.Context, userID int32) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o
	          WHERE o.plot_id IN (
	              SELECT DISTINCT p.id FROM plots p
	              LEFT JOIN plot_gardeners pg ON pg.plot_id = p.id AND pg.user_id = $1
	              LEFT JOIN garden_managers gm ON gm.garden_id = p.garden_id AND gm.user_id = $1
	              WHERE pg.user_id IS NOT NULL OR gm.user_id IS NOT NULL
	          )
	          ORDER BY o.start_date`
	return r.listOrders(ctx, query, userID)
}

func (r *orderRepository) ListByPicker(ctx context.Context, userID int32) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o
	          JOIN plots p ON p.id = o.plot_id
	          JOIN garden_pickers gp ON gp.garden_id = p.garden_id
	          WHERE gp.user_id = $1
	          ORDER BY o.start_date`
	return r.listOrders(ctx, query, userID)
}

func (r *orderRepository) ListActiveByPlot(ctx context.Context, plotID int32, today utils.Date) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders o
	          WHERE o.plot_id = $1 AND o.canceled = FALSE
	            AND o.start_date <= $2 AND o.end_date >= $2
	          ORDER BY o.start_date`
	return r.listOrders(ctx, query, plotID, today.String())
}

func (r *orderRepository) listOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].CropIDs, err = r.cropIDs(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *orderRepository) cropIDs(ctx context.Context, orderID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT crop_id FROM order_crops WHERE order_id = $1 ORDER BY crop_id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int32
	for rows.Next() {
		var id int32
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	o := &domain.Order{}
	var startDate, endDate time.Time
	var canceledOn sql.NullTime
	err := row.Scan(&o.ID, &o.PlotID, &o.RequesterID, &startDate, &endDate, &o.PickAll, &o.Canceled, &canceledOn, &o.Comment, &o.CreatedOn)
	if err != nil {
		return nil, err
	}
	o.StartDate = utils.DateOf(startDate)
	o.EndDate = utils.DateOf(endDate)
	if canceledOn.Valid {
		t := canceledOn.Time
		o.CanceledOn = &t
	}
	return o, nil
}
