package postgres

import (
	"context"
	"database/sql"
	"time"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"

	"github.com/lib/pq"
)

type plotRepository struct {
	db *sql.DB
}

func NewPlotRepository(db *sql.DB) repository.PlotRepository {
	return &plotRepository{db: db}
}

func (r *plotRepository) Create(ctx context.Context, p *domain.Plot) error {
	query := `INSERT INTO plots (garden_id, title, created_on) VALUES ($1, $2, $3) RETURNING id`
	p.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, p.GardenID, p.Title, p.CreatedOn).Scan(&p.ID)
}

func (r *plotRepository) GetByID(ctx context.Context, id int32) (*domain.Plot, error) {
	p := &domain.Plot{}
	query := `SELECT id, garden_id, title, created_on FROM plots WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.GardenID, &p.Title, &p.CreatedOn)
	if err != nil {
		return nil, err
	}

	p.GardenerIDs, err = r.relatedIDs(ctx, `SELECT user_id FROM plot_gardeners WHERE plot_id = $1 ORDER BY user_id`, id)
	if err != nil {
		return nil, err
	}
	p.CropIDs, err = r.relatedIDs(ctx, `SELECT crop_id FROM plot_crops WHERE plot_id = $1 ORDER BY crop_id`, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *plotRepository) Update(ctx context.Context, p *domain.Plot) error {
	query := `UPDATE plots SET garden_id=$1, title=$2 WHERE id=$3`
	_, err := r.db.ExecContext(ctx, query, p.GardenID, p.Title, p.ID)
	return err
}

func (r *plotRepository) ListByGarden(ctx context.Context, gardenID int32) ([]domain.Plot, error) {
	query := `SELECT id, garden_id, title, created_on FROM plots WHERE garden_id = $1 ORDER BY title`
	return r.listPlots(ctx, query, gardenID)
}

func (r *plotRepository) ListEditableBy(ctx context.Context, userID int32) ([]domain.Plot, error) {
	query := `SELECT DISTINCT p.id, p.garden_id, p.title, p.created_on
	          FROM plots p
	          LEFT JOIN plot_gardeners pg ON pg.plot_id = p.id AND pg.user_id = $1
	          LEFT JOIN garden_managers gm ON gm.garden_id = p.garden_id AND gm.user_id = $1
	          WHERE pg.user_id IS NOT NULL OR gm.user_id IS NOT NULL
	          ORDER BY p.id`
	return r.listPlots(ctx, query, userID)
}

func (r *plotRepository) CountEditableBy(ctx context.Context, userID int32) (int32, error) {
	query := `SELECT COUNT(DISTINCT p.id)
	          FROM plots p
	          LEFT JOIN plot_gardeners pg ON pg.plot_id = p.id AND pg.user_id = $1
	          LEFT JOIN garden_managers gm ON gm.garden_id = p.garden_id AND gm.user_id = $1
	          WHERE pg.user_id IS NOT NULL OR gm.user_id IS NOT NULL`
	var count int32
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *plotRepository) SetGardeners(ctx context.Context, plotID int32, userIDs []int32) error {
	return r.setRelated(ctx, "plot_gardeners", "user_id", plotID, userIDs)
}

func (r *plotRepository) SetCrops(ctx context.Context, plotID int32, cropIDs []int32) error {
	return r.setRelated(ctx, "plot_crops", "crop_id", plotID, cropIDs)
}

func (r *plotRepository) ListGardeners(ctx context.Context, plotID int32) ([]domain.User, error) {
	query := `SELECT ` + qualifiedUserColumns("u") + `
	          FROM users u
	          JOIN plot_gardeners pg ON pg.user_id = u.id
	          WHERE pg.plot_id = $1
	          ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, query, plotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *plotRepository) listPlots(ctx context.Context, query string, args ...any) ([]domain.Plot, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plots []domain.Plot
	for rows.Next() {
		var p domain.Plot
		if err := rows.Scan(&p.ID, &p.GardenID, &p.Title, &p.CreatedOn); err != nil {
			return nil, err
		}
		plots = append(plots, p)
	}
	return plots, rows.Err()
}

func (r *plotRepository) relatedIDs(ctx context.Context, query string, plotID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, query, plotID)
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

func (r *plotRepository) setRelated(ctx context.Context, table, column string, plotID int32, ids []int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE plot_id = $1`, plotID); err != nil {
		return err
	}
	if len(ids) > 0 {
		query := `INSERT INTO ` + table + ` (plot_id, ` + column + `) SELECT $1, unnest($2::int[])`
		if _, err := tx.ExecContext(ctx, query, plotID, pq.Array(ids)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
