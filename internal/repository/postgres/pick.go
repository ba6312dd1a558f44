package postgres

import (
	"context"
	"database/sql"
	"time"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"

	"github.com/lib/pq"
)

type pickRepository struct {
	db *sql.DB
}

func NewPickRepository(db *sql.DB) repository.PickRepository {
	return &pickRepository{db: db}
}

func (r *pickRepository) Create(ctx context.Context, p *domain.Pick) error {
	// Timestamp is assigned here; picks are immutable afterwards.
	query := `INSERT INTO picks (plot_id, picker_id, comment, created_on) VALUES ($1, $2, $3, $4) RETURNING id`
	p.CreatedOn = time.Now()
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRowContext(ctx, query, p.PlotID, p.PickerID, p.Comment, p.CreatedOn).Scan(&p.ID); err != nil {
		return err
	}
	if len(p.CropIDs) > 0 {
		cropQuery := `INSERT INTO pick_crops (pick_id, crop_id) SELECT $1, unnest($2::int[])`
		if _, err := tx.ExecContext(ctx, cropQuery, p.ID, pq.Array(p.CropIDs)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *pickRepository) ListByPlotBetween(ctx context.Context, plotID int32, from, to time.Time) ([]domain.Pick, error) {
	query := `SELECT id, plot_id, picker_id, COALESCE(comment, ''), created_on FROM picks
	          WHERE plot_id = $1 AND created_on >= $2 AND created_on < $3
	          ORDER BY created_on`
	rows, err := r.db.QueryContext(ctx, query, plotID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var picks []domain.Pick
	for rows.Next() {
		var p domain.Pick
		if err := rows.Scan(&p.ID, &p.PlotID, &p.PickerID, &p.Comment, &p.CreatedOn); err != nil {
			return nil, err
		}
		picks = append(picks, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range picks {
		picks[i].CropIDs, err = r.cropIDs(ctx, picks[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return picks, nil
}

func (r *pickRepository) ExistsForPlotBetween(ctx context.Context, plotID int32, from, to time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM picks WHERE plot_id = $1 AND created_on >= $2 AND created_on < $3)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, plotID, from, to).Scan(&exists)
	return exists, err
}

func (r *pickRepository) cropIDs(ctx context.Context, pickID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT crop_id FROM pick_crops WHERE pick_id = $1 ORDER BY crop_id`, pickID)
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
