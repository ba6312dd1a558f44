package postgres

import (
	"context"
	"database/sql"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"

	"github.com/lib/pq"
)

type cropRepository struct {
	db *sql.DB
}

func NewCropRepository(db *sql.DB) repository.CropRepository {
	return &cropRepository{db: db}
}

func (r *cropRepository) Create(ctx context.Context, c *domain.Crop) error {
	query := `INSERT INTO crops (title, image_url) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Title, c.ImageURL).Scan(&c.ID)
}

func (r *cropRepository) GetByID(ctx context.Context, id int32) (*domain.Crop, error) {
	c := &domain.Crop{}
	query := `SELECT id, title, COALESCE(image_url, '') FROM crops WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Title, &c.ImageURL)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *cropRepository) List(ctx context.Context) ([]domain.Crop, error) {
	query := `SELECT id, title, COALESCE(image_url, '') FROM crops ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var crops []domain.Crop
	for rows.Next() {
		var c domain.Crop
		if err := rows.Scan(&c.ID, &c.Title, &c.ImageURL); err != nil {
			return nil, err
		}
		crops = append(crops, c)
	}
	return crops, rows.Err()
}

func (r *cropRepository) CountByIDs(ctx context.Context, ids []int32) (int32, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `SELECT COUNT(*) FROM crops WHERE id = ANY($1)`
	var count int32
	err := r.db.QueryRowContext(ctx, query, pq.Array(ids)).Scan(&count)
	return count, err
}
