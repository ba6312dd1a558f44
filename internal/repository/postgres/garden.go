package postgres

import (
	"context"
	"database/sql"
	"time"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/repository"

	"github.com/lib/pq"
)

type gardenRepository struct {
	db *sql.DB
}

func NewGardenRepository(db *sql.DB) repository.GardenRepository {
	return &gardenRepository{db: db}
}

func (r *gardenRepository) Create(ctx context.Context, g *domain.Garden) error {
	query := `INSERT INTO gardens (title, address, photo_url, map_image_url, created_on)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	g.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, g.Title, g.Address, g.PhotoURL, g.MapImageURL, g.CreatedOn).Scan(&g.ID)
}

func (r *gardenRepository) GetByID(ctx context.Context, id int32) (*domain.Garden, error) {
	g := &domain.Garden{}
	query := `SELECT id, title, address, COALESCE(photo_url, ''), COALESCE(map_image_url, ''), created_on FROM gardens WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Title, &g.Address, &g.PhotoURL, &g.MapImageURL, &g.CreatedOn)
	if err != nil {
		return nil, err
	}

	g.ManagerIDs, err = r.memberIDs(ctx, "garden_managers", id)
	if err != nil {
		return nil, err
	}
	g.PickerIDs, err = r.memberIDs(ctx, "garden_pickers", id)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *gardenRepository) Update(ctx context.Context, g *domain.Garden) error {
	query := `UPDATE gardens SET title=$1, address=$2, photo_url=$3, map_image_url=$4 WHERE id=$5`
	_, err := r.db.ExecContext(ctx, query, g.Title, g.Address, g.PhotoURL, g.MapImageURL, g.ID)
	return err
}

func (r *gardenRepository) ListByManager(ctx context.Context, userID int32) ([]domain.Garden, error) {
	query := `SELECT g.id, g.title, g.address, COALESCE(g.photo_url, ''), COALESCE(g.map_image_url, ''), g.created_on
	          FROM gardens g
	          JOIN garden_managers gm ON gm.garden_id = g.id
	          WHERE gm.user_id = $1
	          ORDER BY g.title`
	return r.listGardens(ctx, query, userID)
}

func (r *gardenRepository) ListByPicker(ctx context.Context, userID int32) ([]domain.Garden, error) {
	query := `SELECT g.id, g.title, g.address, COALESCE(g.photo_url, ''), COALESCE(g.map_image_url, ''), g.created_on
	          FROM gardens g
	          JOIN garden_pickers gp ON gp.garden_id = g.id
	          WHERE gp.user_id = $1
	          ORDER BY g.title`
	return r.listGardens(ctx, query, userID)
}

func (r *gardenRepository) SetManagers(ctx context.Context, gardenID int32, userIDs []int32) error {
	return r.setMembers(ctx, "garden_managers", gardenID, userIDs)
}

func (r *gardenRepository) SetPickers(ctx context.Context, gardenID int32, userIDs []int32) error {
	return r.setMembers(ctx, "garden_pickers", gardenID, userIDs)
}

func (r *gardenRepository) ListPickers(ctx context.Context, gardenID int32) ([]domain.User, error) {
	query := `SELECT ` + qualifiedUserColumns("u") + `
	          FROM users u
	          JOIN garden_pickers gp ON gp.user_id = u.id
	          WHERE gp.garden_id = $1
	          ORDER BY u.id`
	rows, err := r.db.QueryContext(ctx, query, gardenID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *gardenRepository) CountManagedBy(ctx context.Context, userID int32) (int32, error) {
	query := `SELECT COUNT(*) FROM garden_managers WHERE user_id = $1`
	var count int32
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *gardenRepository) CountManagedWithPlotsBy(ctx context.Context, userID int32) (int32, error) {
	query := `SELECT COUNT(DISTINCT gm.garden_id)
	          FROM garden_managers gm
	          JOIN plots p ON p.garden_id = gm.garden_id
	          WHERE gm.user_id = $1`
	var count int32
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *gardenRepository) CountPickedBy(ctx context.Context, userID int32) (int32, error) {
	query := `SELECT COUNT(*) FROM garden_pickers WHERE user_id = $1`
	var count int32
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&count)
	return count, err
}

func (r *gardenRepository) listGardens(ctx context.Context, query string, args ...any) ([]domain.Garden, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var gardens []domain.Garden
	for rows.Next() {
		var g domain.Garden
		if err := rows.Scan(&g.ID, &g.Title, &g.Address, &g.PhotoURL, &g.MapImageURL, &g.CreatedOn); err != nil {
			return nil, err
		}
		gardens = append(gardens, g)
	}
	return gardens, rows.Err()
}

func (r *gardenRepository) memberIDs(ctx context.Context, table string, gardenID int32) ([]int32, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM `+table+` WHERE garden_id = $1 ORDER BY user_id`, gardenID)
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

// setMembers replaces the full membership of a garden role table inside
// one transaction so a partially-applied assignment is never visible.
func (r *gardenRepository) setMembers(ctx context.Context, table string, gardenID int32, userIDs []int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+table+` WHERE garden_id = $1`, gardenID); err != nil {
		return err
	}
	if len(userIDs) > 0 {
		query := `INSERT INTO ` + table + ` (garden_id, user_id) SELECT $1, unnest($2::int[])`
		if _, err := tx.ExecContext(ctx, query, gardenID, pq.Array(userIDs)); err != nil {
			return err
		}
	}
	return tx.Commit()
}
