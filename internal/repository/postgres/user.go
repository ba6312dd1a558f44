package postgres

import (
	"context"
	"database/sql"
	"time"

	"gardenhub-backend/internal/domain"
	"gardenhub-backend/internal/logger"
	"gardenhub-backend/internal/repository"

	"github.com/lib/pq"
)

const userColumns = `id, email, first_name, last_name, phone_number, COALESCE(photo_url, ''), COALESCE(password_hash, ''), is_active, activation_token, created_on`

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func scanUser(row interface{ Scan(...any) error }) (*domain.User, error) {
	u := &domain.User{}
	err := row.Scan(&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PhoneNumber, &u.PhotoURL, &u.PasswordHash, &u.IsActive, &u.ActivationToken, &u.CreatedOn)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (email, first_name, last_name, phone_number, photo_url, password_hash, is_active, activation_token, created_on)
	          VALUES (LOWER($1), $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	u.Email = domain.NormalizeEmail(u.Email)
	u.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx, query, u.Email, u.FirstName, u.LastName, u.PhoneNumber, u.PhotoURL, u.PasswordHash, u.IsActive, u.ActivationToken, u.CreatedOn).Scan(&u.ID)
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = LOWER($1)`
	return scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *userRepository) GetByActivationToken(ctx context.Context, token string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE activation_token = $1`
	return scanUser(r.db.QueryRowContext(ctx, query, token))
}

func (r *userRepository) Update(ctx context.Context, u *domain.User) error {
	query := `UPDATE users SET email=LOWER($1), first_name=$2, last_name=$3, phone_number=$4, photo_url=$5, password_hash=$6, is_active=$7, activation_token=$8 WHERE id=$9`
	u.Email = domain.NormalizeEmail(u.Email)
	_, err := r.db.ExecContext(ctx, query, u.Email, u.FirstName, u.LastName, u.PhoneNumber, u.PhotoURL, u.PasswordHash, u.IsActive, u.ActivationToken, u.ID)
	return err
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []int32) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ANY($1) ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *userRepository) Peers(ctx context.Context, userID int32) ([]domain.User, error) {
	logger.DatabaseCall("SELECT", "users peers", "userID", userID)

	// Peers are fellow managers of gardens the user manages, plus
	// gardeners of any plot the user can edit (their own plots and the
	// plots of their managed gardens).
	query := `SELECT DISTINCT ` + qualifiedUserColumns("u") + `
	          FROM users u
	          WHERE u.id <> $1 AND (
	              u.id IN (
	                  SELECT gm.user_id FROM garden_managers gm
	                  WHERE gm.garden_id IN (SELECT garden_id FROM garden_managers WHERE user_id = $1)
	              )
	              OR u.id IN (
	                  SELECT pg.user_id FROM plot_gardeners pg
	                  WHERE pg.plot_id IN (
	                      SELECT p.id FROM plots p
	                      LEFT JOIN plot_gardeners mine ON mine.plot_id = p.id AND mine.user_id = $1
	                      LEFT JOIN garden_managers gm2 ON gm2.garden_id = p.garden_id AND gm2.user_id = $1
	                      WHERE mine.user_id IS NOT NULL OR gm2.user_id IS NOT NULL
	                  )
	              )
	          )
	          ORDER BY u.id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.DatabaseResult("SELECT", 0, err, "userID", userID)
		return nil, err
	}
	defer rows.Close()

	users, err := collectUsers(rows)
	logger.DatabaseResult("SELECT", int64(len(users)), err, "userID", userID)
	return users, err
}

func (r *userRepository) ClearStaleActivationTokens(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE users SET activation_token = NULL
	          WHERE activation_token IS NOT NULL AND is_active = FALSE AND created_on < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func qualifiedUserColumns(alias string) string {
	return alias + `.id, ` + alias + `.email, ` + alias + `.first_name, ` + alias + `.last_name, ` +
		alias + `.phone_number, COALESCE(` + alias + `.photo_url, ''), COALESCE(` + alias + `.password_hash, ''), ` +
		alias + `.is_active, ` + alias + `.activation_token, ` + alias + `.created_on`
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
