package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gardenhub-backend/internal/domain"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "first_name", "last_name", "phone_number", "photo_url", "password_hash", "is_active", "activation_token", "created_on",
	})
}

func TestCreateLowercasesEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	user := &domain.User{Email: " Mixed@Example.COM ", FirstName: "Sam"}

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("mixed@example.com", "Sam", "", "", "", "", false, nil, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	require.NoError(t, repo.Create(context.Background(), user))
	assert.Equal(t, int32(5), user.ID)
	assert.Equal(t, "mixed@example.com", user.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailMissesWithNoRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE email = LOWER\(\$1\)`).
		WithArgs("nobody@example.com").
		WillReturnRows(userRows())

	_, err = repo.GetByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetByActivationToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	token := "tok-123"
	mock.ExpectQuery(`SELECT (.+) FROM users WHERE activation_token = \$1`).
		WithArgs(token).
		WillReturnRows(userRows().AddRow(11, "invited@example.com", "", "", "", "", "", false, token, time.Now()))

	user, err := repo.GetByActivationToken(context.Background(), token)
	require.NoError(t, err)
	assert.False(t, user.IsActive)
	require.NotNil(t, user.ActivationToken)
	assert.Equal(t, token, *user.ActivationToken)
}

func TestClearStaleActivationTokens(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserRepository(db)
	cutoff := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE users SET activation_token = NULL`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.ClearStaleActivationTokens(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
