package admin

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "filedrop-api/internal/domain/admin"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, domain.Repository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewRepository(mock)
}

func TestFetchByUsername(t *testing.T) {
	mock, repo := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(SelectAdminByUsername)).
		WithArgs("admin").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "password_hash", "created_at"}).
			AddRow(uint64(1), "admin", "$2a$10$hash", now))

	a, err := repo.FetchByUsername(context.Background(), "admin")
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, domain.ID(1), a.ID)
	assert.Equal(t, "admin", a.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchByUsername_NoRowsIsNotAnError(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(SelectAdminByUsername)).
		WithArgs("nobody").
		WillReturnError(pgx.ErrNoRows)

	a, err := repo.FetchByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, a)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAdminUser_UniqueViolation(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(InsertAdmin)).
		WithArgs("admin", "$2a$10$hash").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "admin_users_username_key"})

	_, err := repo.CreateAdminUser(context.Background(), &domain.AdminUser{
		Username:     "admin",
		PasswordHash: "$2a$10$hash",
	})
	require.ErrorIs(t, err, ErrUsernameTaken)

	require.NoError(t, mock.ExpectationsWereMet())
}
