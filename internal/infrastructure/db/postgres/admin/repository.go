package admin

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "filedrop-api/internal/domain/admin"
	"filedrop-api/internal/infrastructure/db/postgres"
)

// ErrUsernameTaken signals that a concurrent boot already seeded this admin.
var ErrUsernameTaken = errors.New("username already taken")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByUsername(ctx context.Context, username string) (*domain.AdminUser, error) {
	a := new(AdminUser)
	err := r.db.QueryRow(ctx, SelectAdminByUsername, username).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,

		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(a), err
}

func (r *Repository) CreateAdminUser(ctx context.Context, req *domain.AdminUser) (*domain.AdminUser, error) {
	a := new(AdminUser)

	err := r.db.QueryRow(
		ctx,
		InsertAdmin,
		req.Username, req.PasswordHash,
	).Scan(
		&a.ID,
		&a.Username,
		&a.PasswordHash,

		&a.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	return fromDBModel(a), err
}
