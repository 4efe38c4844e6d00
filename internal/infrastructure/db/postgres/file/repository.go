package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "filedrop-api/internal/domain/file"
	"filedrop-api/internal/infrastructure/db/postgres"
)

// ErrIdentifierTaken is returned when an insert loses the race for a code or
// delete token. The unique constraints on shared_files are the final arbiter;
// callers regenerate both identifiers and retry.
var ErrIdentifierTaken = errors.New("identifier already taken")

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByID(ctx context.Context, id domain.ID) (*domain.SharedFile, error) {
	f := new(SharedFile)
	err := r.db.QueryRow(ctx, SelectFileByID, uint64(id)).Scan(
		&f.ID,
		&f.Code,
		&f.DeleteToken,

		&f.OriginalName,
		&f.ContentType,
		&f.SizeBytes,
		&f.Data,

		&f.UploadedAt,
		&f.DownloadCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchByCode(ctx context.Context, code string) (*domain.SharedFile, error) {
	f := new(SharedFile)
	err := r.db.QueryRow(ctx, SelectFileByCode, code).Scan(
		&f.ID,
		&f.Code,
		&f.DeleteToken,

		&f.OriginalName,
		&f.ContentType,
		&f.SizeBytes,
		&f.Data,

		&f.UploadedAt,
		&f.DownloadCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

// FetchByCodeAndToken matches both columns in a single query, so an unknown
// code and a wrong token are the same "no rows" outcome.
func (r *Repository) FetchByCodeAndToken(ctx context.Context, code, token string) (*domain.SharedFile, error) {
	f := new(SharedFile)
	err := r.db.QueryRow(ctx, SelectFileByCodeAndToken, code, token).Scan(
		&f.ID,
		&f.Code,
		&f.DeleteToken,

		&f.OriginalName,
		&f.ContentType,
		&f.SizeBytes,
		&f.Data,

		&f.UploadedAt,
		&f.DownloadCount,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchAll(ctx context.Context) (domain.SharedFiles, error) {
	rows, err := r.db.Query(ctx, SelectFilesMetadata)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs SharedFiles
	for rows.Next() {
		f := new(SharedFile)

		if err = rows.Scan(
			&f.ID,
			&f.Code,

			&f.OriginalName,
			&f.ContentType,
			&f.SizeBytes,

			&f.UploadedAt,
			&f.DownloadCount,
		); err != nil {
			return nil, err
		}

		fs = append(fs, f)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&fs), nil
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectCodeExists, code).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) TokenExists(ctx context.Context, token string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, SelectTokenExists, token).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateSharedFile(ctx context.Context, req *domain.SharedFile) (*domain.SharedFile, error) {
	f := new(SharedFile)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.Code, req.DeleteToken, req.OriginalName, req.ContentType, req.SizeBytes, req.Data,
	).Scan(
		&f.ID,
		&f.Code,
		&f.DeleteToken,

		&f.OriginalName,
		&f.ContentType,
		&f.SizeBytes,

		&f.UploadedAt,
		&f.DownloadCount,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrIdentifierTaken
		}
		return nil, err
	}
	f.Data = req.Data

	return fromDBModel(f), err
}

func (r *Repository) IncrementDownloadCount(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, IncrementDownloadCountByID, uint64(id))
	return err
}

func (r *Repository) DeleteSharedFile(ctx context.Context, id domain.ID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteFileByID, uint64(id))
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
