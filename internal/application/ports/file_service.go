package ports

import (
	"context"

	"filedrop-api/internal/domain/file"
)

type FileService interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (*file.SharedFile, error)
	FindByCode(ctx context.Context, code string) (*file.SharedFile, error)
	Download(ctx context.Context, code string) (*file.SharedFile, error)
	DeleteByCodeAndToken(ctx context.Context, code, token string) (bool, error)
	FindAll(ctx context.Context) (file.SharedFiles, error)
	DeleteByID(ctx context.Context, id file.ID) (bool, error)
}
