package file

import (
	"context"
)

type Repository interface {
	FetchByID(ctx context.Context, id ID) (*SharedFile, error)
	FetchByCode(ctx context.Context, code string) (*SharedFile, error)
	FetchByCodeAndToken(ctx context.Context, code, token string) (*SharedFile, error)
	// FetchAll returns metadata only, newest first. Payload bytes stay in the DB.
	FetchAll(ctx context.Context) (SharedFiles, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	TokenExists(ctx context.Context, token string) (bool, error)
	CreateSharedFile(ctx context.Context, req *SharedFile) (*SharedFile, error)
	IncrementDownloadCount(ctx context.Context, id ID) error
	DeleteSharedFile(ctx context.Context, id ID) (bool, error)
}
