package admin

import (
	"context"
)

type Repository interface {
	FetchByUsername(ctx context.Context, username string) (*AdminUser, error)
	CreateAdminUser(ctx context.Context, req *AdminUser) (*AdminUser, error)
}
