package admin

import (
	"time"
)

type AdminUser struct {
	ID           uint64
	Username     string
	PasswordHash string

	CreatedAt time.Time
}
