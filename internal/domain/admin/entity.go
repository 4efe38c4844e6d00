package admin

import (
	"time"
)

type (
	ID        uint64
	AdminUser struct {
		ID           ID
		Username     string
		PasswordHash string

		CreatedAt time.Time
	}
)
