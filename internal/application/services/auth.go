package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"filedrop-api/config"
	"filedrop-api/internal/application/ports"
	domain "filedrop-api/internal/domain/admin"
	admindb "filedrop-api/internal/infrastructure/db/postgres/admin"
	"filedrop-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const sessionTTL = time.Hour

// bcrypt of "filedrop"; burned on unknown usernames so a missing account
// costs the same as a wrong password.
var dummyHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

type AuthService struct {
	adminRepository domain.Repository
	jwtService      *jwt.Service
	adminCfg        config.Admin
}

func NewAuthService(
	adminRepository domain.Repository,
	jwtService *jwt.Service,
	adminCfg config.Admin,
) ports.Auth {
	return &AuthService{
		adminRepository: adminRepository,
		jwtService:      jwtService,
		adminCfg:        adminCfg,
	}
}

// Login verifies the credentials and issues the admin session capability.
// Unknown username and wrong password fail identically.
func (as *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	a, err := as.adminRepository.FetchByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", err
	}
	if a == nil {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := as.jwtService.GenerateJWT(strconv.FormatUint(uint64(a.ID), 10), "admin", sessionTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}

// EnsureAdmin seeds the configured admin account when none exists yet.
// A unique violation from a concurrently booting instance counts as done.
func (as *AuthService) EnsureAdmin(ctx context.Context) error {
	a, err := as.adminRepository.FetchByUsername(ctx, as.adminCfg.Username)
	if err != nil {
		return err
	}
	if a != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(as.adminCfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = as.adminRepository.CreateAdminUser(ctx, &domain.AdminUser{
		Username:     as.adminCfg.Username,
		PasswordHash: string(hash),
	})
	if errors.Is(err, admindb.ErrUsernameTaken) {
		return nil
	}

	return err
}
