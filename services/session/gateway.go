package session

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// AuthGW is the backend auth and profile API
// go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/saferoute/services/session AuthGW,TokenStore
type AuthGW interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Me(ctx context.Context) (*models.User, error)
	EmployeeProfile(ctx context.Context) (*models.EmployeeProfile, error)
}

// TokenStore persists the bearer token between runs
type TokenStore interface {
	// Load returns "" when nothing is stored
	Load() (string, error)
	Save(token string) error
	Clear() error
}
