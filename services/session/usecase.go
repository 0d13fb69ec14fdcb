package session

import (
	"context"

	"github.com/piresc/saferoute/internal/pkg/models"
)

// SessionUC manages the signed-in user
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/saferoute/services/session SessionUC
type SessionUC interface {
	// Login reuses a stored unexpired token when the backend still accepts
	// it, otherwise signs in with the configured credentials
	Login(ctx context.Context) (*models.User, error)
	Logout() error
	CurrentUser() *models.User
	EmployeeProfile(ctx context.Context) (*models.EmployeeProfile, error)
}
