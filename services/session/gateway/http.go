package gateway

import (
	"context"
	"fmt"

	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/session"
)

// HTTPGateway talks to the backend /auth and /employees API
type HTTPGateway struct {
	client *httpclient.Client
}

// NewHTTPGateway creates a new auth gateway
func NewHTTPGateway(client *httpclient.Client) *HTTPGateway {
	return &HTTPGateway{client: client}
}

// Login exchanges credentials for an access token
func (g *HTTPGateway) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	if err := g.client.PostJSON(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Me returns the user owning the current token
func (g *HTTPGateway) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := g.client.GetJSON(ctx, "/auth/me", &user); err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &user, nil
}

// EmployeeProfile returns the signed-in rider's profile
func (g *HTTPGateway) EmployeeProfile(ctx context.Context) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	if err := g.client.GetJSON(ctx, "/employees/me", &profile); err != nil {
		return nil, fmt.Errorf("failed to get employee profile: %w", err)
	}
	return &profile, nil
}

var _ session.AuthGW = (*HTTPGateway)(nil)
