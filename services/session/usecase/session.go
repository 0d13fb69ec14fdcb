package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
	"github.com/piresc/saferoute/internal/pkg/logger"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/session"
)

// expirySkew treats tokens this close to expiry as already expired
const expirySkew = time.Minute

// TokenHolder receives the active bearer token, usually the HTTP client
type TokenHolder interface {
	SetToken(token string)
}

// SessionUC implements session.SessionUC
type SessionUC struct {
	gw     session.AuthGW
	store  session.TokenStore
	holder TokenHolder
	cfg    models.SessionConfig
	now    func() time.Time

	mu   sync.RWMutex
	user *models.User
}

// NewSessionUC creates a new session use case
func NewSessionUC(gw session.AuthGW, store session.TokenStore, holder TokenHolder, cfg models.SessionConfig) *SessionUC {
	return &SessionUC{
		gw:     gw,
		store:  store,
		holder: holder,
		cfg:    cfg,
		now:    time.Now,
	}
}

// Login restores or establishes the session
func (uc *SessionUC) Login(ctx context.Context) (*models.User, error) {
	user, err := uc.resume(ctx)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = uc.signIn(ctx)
		if err != nil {
			return nil, err
		}
	}

	uc.mu.Lock()
	uc.user = user
	uc.mu.Unlock()

	logger.Info("Session ready",
		logger.Int64("user_id", user.ID),
		logger.String("username", user.Username),
		logger.String("role", string(user.Role)))
	return user, nil
}

// resume returns nil, nil when there is no usable stored token
func (uc *SessionUC) resume(ctx context.Context) (*models.User, error) {
	token, err := uc.store.Load()
	if err != nil {
		logger.Warn("Ignoring unreadable token store", logger.Err(err))
		return nil, nil
	}
	if token == "" {
		return nil, nil
	}

	claims, err := session.Inspect(token)
	if err != nil || claims.ExpiresWithin(uc.now(), expirySkew) {
		logger.Info("Stored token unusable, signing in again")
		uc.discard()
		return nil, nil
	}

	uc.holder.SetToken(token)
	user, err := uc.gw.Me(ctx)
	if errors.Is(err, apperrors.ErrUnauthorized) {
		logger.Info("Stored token rejected, signing in again")
		uc.discard()
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *SessionUC) signIn(ctx context.Context) (*models.User, error) {
	if uc.cfg.Username == "" {
		return nil, fmt.Errorf("%w: no stored session and no credentials configured", apperrors.ErrUnauthorized)
	}

	resp, err := uc.gw.Login(ctx, models.LoginRequest{
		Username: uc.cfg.Username,
		Password: uc.cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("login as %s: %w", uc.cfg.Username, err)
	}

	uc.holder.SetToken(resp.AccessToken)
	if err := uc.store.Save(resp.AccessToken); err != nil {
		logger.Warn("Failed to persist token", logger.Err(err))
	}

	user := resp.User
	return &user, nil
}

func (uc *SessionUC) discard() {
	uc.holder.SetToken("")
	if err := uc.store.Clear(); err != nil {
		logger.Warn("Failed to clear token store", logger.Err(err))
	}
}

// Logout forgets the token locally
func (uc *SessionUC) Logout() error {
	uc.mu.Lock()
	uc.user = nil
	uc.mu.Unlock()

	uc.holder.SetToken("")
	return uc.store.Clear()
}

// CurrentUser returns the signed-in user, nil before Login
func (uc *SessionUC) CurrentUser() *models.User {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	if uc.user == nil {
		return nil
	}
	u := *uc.user
	return &u
}

// EmployeeProfile returns the rider profile with the pickup point
func (uc *SessionUC) EmployeeProfile(ctx context.Context) (*models.EmployeeProfile, error) {
	return uc.gw.EmployeeProfile(ctx)
}

var _ session.SessionUC = (*SessionUC)(nil)
