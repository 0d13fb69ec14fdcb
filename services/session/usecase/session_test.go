package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/golang/mock/gomock"
	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/session"
	"github.com/piresc/saferoute/services/session/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingHolder struct {
	tokens []string
}

func (h *recordingHolder) SetToken(token string) {
	h.tokens = append(h.tokens, token)
}

func (h *recordingHolder) last() string {
	if len(h.tokens) == 0 {
		return ""
	}
	return h.tokens[len(h.tokens)-1]
}

func tokenExpiringIn(t *testing.T, d time.Duration) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, session.Claims{
		UserID: 3,
		Role:   models.RoleDriver,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(d)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)
	return token
}

func newTestSession(t *testing.T, cfg models.SessionConfig) (*SessionUC, *mocks.MockAuthGW, *mocks.MockTokenStore, *recordingHolder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockAuthGW(ctrl)
	store := mocks.NewMockTokenStore(ctrl)
	holder := &recordingHolder{}
	return NewSessionUC(gw, store, holder, cfg), gw, store, holder
}

var driverUser = models.User{ID: 3, Username: "driver.ravi", Role: models.RoleDriver}

func TestLogin_ReusesStoredToken(t *testing.T) {
	uc, gw, store, holder := newTestSession(t, models.SessionConfig{Username: "driver.ravi", Password: "pw"})
	token := tokenExpiringIn(t, time.Hour)

	store.EXPECT().Load().Return(token, nil)
	gw.EXPECT().Me(gomock.Any()).Return(&driverUser, nil)
	gw.EXPECT().Login(gomock.Any(), gomock.Any()).Times(0)

	user, err := uc.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "driver.ravi", user.Username)
	assert.Equal(t, token, holder.last())
	assert.Equal(t, int64(3), uc.CurrentUser().ID)
}

func TestLogin_ExpiredTokenSignsIn(t *testing.T) {
	uc, gw, store, holder := newTestSession(t, models.SessionConfig{Username: "driver.ravi", Password: "pw"})

	store.EXPECT().Load().Return(tokenExpiringIn(t, 10*time.Second), nil)
	store.EXPECT().Clear().Return(nil)
	gw.EXPECT().Me(gomock.Any()).Times(0)
	gw.EXPECT().Login(gomock.Any(), models.LoginRequest{Username: "driver.ravi", Password: "pw"}).
		Return(&models.LoginResponse{AccessToken: "fresh", TokenType: "bearer", User: driverUser}, nil)
	store.EXPECT().Save("fresh").Return(nil)

	user, err := uc.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), user.ID)
	assert.Equal(t, "fresh", holder.last())
}

func TestLogin_RejectedTokenSignsIn(t *testing.T) {
	uc, gw, store, holder := newTestSession(t, models.SessionConfig{Username: "driver.ravi", Password: "pw"})

	store.EXPECT().Load().Return(tokenExpiringIn(t, time.Hour), nil)
	gw.EXPECT().Me(gomock.Any()).Return(nil, &httpclient.HTTPError{StatusCode: 401, Detail: "Could not validate credentials"})
	store.EXPECT().Clear().Return(nil)
	gw.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(&models.LoginResponse{AccessToken: "fresh", User: driverUser}, nil)
	store.EXPECT().Save("fresh").Return(nil)

	_, err := uc.Login(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "fresh", holder.last())
}

func TestLogin_NoTokenNoCredentials(t *testing.T) {
	uc, _, store, _ := newTestSession(t, models.SessionConfig{})
	store.EXPECT().Load().Return("", nil)

	_, err := uc.Login(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Nil(t, uc.CurrentUser())
}

func TestLogin_BadCredentials(t *testing.T) {
	uc, gw, store, _ := newTestSession(t, models.SessionConfig{Username: "driver.ravi", Password: "wrong"})

	store.EXPECT().Load().Return("", nil)
	gw.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, &httpclient.HTTPError{StatusCode: 401, Detail: "Invalid username or password"})

	_, err := uc.Login(context.Background())

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid username or password")
}

func TestLogin_BackendDownKeepsToken(t *testing.T) {
	uc, gw, store, _ := newTestSession(t, models.SessionConfig{Username: "driver.ravi", Password: "pw"})

	store.EXPECT().Load().Return(tokenExpiringIn(t, time.Hour), nil)
	gw.EXPECT().Me(gomock.Any()).Return(nil, errors.New("connection refused"))
	store.EXPECT().Clear().Times(0)

	_, err := uc.Login(context.Background())

	assert.Error(t, err)
}

func TestLogout(t *testing.T) {
	uc, gw, store, holder := newTestSession(t, models.SessionConfig{})
	store.EXPECT().Load().Return(tokenExpiringIn(t, time.Hour), nil)
	gw.EXPECT().Me(gomock.Any()).Return(&driverUser, nil)
	_, err := uc.Login(context.Background())
	require.NoError(t, err)

	store.EXPECT().Clear().Return(nil)
	require.NoError(t, uc.Logout())

	assert.Nil(t, uc.CurrentUser())
	assert.Equal(t, "", holder.last())
}

func TestEmployeeProfile(t *testing.T) {
	uc, gw, _, _ := newTestSession(t, models.SessionConfig{})
	lat, lng := 12.9352, 77.6146
	gw.EXPECT().EmployeeProfile(gomock.Any()).Return(&models.EmployeeProfile{ID: 8, PickupLat: &lat, PickupLng: &lng}, nil)

	profile, err := uc.EmployeeProfile(context.Background())

	require.NoError(t, err)
	require.NotNil(t, profile.Pickup())
	assert.Equal(t, 12.9352, profile.Pickup().Lat)
}
