package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T, handler http.HandlerFunc) *HTTPGateway {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := httpclient.NewClient(httpclient.Config{BaseURL: server.URL, Timeout: time.Second})
	client.SetToken("token")
	return NewHTTPGateway(client)
}

func TestHTTPGateway_PushLocation(t *testing.T) {
	tripID := int64(12)
	speed := 8.5

	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/location/", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 12.9716, body["lat"])
		assert.Equal(t, 12.0, body["trip_id"])
		assert.Equal(t, 8.5, body["speed"])
		_, hasHeading := body["heading"]
		assert.False(t, hasHeading)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":1,"driver_id":3,"trip_id":12,"lat":12.9716,"lng":77.5946,"timestamp":"2026-03-01T08:00:00Z"}`))
	})

	sample, err := gw.PushLocation(context.Background(), models.LocationUpdate{Lat: 12.9716, Lng: 77.5946, Speed: &speed, TripID: &tripID})

	require.NoError(t, err)
	assert.Equal(t, int64(3), sample.DriverID)
}

func TestHTTPGateway_PushLocation_Invalid(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("invalid samples must not reach the backend")
	})

	_, err := gw.PushLocation(context.Background(), models.LocationUpdate{Lat: 120, Lng: 0})

	assert.ErrorIs(t, err, apperrors.ErrInvalidLocation)
}

func TestHTTPGateway_PushLocation_Rejected(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"User is not a driver"}`))
	})

	_, err := gw.PushLocation(context.Background(), models.LocationUpdate{Lat: 1, Lng: 1})

	require.Error(t, err)
	var httpErr *httpclient.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "User is not a driver", httpErr.Detail)
}

func TestHTTPGateway_DriverLocation(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantNil bool
		wantErr bool
	}{
		{name: "found", status: http.StatusOK, body: `{"id":9,"driver_id":3,"lat":12.9716,"lng":77.5946,"timestamp":"2026-03-01T08:00:00Z"}`},
		{name: "naive timestamp", status: http.StatusOK, body: `{"id":9,"driver_id":3,"lat":12.9716,"lng":77.5946,"timestamp":"2026-03-01T08:00:00.123456"}`},
		{name: "never reported", status: http.StatusOK, body: `null`, wantNil: true},
		{name: "unknown driver", status: http.StatusNotFound, body: `{"detail":"Driver not found"}`, wantNil: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/location/driver/3", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			sample, err := gw.DriverLocation(context.Background(), 3)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, sample)
				return
			}
			require.NotNil(t, sample)
			assert.Equal(t, int64(3), sample.DriverID)
			assert.Equal(t, "tdr1v9q", sample.Geohash)
		})
	}
}

func TestHTTPGateway_AllLocations(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/location/all", r.URL.Path)
		w.Write([]byte(`[
			{"id":1,"driver_id":3,"lat":12.9716,"lng":77.5946,"timestamp":"2026-03-01T08:00:00Z"},
			{"id":2,"driver_id":4,"lat":12.9352,"lng":77.6146,"timestamp":"2026-03-01T08:00:05.250000"}
		]`))
	})

	samples, err := gw.AllLocations(context.Background())

	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Len(t, samples[0].Geohash, 7)
	assert.NotEqual(t, samples[0].Geohash, samples[1].Geohash)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 5, 250000000, time.UTC), samples[1].Timestamp.Time)
}
