package gateway

import (
	"context"
	"encoding/json"
	"errors"
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
	return NewHTTPGateway(httpclient.NewClient(httpclient.Config{BaseURL: server.URL, Timeout: time.Second}))
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

func TestHTTPGateway_UpdateStatus(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/trips/7/status", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "STARTED", body["status"])
		assert.Equal(t, 12.9716, body["lat"])
		assert.Equal(t, 77.5946, body["lng"])

		writeJSON(w, http.StatusOK, `{"id":7,"route_id":2,"driver_id":3,"vehicle_id":4,"status":"STARTED","created_at":"2026-03-01T08:00:00Z"}`)
	})

	lat, lng := 12.9716, 77.5946
	trip, err := gw.UpdateStatus(context.Background(), 7, models.TripStatusUpdate{Status: models.TripStatusStarted, Lat: &lat, Lng: &lng})

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusStarted, trip.Status)
}

func TestHTTPGateway_UpdateStatus_KeepsBackendDetail(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{"detail":"Must be within 1km of the first pickup to start"}`)
	})

	_, err := gw.UpdateStatus(context.Background(), 7, models.TripStatusUpdate{Status: models.TripStatusStarted})

	require.Error(t, err)
	assert.Equal(t, "Must be within 1km of the first pickup to start", err.Error())
}

func TestHTTPGateway_MyTrips(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/my", r.URL.Path)
		writeJSON(w, http.StatusOK, `[{"id":1,"status":"COMPLETED"},{"id":2,"status":"SCHEDULED"}]`)
	})

	list, err := gw.MyTrips(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.TripStatusScheduled, list[1].Status)
}

func TestHTTPGateway_MyTrips_NaiveTimestamps(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `[{"id":7,"route_id":2,"driver_id":3,"vehicle_id":4,"status":"IN_PROGRESS",`+
			`"scheduled_time":"2026-03-01T07:45:00","started_at":"2026-03-01T08:01:30.5","completed_at":null,`+
			`"created_at":"2026-03-01T08:00:00.123456"}]`)
	})

	list, err := gw.MyTrips(context.Background())

	require.NoError(t, err)
	require.Len(t, list, 1)
	trip := list[0]
	assert.Equal(t, time.Date(2026, 3, 1, 8, 0, 0, 123456000, time.UTC), trip.CreatedAt.Time)
	require.NotNil(t, trip.ScheduledTime)
	assert.Equal(t, time.Date(2026, 3, 1, 7, 45, 0, 0, time.UTC), trip.ScheduledTime.Time)
	require.NotNil(t, trip.StartedAt)
	assert.Equal(t, time.Date(2026, 3, 1, 8, 1, 30, 500000000, time.UTC), trip.StartedAt.Time)
	assert.Nil(t, trip.CompletedAt)
}

func TestHTTPGateway_EmployeeActiveTrip(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantID  int64
		wantNil bool
		wantErr bool
	}{
		{name: "active", status: http.StatusOK, body: `{"id":5,"status":"IN_PROGRESS"}`, wantID: 5},
		{name: "naive timestamp", status: http.StatusOK, body: `{"id":6,"status":"SCHEDULED","created_at":"2026-03-01T08:00:00"}`, wantID: 6},
		{name: "none", status: http.StatusNotFound, body: `{"detail":"No active trip found"}`, wantNil: true},
		{name: "server error", status: http.StatusInternalServerError, body: `{"detail":"boom"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/trips/employee/active", r.URL.Path)
				writeJSON(w, tt.status, tt.body)
			})

			trip, err := gw.EmployeeActiveTrip(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantNil {
				assert.Nil(t, trip)
				return
			}
			assert.Equal(t, tt.wantID, trip.ID)
		})
	}
}

func TestHTTPGateway_GetTrip(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/trips/9", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":9,"driver_id":3,"status":"STARTED"}`)
	})

	trip, err := gw.GetTrip(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, int64(3), trip.DriverID)
}

func TestHTTPGateway_CreateTrip(t *testing.T) {
	scheduled := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/trips/", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 2.0, body["route_id"])
		assert.Equal(t, "SCHEDULED", body["status"])
		assert.Equal(t, "2026-03-01T08:00:00Z", body["scheduled_time"])

		writeJSON(w, http.StatusOK, `{"id":10,"route_id":2,"status":"SCHEDULED"}`)
	})

	trip, err := gw.CreateTrip(context.Background(), models.TripCreate{
		RouteID: 2, DriverID: 3, VehicleID: 4, Status: models.TripStatusScheduled, ScheduledTime: &scheduled,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), trip.ID)
}

func TestHTTPGateway_CreateTrip_Conflict(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, `{"detail":"Driver already has an active trip"}`)
	})

	_, err := gw.CreateTrip(context.Background(), models.TripCreate{RouteID: 2})

	assert.True(t, errors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "Driver already has an active trip", err.Error())
}

func TestHTTPGateway_GetDriver(t *testing.T) {
	gw := newGateway(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drivers/3", r.URL.Path)
		writeJSON(w, http.StatusOK, `{"id":3,"user_id":8,"assigned_vehicle":{"id":4,"vehicle_number":"KA01AB1234","car_type":"SUV","capacity":6}}`)
	})

	driver, err := gw.GetDriver(context.Background(), 3)

	require.NoError(t, err)
	require.NotNil(t, driver.AssignedVehicle)
	assert.Equal(t, int64(4), driver.AssignedVehicle.ID)
}
