package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/piresc/saferoute/internal/pkg/apperrors"
	httpclient "github.com/piresc/saferoute/internal/pkg/http"
	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
	locmocks "github.com/piresc/saferoute/services/location/mocks"
	"github.com/piresc/saferoute/services/trips/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	uc       *TripUC
	tripGW   *mocks.MockTripGW
	locGW    *locmocks.MockLocationGW
	provider *locmocks.MockLocationProvider
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		tripGW:   mocks.NewMockTripGW(ctrl),
		locGW:    locmocks.NewMockLocationGW(ctrl),
		provider: locmocks.NewMockLocationProvider(ctrl),
	}
	f.uc = NewTripUC(f.tripGW, f.locGW, f.provider, nil, time.Second)
	return f
}

func scheduledTrip() models.Trip {
	return models.Trip{ID: 7, RouteID: 2, DriverID: 3, VehicleID: 4, Status: models.TripStatusScheduled}
}

func withStatus(trip models.Trip, status models.TripStatus) *models.Trip {
	trip.Status = status
	return &trip
}

func TestTransition_StartWithCachedFix(t *testing.T) {
	f := newFixture(t)
	trip := scheduledTrip()
	fix := &models.Position{Latitude: 12.9716, Longitude: 77.5946}

	f.provider.EXPECT().LastFix().Return(fix)
	f.tripGW.EXPECT().
		UpdateStatus(gomock.Any(), int64(7), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req models.TripStatusUpdate) (*models.Trip, error) {
			assert.Equal(t, models.TripStatusStarted, req.Status)
			require.NotNil(t, req.Lat)
			require.NotNil(t, req.Lng)
			assert.Equal(t, 12.9716, *req.Lat)
			assert.Equal(t, 77.5946, *req.Lng)
			return withStatus(trip, models.TripStatusStarted), nil
		})
	f.provider.EXPECT().Pulse(gomock.Any(), location.IntensityMedium)
	f.provider.EXPECT().StopStream()
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).Return(true)
	f.provider.EXPECT().Pulse(gomock.Any(), location.IntensityLight)
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return([]models.Trip{*withStatus(trip, models.TripStatusStarted)}, nil)

	updated, err := f.uc.Transition(context.Background(), trip, models.TripStatusStarted)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusStarted, updated.Status)
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
	require.NotNil(t, f.uc.ActiveTrip())
	assert.Equal(t, models.TripStatusStarted, f.uc.ActiveTrip().Status)

	f.provider.EXPECT().StopStream()
	f.uc.StopTracking()
}

func TestTransition_StartAcquiresFreshFix(t *testing.T) {
	f := newFixture(t)
	trip := scheduledTrip()

	gomock.InOrder(
		f.provider.EXPECT().LastFix().Return(nil),
		f.provider.EXPECT().CurrentFix(gomock.Any()).Return(&models.Position{Latitude: 1, Longitude: 2}),
	)
	f.tripGW.EXPECT().UpdateStatus(gomock.Any(), int64(7), gomock.Any()).Return(withStatus(trip, models.TripStatusStarted), nil)
	f.provider.EXPECT().Pulse(gomock.Any(), gomock.Any()).AnyTimes()
	f.provider.EXPECT().StopStream().AnyTimes()
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).Return(true)
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return(nil, nil)

	_, err := f.uc.Transition(context.Background(), trip, models.TripStatusStarted)
	require.NoError(t, err)
	f.uc.StopTracking()
}

func TestTransition_StartWithoutFix(t *testing.T) {
	f := newFixture(t)
	trip := scheduledTrip()

	f.provider.EXPECT().LastFix().Return(nil)
	f.provider.EXPECT().CurrentFix(gomock.Any()).Return(nil)
	f.tripGW.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).Times(0)

	updated, err := f.uc.Transition(context.Background(), trip, models.TripStatusStarted)

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, apperrors.ErrFixUnavailable)
	assert.Equal(t, "GPS location required", err.Error())
	assert.Equal(t, models.TripStatusScheduled, trip.Status)
}

func TestTransition_IllegalTarget(t *testing.T) {
	tests := []struct {
		name   string
		from   models.TripStatus
		target models.TripStatus
	}{
		{name: "skip started", from: models.TripStatusScheduled, target: models.TripStatusInProgress},
		{name: "backwards", from: models.TripStatusInProgress, target: models.TripStatusStarted},
		{name: "from terminal", from: models.TripStatusCompleted, target: models.TripStatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			trip := *withStatus(scheduledTrip(), tt.from)

			_, err := f.uc.Transition(context.Background(), trip, tt.target)

			assert.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
		})
	}
}

func TestTransition_BackendRejects(t *testing.T) {
	f := newFixture(t)
	trip := *withStatus(scheduledTrip(), models.TripStatusStarted)
	rejection := &httpclient.HTTPError{StatusCode: 400, Detail: "Cannot transition from STARTED to IN_PROGRESS"}

	f.tripGW.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.TripStatusUpdate{Status: models.TripStatusInProgress}).Return(nil, rejection)

	updated, err := f.uc.Transition(context.Background(), trip, models.TripStatusInProgress)

	assert.Nil(t, updated)
	var httpErr *httpclient.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, "Cannot transition from STARTED to IN_PROGRESS", httpErr.Detail)
	assert.Empty(t, f.uc.Trips())
}

func TestTransition_CompleteStopsTracking(t *testing.T) {
	f := newFixture(t)
	trip := *withStatus(scheduledTrip(), models.TripStatusInProgress)

	f.tripGW.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.TripStatusUpdate{Status: models.TripStatusCompleted}).
		Return(withStatus(trip, models.TripStatusCompleted), nil)
	f.provider.EXPECT().Pulse(gomock.Any(), location.IntensityMedium)
	f.provider.EXPECT().StopStream()
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return(nil, errors.New("offline"))

	updated, err := f.uc.Transition(context.Background(), trip, models.TripStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCompleted, updated.Status)
	assert.Nil(t, f.uc.ActiveTrip())
}

func TestTransition_CancelFromScheduled(t *testing.T) {
	f := newFixture(t)
	trip := scheduledTrip()

	f.tripGW.EXPECT().UpdateStatus(gomock.Any(), int64(7), models.TripStatusUpdate{Status: models.TripStatusCancelled}).
		Return(withStatus(trip, models.TripStatusCancelled), nil)
	f.provider.EXPECT().Pulse(gomock.Any(), location.IntensityMedium)
	f.provider.EXPECT().StopStream()
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return(nil, nil)

	updated, err := f.uc.Transition(context.Background(), trip, models.TripStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, models.TripStatusCancelled, updated.Status)
}

func TestStartTracking_PushesSamples(t *testing.T) {
	f := newFixture(t)
	var onUpdate func(models.Position)
	pushed := make(chan models.LocationUpdate, 4)

	f.provider.EXPECT().StopStream().AnyTimes()
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(u func(models.Position), _ func(error)) bool {
			onUpdate = u
			return true
		})
	f.provider.EXPECT().Pulse(gomock.Any(), location.IntensityLight)
	f.locGW.EXPECT().PushLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.LocationUpdate) (*models.DriverLocationSample, error) {
			pushed <- u
			return &models.DriverLocationSample{}, nil
		}).AnyTimes()

	require.True(t, f.uc.StartTracking(context.Background(), 7))

	speed := 10.0
	onUpdate(models.Position{Latitude: 12.97, Longitude: 77.59, Speed: &speed})

	select {
	case u := <-pushed:
		require.NotNil(t, u.TripID)
		assert.Equal(t, int64(7), *u.TripID)
		assert.Equal(t, 12.97, u.Lat)
		assert.Equal(t, &speed, u.Speed)
	case <-time.After(time.Second):
		t.Fatal("sample was not pushed")
	}

	f.uc.StopTracking()
}

func TestStartTracking_PushFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	var onUpdate func(models.Position)
	var calls atomic.Int32

	f.provider.EXPECT().StopStream().AnyTimes()
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(u func(models.Position), _ func(error)) bool {
			onUpdate = u
			return true
		})
	f.provider.EXPECT().Pulse(gomock.Any(), gomock.Any())
	f.locGW.EXPECT().PushLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.LocationUpdate) (*models.DriverLocationSample, error) {
			calls.Add(1)
			return nil, errors.New("offline")
		}).AnyTimes()

	require.True(t, f.uc.StartTracking(context.Background(), 7))
	onUpdate(models.Position{Latitude: 1, Longitude: 1})
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)

	onUpdate(models.Position{Latitude: 1, Longitude: 1})
	require.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, time.Millisecond)

	f.uc.StopTracking()
}

func TestStartTracking_DropsSampleWhilePushInFlight(t *testing.T) {
	f := newFixture(t)
	var onUpdate func(models.Position)
	release := make(chan struct{})
	var calls atomic.Int32

	f.provider.EXPECT().StopStream().AnyTimes()
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(u func(models.Position), _ func(error)) bool {
			onUpdate = u
			return true
		})
	f.provider.EXPECT().Pulse(gomock.Any(), gomock.Any())
	f.locGW.EXPECT().PushLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.LocationUpdate) (*models.DriverLocationSample, error) {
			calls.Add(1)
			select {
			case <-release:
			case <-ctx.Done():
			}
			return &models.DriverLocationSample{}, nil
		}).AnyTimes()

	require.True(t, f.uc.StartTracking(context.Background(), 7))
	onUpdate(models.Position{Latitude: 1, Longitude: 1})
	require.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, time.Millisecond)
	onUpdate(models.Position{Latitude: 2, Longitude: 2})
	close(release)

	f.uc.StopTracking()
	assert.Equal(t, int32(1), calls.Load())
}

func TestStartTracking_StreamRefused(t *testing.T) {
	f := newFixture(t)

	f.provider.EXPECT().StopStream()
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).Return(false)

	assert.False(t, f.uc.StartTracking(context.Background(), 7))
}

func TestStopTracking_CancelsInFlightPush(t *testing.T) {
	f := newFixture(t)
	var onUpdate func(models.Position)
	cancelled := make(chan struct{})

	f.provider.EXPECT().StopStream().AnyTimes()
	f.provider.EXPECT().StartStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(u func(models.Position), _ func(error)) bool {
			onUpdate = u
			return true
		})
	f.provider.EXPECT().Pulse(gomock.Any(), gomock.Any())
	started := make(chan struct{})
	f.locGW.EXPECT().PushLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.LocationUpdate) (*models.DriverLocationSample, error) {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return nil, ctx.Err()
		})

	require.True(t, f.uc.StartTracking(context.Background(), 7))
	onUpdate(models.Position{Latitude: 1, Longitude: 1})
	<-started

	f.uc.StopTracking()

	select {
	case <-cancelled:
	default:
		t.Fatal("push still running after StopTracking returned")
	}
}

func TestLoadMyTrips(t *testing.T) {
	f := newFixture(t)
	list := []models.Trip{
		*withStatus(scheduledTrip(), models.TripStatusCompleted),
		{ID: 8, Status: models.TripStatusScheduled},
	}
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return(list, nil)

	got, err := f.uc.LoadMyTrips(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 2)
	got[0].Status = models.TripStatusCancelled
	assert.Equal(t, models.TripStatusCompleted, f.uc.Trips()[0].Status)
	assert.Equal(t, int64(8), f.uc.ActiveTrip().ID)
}

func TestLoadMyTrips_ErrorKeepsPrevious(t *testing.T) {
	f := newFixture(t)
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return([]models.Trip{scheduledTrip()}, nil)
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return(nil, errors.New("offline"))

	_, err := f.uc.LoadMyTrips(context.Background())
	require.NoError(t, err)
	_, err = f.uc.LoadMyTrips(context.Background())

	assert.Error(t, err)
	assert.Len(t, f.uc.Trips(), 1)
}

func TestRefreshTrip(t *testing.T) {
	f := newFixture(t)
	f.tripGW.EXPECT().MyTrips(gomock.Any()).Return([]models.Trip{scheduledTrip()}, nil)
	f.tripGW.EXPECT().GetTrip(gomock.Any(), int64(7)).Return(withStatus(scheduledTrip(), models.TripStatusStarted), nil)
	f.tripGW.EXPECT().GetTrip(gomock.Any(), int64(9)).Return(&models.Trip{ID: 9, Status: models.TripStatusScheduled}, nil)

	_, err := f.uc.LoadMyTrips(context.Background())
	require.NoError(t, err)

	trip, err := f.uc.RefreshTrip(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, models.TripStatusStarted, trip.Status)

	_, err = f.uc.RefreshTrip(context.Background(), 9)
	require.NoError(t, err)

	list := f.uc.Trips()
	require.Len(t, list, 2)
	assert.Equal(t, models.TripStatusStarted, list[0].Status)
	assert.Equal(t, int64(9), list[1].ID)
}

func TestRefreshTrip_NotFound(t *testing.T) {
	f := newFixture(t)
	f.tripGW.EXPECT().GetTrip(gomock.Any(), int64(7)).
		Return(nil, &httpclient.HTTPError{StatusCode: 404, Detail: "Trip not found"})

	trip, err := f.uc.RefreshTrip(context.Background(), 7)

	assert.Nil(t, trip)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, f.uc.Trips())
}

func TestCreateTrip(t *testing.T) {
	driverID, vehicleID := int64(3), int64(4)

	t.Run("uses route vehicle", func(t *testing.T) {
		f := newFixture(t)
		route := models.Route{ID: 2, DriverID: &driverID, VehicleID: &vehicleID}

		f.tripGW.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.TripCreate) (*models.Trip, error) {
				assert.Equal(t, int64(2), c.RouteID)
				assert.Equal(t, int64(3), c.DriverID)
				assert.Equal(t, int64(4), c.VehicleID)
				assert.Equal(t, models.TripStatusScheduled, c.Status)
				require.NotNil(t, c.ScheduledTime)
				assert.WithinDuration(t, time.Now(), *c.ScheduledTime, 5*time.Second)
				return &models.Trip{ID: 9, Status: models.TripStatusScheduled}, nil
			})

		trip, err := f.uc.CreateTrip(context.Background(), route)

		require.NoError(t, err)
		assert.Equal(t, int64(9), trip.ID)
	})

	t.Run("falls back to driver vehicle", func(t *testing.T) {
		f := newFixture(t)
		route := models.Route{ID: 2, DriverID: &driverID}

		f.tripGW.EXPECT().GetDriver(gomock.Any(), int64(3)).
			Return(&models.Driver{ID: 3, AssignedVehicle: &models.VehicleRef{ID: 11}}, nil)
		f.tripGW.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c models.TripCreate) (*models.Trip, error) {
				assert.Equal(t, int64(11), c.VehicleID)
				return &models.Trip{ID: 10}, nil
			})

		_, err := f.uc.CreateTrip(context.Background(), route)
		require.NoError(t, err)
	})

	t.Run("no driver", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.CreateTrip(context.Background(), models.Route{ID: 2})

		assert.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
	})

	t.Run("no vehicle anywhere", func(t *testing.T) {
		f := newFixture(t)
		f.tripGW.EXPECT().GetDriver(gomock.Any(), int64(3)).Return(&models.Driver{ID: 3}, nil)

		_, err := f.uc.CreateTrip(context.Background(), models.Route{ID: 2, DriverID: &driverID})

		assert.ErrorIs(t, err, apperrors.ErrPreconditionFailed)
	})

	t.Run("driver already busy", func(t *testing.T) {
		f := newFixture(t)
		f.tripGW.EXPECT().CreateTrip(gomock.Any(), gomock.Any()).
			Return(nil, &httpclient.HTTPError{StatusCode: 409, Detail: "Driver already has an active trip"})

		_, err := f.uc.CreateTrip(context.Background(), models.Route{ID: 2, DriverID: &driverID, VehicleID: &vehicleID})

		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}
