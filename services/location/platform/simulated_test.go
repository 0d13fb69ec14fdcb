package platform

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/piresc/saferoute/internal/pkg/models"
	"github.com/piresc/saferoute/services/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var route = []models.Coordinates{
	{Lat: 12.9716, Lng: 77.5946},
	{Lat: 12.9352, Lng: 77.6146},
}

func TestParseWaypoints(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []models.Coordinates
		wantErr bool
	}{
		{name: "single", input: "12.9716,77.5946", want: route[:1]},
		{name: "two with spaces", input: " 12.9716, 77.5946 ; 12.9352,77.6146;", want: route},
		{name: "empty", input: "", wantErr: true},
		{name: "missing lng", input: "12.9716", wantErr: true},
		{name: "not a number", input: "abc,77.5", wantErr: true},
		{name: "out of range", input: "91,10", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWaypoints(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewSimulated_Validation(t *testing.T) {
	_, err := NewSimulated(nil, time.Second)
	assert.Error(t, err)

	_, err = NewSimulated([]models.Coordinates{{Lat: 0, Lng: 200}}, time.Second)
	assert.Error(t, err)
}

func TestSimulated_CurrentPosition(t *testing.T) {
	sim, err := NewSimulated(route, time.Minute)
	require.NoError(t, err)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	sim.now = func() time.Time { return now }
	ctx := context.Background()

	first, err := sim.CurrentPosition(ctx, location.FixOptions{HighAccuracy: true})
	require.NoError(t, err)
	assert.Equal(t, route[0], first.Coordinates())
	assert.Nil(t, first.Heading)

	cached, err := sim.CurrentPosition(ctx, location.FixOptions{MaximumAge: 30 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, route[0], cached.Coordinates(), "a young fix is served from cache")

	now = now.Add(time.Minute)
	second, err := sim.CurrentPosition(ctx, location.FixOptions{MaximumAge: 30 * time.Second})
	require.NoError(t, err)
	assert.Equal(t, route[1], second.Coordinates())
	require.NotNil(t, second.Heading)
	require.NotNil(t, second.Speed)
	assert.InDelta(t, 4591.2/60, *second.Speed, 1)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = sim.CurrentPosition(cancelled, location.FixOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSimulated_Watch(t *testing.T) {
	sim, err := NewSimulated(route, 5*time.Millisecond)
	require.NoError(t, err)

	var mu sync.Mutex
	var got []models.Position
	w, err := sim.Watch(location.FixOptions{HighAccuracy: true}, func(p models.Position) {
		mu.Lock()
		got = append(got, p)
		mu.Unlock()
	}, nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) >= 3
	}, time.Second, time.Millisecond)
	w.Clear()
	w.Clear()

	mu.Lock()
	assert.Equal(t, route[0], got[0].Coordinates())
	assert.Equal(t, route[1], got[1].Coordinates())
	assert.Equal(t, route[0], got[2].Coordinates())
	mu.Unlock()
}

func TestSimulated_PermissionsAndHaptics(t *testing.T) {
	sim, err := NewStatic(route[0], time.Second)
	require.NoError(t, err)
	ctx := context.Background()

	assert.False(t, sim.Native())
	state, err := sim.RequestPermission(ctx)
	require.NoError(t, err)
	assert.True(t, state.Granted())
	state, err = sim.CheckPermission(ctx)
	require.NoError(t, err)
	assert.True(t, state.Granted())
	assert.NoError(t, sim.Impact(ctx, location.IntensityHeavy))

	_, err = sim.Watch(location.FixOptions{}, nil, nil)
	assert.Error(t, err)
}
