package models

import (
	"fmt"
	"sort"
)

// RouteType distinguishes pickup and drop runs
type RouteType string

const (
	RouteTypePickup RouteType = "PICKUP"
	RouteTypeDrop   RouteType = "DROP"
)

// Route is an ordered pickup or drop sequence
type Route struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Type      RouteType   `json:"route_type"`
	DriverID  *int64      `json:"driver_id,omitempty"`
	VehicleID *int64      `json:"vehicle_id,omitempty"`
	Active    bool        `json:"is_active"`
	Stops     []RouteStop `json:"stops"`
	CreatedAt Timestamp   `json:"created_at"`
}

// RouteStop is one rider's position within a route
type RouteStop struct {
	ID            int64     `json:"id"`
	RouteID       int64     `json:"route_id"`
	EmployeeID    int64     `json:"employee_id"`
	SequenceOrder int       `json:"sequence_order"`
	CreatedAt     Timestamp `json:"created_at"`
}

// RouteStopCreate is the body of POST /routes/{id}/stops
type RouteStopCreate struct {
	EmployeeID    int64 `json:"employee_id"`
	SequenceOrder int   `json:"sequence_order"`
}

// RouteStopUpdate is the body of PUT /routes/{id}/stops/{stopId}
type RouteStopUpdate struct {
	SequenceOrder int `json:"sequence_order"`
}

// SortStops returns a copy of stops ordered by sequence
func SortStops(stops []RouteStop) []RouteStop {
	out := make([]RouteStop, len(stops))
	copy(out, stops)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SequenceOrder < out[j].SequenceOrder
	})
	return out
}

// MaxSequence returns the highest sequence order, zero for an empty route
func MaxSequence(stops []RouteStop) int {
	max := 0
	for _, s := range stops {
		if s.SequenceOrder > max {
			max = s.SequenceOrder
		}
	}
	return max
}

// ValidateSequence checks that sequence orders are exactly 1..N, once each
func ValidateSequence(stops []RouteStop) error {
	seen := make(map[int]bool, len(stops))
	for _, s := range stops {
		if s.SequenceOrder < 1 || s.SequenceOrder > len(stops) {
			return fmt.Errorf("stop %d has sequence %d outside 1..%d", s.ID, s.SequenceOrder, len(stops))
		}
		if seen[s.SequenceOrder] {
			return fmt.Errorf("sequence %d is used more than once", s.SequenceOrder)
		}
		seen[s.SequenceOrder] = true
	}
	return nil
}
