package models

import (
	"time"
)

// TripStatus represents the current status of a trip
type TripStatus string

const (
	TripStatusScheduled  TripStatus = "SCHEDULED"
	TripStatusStarted    TripStatus = "STARTED"
	TripStatusInProgress TripStatus = "IN_PROGRESS"
	TripStatusCompleted  TripStatus = "COMPLETED"
	TripStatusCancelled  TripStatus = "CANCELLED"
)

// tripTransitions is the lifecycle table. CANCELLED is reachable from every
// non-terminal state.
var tripTransitions = map[TripStatus][]TripStatus{
	TripStatusScheduled:  {TripStatusStarted, TripStatusCancelled},
	TripStatusStarted:    {TripStatusInProgress, TripStatusCancelled},
	TripStatusInProgress: {TripStatusCompleted, TripStatusCancelled},
	TripStatusCompleted:  {},
	TripStatusCancelled:  {},
}

// IsTerminal reports whether no further transition is possible
func (s TripStatus) IsTerminal() bool {
	return s == TripStatusCompleted || s == TripStatusCancelled
}

// IsActive reports whether the trip is still scheduled or running
func (s TripStatus) IsActive() bool {
	return s == TripStatusScheduled || s == TripStatusStarted || s == TripStatusInProgress
}

// Streams reports whether entering this status starts location streaming
func (s TripStatus) Streams() bool {
	return s == TripStatusStarted || s == TripStatusInProgress
}

// CanTransitionTo reports whether target is a legal next status
func (s TripStatus) CanTransitionTo(target TripStatus) bool {
	for _, next := range tripTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Next returns the forward (non-cancelling) successor of s, if any
func (s TripStatus) Next() (TripStatus, bool) {
	switch s {
	case TripStatusScheduled:
		return TripStatusStarted, true
	case TripStatusStarted:
		return TripStatusInProgress, true
	case TripStatusInProgress:
		return TripStatusCompleted, true
	}
	return "", false
}

// Trip is one scheduled or executed vehicle run over a route
type Trip struct {
	ID            int64      `json:"id"`
	RouteID       int64      `json:"route_id"`
	DriverID      int64      `json:"driver_id"`
	VehicleID     int64      `json:"vehicle_id"`
	Status        TripStatus `json:"status"`
	ScheduledTime *Timestamp `json:"scheduled_time,omitempty"`
	StartedAt     *Timestamp `json:"started_at,omitempty"`
	CompletedAt   *Timestamp `json:"completed_at,omitempty"`
	CreatedAt     Timestamp  `json:"created_at"`
}

// TripStatusUpdate is the body of PATCH /trips/{id}/status
type TripStatusUpdate struct {
	Status TripStatus `json:"status"`
	Lat    *float64   `json:"lat,omitempty"`
	Lng    *float64   `json:"lng,omitempty"`
}

// TripCreate is the body of POST /trips/
type TripCreate struct {
	RouteID       int64      `json:"route_id"`
	DriverID      int64      `json:"driver_id"`
	VehicleID     int64      `json:"vehicle_id"`
	Status        TripStatus `json:"status"`
	ScheduledTime *time.Time `json:"scheduled_time,omitempty"`
}

// ActiveTrip returns the first trip that is still scheduled or running
func ActiveTrip(trips []Trip) *Trip {
	for i := range trips {
		if trips[i].Status.IsActive() {
			t := trips[i]
			return &t
		}
	}
	return nil
}
