package models

import "time"

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinates are inside the WGS84 ranges
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// Position is a single fix produced by the location provider
type Position struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`   // m/s
	Heading   *float64  `json:"heading,omitempty"` // degrees from north
	Timestamp time.Time `json:"timestamp"`
}

// Coordinates returns the lat/lng part of the fix
func (p Position) Coordinates() Coordinates {
	return Coordinates{Lat: p.Latitude, Lng: p.Longitude}
}

// SpeedKmh returns the fix speed in km/h, zero when unknown
func (p Position) SpeedKmh() float64 {
	if p.Speed == nil {
		return 0
	}
	return *p.Speed * 3.6
}

// LocationUpdate is the body of POST /location/
type LocationUpdate struct {
	Lat     float64  `json:"lat" validate:"gte=-90,lte=90"`
	Lng     float64  `json:"lng" validate:"gte=-180,lte=180"`
	Heading *float64 `json:"heading,omitempty"`
	Speed   *float64 `json:"speed,omitempty"`
	TripID  *int64   `json:"trip_id,omitempty"`
}

// NewLocationUpdate builds the push payload for a stream sample
func NewLocationUpdate(p Position, tripID *int64) LocationUpdate {
	return LocationUpdate{
		Lat:     p.Latitude,
		Lng:     p.Longitude,
		Heading: p.Heading,
		Speed:   p.Speed,
		TripID:  tripID,
	}
}

// DriverLocationSample is the latest known location of a driver.
// Latest wins, no history is kept client side.
type DriverLocationSample struct {
	ID        int64     `json:"id,omitempty"`
	DriverID  int64     `json:"driver_id"`
	TripID    *int64    `json:"trip_id,omitempty"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Heading   *float64  `json:"heading,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Timestamp Timestamp `json:"timestamp"`
	Geohash   string    `json:"geohash,omitempty"`
}

// Coordinates returns the lat/lng part of the sample
func (s DriverLocationSample) Coordinates() Coordinates {
	return Coordinates{Lat: s.Lat, Lng: s.Lng}
}
