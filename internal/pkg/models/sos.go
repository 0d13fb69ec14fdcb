package models

// SOSStatus is the server-owned lifecycle of an alert
type SOSStatus string

const (
	SOSStatusActive       SOSStatus = "ACTIVE"
	SOSStatusAcknowledged SOSStatus = "ACKNOWLEDGED"
	SOSStatusResolved     SOSStatus = "RESOLVED"
)

// SOSAlert is an emergency alert raised by a driver or rider
type SOSAlert struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"user_id"`
	TripID         *int64     `json:"trip_id,omitempty"`
	Lat            float64    `json:"lat"`
	Lng            float64    `json:"lng"`
	Status         SOSStatus  `json:"status"`
	TriggeredAt    Timestamp  `json:"triggered_at"`
	AcknowledgedAt *Timestamp `json:"acknowledged_at,omitempty"`
	ResolvedAt     *Timestamp `json:"resolved_at,omitempty"`
	Notes          *string    `json:"notes,omitempty"`
}

// SOSCreate is the body of POST /sos/. Coordinates are mandatory.
type SOSCreate struct {
	Lat    float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng    float64 `json:"lng" validate:"gte=-180,lte=180"`
	TripID *int64  `json:"trip_id,omitempty"`
	Notes  string  `json:"notes,omitempty"`
}

// SOSResolve is the body of PATCH /sos/{id}/resolve
type SOSResolve struct {
	Notes string `json:"notes,omitempty"`
}
