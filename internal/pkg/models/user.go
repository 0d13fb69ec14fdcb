package models

// Role of an authenticated user
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleDriver   Role = "DRIVER"
	RoleEmployee Role = "EMPLOYEE"
)

// User represents an authenticated account (dispatcher, driver or rider)
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      Role      `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt Timestamp `json:"created_at"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is returned by POST /auth/login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

// EmployeeProfile carries the rider's pickup and drop points
type EmployeeProfile struct {
	ID        int64    `json:"id"`
	UserID    int64    `json:"user_id"`
	PickupLat *float64 `json:"pickup_lat,omitempty"`
	PickupLng *float64 `json:"pickup_lng,omitempty"`
	DropLat   *float64 `json:"drop_lat,omitempty"`
	DropLng   *float64 `json:"drop_lng,omitempty"`
}

// Pickup returns the pickup point when both coordinates are known
func (p EmployeeProfile) Pickup() *Coordinates {
	if p.PickupLat == nil || p.PickupLng == nil {
		return nil
	}
	return &Coordinates{Lat: *p.PickupLat, Lng: *p.PickupLng}
}

// Driver is the subset of the driver record the trip flows need
type Driver struct {
	ID              int64       `json:"id"`
	UserID          int64       `json:"user_id"`
	User            User        `json:"user"`
	AssignedVehicle *VehicleRef `json:"assigned_vehicle,omitempty"`
}

// VehicleRef is a driver's assigned vehicle
type VehicleRef struct {
	ID            int64  `json:"id"`
	VehicleNumber string `json:"vehicle_number"`
	CarType       string `json:"car_type"`
	Capacity      int    `json:"capacity"`
}
