package domain

import "time"

// Coordinate is a geographic point in decimal degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// UserLocation is the last captured delivery location for a user.
type UserLocation struct {
	UID       string     `json:"-"`
	Coord     Coordinate `json:"coordinate"`
	Address   string     `json:"address,omitempty"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CourierPosition is the live position of a delivery courier.
type CourierPosition struct {
	CourierID string     `json:"courierId"`
	Coord     Coordinate `json:"coordinate"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
