package models

import (
	"strings"
	"time"
)

// TravelMode distinguishes travellers looking for another solo companion
// from travellers looking to join an organized group.
type TravelMode string

const (
	TravelModeSolo  TravelMode = "solo"
	TravelModeGroup TravelMode = "group"
)

// IsValid reports whether the mode is one of the supported values.
func (m TravelMode) IsValid() bool {
	return m == TravelModeSolo || m == TravelModeGroup
}

// Coordinates is a resolved geographic point for a destination.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TravelIntent is a traveller's active declaration of an upcoming trip.
// Intents are ephemeral: they live in the session store under a TTL and are
// replaced wholesale on every submit.
type TravelIntent struct {
	OwnerID         string       `json:"ownerId"`
	Destination     string       `json:"destination"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	Geohash         string       `json:"geohash,omitempty"`
	Budget          float64      `json:"budget"`
	StartDate       Date         `json:"startDate"`
	EndDate         Date         `json:"endDate"`
	Mode            TravelMode   `json:"mode"`
	CreatedAt       time.Time    `json:"createdAt"`
	LastRefreshedAt time.Time    `json:"lastRefreshedAt"`
}

// TripDays returns the inclusive length of the trip in days.
func (i *TravelIntent) TripDays() int {
	return DaysInclusive(i.StartDate, i.EndDate)
}

// IntentSubmission is the raw payload a traveller submits. Dates arrive as
// YYYY-MM-DD strings and are validated before an intent is built from them.
type IntentSubmission struct {
	OwnerID     string   `json:"ownerId"`
	Destination string   `json:"destination"`
	Budget      float64  `json:"budget"`
	Mode        string   `json:"mode"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Normalize trims free-text fields and defaults the travel mode.
func (s *IntentSubmission) Normalize() {
	s.OwnerID = strings.TrimSpace(s.OwnerID)
	s.Destination = strings.TrimSpace(s.Destination)
	s.Mode = strings.TrimSpace(strings.ToLower(s.Mode))
	if s.Mode == "" {
		s.Mode = string(TravelModeSolo)
	}
}
