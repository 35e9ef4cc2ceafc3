package models

// GroupListing is an organized group trip published by the group-management
// service. Listings are read-only here; this service only ranks them.
type GroupListing struct {
	ID          string  `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Destination string  `json:"destination" db:"destination"`
	Budget      float64 `json:"budget" db:"budget"`
	StartDate   Date    `json:"startDate" db:"start_date"`
	EndDate     Date    `json:"endDate" db:"end_date"`
}
