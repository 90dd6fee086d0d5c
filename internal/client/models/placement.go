package models

// DriveStatus is the lifecycle stage of a placement drive.
type DriveStatus string

const (
	DriveStartingSoon DriveStatus = "starting_soon"
	DriveOngoing      DriveStatus = "ongoing"
	DriveCompleted    DriveStatus = "completed"
)

// PlacementDrive is a company hiring round.
// Package is the offered compensation in currency minor units.
type PlacementDrive struct {
	ID          int64       `json:"id"`
	Company     string      `json:"company"`
	Status      DriveStatus `json:"status"`
	StartDate   string      `json:"start_date,omitempty"`
	EndDate     string      `json:"end_date,omitempty"`
	Package     *int64      `json:"package,omitempty"`
	Description string      `json:"description,omitempty"`
}
