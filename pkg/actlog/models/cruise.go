package models

import "time"

// CruiseInfo holds cruise-level metadata reported by the logger.
type CruiseInfo struct {
	// CruiseNumber is the cruise identifier (e.g. "2023710").
	CruiseNumber string
	// VesselName is the name of the vessel running the logger.
	VesselName string
	// StartTime is when the cruise started, in UTC.
	StartTime time.Time
}
