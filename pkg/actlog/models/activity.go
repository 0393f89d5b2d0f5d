// Package models defines data structures shared by the activity log pipeline.
package models

import "time"

// ActivityRecord represents one sampling event as recorded by the
// Toktlogger. Records are read-only: the pipeline transforms them into
// mapped rows but never writes back to the store.
type ActivityRecord struct {
	// ID is the event identifier assigned by the logger (a UUID).
	ID string
	// ActivityType is the gear or instrument name (e.g. "CTD", "Net").
	ActivityType string
	// StartTime is the event start in UTC.
	StartTime time.Time
	// EndTime is the event end in UTC (zero if the activity is still open).
	EndTime time.Time
	// StartLatitude is the latitude at event start in decimal degrees.
	StartLatitude *float64
	// StartLongitude is the longitude at event start in decimal degrees.
	StartLongitude *float64
	// EndLatitude is the latitude at event end in decimal degrees.
	EndLatitude *float64
	// EndLongitude is the longitude at event end in decimal degrees.
	EndLongitude *float64
	// BottomDepth is the bottom depth in meters at the event position.
	BottomDepth *float64
	// LocalStation is the station or cast label within the cruise.
	LocalStation string
	// Superstation is the repeat-station number, if any.
	Superstation string
	// RecordedBy is the operator who logged the event.
	RecordedBy string
	// Comment holds free-text remarks attached to the event.
	Comment string
}
