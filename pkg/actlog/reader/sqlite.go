package reader

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"actlog/pkg/actlog/models"
)

const (
	getCruiseSQL = `SELECT cruise_number, vessel_name, start_time FROM cruise LIMIT 1`

	getActivitiesSQL = `
  SELECT id, activity_name, start_time, end_time,
         start_latitude, start_longitude, end_latitude, end_longitude,
         bottom_depth, local_station, superstation, recorded_by, comment
  FROM activities
  WHERE cruise_number = COALESCE(NULLIF(?, ''), cruise_number)
  ORDER BY start_time`
)

// Snapshot reads activities from an offline SQLite export of the
// Toktlogger database, for converting after the cruise without a live
// logger on the network.
type Snapshot struct {
	path string
	db   *sql.DB
}

// OpenSnapshot opens the snapshot database at path.
func OpenSnapshot(path string) (*Snapshot, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &ConnectionError{Target: path, Err: err}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &ConnectionError{Target: path, Err: err}
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &ConnectionError{Target: path, Err: err}
	}
	return &Snapshot{path: path, db: db}, nil
}

// Cruise returns the cruise metadata stored in the snapshot.
func (s *Snapshot) Cruise(ctx context.Context) (models.CruiseInfo, error) {
	var info models.CruiseInfo
	err := s.db.QueryRowContext(ctx, getCruiseSQL).Scan(
		&info.CruiseNumber, &info.VesselName, &info.StartTime)
	if err == sql.ErrNoRows {
		return models.CruiseInfo{}, nil
	}
	if err != nil {
		return models.CruiseInfo{}, &ConnectionError{Target: s.path, Err: err}
	}
	info.StartTime = info.StartTime.UTC()
	return info, nil
}

// Activities returns all activity records in the snapshot for the given
// cruise, ordered by start time. An empty cruise selects every record,
// which for a single-cruise snapshot is the whole log.
func (s *Snapshot) Activities(ctx context.Context, cruise string) ([]models.ActivityRecord, error) {
	rows, err := s.db.QueryContext(ctx, getActivitiesSQL, cruise)
	if err != nil {
		return nil, &ConnectionError{Target: s.path, Err: err}
	}
	defer rows.Close()

	var records []models.ActivityRecord
	for rows.Next() {
		var (
			rec          models.ActivityRecord
			endTime      sql.NullTime
			localStation sql.NullString
			superstation sql.NullString
			recordedBy   sql.NullString
			comment      sql.NullString
		)
		err := rows.Scan(
			&rec.ID, &rec.ActivityType, &rec.StartTime, &endTime,
			&rec.StartLatitude, &rec.StartLongitude, &rec.EndLatitude, &rec.EndLongitude,
			&rec.BottomDepth, &localStation, &superstation, &recordedBy, &comment)
		if err != nil {
			return nil, &ConnectionError{Target: s.path, Err: fmt.Errorf("scanning activity: %w", err)}
		}
		rec.StartTime = rec.StartTime.UTC()
		if endTime.Valid {
			rec.EndTime = endTime.Time.UTC()
		}
		rec.LocalStation = localStation.String
		rec.Superstation = superstation.String
		rec.RecordedBy = recordedBy.String
		rec.Comment = comment.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &ConnectionError{Target: s.path, Err: err}
	}
	if len(records) == 0 {
		return nil, ErrNoActivities
	}
	return records, nil
}

// Close releases the database handle.
func (s *Snapshot) Close() error {
	return s.db.Close()
}
