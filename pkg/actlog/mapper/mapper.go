// Package mapper translates activity records into the destination
// column schema of the activity log template.
package mapper

import (
	"fmt"

	"actlog/pkg/actlog/models"
)

// SchemaMismatchError indicates a required destination column has no
// source value and no default.
type SchemaMismatchError struct {
	Column string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("required column %q has no source value and no default", e.Column)
}

// Source identifies the activity record field feeding a destination column.
type Source int

const (
	// SourceNone marks a column with no record field; its value comes
	// from a default or stays blank.
	SourceNone Source = iota
	// SourceID is the event identifier.
	SourceID
	// SourceActivityType is the gear or instrument name.
	SourceActivityType
	// SourceStartTime is the event start timestamp (RFC 3339).
	SourceStartTime
	// SourceEndTime is the event end timestamp (RFC 3339).
	SourceEndTime
	// SourceStartLatitude is the start latitude in decimal degrees.
	SourceStartLatitude
	// SourceStartLongitude is the start longitude in decimal degrees.
	SourceStartLongitude
	// SourceEndLatitude is the end latitude in decimal degrees.
	SourceEndLatitude
	// SourceEndLongitude is the end longitude in decimal degrees.
	SourceEndLongitude
	// SourceBottomDepth is the bottom depth in meters.
	SourceBottomDepth
	// SourceLocalStation is the station or cast label.
	SourceLocalStation
	// SourceSuperstation is the repeat-station number.
	SourceSuperstation
	// SourceRecordedBy is the operator name.
	SourceRecordedBy
	// SourceComment is the free-text remark.
	SourceComment
)

// Column declares how one destination column is populated: which record
// field feeds it, an optional conversion applied to that field, and the
// defaults key consulted when the field is absent. Required columns
// with neither a source value nor a default fail the mapping.
type Column struct {
	Name       string
	Source     Source
	Convert    Convert
	DefaultKey string
	Required   bool
}

// Schema returns the destination column set of the activity log
// template, in output order.
func Schema() []Column {
	return []Column{
		{Name: "eventID", Source: SourceID, Convert: CanonicalUUID},
		{Name: "cruiseNumber", Source: SourceNone, DefaultKey: "cruiseNumber", Required: true},
		{Name: "stationName", Source: SourceLocalStation},
		{Name: "statID", Source: SourceSuperstation},
		{Name: "eventDate", Source: SourceStartTime, Convert: DateCell, Required: true},
		{Name: "eventTime", Source: SourceStartTime, Convert: TimeCell, Required: true},
		{Name: "endDate", Source: SourceEndTime, Convert: DateCell},
		{Name: "endTime", Source: SourceEndTime, Convert: TimeCell},
		{Name: "decimalLatitude", Source: SourceStartLatitude, Convert: Coordinate, Required: true},
		{Name: "decimalLongitude", Source: SourceStartLongitude, Convert: Coordinate, Required: true},
		{Name: "endDecimalLatitude", Source: SourceEndLatitude, Convert: Coordinate},
		{Name: "endDecimalLongitude", Source: SourceEndLongitude, Convert: Coordinate},
		{Name: "bottomDepthInMeters", Source: SourceBottomDepth},
		{Name: "gearType", Source: SourceActivityType, Required: true},
		{Name: "recordedBy", Source: SourceRecordedBy, DefaultKey: "recordedBy"},
		{Name: "pi_name", Source: SourceNone, DefaultKey: "pi_name"},
		{Name: "pi_email", Source: SourceNone, DefaultKey: "pi_email"},
		{Name: "pi_institution", Source: SourceNone, DefaultKey: "pi_institution"},
		{Name: "eventRemarks", Source: SourceComment},
	}
}

// Mapper is a pure record-to-row transform over a fixed schema.
type Mapper struct {
	schema   []Column
	defaults map[string]string
}

// New creates a Mapper for the given schema. defaults supplies values
// for columns whose record field is absent, keyed by Column.DefaultKey.
func New(schema []Column, defaults map[string]string) *Mapper {
	if defaults == nil {
		defaults = map[string]string{}
	}
	return &Mapper{schema: schema, defaults: defaults}
}

// Columns returns the destination column names in output order.
func (m *Mapper) Columns() []string {
	names := make([]string, len(m.schema))
	for i, col := range m.schema {
		names[i] = col.Name
	}
	return names
}

// Map transforms one activity record into one mapped row. The result is
// deterministic: identical records always yield identical rows.
func (m *Mapper) Map(rec models.ActivityRecord) (models.MappedRow, error) {
	row := models.MappedRow{Cells: make([]string, len(m.schema))}
	for i, col := range m.schema {
		value, ok := sourceValue(rec, col.Source)
		if ok && col.Convert != nil {
			value = col.Convert(value)
		}
		if value == "" && col.DefaultKey != "" {
			value = m.defaults[col.DefaultKey]
		}
		if value == "" && col.Required {
			return models.MappedRow{}, &SchemaMismatchError{Column: col.Name}
		}
		row.Cells[i] = value
	}
	return row, nil
}

// MapAll transforms records in order, one row per record.
func (m *Mapper) MapAll(records []models.ActivityRecord) ([]models.MappedRow, error) {
	rows := make([]models.MappedRow, 0, len(records))
	for _, rec := range records {
		row, err := m.Map(rec)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sourceValue extracts the raw value for src from rec. Timestamps are
// rendered as RFC 3339 in UTC, coordinates and depths with the shortest
// exact decimal representation; conversions refine these further.
func sourceValue(rec models.ActivityRecord, src Source) (string, bool) {
	switch src {
	case SourceID:
		return rec.ID, rec.ID != ""
	case SourceActivityType:
		return rec.ActivityType, rec.ActivityType != ""
	case SourceStartTime:
		return timeValue(rec.StartTime)
	case SourceEndTime:
		return timeValue(rec.EndTime)
	case SourceStartLatitude:
		return floatValue(rec.StartLatitude)
	case SourceStartLongitude:
		return floatValue(rec.StartLongitude)
	case SourceEndLatitude:
		return floatValue(rec.EndLatitude)
	case SourceEndLongitude:
		return floatValue(rec.EndLongitude)
	case SourceBottomDepth:
		return floatValue(rec.BottomDepth)
	case SourceLocalStation:
		return rec.LocalStation, rec.LocalStation != ""
	case SourceSuperstation:
		return rec.Superstation, rec.Superstation != ""
	case SourceRecordedBy:
		return rec.RecordedBy, rec.RecordedBy != ""
	case SourceComment:
		return rec.Comment, rec.Comment != ""
	default:
		return "", false
	}
}
