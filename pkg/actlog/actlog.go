// Package actlog converts Toktlogger activity records into versioned
// activity log workbooks. One call to Run performs one full
// read-map-write pass.
package actlog

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"actlog/pkg/actlog/config"
	"actlog/pkg/actlog/mapper"
	"actlog/pkg/actlog/models"
	"actlog/pkg/actlog/reader"
	"actlog/pkg/actlog/writer"
)

// Options configures one conversion run.
type Options struct {
	// Reader is the source backend (live Toktlogger or snapshot).
	Reader reader.Reader
	// OutputDir is where the versioned workbook is written.
	OutputDir string
	// Cruise selects the cruise to export; empty means the store's
	// current cruise.
	Cruise string
	// Metadata carries expedition metadata for the Metadata sheet and
	// mapping defaults.
	Metadata config.Cruise
	// Logger receives progress and warnings. Nil disables logging.
	Logger *zap.Logger
}

// Result describes a completed run.
type Result struct {
	// Path is the written workbook file.
	Path string
	// Records is the number of data rows written.
	Records int
}

// Run executes one Reader -> Mapper -> Writer pass. An empty result
// from the store is not an error: the workbook is still written with
// its header block and zero data rows.
func Run(ctx context.Context, opts Options) (Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	info, err := opts.Reader.Cruise(ctx)
	if err != nil {
		return Result{}, err
	}
	log.Info("pulling data from toktlogger",
		zap.String("cruise", info.CruiseNumber),
		zap.String("vessel", info.VesselName))

	records, err := opts.Reader.Activities(ctx, opts.Cruise)
	if err != nil {
		if !errors.Is(err, reader.ErrNoActivities) {
			return Result{}, err
		}
		log.Warn("no activities recorded, writing header-only workbook")
		records = nil
	}

	meta := metadataValues(info, opts.Metadata)
	m := mapper.New(mapper.Schema(), mappingDefaults(meta))
	rows, err := m.MapAll(records)
	if err != nil {
		return Result{}, err
	}

	path, err := writer.Write(m.Columns(), rows, meta, opts.OutputDir)
	if err != nil {
		return Result{}, err
	}
	log.Info("generated file", zap.String("path", path), zap.Int("records", len(rows)))
	return Result{Path: path, Records: len(rows)}, nil
}

// metadataValues merges store-reported cruise info with the cruise
// file. The store is authoritative for cruise number and vessel; the
// file fills in what the logger does not hold, and acts as a fallback
// for snapshots without cruise metadata.
func metadataValues(info models.CruiseInfo, cruise config.Cruise) map[string]string {
	meta := map[string]string{
		"title":          cruise.Title,
		"abstract":       cruise.Abstract,
		"pi_name":        cruise.PIName,
		"pi_email":       cruise.PIEmail,
		"pi_institution": cruise.PIInstitution,
		"pi_address":     cruise.PIAddress,
		"recordedBy":     cruise.RecordedBy,
		"projectID":      cruise.ProjectID,
		"cruiseNumber":   cruise.CruiseNumber,
		"vesselName":     cruise.VesselName,
	}
	if info.CruiseNumber != "" {
		meta["cruiseNumber"] = info.CruiseNumber
	}
	if info.VesselName != "" {
		meta["vesselName"] = info.VesselName
	}
	return meta
}

// mappingDefaults narrows the metadata to the keys the mapping schema
// consults for absent record fields.
func mappingDefaults(meta map[string]string) map[string]string {
	defaults := make(map[string]string, 5)
	for _, key := range []string{"cruiseNumber", "recordedBy", "pi_name", "pi_email", "pi_institution"} {
		if meta[key] != "" {
			defaults[key] = meta[key]
		}
	}
	return defaults
}
