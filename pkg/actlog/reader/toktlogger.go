package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"actlog/pkg/actlog/models"
)

const defaultTimeout = 10 * time.Second

type (
	apiPosition struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	}

	apiActivity struct {
		ID           string      `json:"id"`
		Name         string      `json:"name"`
		StartTime    time.Time   `json:"startTime"`
		EndTime      *time.Time  `json:"endTime"`
		Start        apiPosition `json:"startPosition"`
		End          apiPosition `json:"endPosition"`
		BottomDepth  *float64    `json:"bottomDepthInMeters"`
		LocalStation string      `json:"localStationNumber"`
		Superstation string      `json:"superstationNumber"`
		RecordedBy   string      `json:"recordedBy"`
		Comment      string      `json:"comment"`
	}

	apiCruise struct {
		CruiseNumber string    `json:"cruiseNumber"`
		VesselName   string    `json:"vesselName"`
		StartTime    time.Time `json:"startTime"`
	}
)

// Tokt reads activities from a live Toktlogger instance over its REST API.
type Tokt struct {
	baseURL    string
	httpClient *http.Client
}

// NewTokt creates a client for the Toktlogger at target. A bare host
// name is accepted and treated as http://<host>.
func NewTokt(target string) *Tokt {
	base := target
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	return &Tokt{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Cruise fetches metadata for the cruise currently active on the logger.
func (t *Tokt) Cruise(ctx context.Context) (models.CruiseInfo, error) {
	var cruise apiCruise
	if err := t.get(ctx, "/api/cruises/current", &cruise); err != nil {
		return models.CruiseInfo{}, err
	}
	return models.CruiseInfo{
		CruiseNumber: cruise.CruiseNumber,
		VesselName:   cruise.VesselName,
		StartTime:    cruise.StartTime.UTC(),
	}, nil
}

// Activities fetches all activity records for the given cruise, ordered
// by start time. An empty cruise selects the logger's current cruise.
func (t *Tokt) Activities(ctx context.Context, cruise string) ([]models.ActivityRecord, error) {
	path := "/api/activities/inCurrentCruise"
	if cruise != "" {
		path = "/api/activities/inCruise/" + url.PathEscape(cruise)
	}

	var activities []apiActivity
	if err := t.get(ctx, path, &activities); err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return nil, ErrNoActivities
	}

	// The API does not guarantee ordering, the template does.
	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].StartTime.Before(activities[j].StartTime)
	})

	records := make([]models.ActivityRecord, 0, len(activities))
	for _, a := range activities {
		rec := models.ActivityRecord{
			ID:             a.ID,
			ActivityType:   a.Name,
			StartTime:      a.StartTime.UTC(),
			StartLatitude:  a.Start.Latitude,
			StartLongitude: a.Start.Longitude,
			EndLatitude:    a.End.Latitude,
			EndLongitude:   a.End.Longitude,
			BottomDepth:    a.BottomDepth,
			LocalStation:   a.LocalStation,
			Superstation:   a.Superstation,
			RecordedBy:     a.RecordedBy,
			Comment:        a.Comment,
		}
		if a.EndTime != nil {
			rec.EndTime = a.EndTime.UTC()
		}
		records = append(records, rec)
	}
	return records, nil
}

// Close is a no-op; the HTTP client holds no persistent connection state
// worth releasing for a one-shot run.
func (t *Tokt) Close() error {
	return nil
}

func (t *Tokt) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return &ConnectionError{Target: t.baseURL, Err: err}
	}

	res, err := t.httpClient.Do(req)
	if err != nil {
		return &ConnectionError{Target: t.baseURL, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &ConnectionError{
			Target: t.baseURL,
			Err:    fmt.Errorf("unexpected status %s for %s", res.Status, path),
		}
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return &ConnectionError{
			Target: t.baseURL,
			Err:    fmt.Errorf("decoding response for %s: %w", path, err),
		}
	}
	return nil
}
