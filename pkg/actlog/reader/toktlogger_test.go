package reader

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const activitiesJSON = `[
  {
    "id": "b7e2a9d0-1111-4f61-8a3b-5c6d7e8f9a0b",
    "name": "Net",
    "startTime": "2023-05-01T09:30:00Z",
    "startPosition": {"latitude": 78.3, "longitude": 15.7},
    "endPosition": {},
    "localStationNumber": "S2"
  },
  {
    "id": "9a2c3b44-0d7e-4f61-8a3b-5c6d7e8f9a0b",
    "name": "CTD",
    "startTime": "2023-05-01T08:00:00Z",
    "endTime": "2023-05-01T08:45:00Z",
    "startPosition": {"latitude": 78.2, "longitude": 15.6},
    "endPosition": {"latitude": 78.25, "longitude": 15.65},
    "bottomDepthInMeters": 312,
    "localStationNumber": "S1",
    "recordedBy": "Berg",
    "comment": "calm sea"
  }
]`

const cruiseJSON = `{
  "cruiseNumber": "2023710",
  "vesselName": "Kronprins Haakon",
  "startTime": "2023-04-28T06:00:00Z"
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/activities/inCurrentCruise", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(activitiesJSON))
	})
	mux.HandleFunc("/api/activities/inCruise/2023710", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(activitiesJSON))
	})
	mux.HandleFunc("/api/cruises/current", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(cruiseJSON))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestToktActivitiesSortedByStartTime(t *testing.T) {
	srv := newTestServer(t)
	tokt := NewTokt(srv.URL)

	records, err := tokt.Activities(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, records, 2)

	// The fixture is deliberately out of order.
	assert.Equal(t, "CTD", records[0].ActivityType)
	assert.Equal(t, "Net", records[1].ActivityType)
	assert.True(t, records[0].StartTime.Before(records[1].StartTime))
}

func TestToktActivitiesDecoding(t *testing.T) {
	srv := newTestServer(t)
	tokt := NewTokt(srv.URL)

	records, err := tokt.Activities(context.Background(), "2023710")
	require.NoError(t, err)
	require.Len(t, records, 2)

	ctd := records[0]
	assert.Equal(t, "9a2c3b44-0d7e-4f61-8a3b-5c6d7e8f9a0b", ctd.ID)
	assert.Equal(t, time.Date(2023, 5, 1, 8, 0, 0, 0, time.UTC), ctd.StartTime)
	assert.Equal(t, time.Date(2023, 5, 1, 8, 45, 0, 0, time.UTC), ctd.EndTime)
	require.NotNil(t, ctd.StartLatitude)
	assert.Equal(t, 78.2, *ctd.StartLatitude)
	require.NotNil(t, ctd.BottomDepth)
	assert.Equal(t, 312.0, *ctd.BottomDepth)
	assert.Equal(t, "S1", ctd.LocalStation)
	assert.Equal(t, "Berg", ctd.RecordedBy)
	assert.Equal(t, "calm sea", ctd.Comment)

	net := records[1]
	assert.True(t, net.EndTime.IsZero())
	assert.Nil(t, net.EndLatitude)
	assert.Nil(t, net.BottomDepth)
}

func TestToktActivitiesEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/activities/inCurrentCruise", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	_, err := NewTokt(srv.URL).Activities(context.Background(), "")
	assert.ErrorIs(t, err, ErrNoActivities)
}

func TestToktCruise(t *testing.T) {
	srv := newTestServer(t)

	info, err := NewTokt(srv.URL).Cruise(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2023710", info.CruiseNumber)
	assert.Equal(t, "Kronprins Haakon", info.VesselName)
	assert.Equal(t, time.Date(2023, 4, 28, 6, 0, 0, 0, time.UTC), info.StartTime)
}

func TestToktUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	target := srv.URL
	srv.Close()

	_, err := NewTokt(target).Activities(context.Background(), "")
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
	assert.Equal(t, target, connErr.Target)
}

func TestToktBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewTokt(srv.URL).Cruise(context.Background())
	var connErr *ConnectionError
	require.ErrorAs(t, err, &connErr)
}

func TestToktBareHostGetsScheme(t *testing.T) {
	tokt := NewTokt("toktlogger-bonnevie.hi.no")
	assert.Equal(t, "http://toktlogger-bonnevie.hi.no", tokt.baseURL)

	tokt = NewTokt("https://logger.example.com/")
	assert.Equal(t, "https://logger.example.com", tokt.baseURL)
}

func TestToktErrorKindMatching(t *testing.T) {
	err := error(&ConnectionError{Target: "x", Err: errors.New("refused")})
	var connErr *ConnectionError
	assert.True(t, errors.As(err, &connErr))
	assert.Contains(t, err.Error(), "refused")
}
