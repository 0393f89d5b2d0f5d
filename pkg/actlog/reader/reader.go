// Package reader retrieves activity records from a Toktlogger store.
//
// Two backends are supported: the live Toktlogger REST API (reached by
// host name or base URL) and an offline SQLite snapshot of the logger
// database (reached by file path).
package reader

import (
	"context"
	"errors"
	"fmt"

	"actlog/pkg/actlog/models"
)

// ErrNoActivities indicates the store holds zero records for the
// selected cruise. Callers may treat this as non-fatal.
var ErrNoActivities = errors.New("no activities recorded for cruise")

// ConnectionError indicates the logger store could not be reached or
// did not answer with a usable response.
type ConnectionError struct {
	Target string
	Err    error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot reach logger store at %q: %v", e.Target, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// Reader retrieves cruise metadata and activity records from a store.
// Activities returns records ordered by start time; cruise selects the
// session and may be empty, meaning the store's current cruise.
type Reader interface {
	Cruise(ctx context.Context) (models.CruiseInfo, error)
	Activities(ctx context.Context, cruise string) ([]models.ActivityRecord, error)
	Close() error
}
