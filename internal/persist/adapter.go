// Package persist defines the storage contract for the record store and
// provides file, Postgres and in-memory implementations.
//
// Each collection is saved whole under its own key as a JSON array of plain
// records. Date fields serialize as ISO-8601 (RFC 3339) strings and parse
// back to time.Time on load, so the engines always work with real dates.
package persist

import "context"

// Collection keys. One key per logical collection; every mutation to a
// collection rewrites its value in full.
const (
	KeyVehicles    = "vehicles"
	KeyFuelEntries = "fuel_entries"
	KeyDailyLogs   = "daily_logs"
	KeySuppliers   = "suppliers"
)

// Keys lists every collection key, in load order.
var Keys = []string{KeyVehicles, KeyFuelEntries, KeyDailyLogs, KeySuppliers}

// Adapter is the durable storage capability supplied by the host
// environment. Load returns ok=false when the key has never been saved,
// which callers treat as an empty collection.
type Adapter interface {
	Load(ctx context.Context, key string) (data []byte, ok bool, err error)
	Save(ctx context.Context, key string, data []byte) error
}
