// Package repo contains the record store for the fleet fuel tracker: typed
// in-memory collections loaded from a persist.Adapter at startup and flushed
// back, one collection at a time, after every mutation.
//
// Each resource has its own file with an interface and a store-backed
// implementation. No business logic lives here — only containment, lookup
// and persistence plumbing. Services depend on the interfaces, which lets
// their tests inject failing doubles.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manigandan-posana/fuel/internal/domain"
	"github.com/manigandan-posana/fuel/internal/persist"
)

// Store holds every collection. One mutex guards all of them: the system
// assumes a single logical writer, and whole-operation atomicity under the
// lock is what makes an entry's close indistinguishable from an in-place
// field update to any concurrent reader.
type Store struct {
	mu      sync.RWMutex
	adapter persist.Adapter

	vehicles    map[uuid.UUID]domain.Vehicle
	fuelEntries map[uuid.UUID]domain.FuelEntry
	dailyLogs   map[uuid.UUID]domain.DailyLogEntry
	suppliers   map[uuid.UUID]domain.Supplier
}

// Open loads all collections from the adapter. Keys the adapter has never
// saved load as empty collections.
func Open(ctx context.Context, adapter persist.Adapter) (*Store, error) {
	s := &Store{
		adapter:     adapter,
		vehicles:    make(map[uuid.UUID]domain.Vehicle),
		fuelEntries: make(map[uuid.UUID]domain.FuelEntry),
		dailyLogs:   make(map[uuid.UUID]domain.DailyLogEntry),
		suppliers:   make(map[uuid.UUID]domain.Supplier),
	}

	vehicles, err := loadCollection[domain.Vehicle](ctx, adapter, persist.KeyVehicles)
	if err != nil {
		return nil, err
	}
	for _, v := range vehicles {
		s.vehicles[v.ID] = v
	}

	entries, err := loadCollection[domain.FuelEntry](ctx, adapter, persist.KeyFuelEntries)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		s.fuelEntries[e.ID] = e
	}

	logs, err := loadCollection[domain.DailyLogEntry](ctx, adapter, persist.KeyDailyLogs)
	if err != nil {
		return nil, err
	}
	for _, d := range logs {
		s.dailyLogs[d.ID] = d
	}

	suppliers, err := loadCollection[domain.Supplier](ctx, adapter, persist.KeySuppliers)
	if err != nil {
		return nil, err
	}
	for _, sup := range suppliers {
		s.suppliers[sup.ID] = sup
	}

	return s, nil
}

// loadCollection reads and decodes one collection. A key the adapter does
// not know yields a nil slice, not an error.
func loadCollection[T any](ctx context.Context, adapter persist.Adapter, key string) ([]T, error) {
	data, ok, err := adapter.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("repo.Open: load %s: %w", key, err)
	}
	if !ok {
		return nil, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("repo.Open: decode %s: %w", key, err)
	}
	return records, nil
}

// saveCollection encodes records and hands them to the adapter.
func saveCollection[T any](ctx context.Context, adapter persist.Adapter, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("repo: encode %s: %w", key, err)
	}
	if err := adapter.Save(ctx, key, data); err != nil {
		return fmt.Errorf("repo: save %s: %w", key, err)
	}
	return nil
}

// The flush methods serialize a collection in a deterministic order
// (creation time, then ID) so repeated saves of the same state produce
// identical bytes. Callers must hold the write lock.

func (s *Store) flushVehicles(ctx context.Context) error {
	records := make([]domain.Vehicle, 0, len(s.vehicles))
	for _, v := range s.vehicles {
		records = append(records, v)
	}
	sort.Slice(records, func(i, j int) bool { return creationOrder(records[i].CreatedAt, records[i].ID, records[j].CreatedAt, records[j].ID) })
	return saveCollection(ctx, s.adapter, persist.KeyVehicles, records)
}

func (s *Store) flushFuelEntries(ctx context.Context) error {
	records := make([]domain.FuelEntry, 0, len(s.fuelEntries))
	for _, e := range s.fuelEntries {
		records = append(records, e)
	}
	sort.Slice(records, func(i, j int) bool { return creationOrder(records[i].CreatedAt, records[i].ID, records[j].CreatedAt, records[j].ID) })
	return saveCollection(ctx, s.adapter, persist.KeyFuelEntries, records)
}

func (s *Store) flushDailyLogs(ctx context.Context) error {
	records := make([]domain.DailyLogEntry, 0, len(s.dailyLogs))
	for _, d := range s.dailyLogs {
		records = append(records, d)
	}
	sort.Slice(records, func(i, j int) bool { return creationOrder(records[i].CreatedAt, records[i].ID, records[j].CreatedAt, records[j].ID) })
	return saveCollection(ctx, s.adapter, persist.KeyDailyLogs, records)
}

func (s *Store) flushSuppliers(ctx context.Context) error {
	records := make([]domain.Supplier, 0, len(s.suppliers))
	for _, sup := range s.suppliers {
		records = append(records, sup)
	}
	sort.Slice(records, func(i, j int) bool { return creationOrder(records[i].CreatedAt, records[i].ID, records[j].CreatedAt, records[j].ID) })
	return saveCollection(ctx, s.adapter, persist.KeySuppliers, records)
}

func creationOrder(t1 time.Time, id1 uuid.UUID, t2 time.Time, id2 uuid.UUID) bool {
	if !t1.Equal(t2) {
		return t1.Before(t2)
	}
	return id1.String() < id2.String()
}
