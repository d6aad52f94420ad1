/*
attendance.go - Attendance ledger (write-through mirror)

PURPOSE:
  Keeps every attendance entry in memory for fast range queries while
  the record store stays the durable source of truth.

CRITICAL INVARIANTS:
  1. One entry per (WorkerID, Date): a second mark on the same date
     updates the existing entry, same identifier, never a duplicate
  2. Status is derived from the shift count, never passed in
  3. Write-through: on store failure the mirror is untouched and the
     error propagates

Upsert is the ONLY mutation path. Entries are never auto-deleted.
*/
package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

type attendanceKey struct {
	WorkerID WorkerID
	Date     string
}

// AttendanceLedger mirrors the attendance collection. Reads return
// copies; the backing collection is never exposed for direct mutation.
type AttendanceLedger struct {
	mu      sync.RWMutex
	store   Store
	entries map[AttendanceID]AttendanceEntry
	byDay   map[attendanceKey]AttendanceID
	order   []AttendanceID
}

func NewAttendanceLedger(store Store) *AttendanceLedger {
	return &AttendanceLedger{
		store:   store,
		entries: make(map[AttendanceID]AttendanceEntry),
		byDay:   make(map[attendanceKey]AttendanceID),
	}
}

// Load replaces the mirror with the store's contents.
func (l *AttendanceLedger) Load(ctx context.Context) error {
	entries, err := l.store.LoadAttendance(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[AttendanceID]AttendanceEntry, len(entries))
	l.byDay = make(map[attendanceKey]AttendanceID, len(entries))
	l.order = l.order[:0]
	for _, e := range entries {
		l.entries[e.ID] = e
		l.byDay[attendanceKey{e.WorkerID, e.Date.String()}] = e.ID
		l.order = append(l.order, e.ID)
	}
	return nil
}

// Upsert marks a worker's attendance for a date. The status is derived
// from shiftsCompleted against the worker's capacity; an out-of-range
// count is a ConfigurationError. If an entry already exists for
// (worker, date) it is overwritten in place with the same identifier.
func (l *AttendanceLedger) Upsert(ctx context.Context, worker Worker, date Date, shiftsCompleted int) (AttendanceEntry, error) {
	status, err := DeriveStatus(shiftsCompleted, worker.Shifts)
	if err != nil {
		return AttendanceEntry{}, err
	}

	key := attendanceKey{worker.ID, date.String()}

	l.mu.RLock()
	id, exists := l.byDay[key]
	l.mu.RUnlock()

	entry := AttendanceEntry{
		WorkerID:        worker.ID,
		Date:            date,
		Status:          status,
		ShiftsCompleted: shiftsCompleted,
	}
	if exists {
		entry.ID = id
	} else {
		entry.ID = AttendanceID(uuid.NewString())
	}

	if err := l.store.SaveAttendance(ctx, entry); err != nil {
		return AttendanceEntry{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !exists {
		l.byDay[key] = entry.ID
		l.order = append(l.order, entry.ID)
	}
	l.entries[entry.ID] = entry
	return entry, nil
}

// ForDate returns all entries on a date, unordered.
func (l *AttendanceLedger) ForDate(date Date) []AttendanceEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []AttendanceEntry
	for _, id := range l.order {
		if e := l.entries[id]; e.Date.Equal(date) {
			out = append(out, e)
		}
	}
	return out
}

// ForWorkerInRange returns the worker's entries with date in [start, end]
// inclusive. Inverted ranges are a caller bug.
func (l *AttendanceLedger) ForWorkerInRange(workerID WorkerID, start, end Date) ([]AttendanceEntry, error) {
	if start.After(end) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []AttendanceEntry
	for _, id := range l.order {
		e := l.entries[id]
		if e.WorkerID == workerID && e.Date.AfterOrEqual(start) && e.Date.BeforeOrEqual(end) {
			out = append(out, e)
		}
	}
	return out, nil
}

// All returns a snapshot of every entry, in insertion order.
func (l *AttendanceLedger) All() []AttendanceEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]AttendanceEntry, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.entries[id])
	}
	return out
}
