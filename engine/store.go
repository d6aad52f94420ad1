/*
store.go - Persistence interface for the record store

PURPOSE:
  Defines the interface between the engine and the database. The ledgers
  load everything into memory at startup and write through on mutation;
  the store is the durable source of truth that survives restart.

WRITE-THROUGH CONTRACT:
  Every mutation goes to the store FIRST. Only on success does the
  in-memory mirror update. On store failure the mirror is left in its
  last-known-good state and the error propagates to the caller.

IMPLEMENTATIONS:
  - store/sqlite: production SQLite store
  - engine/store: in-memory store for testing and development

SEE ALSO:
  - roster.go, attendance.go, payments.go: the mirrors built on Store
*/
package engine

import "context"

// Store persists the three entity collections. Save calls are upserts
// keyed by the entity's ID; Load calls return every record (collections
// are hundreds to low-thousands of rows, mirrored whole).
type Store interface {
	// Workers
	LoadWorkers(ctx context.Context) ([]Worker, error)
	SaveWorker(ctx context.Context, w Worker) error
	DeleteWorker(ctx context.Context, id WorkerID) error

	// Attendance entries
	LoadAttendance(ctx context.Context) ([]AttendanceEntry, error)
	SaveAttendance(ctx context.Context, e AttendanceEntry) error

	// Payment entries
	LoadPayments(ctx context.Context) ([]PaymentEntry, error)
	SavePayment(ctx context.Context, p PaymentEntry) error
	DeletePayment(ctx context.Context, id PaymentID) error
}

// SettingsStore is an optional capability for stores that also persist
// app settings. Discovered by type assertion; a store without it simply
// serves defaults.
type SettingsStore interface {
	Store

	LoadSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, s Settings) error
}
