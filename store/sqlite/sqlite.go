/*
Package sqlite provides the SQLite-backed record store.

PURPOSE:
  Implements engine.Store and engine.SettingsStore over a single local
  database file. One app instance owns one file (single-writer), so a
  process-level RWMutex is all the coordination needed.

KEY TABLES:
  workers:     one row per house-help employee
  attendance:  one row per worker per date, UNIQUE(worker_id, date)
  payments:    one row per payment event
  settings:    single JSON row holding the app configuration

WAL MODE:
  The database is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

ERROR MAPPING:
  Database failures are wrapped in engine.StorageError so callers can
  match errors.Is(err, engine.ErrStorageUnavailable) and retry the
  whole operation. Deletes of missing rows surface engine.NotFoundError.

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - engine/store.go: interface definitions
  - engine/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"

	"github.com/Piyushhbhutoria/House-help/engine"
)

// Store implements engine.Store and engine.SettingsStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS workers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		monthly_salary TEXT NOT NULL,
		shifts INTEGER NOT NULL,
		daily_wage TEXT NOT NULL,
		working_days_json TEXT NOT NULL DEFAULT '[]'
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		date TEXT NOT NULL,
		status TEXT NOT NULL,
		shifts_completed INTEGER NOT NULL
	);

	-- One entry per worker per date; marking again replaces in place.
	CREATE UNIQUE INDEX IF NOT EXISTS idx_attendance_worker_date
		ON attendance(worker_id, date);
	CREATE INDEX IF NOT EXISTS idx_attendance_date
		ON attendance(date);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		worker_id TEXT NOT NULL,
		amount TEXT NOT NULL,
		type TEXT NOT NULL,
		date TEXT NOT NULL,
		description TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_payments_worker_date
		ON payments(worker_id, date);
	CREATE INDEX IF NOT EXISTS idx_payments_type
		ON payments(type);

	CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		config_json TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// WORKERS
// =============================================================================

func (s *Store) LoadWorkers(ctx context.Context) ([]engine.Worker, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, monthly_salary, shifts, daily_wage, working_days_json
		FROM workers ORDER BY rowid ASC
	`)
	if err != nil {
		return nil, &engine.StorageError{Op: "load workers", Err: err}
	}
	defer rows.Close()

	var workers []engine.Worker
	for rows.Next() {
		var (
			w               engine.Worker
			salary, wage    string
			workingDaysJSON string
		)
		if err := rows.Scan(&w.ID, &w.Name, &salary, &w.Shifts, &wage, &workingDaysJSON); err != nil {
			return nil, &engine.StorageError{Op: "scan worker", Err: err}
		}
		w.MonthlySalary = engine.ParseMoney(salary)
		w.DailyWage = engine.ParseMoney(wage)
		if workingDaysJSON != "" {
			if err := json.Unmarshal([]byte(workingDaysJSON), &w.WorkingDays); err != nil {
				return nil, &engine.StorageError{Op: "decode worker schedule", Err: err}
			}
		}
		workers = append(workers, w)
	}
	if err := rows.Err(); err != nil {
		return nil, &engine.StorageError{Op: "load workers", Err: err}
	}
	return workers, nil
}

func (s *Store) SaveWorker(ctx context.Context, w engine.Worker) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	daysJSON, _ := json.Marshal(w.WorkingDays)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO workers (id, name, monthly_salary, shifts, daily_wage, working_days_json)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			monthly_salary = excluded.monthly_salary,
			shifts = excluded.shifts,
			daily_wage = excluded.daily_wage,
			working_days_json = excluded.working_days_json
	`, w.ID, w.Name, w.MonthlySalary.String(), w.Shifts, w.DailyWage.String(), string(daysJSON))
	if err != nil {
		return &engine.StorageError{Op: "save worker", Err: err}
	}
	return nil
}

func (s *Store) DeleteWorker(ctx context.Context, id engine.WorkerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM workers WHERE id = ?`, id)
	if err != nil {
		return &engine.StorageError{Op: "delete worker", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &engine.NotFoundError{Kind: "worker", ID: string(id)}
	}
	return nil
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func (s *Store) LoadAttendance(ctx context.Context) ([]engine.AttendanceEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, worker_id, date, status, shifts_completed
		FROM attendance ORDER BY date ASC, rowid ASC
	`)
	if err != nil {
		return nil, &engine.StorageError{Op: "load attendance", Err: err}
	}
	defer rows.Close()

	var entries []engine.AttendanceEntry
	for rows.Next() {
		var (
			e       engine.AttendanceEntry
			dateStr string
		)
		if err := rows.Scan(&e.ID, &e.WorkerID, &dateStr, &e.Status, &e.ShiftsCompleted); err != nil {
			return nil, &engine.StorageError{Op: "scan attendance", Err: err}
		}
		date, err := engine.ParseDate(dateStr)
		if err != nil {
			return nil, &engine.StorageError{Op: "parse attendance date", Err: err}
		}
		e.Date = date
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, &engine.StorageError{Op: "load attendance", Err: err}
	}
	return entries, nil
}

func (s *Store) SaveAttendance(ctx context.Context, e engine.AttendanceEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO attendance (id, worker_id, date, status, shifts_completed)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			status = excluded.status,
			shifts_completed = excluded.shifts_completed
	`, e.ID, e.WorkerID, e.Date.String(), e.Status, e.ShiftsCompleted)
	if err != nil {
		return &engine.StorageError{Op: "save attendance", Err: err}
	}
	return nil
}

// =============================================================================
// PAYMENTS
// =============================================================================

func (s *Store) LoadPayments(ctx context.Context) ([]engine.PaymentEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, worker_id, amount, type, date, description
		FROM payments ORDER BY date ASC, rowid ASC
	`)
	if err != nil {
		return nil, &engine.StorageError{Op: "load payments", Err: err}
	}
	defer rows.Close()

	var payments []engine.PaymentEntry
	for rows.Next() {
		var (
			p           engine.PaymentEntry
			amount      string
			dateStr     string
			description sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.WorkerID, &amount, &p.Type, &dateStr, &description); err != nil {
			return nil, &engine.StorageError{Op: "scan payment", Err: err}
		}
		date, err := engine.ParseDate(dateStr)
		if err != nil {
			return nil, &engine.StorageError{Op: "parse payment date", Err: err}
		}
		p.Amount = engine.ParseMoney(amount)
		p.Date = date
		p.Description = description.String
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, &engine.StorageError{Op: "load payments", Err: err}
	}
	return payments, nil
}

func (s *Store) SavePayment(ctx context.Context, p engine.PaymentEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (id, worker_id, amount, type, date, description)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			amount = excluded.amount,
			type = excluded.type,
			date = excluded.date,
			description = excluded.description
	`, p.ID, p.WorkerID, p.Amount.String(), p.Type, p.Date.String(), p.Description)
	if err != nil {
		return &engine.StorageError{Op: "save payment", Err: err}
	}
	return nil
}

func (s *Store) DeletePayment(ctx context.Context, id engine.PaymentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM payments WHERE id = ?`, id)
	if err != nil {
		return &engine.StorageError{Op: "delete payment", Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return &engine.NotFoundError{Kind: "payment", ID: string(id)}
	}
	return nil
}

// =============================================================================
// SETTINGS (engine.SettingsStore)
// =============================================================================

// LoadSettings returns the stored settings, or nil when none were ever
// saved (callers fall back to engine.DefaultSettings).
func (s *Store) LoadSettings(ctx context.Context) (*engine.Settings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var configJSON string
	err := s.db.QueryRowContext(ctx, `SELECT config_json FROM settings WHERE id = 1`).Scan(&configJSON)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, &engine.StorageError{Op: "load settings", Err: err}
	}

	var settings engine.Settings
	if err := json.Unmarshal([]byte(configJSON), &settings); err != nil {
		return nil, &engine.StorageError{Op: "decode settings", Err: err}
	}
	return &settings, nil
}

func (s *Store) SaveSettings(ctx context.Context, settings engine.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	configJSON, err := json.Marshal(settings)
	if err != nil {
		return &engine.StorageError{Op: "encode settings", Err: err}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO settings (id, config_json) VALUES (1, ?)
		ON CONFLICT(id) DO UPDATE SET config_json = excluded.config_json
	`, string(configJSON))
	if err != nil {
		return &engine.StorageError{Op: "save settings", Err: err}
	}
	return nil
}
