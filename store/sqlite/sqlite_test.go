package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Piyushhbhutoria/House-help/engine"
	"github.com/Piyushhbhutoria/House-help/store/sqlite"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	s, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore_WorkerRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	w := engine.Worker{
		ID:            "w-1",
		Name:          "Asha",
		MonthlySalary: engine.NewMoney(3000),
		Shifts:        2,
		DailyWage:     engine.NewMoney(100),
		WorkingDays:   engine.WeekdaySet{1, 2, 3, 4, 5},
	}
	require.NoError(t, s.SaveWorker(ctx, w))

	loaded, err := s.LoadWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	got := loaded[0]
	assert.Equal(t, w.ID, got.ID)
	assert.Equal(t, w.Name, got.Name)
	assert.True(t, got.MonthlySalary.Equal(w.MonthlySalary))
	assert.True(t, got.DailyWage.Equal(w.DailyWage))
	assert.Equal(t, w.Shifts, got.Shifts)
	assert.Equal(t, w.WorkingDays, got.WorkingDays)
}

func TestStore_SaveWorkerIsUpsert(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	w := engine.Worker{
		ID: "w-1", Name: "Asha",
		MonthlySalary: engine.NewMoney(3000), Shifts: 2, DailyWage: engine.NewMoney(100),
	}
	require.NoError(t, s.SaveWorker(ctx, w))

	w.Name = "Asha Devi"
	w.MonthlySalary = engine.NewMoney(3500)
	require.NoError(t, s.SaveWorker(ctx, w))

	loaded, err := s.LoadWorkers(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Asha Devi", loaded[0].Name)
	assert.True(t, loaded[0].MonthlySalary.Equal(engine.NewMoney(3500)))
}

func TestStore_LoadWorkersReportsCorruptSchedule(t *testing.T) {
	// GIVEN: a database whose worker row carries a mangled schedule column
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "corrupt.db")
	s, err := sqlite.New(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	raw, err := sql.Open("sqlite3", dbPath)
	require.NoError(t, err)
	defer raw.Close()
	_, err = raw.Exec(
		`INSERT INTO workers (id, name, monthly_salary, shifts, daily_wage, working_days_json)
		 VALUES ('w-bad', 'Asha', '3000', 2, '100', 'not json')`,
	)
	require.NoError(t, err)

	// WHEN: the workers are loaded back
	_, err = s.LoadWorkers(ctx)

	// THEN: the decode failure surfaces as a storage error instead of a
	// worker with a silently emptied schedule
	require.Error(t, err)
	assert.True(t, engine.IsRetryable(err))
}

func TestStore_DeleteWorker(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveWorker(ctx, engine.Worker{
		ID: "w-1", Name: "Asha",
		MonthlySalary: engine.NewMoney(3000), Shifts: 2, DailyWage: engine.NewMoney(100),
	}))
	require.NoError(t, s.DeleteWorker(ctx, "w-1"))

	loaded, err := s.LoadWorkers(ctx)
	require.NoError(t, err)
	assert.Empty(t, loaded)

	err = s.DeleteWorker(ctx, "w-1")
	assert.True(t, engine.IsNotFound(err))
}

func TestStore_AttendanceRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	e := engine.AttendanceEntry{
		ID:              "a-1",
		WorkerID:        "w-1",
		Date:            engine.NewDate(2025, time.June, 2),
		Status:          engine.StatusHalfDay,
		ShiftsCompleted: 1,
	}
	require.NoError(t, s.SaveAttendance(ctx, e))

	loaded, err := s.LoadAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, e.ID, loaded[0].ID)
	assert.True(t, loaded[0].Date.Equal(e.Date))
	assert.Equal(t, engine.StatusHalfDay, loaded[0].Status)
	assert.Equal(t, 1, loaded[0].ShiftsCompleted)
}

func TestStore_AttendanceUpsertSameID(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	e := engine.AttendanceEntry{
		ID: "a-1", WorkerID: "w-1",
		Date:   engine.NewDate(2025, time.June, 2),
		Status: engine.StatusPresent, ShiftsCompleted: 2,
	}
	require.NoError(t, s.SaveAttendance(ctx, e))

	e.Status = engine.StatusAbsent
	e.ShiftsCompleted = 0
	require.NoError(t, s.SaveAttendance(ctx, e))

	loaded, err := s.LoadAttendance(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, engine.StatusAbsent, loaded[0].Status)
}

func TestStore_PaymentRoundTripAndDelete(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	p := engine.PaymentEntry{
		ID:          "p-1",
		WorkerID:    "w-1",
		Amount:      engine.NewMoney(512.75),
		Type:        engine.PaymentOvertime,
		Date:        engine.NewDate(2025, time.June, 20),
		Description: "festival preparation",
	}
	require.NoError(t, s.SavePayment(ctx, p))

	loaded, err := s.LoadPayments(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.True(t, loaded[0].Amount.Equal(engine.NewMoney(512.75)))
	assert.Equal(t, engine.PaymentOvertime, loaded[0].Type)
	assert.Equal(t, "festival preparation", loaded[0].Description)

	require.NoError(t, s.DeletePayment(ctx, "p-1"))
	err = s.DeletePayment(ctx, "p-1")
	assert.True(t, engine.IsNotFound(err))
}

func TestStore_SettingsRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	// Never saved: nil, nil so callers fall back to defaults
	got, err := s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	saved := engine.DefaultSettings()
	saved.Currency = "USD"
	saved.CurrencySymbol = "$"
	saved.WeeklyReminders = false
	require.NoError(t, s.SaveSettings(ctx, saved))

	got, err = s.LoadSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "USD", got.Currency)
	assert.False(t, got.WeeklyReminders)

	// Saving again replaces the single row
	saved.Currency = "EUR"
	require.NoError(t, s.SaveSettings(ctx, saved))
	got, err = s.LoadSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EUR", got.Currency)
}

func TestStore_EngineIntegration(t *testing.T) {
	// GIVEN: ledgers backed by sqlite
	s := newStore(t)
	ctx := context.Background()
	roster := engine.NewRoster(s)
	attendance := engine.NewAttendanceLedger(s)

	w, err := roster.Add(ctx, engine.Worker{
		Name: "Asha", MonthlySalary: engine.NewMoney(3000), Shifts: 2,
	})
	require.NoError(t, err)
	_, err = attendance.Upsert(ctx, w, engine.NewDate(2025, time.June, 2), 2)
	require.NoError(t, err)

	// WHEN: fresh mirrors load from the same database
	roster2 := engine.NewRoster(s)
	attendance2 := engine.NewAttendanceLedger(s)
	require.NoError(t, roster2.Load(ctx))
	require.NoError(t, attendance2.Load(ctx))

	// THEN: the data survives the reload
	reloaded, ok := roster2.Get(w.ID)
	require.True(t, ok)
	assert.True(t, reloaded.DailyWage.Equal(engine.NewMoney(100)))
	assert.Len(t, attendance2.All(), 1)
}
