/*
seed.go - Demo data loader

PURPOSE:
  Populates the engine with a small realistic household: three workers
  with different schedules, two months of attendance, and a handful of
  payments. Useful for demos and frontend development against a fresh
  database.

IDEMPOTENCY:
  Seeding is additive. Calling it twice creates duplicate workers, so
  use it against an empty database only.

SEE ALSO:
  - handlers.go: Mounts POST /api/seed
*/
package api

import (
	"context"
	"net/http"

	"github.com/Piyushhbhutoria/House-help/engine"
)

type seedWorker struct {
	name        string
	salary      float64
	shifts      int
	workingDays engine.WeekdaySet
}

var demoWorkers = []seedWorker{
	{name: "Lakshmi", salary: 6000, shifts: 2, workingDays: engine.WeekdaySet{1, 2, 3, 4, 5, 6}},
	{name: "Ravi", salary: 4500, shifts: 1, workingDays: engine.WeekdaySet{1, 2, 3, 4, 5}},
	{name: "Meena", salary: 9000, shifts: 3, workingDays: nil}, // every day
}

// SeedDemoData loads the demo household. Dev convenience only.
func (h *Handler) SeedDemoData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	created, err := h.seed(ctx)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int{"workers": created})
}

func (h *Handler) seed(ctx context.Context) (int, error) {
	today := engine.Today()
	start := today.AddMonths(-2)

	for i, sw := range demoWorkers {
		worker, err := h.Roster.Add(ctx, engine.Worker{
			Name:          sw.name,
			MonthlySalary: engine.NewMoney(sw.salary),
			Shifts:        sw.shifts,
			WorkingDays:   sw.workingDays,
		})
		if err != nil {
			return i, err
		}
		if err := h.seedAttendance(ctx, worker, start, today, i); err != nil {
			return i, err
		}
		if err := h.seedPayments(ctx, worker, today, i); err != nil {
			return i, err
		}
	}
	return len(demoWorkers), nil
}

// seedAttendance marks every scheduled day in the range, with a
// deterministic sprinkle of half days and absences so that analytics
// has something to show.
func (h *Handler) seedAttendance(ctx context.Context, worker engine.Worker, start, end engine.Date, salt int) error {
	day := 0
	for d := start; !d.After(end); d = d.AddDays(1) {
		if !worker.WorkingDays.Contains(d.Weekday()) {
			continue
		}
		day++
		shifts := worker.Shifts
		switch (day + salt) % 11 {
		case 0:
			shifts = 0
		case 5:
			if worker.Shifts > 1 {
				shifts = worker.Shifts / 2
			}
		}
		if _, err := h.Attendance.Upsert(ctx, worker, d, shifts); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) seedPayments(ctx context.Context, worker engine.Worker, today engine.Date, salt int) error {
	payments := []engine.PaymentEntry{
		{
			WorkerID:    worker.ID,
			Amount:      engine.NewMoney(500),
			Type:        engine.PaymentAdvance,
			Date:        today.AddDays(-20),
			Description: "advance against this month",
		},
		{
			WorkerID:    worker.ID,
			Amount:      engine.NewMoney(200 + float64(salt)*50),
			Type:        engine.PaymentOvertime,
			Date:        today.AddDays(-10),
			Description: "festival preparation",
		},
	}
	if salt == 0 {
		payments = append(payments, engine.PaymentEntry{
			WorkerID:    worker.ID,
			Amount:      engine.NewMoney(300),
			Type:        engine.PaymentHoliday,
			Date:        today.AddDays(-5),
			Description: "worked on holiday",
		})
	}
	for _, p := range payments {
		if _, err := h.Payments.Add(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
