/*
roster.go - Worker collection mirrored from the record store

PURPOSE:
  The Roster owns the in-memory worker collection. The store is the
  durable source of truth; the roster mirrors it for fast lookups and
  is the only mutation path for workers.

INVARIANTS:
  1. Write-through: the store is written first, the mirror second
  2. Validation at the boundary: an invalid worker is never persisted
  3. No cascade: deleting a worker leaves their attendance and payment
     records in place; consumers treat them as "unknown worker"

SEE ALSO:
  - attendance.go, payments.go: the same mirror pattern for entries
*/
package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// Roster is the write-through mirror of the worker collection. The
// backing slice is never exposed; reads return copies.
type Roster struct {
	mu      sync.RWMutex
	store   Store
	workers map[WorkerID]Worker
	order   []WorkerID // insertion order, for stable listings
}

func NewRoster(store Store) *Roster {
	return &Roster{store: store, workers: make(map[WorkerID]Worker)}
}

// Load replaces the mirror with the store's contents.
func (r *Roster) Load(ctx context.Context) error {
	workers, err := r.store.LoadWorkers(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers = make(map[WorkerID]Worker, len(workers))
	r.order = r.order[:0]
	for _, w := range workers {
		r.workers[w.ID] = w
		r.order = append(r.order, w.ID)
	}
	return nil
}

// Add validates, mints an identifier, persists, and mirrors a new worker.
// DailyWage defaults to MonthlySalary/30 when zero.
func (r *Roster) Add(ctx context.Context, w Worker) (Worker, error) {
	w.ID = WorkerID(uuid.NewString())
	w = w.WithDerivedWage()
	if err := w.Validate(); err != nil {
		return Worker{}, err
	}

	if err := r.store.SaveWorker(ctx, w); err != nil {
		return Worker{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.workers[w.ID] = w
	r.order = append(r.order, w.ID)
	return w, nil
}

// WorkerPatch is a partial update; nil fields are left unchanged.
type WorkerPatch struct {
	Name          *string
	MonthlySalary *Money
	Shifts        *int
	DailyWage     *Money
	WorkingDays   *WeekdaySet
}

// Update applies a partial update. The merged worker is re-validated
// before persistence, so a patch can never push a worker into an
// invalid state.
func (r *Roster) Update(ctx context.Context, id WorkerID, patch WorkerPatch) (Worker, error) {
	r.mu.RLock()
	w, ok := r.workers[id]
	r.mu.RUnlock()
	if !ok {
		return Worker{}, &NotFoundError{Kind: "worker", ID: string(id)}
	}

	if patch.Name != nil {
		w.Name = *patch.Name
	}
	if patch.MonthlySalary != nil {
		w.MonthlySalary = *patch.MonthlySalary
		if patch.DailyWage == nil {
			w.DailyWage = w.MonthlySalary.DivInt(30)
		}
	}
	if patch.Shifts != nil {
		w.Shifts = *patch.Shifts
	}
	if patch.DailyWage != nil {
		w.DailyWage = *patch.DailyWage
	}
	if patch.WorkingDays != nil {
		w.WorkingDays = *patch.WorkingDays
	}

	if err := w.Validate(); err != nil {
		return Worker{}, err
	}
	if err := r.store.SaveWorker(ctx, w); err != nil {
		return Worker{}, err
	}

	r.mu.Lock()
	r.workers[id] = w
	r.mu.Unlock()
	return w, nil
}

// Delete removes a worker. Attendance and payment records referencing
// the worker are deliberately left behind.
func (r *Roster) Delete(ctx context.Context, id WorkerID) error {
	r.mu.RLock()
	_, ok := r.workers[id]
	r.mu.RUnlock()
	if !ok {
		return &NotFoundError{Kind: "worker", ID: string(id)}
	}

	if err := r.store.DeleteWorker(ctx, id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.workers, id)
	for i, wid := range r.order {
		if wid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the worker and whether it exists. Missing workers are an
// expected state for orphaned entries, not an error.
func (r *Roster) Get(id WorkerID) (Worker, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.workers[id]
	return w, ok
}

// All returns the workers in insertion order.
func (r *Roster) All() []Worker {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Worker, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.workers[id])
	}
	return out
}
