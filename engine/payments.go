/*
payments.go - Payment ledger (write-through mirror)

Same shape as the attendance ledger, for payment entries. Payments may
be edited or removed by the user; edits to past-dated entries
retroactively change computed salary on the next recomputation, by
design (no period snapshotting).
*/
package engine

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// PaymentLedger mirrors the payment collection with write-through
// mutations. Reads return copies.
type PaymentLedger struct {
	mu      sync.RWMutex
	store   Store
	entries map[PaymentID]PaymentEntry
	order   []PaymentID
}

func NewPaymentLedger(store Store) *PaymentLedger {
	return &PaymentLedger{store: store, entries: make(map[PaymentID]PaymentEntry)}
}

// Load replaces the mirror with the store's contents.
func (l *PaymentLedger) Load(ctx context.Context) error {
	entries, err := l.store.LoadPayments(ctx)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = make(map[PaymentID]PaymentEntry, len(entries))
	l.order = l.order[:0]
	for _, e := range entries {
		l.entries[e.ID] = e
		l.order = append(l.order, e.ID)
	}
	return nil
}

// Add validates, mints an identifier, persists, and mirrors a payment.
func (l *PaymentLedger) Add(ctx context.Context, p PaymentEntry) (PaymentEntry, error) {
	p.ID = PaymentID(uuid.NewString())
	if err := p.Validate(); err != nil {
		return PaymentEntry{}, err
	}

	if err := l.store.SavePayment(ctx, p); err != nil {
		return PaymentEntry{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[p.ID] = p
	l.order = append(l.order, p.ID)
	return p, nil
}

// PaymentPatch is a partial update; nil fields are left unchanged.
type PaymentPatch struct {
	Amount      *Money
	Type        *PaymentType
	Date        *Date
	Description *string
}

// Update applies a partial update to an existing payment.
func (l *PaymentLedger) Update(ctx context.Context, id PaymentID, patch PaymentPatch) (PaymentEntry, error) {
	l.mu.RLock()
	p, ok := l.entries[id]
	l.mu.RUnlock()
	if !ok {
		return PaymentEntry{}, &NotFoundError{Kind: "payment", ID: string(id)}
	}

	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.Type != nil {
		p.Type = *patch.Type
	}
	if patch.Date != nil {
		p.Date = *patch.Date
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}

	if err := p.Validate(); err != nil {
		return PaymentEntry{}, err
	}
	if err := l.store.SavePayment(ctx, p); err != nil {
		return PaymentEntry{}, err
	}

	l.mu.Lock()
	l.entries[id] = p
	l.mu.Unlock()
	return p, nil
}

// Remove deletes a payment, store first.
func (l *PaymentLedger) Remove(ctx context.Context, id PaymentID) error {
	l.mu.RLock()
	_, ok := l.entries[id]
	l.mu.RUnlock()
	if !ok {
		return &NotFoundError{Kind: "payment", ID: string(id)}
	}

	if err := l.store.DeletePayment(ctx, id); err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, id)
	for i, pid := range l.order {
		if pid == id {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	return nil
}

// ForWorkerInRange returns the worker's payments with date in
// [start, end] inclusive. Also serves as the generic filter analytics
// uses per worker.
func (l *PaymentLedger) ForWorkerInRange(workerID WorkerID, start, end Date) ([]PaymentEntry, error) {
	if start.After(end) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []PaymentEntry
	for _, id := range l.order {
		p := l.entries[id]
		if p.WorkerID == workerID && p.Date.AfterOrEqual(start) && p.Date.BeforeOrEqual(end) {
			out = append(out, p)
		}
	}
	return out, nil
}

// All returns a snapshot of every payment, in insertion order.
func (l *PaymentLedger) All() []PaymentEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]PaymentEntry, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.entries[id])
	}
	return out
}
