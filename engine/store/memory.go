// Package store provides Store implementations.
package store

import (
	"context"
	"sync"

	"github.com/Piyushhbhutoria/House-help/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu         sync.RWMutex
	workers    map[engine.WorkerID]engine.Worker
	attendance map[engine.AttendanceID]engine.AttendanceEntry
	payments   map[engine.PaymentID]engine.PaymentEntry
	settings   *engine.Settings

	workerOrder     []engine.WorkerID
	attendanceOrder []engine.AttendanceID
	paymentOrder    []engine.PaymentID
}

func NewMemory() *Memory {
	return &Memory{
		workers:    make(map[engine.WorkerID]engine.Worker),
		attendance: make(map[engine.AttendanceID]engine.AttendanceEntry),
		payments:   make(map[engine.PaymentID]engine.PaymentEntry),
	}
}

// =============================================================================
// WORKERS
// =============================================================================

func (m *Memory) LoadWorkers(_ context.Context) ([]engine.Worker, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.Worker, 0, len(m.workerOrder))
	for _, id := range m.workerOrder {
		out = append(out, m.workers[id])
	}
	return out, nil
}

func (m *Memory) SaveWorker(_ context.Context, w engine.Worker) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workers[w.ID]; !ok {
		m.workerOrder = append(m.workerOrder, w.ID)
	}
	m.workers[w.ID] = w
	return nil
}

func (m *Memory) DeleteWorker(_ context.Context, id engine.WorkerID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.workers[id]; !ok {
		return &engine.NotFoundError{Kind: "worker", ID: string(id)}
	}
	delete(m.workers, id)
	for i, wid := range m.workerOrder {
		if wid == id {
			m.workerOrder = append(m.workerOrder[:i], m.workerOrder[i+1:]...)
			break
		}
	}
	return nil
}

// =============================================================================
// ATTENDANCE
// =============================================================================

func (m *Memory) LoadAttendance(_ context.Context) ([]engine.AttendanceEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.AttendanceEntry, 0, len(m.attendanceOrder))
	for _, id := range m.attendanceOrder {
		out = append(out, m.attendance[id])
	}
	return out, nil
}

func (m *Memory) SaveAttendance(_ context.Context, e engine.AttendanceEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.attendance[e.ID]; !ok {
		m.attendanceOrder = append(m.attendanceOrder, e.ID)
	}
	m.attendance[e.ID] = e
	return nil
}

// =============================================================================
// PAYMENTS
// =============================================================================

func (m *Memory) LoadPayments(_ context.Context) ([]engine.PaymentEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.PaymentEntry, 0, len(m.paymentOrder))
	for _, id := range m.paymentOrder {
		out = append(out, m.payments[id])
	}
	return out, nil
}

func (m *Memory) SavePayment(_ context.Context, p engine.PaymentEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[p.ID]; !ok {
		m.paymentOrder = append(m.paymentOrder, p.ID)
	}
	m.payments[p.ID] = p
	return nil
}

func (m *Memory) DeletePayment(_ context.Context, id engine.PaymentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.payments[id]; !ok {
		return &engine.NotFoundError{Kind: "payment", ID: string(id)}
	}
	delete(m.payments, id)
	for i, pid := range m.paymentOrder {
		if pid == id {
			m.paymentOrder = append(m.paymentOrder[:i], m.paymentOrder[i+1:]...)
			break
		}
	}
	return nil
}

// =============================================================================
// SETTINGS
// =============================================================================

func (m *Memory) LoadSettings(_ context.Context) (*engine.Settings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, nil
	}
	s := *m.settings
	return &s, nil
}

func (m *Memory) SaveSettings(_ context.Context, s engine.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &s
	return nil
}
