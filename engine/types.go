/*
Package engine is the attendance and compensation core.

PURPOSE:
  This package turns a stream of daily attendance records and ad-hoc
  payment events into per-period salary figures and multi-month
  analytics. It owns the domain model (workers, attendance entries,
  payment entries), the schedule-aware day counting, the shift-prorated
  salary calculation, and the time-bucketed aggregation.

KEY CONCEPTS IN THIS FILE (types.go):
  - Worker: one house-help employee with a shift capacity and schedule
  - AttendanceEntry: one worker's attendance for one calendar date
  - PaymentEntry: one discrete payment or adjustment event
  - DeriveStatus: the authoritative shift-count -> status rule

DESIGN PRINCIPLES:
  1. Precision: Money uses decimal.Decimal, never float arithmetic
  2. Type Safety: Strong ID types prevent mixing worker/entry IDs
  3. Derivation: attendance status is never set independently of the
     completed shift count, so the two can never disagree
  4. No hidden state: every calculation is a pure function of ledger
     snapshots plus explicit date parameters

SEE ALSO:
  - schedule.go: expected-work-day counting
  - salary.go: per-period salary and payment reconciliation
  - analytics.go: rolling-window trends and rankings
*/
package engine

// =============================================================================
// IDENTIFIERS
// =============================================================================

type WorkerID string
type AttendanceID string
type PaymentID string

// =============================================================================
// WORKER
// =============================================================================

// Worker is one house-help employee.
//
// DailyWage is derived as MonthlySalary/30 unless set independently.
// WorkingDays empty means "works every day" (backward compatibility with
// records created before schedules existed).
type Worker struct {
	ID            WorkerID
	Name          string
	MonthlySalary Money
	Shifts        int // max shifts performable per day, 1..3 observed
	DailyWage     Money
	WorkingDays   WeekdaySet
}

// Validate checks the invariants that must hold before a worker is
// persisted. Shifts == 0 is rejected here, at the boundary, so the
// salary calculator never has to guard against a zero divide.
func (w Worker) Validate() error {
	if w.Shifts < 1 {
		return &ConfigurationError{Field: "shifts", Reason: "must be at least 1"}
	}
	if !w.MonthlySalary.IsPositive() {
		return &ConfigurationError{Field: "monthlySalary", Reason: "must be positive"}
	}
	if err := w.WorkingDays.Validate(); err != nil {
		return err
	}
	if !w.DailyWage.IsPositive() {
		return &ConfigurationError{Field: "dailyWage", Reason: "must be positive"}
	}
	return nil
}

// WithDerivedWage fills DailyWage from MonthlySalary/30 when unset.
func (w Worker) WithDerivedWage() Worker {
	if w.DailyWage.IsZero() {
		w.DailyWage = w.MonthlySalary.DivInt(30)
	}
	return w
}

// =============================================================================
// ATTENDANCE
// =============================================================================

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusHalfDay AttendanceStatus = "half-day"
)

// AttendanceEntry records one worker's attendance for one calendar date.
// At most one entry exists per (WorkerID, Date); marking the same date
// again updates the existing entry in place.
type AttendanceEntry struct {
	ID              AttendanceID
	WorkerID        WorkerID
	Date            Date
	Status          AttendanceStatus
	ShiftsCompleted int
}

// DeriveStatus maps a completed shift count to an attendance status.
//
// The rule is authoritative: callers only ever choose a shift count and
// this function assigns the status. Salary calculation uses the status
// category for day counting and the shift count for proration, so the
// two must never disagree.
//
//	shiftsCompleted == 0         -> absent
//	shiftsCompleted == maxShifts -> present
//	otherwise                    -> half-day
func DeriveStatus(shiftsCompleted, maxShifts int) (AttendanceStatus, error) {
	if maxShifts < 1 {
		return "", &ConfigurationError{Field: "shifts", Reason: "must be at least 1"}
	}
	if shiftsCompleted < 0 || shiftsCompleted > maxShifts {
		return "", &ConfigurationError{
			Field:  "shiftsCompleted",
			Reason: "must be between 0 and the worker's shift capacity",
		}
	}
	switch shiftsCompleted {
	case 0:
		return StatusAbsent, nil
	case maxShifts:
		return StatusPresent, nil
	default:
		return StatusHalfDay, nil
	}
}

// =============================================================================
// PAYMENTS
// =============================================================================

type PaymentType string

const (
	PaymentAdvance    PaymentType = "advance"
	PaymentHoliday    PaymentType = "holiday"
	PaymentOvertime   PaymentType = "overtime"
	PaymentAdjustment PaymentType = "adjustment"
	PaymentSalary     PaymentType = "salary"
)

// PaymentTypes lists every valid type in a stable display order.
var PaymentTypes = []PaymentType{
	PaymentSalary,
	PaymentAdvance,
	PaymentOvertime,
	PaymentHoliday,
	PaymentAdjustment,
}

// ValidPaymentType reports whether t is one of the five known types.
func ValidPaymentType(t PaymentType) bool {
	for _, known := range PaymentTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PaymentEntry is one discrete payment or adjustment event. Amounts are
// conventionally positive; the sign is applied by category when
// reconciling (advances subtract, everything else adds).
type PaymentEntry struct {
	ID          PaymentID
	WorkerID    WorkerID
	Amount      Money
	Type        PaymentType
	Date        Date
	Description string
}

// Validate checks the payment invariants before persistence.
func (p PaymentEntry) Validate() error {
	if !ValidPaymentType(p.Type) {
		return &ConfigurationError{Field: "type", Reason: "unknown payment type"}
	}
	if p.WorkerID == "" {
		return &ConfigurationError{Field: "workerId", Reason: "required"}
	}
	return nil
}

// =============================================================================
// SALARY RESULTS (derived, not persisted)
// =============================================================================

// SalaryResult is the attendance-derived portion of a worker's pay for
// one date range, before payment reconciliation.
type SalaryResult struct {
	WorkerID             WorkerID
	Start                Date
	End                  Date
	TotalWorkingDays     int // schedule-expected days in range
	PresentDays          int
	HalfDays             int
	TotalShiftsCompleted int
	BaseSalary           Money // shift-prorated
}

// SalaryStatement extends SalaryResult with the ad-hoc payment
// reconciliation: final = base + holiday + overtime - advances + adjustments.
// Salary-type payments are historical records of pay-outs and are not a
// pay component, so they never appear here.
type SalaryStatement struct {
	SalaryResult

	HolidayPay  Money
	Overtime    Money
	Advances    Money
	Adjustments Money
	FinalTotal  Money
}
