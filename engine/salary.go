/*
salary.go - Per-period salary calculation and payment reconciliation

PURPOSE:
  Combines the schedule calculator, the attendance ledger, and the
  payment ledger for one worker over one date range into a final
  payable amount.

PRORATION:
  Base salary is SHIFT-prorated, not day-prorated. A half-day
  contributes exactly the shifts actually completed, not a flat 50%:

    shiftWage  = dailyWage / shifts
    baseSalary = totalShiftsCompleted * shiftWage

RECONCILIATION:
    final = base + holiday + overtime - advances + adjustments

  Salary-type payments record money already paid out; they are history,
  not a pay component, and are excluded here.

GUARANTEES:
  Deterministic given identical ledger contents; order-independent over
  the entry collections; no internal rounding (formatting is a
  presentation concern).
*/
package engine

// SalaryCalculator computes pay figures from ledger snapshots. It holds
// no state of its own and can be shared freely.
type SalaryCalculator struct {
	Attendance *AttendanceLedger
	Payments   *PaymentLedger
}

// CalculateSalary computes the attendance-derived pay for one worker
// over [start, end] inclusive.
//
// A worker with zero shifts is a configuration error: the roster
// rejects such workers at creation time, so hitting this here means a
// caller bypassed the boundary.
func (c *SalaryCalculator) CalculateSalary(worker Worker, start, end Date) (SalaryResult, error) {
	if worker.Shifts < 1 {
		return SalaryResult{}, &ConfigurationError{Field: "shifts", Reason: "must be at least 1"}
	}

	entries, err := c.Attendance.ForWorkerInRange(worker.ID, start, end)
	if err != nil {
		return SalaryResult{}, err
	}

	totalWorkingDays, err := WorkingDaysInRange(worker.WorkingDays, start, end)
	if err != nil {
		return SalaryResult{}, err
	}

	result := SalaryResult{
		WorkerID:         worker.ID,
		Start:            start,
		End:              end,
		TotalWorkingDays: totalWorkingDays,
	}
	for _, e := range entries {
		switch e.Status {
		case StatusPresent:
			result.PresentDays++
		case StatusHalfDay:
			result.HalfDays++
		}
		result.TotalShiftsCompleted += e.ShiftsCompleted
	}

	shiftWage := worker.DailyWage.DivInt(worker.Shifts)
	result.BaseSalary = shiftWage.MulInt(result.TotalShiftsCompleted)
	return result, nil
}

// CalculateTotalSalary extends CalculateSalary with the payment
// reconciliation over the same range.
func (c *SalaryCalculator) CalculateTotalSalary(worker Worker, start, end Date) (SalaryStatement, error) {
	base, err := c.CalculateSalary(worker, start, end)
	if err != nil {
		return SalaryStatement{}, err
	}

	payments, err := c.Payments.ForWorkerInRange(worker.ID, start, end)
	if err != nil {
		return SalaryStatement{}, err
	}

	stmt := SalaryStatement{SalaryResult: base}
	for _, p := range payments {
		switch p.Type {
		case PaymentHoliday:
			stmt.HolidayPay = stmt.HolidayPay.Add(p.Amount)
		case PaymentOvertime:
			stmt.Overtime = stmt.Overtime.Add(p.Amount)
		case PaymentAdvance:
			stmt.Advances = stmt.Advances.Add(p.Amount)
		case PaymentAdjustment:
			stmt.Adjustments = stmt.Adjustments.Add(p.Amount)
		case PaymentSalary:
			// Already paid out; informational only.
		}
	}

	stmt.FinalTotal = stmt.BaseSalary.
		Add(stmt.HolidayPay).
		Add(stmt.Overtime).
		Sub(stmt.Advances).
		Add(stmt.Adjustments)
	return stmt, nil
}
