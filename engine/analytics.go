/*
analytics.go - Rolling-window attendance and cost analytics

PURPOSE:
  Scans all workers, attendance, and payments across a trailing N-month
  window and produces the dashboard summary: cost trend series,
  attendance-rate trend series, payment-type breakdown, top-performer
  ranking, and per-worker performance metrics.

DENOMINATOR CONVENTION:
  Every attendance rate in this file uses schedule-expected working days
  as the denominator. The dashboard average and the per-worker ranking
  therefore agree whenever a worker has unmarked expected days.

COST TRENDS:
  A cost trend point sums ALL payment amounts in the month, salary-type
  included: it measures money that moved, not net compensation. Computed
  base salary never enters the trend, so the series does not double
  count what the salary calculator produces.

Everything here is a pure function of its inputs plus an explicit asOf
date and month count; empty input degrades to zeros, never errors.
*/
package engine

import "sort"

// =============================================================================
// RESULT TYPES
// =============================================================================

// AnalyticsSummary is the dashboard aggregate.
type AnalyticsSummary struct {
	TotalWorkers      int
	TotalMonthlyCost  Money // budgeted: sum of monthly salaries
	AvgAttendanceRate float64
	TotalPayments     Money // actual payments inside the window
	TopPerformers     []RankedWorker
	CostTrends        []CostTrendPoint
	AttendanceTrends  []AttendanceTrendPoint
	PaymentBreakdown  []PaymentSlice
}

// CostTrendPoint is one month's total recorded payments.
type CostTrendPoint struct {
	Month  string // short label, e.g. "Jan 25"
	Label  string // long label, e.g. "January 2025"
	Amount Money
}

// AttendanceTrendPoint is one month's weighted attendance rate.
type AttendanceTrendPoint struct {
	Month        string // short month name, e.g. "Jan"
	Rate         float64
	ExpectedDays int     // sum of every worker's scheduled days
	PresentDays  float64 // present + 0.5 * half-day
}

// PaymentSlice is one payment type's share of the window total.
type PaymentSlice struct {
	Type       PaymentType
	Amount     Money
	Percentage float64 // 0 when the window total is 0, never NaN
}

// RankedWorker pairs a worker with their window attendance rate.
type RankedWorker struct {
	Worker         Worker
	AttendanceRate float64
}

// WorkerMetrics is the per-worker performance card.
type WorkerMetrics struct {
	WorkerID         WorkerID
	Name             string
	AttendanceRate   float64
	TotalEarned      Money
	PunctualityScore float64 // shifts completed vs present-day capacity, capped at 100
	Efficiency       int     // coarse band derived from the attendance rate
}

// =============================================================================
// DASHBOARD SUMMARY
// =============================================================================

// CalculateAnalytics produces the full dashboard summary for the
// trailing `months` months ending at asOf.
func CalculateAnalytics(workers []Worker, attendance []AttendanceEntry, payments []PaymentEntry, months int, asOf Date) AnalyticsSummary {
	window := Period{Start: asOf.AddMonths(-months), End: asOf}

	var windowAttendance []AttendanceEntry
	for _, e := range attendance {
		if window.Contains(e.Date) {
			windowAttendance = append(windowAttendance, e)
		}
	}
	var windowPayments []PaymentEntry
	for _, p := range payments {
		if window.Contains(p.Date) {
			windowPayments = append(windowPayments, p)
		}
	}

	var totalMonthlyCost, totalPayments Money
	for _, w := range workers {
		totalMonthlyCost = totalMonthlyCost.Add(w.MonthlySalary)
	}
	for _, p := range windowPayments {
		totalPayments = totalPayments.Add(p.Amount)
	}

	expected := 0
	for _, w := range workers {
		// Window bounds are valid by construction, the count cannot fail.
		n, _ := WorkingDaysInRange(w.WorkingDays, window.Start, window.End)
		expected += n
	}
	rate := 0.0
	if expected > 0 {
		rate = weightedPresent(windowAttendance) / float64(expected) * 100
	}

	ranked := TopPerformers(workers, attendance, window.Start, window.End)
	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	return AnalyticsSummary{
		TotalWorkers:      len(workers),
		TotalMonthlyCost:  totalMonthlyCost,
		AvgAttendanceRate: round2(rate),
		TotalPayments:     totalPayments,
		TopPerformers:     ranked,
		CostTrends:        CostTrends(payments, months, asOf),
		AttendanceTrends:  AttendanceTrends(workers, attendance, months, asOf),
		PaymentBreakdown:  PaymentBreakdown(windowPayments),
	}
}

// =============================================================================
// TREND SERIES (one point per calendar month, oldest first)
// =============================================================================

// CostTrends sums all payment amounts per calendar month for the
// trailing `months` months ending at asOf.
func CostTrends(payments []PaymentEntry, months int, asOf Date) []CostTrendPoint {
	var trends []CostTrendPoint
	for _, month := range TrailingMonths(asOf, months) {
		var total Money
		for _, p := range payments {
			if month.Contains(p.Date) {
				total = total.Add(p.Amount)
			}
		}
		trends = append(trends, CostTrendPoint{
			Month:  month.Start.Time.Format("Jan 06"),
			Label:  month.Start.Time.Format("January 2006"),
			Amount: total,
		})
	}
	return trends
}

// AttendanceTrends computes the weighted attendance rate per calendar
// month. A month with zero expected days yields a rate of 0.
func AttendanceTrends(workers []Worker, attendance []AttendanceEntry, months int, asOf Date) []AttendanceTrendPoint {
	var trends []AttendanceTrendPoint
	for _, month := range TrailingMonths(asOf, months) {
		var monthEntries []AttendanceEntry
		for _, e := range attendance {
			if month.Contains(e.Date) {
				monthEntries = append(monthEntries, e)
			}
		}

		expected := 0
		for _, w := range workers {
			n, _ := WorkingDaysInRange(w.WorkingDays, month.Start, month.End)
			expected += n
		}

		present := weightedPresent(monthEntries)
		rate := 0.0
		if expected > 0 {
			rate = present / float64(expected) * 100
		}

		trends = append(trends, AttendanceTrendPoint{
			Month:        month.Start.Time.Format("Jan"),
			Rate:         round2(rate),
			ExpectedDays: expected,
			PresentDays:  present,
		})
	}
	return trends
}

// PaymentBreakdown groups payments by type with each type's share of
// the grand total. Types with no payments are omitted; the remaining
// slices follow the canonical type order for deterministic output.
func PaymentBreakdown(payments []PaymentEntry) []PaymentSlice {
	byType := make(map[PaymentType]Money)
	var total Money
	for _, p := range payments {
		byType[p.Type] = byType[p.Type].Add(p.Amount)
		total = total.Add(p.Amount)
	}

	var breakdown []PaymentSlice
	for _, t := range PaymentTypes {
		amount, ok := byType[t]
		if !ok {
			continue
		}
		pct := 0.0
		if !total.IsZero() {
			pct = round2(amount.Float64() / total.Float64() * 100)
		}
		breakdown = append(breakdown, PaymentSlice{Type: t, Amount: amount, Percentage: pct})
	}
	return breakdown
}

// =============================================================================
// RANKINGS AND PER-WORKER METRICS
// =============================================================================

// TopPerformers ranks workers by attendance rate over [start, end],
// highest first. Ties keep the original input order (stable sort).
func TopPerformers(workers []Worker, attendance []AttendanceEntry, start, end Date) []RankedWorker {
	ranked := make([]RankedWorker, 0, len(workers))
	for _, w := range workers {
		expected, _ := WorkingDaysInRange(w.WorkingDays, start, end)
		present := 0.0
		for _, e := range attendance {
			if e.WorkerID != w.ID || e.Date.Before(start) || e.Date.After(end) {
				continue
			}
			switch e.Status {
			case StatusPresent:
				present++
			case StatusHalfDay:
				present += 0.5
			}
		}
		rate := 0.0
		if expected > 0 {
			rate = present / float64(expected) * 100
		}
		ranked = append(ranked, RankedWorker{Worker: w, AttendanceRate: round2(rate)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AttendanceRate > ranked[j].AttendanceRate
	})
	return ranked
}

// CalculateWorkerMetrics computes the per-worker performance cards for
// the trailing `months` months ending at asOf.
func CalculateWorkerMetrics(workers []Worker, attendance []AttendanceEntry, payments []PaymentEntry, months int, asOf Date) []WorkerMetrics {
	window := Period{Start: asOf.AddMonths(-months), End: asOf}

	metrics := make([]WorkerMetrics, 0, len(workers))
	for _, w := range workers {
		var presentDays, halfDays, totalShifts int
		for _, e := range attendance {
			if e.WorkerID != w.ID || !window.Contains(e.Date) {
				continue
			}
			switch e.Status {
			case StatusPresent:
				presentDays++
			case StatusHalfDay:
				halfDays++
			}
			totalShifts += e.ShiftsCompleted
		}

		var earned Money
		for _, p := range payments {
			if p.WorkerID == w.ID && window.Contains(p.Date) {
				earned = earned.Add(p.Amount)
			}
		}

		expected, _ := WorkingDaysInRange(w.WorkingDays, window.Start, window.End)
		rate := 0.0
		if expected > 0 {
			rate = (float64(presentDays) + float64(halfDays)*0.5) / float64(expected) * 100
		}

		// Punctuality: did present days deliver their full shift capacity?
		punctuality := 0.0
		if expectedShifts := presentDays * w.Shifts; expectedShifts > 0 {
			punctuality = float64(totalShifts) / float64(expectedShifts) * 100
			if punctuality > 100 {
				punctuality = 100
			}
		}

		metrics = append(metrics, WorkerMetrics{
			WorkerID:         w.ID,
			Name:             w.Name,
			AttendanceRate:   round2(rate),
			TotalEarned:      earned,
			PunctualityScore: round2(punctuality),
			Efficiency:       efficiencyBand(rate),
		})
	}
	return metrics
}

// efficiencyBand is a deliberately coarse categorical signal, not a
// continuous score.
func efficiencyBand(attendanceRate float64) int {
	switch {
	case attendanceRate > 90:
		return 100
	case attendanceRate > 80:
		return 85
	case attendanceRate > 70:
		return 70
	default:
		return 50
	}
}

func weightedPresent(entries []AttendanceEntry) float64 {
	total := 0.0
	for _, e := range entries {
		switch e.Status {
		case StatusPresent:
			total++
		case StatusHalfDay:
			total += 0.5
		}
	}
	return total
}

func round2(x float64) float64 {
	if x < 0 {
		return float64(int(x*100-0.5)) / 100
	}
	return float64(int(x*100+0.5)) / 100
}
