/*
insights.go - Heuristic recommendations derived from recent activity

Scans the trailing three months and surfaces actionable findings:
budget overruns, low-attendance workers, heavy overtime reliance, and
shift-completion shortfalls. Thresholds mirror the dashboard's banding
and are intentionally simple; this is advisory output, not a report of
record.
*/
package engine

import "fmt"

type InsightType string

const (
	InsightCost       InsightType = "cost"
	InsightAttendance InsightType = "attendance"
	InsightEfficiency InsightType = "efficiency"
	InsightOvertime   InsightType = "overtime"
)

type InsightImpact string

const (
	ImpactHigh   InsightImpact = "high"
	ImpactMedium InsightImpact = "medium"
	ImpactLow    InsightImpact = "low"
)

// Insight is one finding with a recommendation and, where it applies,
// an estimated saving.
type Insight struct {
	ID             string
	Type           InsightType
	Title          string
	Description    string
	Impact         InsightImpact
	Recommendation string
	Savings        Money
	HasSavings     bool
}

const insightWindowMonths = 3

// GenerateInsights inspects the trailing three months ending at asOf.
// Empty input produces no insights, never an error.
func GenerateInsights(workers []Worker, attendance []AttendanceEntry, payments []PaymentEntry, asOf Date) []Insight {
	window := Period{Start: asOf.AddMonths(-insightWindowMonths), End: asOf}

	var recentAttendance []AttendanceEntry
	for _, e := range attendance {
		if window.Contains(e.Date) {
			recentAttendance = append(recentAttendance, e)
		}
	}
	var recentPayments []PaymentEntry
	for _, p := range payments {
		if window.Contains(p.Date) {
			recentPayments = append(recentPayments, p)
		}
	}

	var insights []Insight

	// Budget overrun: actual monthly spend more than 10% above budget.
	var spent, budgeted Money
	for _, p := range recentPayments {
		spent = spent.Add(p.Amount)
	}
	for _, w := range workers {
		budgeted = budgeted.Add(w.MonthlySalary)
	}
	avgMonthly := spent.DivInt(insightWindowMonths)
	if budgeted.IsPositive() && avgMonthly.Float64() > budgeted.Float64()*1.1 {
		overBy := avgMonthly.Sub(budgeted)
		pct := int(overBy.Float64() / budgeted.Float64() * 100)
		insights = append(insights, Insight{
			ID:             "cost-overrun",
			Type:           InsightCost,
			Title:          "Budget Overrun Detected",
			Description:    fmt.Sprintf("Actual spending is %d%% above budget", pct),
			Impact:         ImpactHigh,
			Recommendation: "Review overtime and advance payments. Consider renegotiating rates.",
			Savings:        overBy,
			HasSavings:     true,
		})
	}

	// Low attendance: workers whose marked-present share is under 80%.
	lowCount := 0
	for _, w := range workers {
		present, total := 0, 0
		for _, e := range recentAttendance {
			if e.WorkerID != w.ID {
				continue
			}
			total++
			if e.Status == StatusPresent {
				present++
			}
		}
		if total > 0 && float64(present)/float64(total) < 0.8 {
			lowCount++
		}
	}
	if lowCount > 0 {
		insights = append(insights, Insight{
			ID:             "low-attendance",
			Type:           InsightAttendance,
			Title:          "Low Attendance Alert",
			Description:    fmt.Sprintf("%d worker(s) have attendance below 80%%", lowCount),
			Impact:         ImpactMedium,
			Recommendation: "Schedule performance review meetings and discuss attendance expectations.",
		})
	}

	// Overtime reliance: more than five overtime payments on record.
	overtimeCount := 0
	var overtimeTotal Money
	for _, p := range payments {
		if p.Type == PaymentOvertime {
			overtimeCount++
			overtimeTotal = overtimeTotal.Add(p.Amount)
		}
	}
	if overtimeCount > 5 {
		insights = append(insights, Insight{
			ID:             "high-overtime",
			Type:           InsightOvertime,
			Title:          "High Overtime Usage",
			Description:    fmt.Sprintf("%d overtime payments totaling %s", overtimeCount, overtimeTotal),
			Impact:         ImpactMedium,
			Recommendation: "Consider hiring additional staff or redistributing workload.",
			Savings:        overtimeTotal.Mul(NewMoney(0.3)), // rough 30% recoverable estimate
			HasSavings:     true,
		})
	}

	// Shift completion: under 90% of shift capacity across marked days.
	completed, capacity := 0, 0
	byID := make(map[WorkerID]Worker, len(workers))
	for _, w := range workers {
		byID[w.ID] = w
	}
	for _, e := range recentAttendance {
		w, ok := byID[e.WorkerID]
		if !ok {
			continue // orphaned entry for a deleted worker
		}
		completed += e.ShiftsCompleted
		capacity += w.Shifts
	}
	if capacity > 0 && float64(completed) < float64(capacity)*0.9 {
		insights = append(insights, Insight{
			ID:             "low-efficiency",
			Type:           InsightEfficiency,
			Title:          "Efficiency Below Target",
			Description:    fmt.Sprintf("Only %d%% of expected shifts completed", int(float64(completed)/float64(capacity)*100)),
			Impact:         ImpactMedium,
			Recommendation: "Review work processes and provide additional training if needed.",
		})
	}

	return insights
}
