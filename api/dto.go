/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers and the engine, not in DTOs. DTOs are
  pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/Piyushhbhutoria/House-help/engine"
)

// =============================================================================
// WORKERS
// =============================================================================

// WorkerDTO represents a worker in API responses.
type WorkerDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MonthlySalary float64 `json:"monthly_salary"`
	Shifts        int     `json:"shifts"`
	DailyWage     float64 `json:"daily_wage"`
	WorkingDays   []int   `json:"working_days"`
}

func toWorkerDTO(w engine.Worker) WorkerDTO {
	days := w.WorkingDays
	if days == nil {
		days = engine.WeekdaySet{}
	}
	return WorkerDTO{
		ID:            string(w.ID),
		Name:          w.Name,
		MonthlySalary: w.MonthlySalary.Float64(),
		Shifts:        w.Shifts,
		DailyWage:     w.DailyWage.Float64(),
		WorkingDays:   days,
	}
}

// CreateWorkerRequest is the request to create a worker. DailyWage is
// optional; when omitted it is derived as monthly_salary/30.
type CreateWorkerRequest struct {
	Name          string   `json:"name"`
	MonthlySalary float64  `json:"monthly_salary"`
	Shifts        int      `json:"shifts"`
	DailyWage     *float64 `json:"daily_wage,omitempty"`
	WorkingDays   []int    `json:"working_days,omitempty"`
}

// UpdateWorkerRequest is a partial update; absent fields are unchanged.
type UpdateWorkerRequest struct {
	Name          *string  `json:"name,omitempty"`
	MonthlySalary *float64 `json:"monthly_salary,omitempty"`
	Shifts        *int     `json:"shifts,omitempty"`
	DailyWage     *float64 `json:"daily_wage,omitempty"`
	WorkingDays   *[]int   `json:"working_days,omitempty"`
}

// =============================================================================
// ATTENDANCE
// =============================================================================

// AttendanceDTO represents one attendance entry.
type AttendanceDTO struct {
	ID              string `json:"id"`
	WorkerID        string `json:"worker_id"`
	Date            string `json:"date"`
	Status          string `json:"status"`
	ShiftsCompleted int    `json:"shifts_completed"`
}

func toAttendanceDTO(e engine.AttendanceEntry) AttendanceDTO {
	return AttendanceDTO{
		ID:              string(e.ID),
		WorkerID:        string(e.WorkerID),
		Date:            e.Date.String(),
		Status:          string(e.Status),
		ShiftsCompleted: e.ShiftsCompleted,
	}
}

// MarkAttendanceRequest marks a worker's day. Only a shift count is
// accepted; the status is derived server-side.
type MarkAttendanceRequest struct {
	WorkerID        string `json:"worker_id"`
	Date            string `json:"date"`
	ShiftsCompleted int    `json:"shifts_completed"`
}

// =============================================================================
// PAYMENTS
// =============================================================================

// PaymentDTO represents one payment entry.
type PaymentDTO struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}

func toPaymentDTO(p engine.PaymentEntry) PaymentDTO {
	return PaymentDTO{
		ID:          string(p.ID),
		WorkerID:    string(p.WorkerID),
		Amount:      p.Amount.Float64(),
		Type:        string(p.Type),
		Date:        p.Date.String(),
		Description: p.Description,
	}
}

// CreatePaymentRequest records a payment event.
type CreatePaymentRequest struct {
	WorkerID    string  `json:"worker_id"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description,omitempty"`
}

// UpdatePaymentRequest is a partial update; absent fields are unchanged.
type UpdatePaymentRequest struct {
	Amount      *float64 `json:"amount,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Date        *string  `json:"date,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// =============================================================================
// SALARY
// =============================================================================

// SalaryStatementDTO is the per-worker pay statement for a date range.
type SalaryStatementDTO struct {
	WorkerID             string  `json:"worker_id"`
	Start                string  `json:"start"`
	End                  string  `json:"end"`
	TotalWorkingDays     int     `json:"total_working_days"`
	PresentDays          int     `json:"present_days"`
	HalfDays             int     `json:"half_days"`
	TotalShiftsCompleted int     `json:"total_shifts_completed"`
	BaseSalary           float64 `json:"base_salary"`
	HolidayPay           float64 `json:"holiday_pay"`
	Overtime             float64 `json:"overtime"`
	Advances             float64 `json:"advances"`
	Adjustments          float64 `json:"adjustments"`
	FinalTotal           float64 `json:"final_total"`
	FormattedTotal       string  `json:"formatted_total"`
}

// =============================================================================
// ANALYTICS
// =============================================================================

type AnalyticsDTO struct {
	TotalWorkers      int                  `json:"total_workers"`
	TotalMonthlyCost  float64              `json:"total_monthly_cost"`
	AvgAttendanceRate float64              `json:"avg_attendance_rate"`
	TotalPayments     float64              `json:"total_payments"`
	TopPerformers     []TopPerformerDTO    `json:"top_performers"`
	CostTrends        []CostTrendDTO       `json:"cost_trends"`
	AttendanceTrends  []AttendanceTrendDTO `json:"attendance_trends"`
	PaymentBreakdown  []PaymentSliceDTO    `json:"payment_breakdown"`
}

type TopPerformerDTO struct {
	WorkerID       string  `json:"worker_id"`
	Name           string  `json:"name"`
	AttendanceRate float64 `json:"attendance_rate"`
}

type CostTrendDTO struct {
	Month  string  `json:"month"`
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type AttendanceTrendDTO struct {
	Month        string  `json:"month"`
	Rate         float64 `json:"rate"`
	ExpectedDays int     `json:"expected_days"`
	PresentDays  float64 `json:"present_days"`
}

type PaymentSliceDTO struct {
	Type       string  `json:"type"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

type WorkerMetricsDTO struct {
	WorkerID         string  `json:"worker_id"`
	Name             string  `json:"name"`
	AttendanceRate   float64 `json:"attendance_rate"`
	TotalEarned      float64 `json:"total_earned"`
	PunctualityScore float64 `json:"punctuality_score"`
	Efficiency       int     `json:"efficiency"`
}

type InsightDTO struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Impact         string   `json:"impact"`
	Recommendation string   `json:"recommendation"`
	Savings        *float64 `json:"savings,omitempty"`
}

// =============================================================================
// ERRORS
// =============================================================================

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
