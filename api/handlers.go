/*
handlers.go - HTTP API handlers for the attendance and compensation engine

PURPOSE:
  Exposes the engine via REST API. Handles HTTP request/response, JSON
  serialization, and delegates to domain logic.

ENDPOINTS:
  Workers:
    GET    /api/workers                  List all workers
    POST   /api/workers                  Create worker
    GET    /api/workers/{id}             Get worker details
    PATCH  /api/workers/{id}             Update worker
    DELETE /api/workers/{id}             Delete worker
    GET    /api/workers/{id}/salary      Salary statement for a range
    GET    /api/workers/{id}/attendance  Attendance entries for a range

  Attendance:
    GET    /api/attendance?date=         Entries for a day
    POST   /api/attendance               Mark a worker's day

  Payments:
    GET    /api/payments                 List all payments
    POST   /api/payments                 Record payment
    PATCH  /api/payments/{id}            Update payment
    DELETE /api/payments/{id}            Delete payment

  Analytics:
    GET    /api/analytics?months=        Rolling summary
    GET    /api/analytics/metrics        Per-worker metrics
    GET    /api/analytics/insights       Actionable insights

  Settings:
    GET    /api/settings                 Current settings
    PUT    /api/settings                 Replace settings

  Admin:
    POST   /api/seed                     Load demo data

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Call domain logic (roster, ledgers, calculator)
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 500: Internal/storage errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
  - seed.go: Demo data loader
*/
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/Piyushhbhutoria/House-help/currency"
	"github.com/Piyushhbhutoria/House-help/engine"
)

// ==== HANDLER ====

// Handler holds the engine components and serves the REST API.
type Handler struct {
	Store      engine.Store
	Roster     *engine.Roster
	Attendance *engine.AttendanceLedger
	Payments   *engine.PaymentLedger
	Calculator *engine.SalaryCalculator

	settingsMu    sync.RWMutex
	settings      engine.Settings
	settingsStore engine.SettingsStore // nil when the store has no settings support
}

// NewHandler wires a handler around a store. Call Load before serving.
func NewHandler(store engine.Store) *Handler {
	roster := engine.NewRoster(store)
	attendance := engine.NewAttendanceLedger(store)
	payments := engine.NewPaymentLedger(store)

	h := &Handler{
		Store:      store,
		Roster:     roster,
		Attendance: attendance,
		Payments:   payments,
		Calculator: &engine.SalaryCalculator{Attendance: attendance, Payments: payments},
		settings:   engine.DefaultSettings(),
	}
	if ss, ok := store.(engine.SettingsStore); ok {
		h.settingsStore = ss
	}
	return h
}

// Load hydrates the in-memory mirrors and settings from the store.
func (h *Handler) Load(ctx context.Context) error {
	if err := h.Roster.Load(ctx); err != nil {
		return err
	}
	if err := h.Attendance.Load(ctx); err != nil {
		return err
	}
	if err := h.Payments.Load(ctx); err != nil {
		return err
	}
	if h.settingsStore != nil {
		s, err := h.settingsStore.LoadSettings(ctx)
		if err != nil {
			return err
		}
		if s != nil {
			h.settingsMu.Lock()
			h.settings = *s
			h.settingsMu.Unlock()
		}
	}
	return nil
}

func (h *Handler) currentSettings() engine.Settings {
	h.settingsMu.RLock()
	defer h.settingsMu.RUnlock()
	return h.settings
}

// ==== HELPERS ====

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case engine.IsNotFound(err):
		status = http.StatusNotFound
	case engine.IsClientError(err):
		status = http.StatusBadRequest
	}
	writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeBadRequest(w, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

// parseRange reads ?start= and ?end= date parameters.
func parseRange(r *http.Request) (engine.Date, engine.Date, error) {
	start, err := engine.ParseDate(r.URL.Query().Get("start"))
	if err != nil {
		return engine.Date{}, engine.Date{}, &engine.ConfigurationError{Field: "start", Reason: "expected YYYY-MM-DD"}
	}
	end, err := engine.ParseDate(r.URL.Query().Get("end"))
	if err != nil {
		return engine.Date{}, engine.Date{}, &engine.ConfigurationError{Field: "end", Reason: "expected YYYY-MM-DD"}
	}
	return start, end, nil
}

// ==== WORKERS ====

func (h *Handler) ListWorkers(w http.ResponseWriter, r *http.Request) {
	workers := h.Roster.All()
	out := make([]WorkerDTO, 0, len(workers))
	for _, wk := range workers {
		out = append(out, toWorkerDTO(wk))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateWorker(w http.ResponseWriter, r *http.Request) {
	var req CreateWorkerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	worker := engine.Worker{
		Name:          req.Name,
		MonthlySalary: engine.NewMoney(req.MonthlySalary),
		Shifts:        req.Shifts,
		WorkingDays:   engine.WeekdaySet(req.WorkingDays),
	}
	if req.DailyWage != nil {
		worker.DailyWage = engine.NewMoney(*req.DailyWage)
	}
	created, err := h.Roster.Add(r.Context(), worker)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWorkerDTO(created))
}

func (h *Handler) GetWorker(w http.ResponseWriter, r *http.Request) {
	id := engine.WorkerID(chi.URLParam(r, "id"))
	worker, ok := h.Roster.Get(id)
	if !ok {
		writeError(w, &engine.NotFoundError{Kind: "worker", ID: string(id)})
		return
	}
	writeJSON(w, http.StatusOK, toWorkerDTO(worker))
}

func (h *Handler) UpdateWorker(w http.ResponseWriter, r *http.Request) {
	id := engine.WorkerID(chi.URLParam(r, "id"))
	var req UpdateWorkerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	patch := engine.WorkerPatch{
		Name:   req.Name,
		Shifts: req.Shifts,
	}
	if req.MonthlySalary != nil {
		m := engine.NewMoney(*req.MonthlySalary)
		patch.MonthlySalary = &m
	}
	if req.DailyWage != nil {
		m := engine.NewMoney(*req.DailyWage)
		patch.DailyWage = &m
	}
	if req.WorkingDays != nil {
		days := engine.WeekdaySet(*req.WorkingDays)
		patch.WorkingDays = &days
	}
	updated, err := h.Roster.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toWorkerDTO(updated))
}

func (h *Handler) DeleteWorker(w http.ResponseWriter, r *http.Request) {
	id := engine.WorkerID(chi.URLParam(r, "id"))
	if err := h.Roster.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetWorkerSalary computes the full pay statement for ?start= .. ?end=.
func (h *Handler) GetWorkerSalary(w http.ResponseWriter, r *http.Request) {
	id := engine.WorkerID(chi.URLParam(r, "id"))
	worker, ok := h.Roster.Get(id)
	if !ok {
		writeError(w, &engine.NotFoundError{Kind: "worker", ID: string(id)})
		return
	}
	start, end, err := parseRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	stmt, err := h.Calculator.CalculateTotalSalary(worker, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	settings := h.currentSettings()
	writeJSON(w, http.StatusOK, SalaryStatementDTO{
		WorkerID:             string(stmt.WorkerID),
		Start:                stmt.Start.String(),
		End:                  stmt.End.String(),
		TotalWorkingDays:     stmt.TotalWorkingDays,
		PresentDays:          stmt.PresentDays,
		HalfDays:             stmt.HalfDays,
		TotalShiftsCompleted: stmt.TotalShiftsCompleted,
		BaseSalary:           stmt.BaseSalary.Float64(),
		HolidayPay:           stmt.HolidayPay.Float64(),
		Overtime:             stmt.Overtime.Float64(),
		Advances:             stmt.Advances.Float64(),
		Adjustments:          stmt.Adjustments.Float64(),
		FinalTotal:           stmt.FinalTotal.Float64(),
		FormattedTotal:       currency.Format(stmt.FinalTotal, settings),
	})
}

// GetWorkerAttendance lists a worker's entries for ?start= .. ?end=.
func (h *Handler) GetWorkerAttendance(w http.ResponseWriter, r *http.Request) {
	id := engine.WorkerID(chi.URLParam(r, "id"))
	if _, ok := h.Roster.Get(id); !ok {
		writeError(w, &engine.NotFoundError{Kind: "worker", ID: string(id)})
		return
	}
	start, end, err := parseRange(r)
	if err != nil {
		writeError(w, err)
		return
	}
	entries, err := h.Attendance.ForWorkerInRange(id, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]AttendanceDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toAttendanceDTO(e))
	}
	writeJSON(w, http.StatusOK, out)
}

// ==== ATTENDANCE ====

func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		out := make([]AttendanceDTO, 0)
		for _, e := range h.Attendance.All() {
			out = append(out, toAttendanceDTO(e))
		}
		writeJSON(w, http.StatusOK, out)
		return
	}
	date, err := engine.ParseDate(raw)
	if err != nil {
		writeBadRequest(w, "invalid date, expected YYYY-MM-DD")
		return
	}
	out := make([]AttendanceDTO, 0)
	for _, e := range h.Attendance.ForDate(date) {
		out = append(out, toAttendanceDTO(e))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) MarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req MarkAttendanceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	worker, ok := h.Roster.Get(engine.WorkerID(req.WorkerID))
	if !ok {
		writeError(w, &engine.NotFoundError{Kind: "worker", ID: req.WorkerID})
		return
	}
	date, err := engine.ParseDate(req.Date)
	if err != nil {
		writeBadRequest(w, "invalid date, expected YYYY-MM-DD")
		return
	}
	entry, err := h.Attendance.Upsert(r.Context(), worker, date, req.ShiftsCompleted)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAttendanceDTO(entry))
}

// ==== PAYMENTS ====

func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	out := make([]PaymentDTO, 0)
	for _, p := range h.Payments.All() {
		out = append(out, toPaymentDTO(p))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if _, ok := h.Roster.Get(engine.WorkerID(req.WorkerID)); !ok {
		writeError(w, &engine.NotFoundError{Kind: "worker", ID: req.WorkerID})
		return
	}
	date, err := engine.ParseDate(req.Date)
	if err != nil {
		writeBadRequest(w, "invalid date, expected YYYY-MM-DD")
		return
	}
	entry := engine.PaymentEntry{
		WorkerID:    engine.WorkerID(req.WorkerID),
		Amount:      engine.NewMoney(req.Amount),
		Type:        engine.PaymentType(req.Type),
		Date:        date,
		Description: req.Description,
	}
	created, err := h.Payments.Add(r.Context(), entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentDTO(created))
}

func (h *Handler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id := engine.PaymentID(chi.URLParam(r, "id"))
	var req UpdatePaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	patch := engine.PaymentPatch{Description: req.Description}
	if req.Amount != nil {
		m := engine.NewMoney(*req.Amount)
		patch.Amount = &m
	}
	if req.Type != nil {
		t := engine.PaymentType(*req.Type)
		patch.Type = &t
	}
	if req.Date != nil {
		d, err := engine.ParseDate(*req.Date)
		if err != nil {
			writeBadRequest(w, "invalid date, expected YYYY-MM-DD")
			return
		}
		patch.Date = &d
	}
	updated, err := h.Payments.Update(r.Context(), id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaymentDTO(updated))
}

func (h *Handler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	id := engine.PaymentID(chi.URLParam(r, "id"))
	if err := h.Payments.Remove(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ==== ANALYTICS ====

func (h *Handler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	months := 6
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeBadRequest(w, "months must be a positive integer")
			return
		}
		months = n
	}
	summary := engine.CalculateAnalytics(
		h.Roster.All(), h.Attendance.All(), h.Payments.All(), months, engine.Today())
	writeJSON(w, http.StatusOK, toAnalyticsDTO(summary))
}

func toAnalyticsDTO(s engine.AnalyticsSummary) AnalyticsDTO {
	dto := AnalyticsDTO{
		TotalWorkers:      s.TotalWorkers,
		TotalMonthlyCost:  s.TotalMonthlyCost.Float64(),
		AvgAttendanceRate: s.AvgAttendanceRate,
		TotalPayments:     s.TotalPayments.Float64(),
		TopPerformers:     make([]TopPerformerDTO, 0, len(s.TopPerformers)),
		CostTrends:        make([]CostTrendDTO, 0, len(s.CostTrends)),
		AttendanceTrends:  make([]AttendanceTrendDTO, 0, len(s.AttendanceTrends)),
		PaymentBreakdown:  make([]PaymentSliceDTO, 0, len(s.PaymentBreakdown)),
	}
	for _, p := range s.TopPerformers {
		dto.TopPerformers = append(dto.TopPerformers, TopPerformerDTO{
			WorkerID:       string(p.Worker.ID),
			Name:           p.Worker.Name,
			AttendanceRate: p.AttendanceRate,
		})
	}
	for _, c := range s.CostTrends {
		dto.CostTrends = append(dto.CostTrends, CostTrendDTO{
			Month: c.Month, Label: c.Label, Amount: c.Amount.Float64(),
		})
	}
	for _, a := range s.AttendanceTrends {
		dto.AttendanceTrends = append(dto.AttendanceTrends, AttendanceTrendDTO{
			Month: a.Month, Rate: a.Rate, ExpectedDays: a.ExpectedDays, PresentDays: a.PresentDays,
		})
	}
	for _, p := range s.PaymentBreakdown {
		dto.PaymentBreakdown = append(dto.PaymentBreakdown, PaymentSliceDTO{
			Type: string(p.Type), Amount: p.Amount.Float64(), Percentage: p.Percentage,
		})
	}
	return dto
}

func (h *Handler) GetWorkerMetrics(w http.ResponseWriter, r *http.Request) {
	months := 6
	if raw := r.URL.Query().Get("months"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeBadRequest(w, "months must be a positive integer")
			return
		}
		months = n
	}
	metrics := engine.CalculateWorkerMetrics(
		h.Roster.All(), h.Attendance.All(), h.Payments.All(), months, engine.Today())
	out := make([]WorkerMetricsDTO, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, WorkerMetricsDTO{
			WorkerID:         string(m.WorkerID),
			Name:             m.Name,
			AttendanceRate:   m.AttendanceRate,
			TotalEarned:      m.TotalEarned.Float64(),
			PunctualityScore: m.PunctualityScore,
			Efficiency:       m.Efficiency,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	insights := engine.GenerateInsights(
		h.Roster.All(), h.Attendance.All(), h.Payments.All(), engine.Today())
	out := make([]InsightDTO, 0, len(insights))
	for _, in := range insights {
		dto := InsightDTO{
			ID:             in.ID,
			Type:           string(in.Type),
			Title:          in.Title,
			Description:    in.Description,
			Impact:         string(in.Impact),
			Recommendation: in.Recommendation,
		}
		if in.HasSavings {
			v := in.Savings.Float64()
			dto.Savings = &v
		}
		out = append(out, dto)
	}
	writeJSON(w, http.StatusOK, out)
}

// ==== SETTINGS ====

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.currentSettings())
}

func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	var s engine.Settings
	if !decodeBody(w, r, &s) {
		return
	}
	if !currency.Supported(s.Currency) {
		writeBadRequest(w, "unsupported currency: "+s.Currency)
		return
	}
	if err := s.DefaultWorkingDays.Validate(); err != nil {
		writeError(w, err)
		return
	}
	if h.settingsStore != nil {
		if err := h.settingsStore.SaveSettings(r.Context(), s); err != nil {
			writeError(w, err)
			return
		}
	}
	h.settingsMu.Lock()
	h.settings = s
	h.settingsMu.Unlock()
	writeJSON(w, http.StatusOK, s)
}
