package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Piyushhbhutoria/House-help/api"
	"github.com/Piyushhbhutoria/House-help/engine/store"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	h := api.NewHandler(store.NewMemory())
	require.NoError(t, h.Load(context.Background()))
	srv := httptest.NewServer(api.NewRouter(h, "http://localhost:5173"))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func createWorker(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/workers", map[string]interface{}{
		"name":           "Asha",
		"monthly_salary": 3000,
		"shifts":         2,
		"working_days":   []int{1, 2, 3, 4, 5},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	var dto struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body, &dto))
	require.NotEmpty(t, dto.ID)
	return dto.ID
}

// =============================================================================
// WORKER ENDPOINT TESTS
// =============================================================================

func TestWorkers_CreateAndGet(t *testing.T) {
	srv := newTestServer(t)
	id := createWorker(t, srv)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/workers/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dto struct {
		Name        string  `json:"name"`
		DailyWage   float64 `json:"daily_wage"`
		WorkingDays []int   `json:"working_days"`
	}
	require.NoError(t, json.Unmarshal(body, &dto))
	assert.Equal(t, "Asha", dto.Name)
	assert.Equal(t, 100.0, dto.DailyWage)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, dto.WorkingDays)
}

func TestWorkers_CreateRejectsZeroShifts(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/workers", map[string]interface{}{
		"name":           "Asha",
		"monthly_salary": 3000,
		"shifts":         0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWorkers_GetUnknownIs404(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/workers/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestWorkers_PatchSalaryRederivesWage(t *testing.T) {
	srv := newTestServer(t)
	id := createWorker(t, srv)

	resp, body := doJSON(t, http.MethodPatch, srv.URL+"/api/workers/"+id, map[string]interface{}{
		"monthly_salary": 6000,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var dto struct {
		DailyWage float64 `json:"daily_wage"`
	}
	require.NoError(t, json.Unmarshal(body, &dto))
	assert.Equal(t, 200.0, dto.DailyWage)
}

func TestWorkers_DeleteThenList(t *testing.T) {
	srv := newTestServer(t)
	id := createWorker(t, srv)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/workers/"+id, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/workers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Empty(t, list)
}

// =============================================================================
// ATTENDANCE ENDPOINT TESTS
// =============================================================================

func TestAttendance_MarkDerivesStatus(t *testing.T) {
	srv := newTestServer(t)
	id := createWorker(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/attendance", map[string]interface{}{
		"worker_id":        id,
		"date":             "2025-06-02",
		"shifts_completed": 1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var dto struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &dto))
	assert.Equal(t, "half-day", dto.Status)

	// Marking the same day again keeps the identifier
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/api/attendance", map[string]interface{}{
		"worker_id":        id,
		"date":             "2025-06-02",
		"shifts_completed": 2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal(body, &second))
	assert.Equal(t, dto.ID, second.ID)
	assert.Equal(t, "present", second.Status)
}

func TestAttendance_MarkRejectsOverCapacity(t *testing.T) {
	srv := newTestServer(t)
	id := createWorker(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/attendance", map[string]interface{}{
		"worker_id":        id,
		"date":             "2025-06-02",
		"shifts_completed": 5,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAttendance_QueryByDate(t *testing.T) {
	srv := newTestServer(t)
	id := createWorker(t, srv)

	for _, date := range []string{"2025-06-02", "2025-06-03"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/attendance", map[string]interface{}{
			"worker_id": id, "date": date, "shifts_completed": 2,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/attendance?date=2025-06-02", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 1)
}

// =============================================================================
// PAYMENT AND SALARY ENDPOINT TESTS
// =============================================================================

func TestSalaryStatement_EndToEnd(t *testing.T) {
	// GIVEN: the canonical worker with 20 present + 2 half days and two
	// payments inside the range
	srv := newTestServer(t)
	id := createWorker(t, srv)

	for day := 2; day <= 21; day++ {
		date := fmt.Sprintf("2025-06-%02d", day)
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/attendance", map[string]interface{}{
			"worker_id": id, "date": date, "shifts_completed": 2,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	for _, date := range []string{"2025-07-01", "2025-07-02"} {
		resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/attendance", map[string]interface{}{
			"worker_id": id, "date": date, "shifts_completed": 1,
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	for _, p := range []map[string]interface{}{
		{"worker_id": id, "amount": 500, "type": "advance", "date": "2025-06-10"},
		{"worker_id": id, "amount": 200, "type": "overtime", "date": "2025-06-20"},
	} {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/payments", p)
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	// WHEN: requesting the statement for the whole range
	resp, body := doJSON(t, http.MethodGet,
		srv.URL+"/api/workers/"+id+"/salary?start=2025-06-01&end=2025-07-31", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	var stmt struct {
		PresentDays          int     `json:"present_days"`
		HalfDays             int     `json:"half_days"`
		TotalShiftsCompleted int     `json:"total_shifts_completed"`
		BaseSalary           float64 `json:"base_salary"`
		FinalTotal           float64 `json:"final_total"`
		FormattedTotal       string  `json:"formatted_total"`
	}
	require.NoError(t, json.Unmarshal(body, &stmt))

	// THEN: 42 shifts at 50 each, minus 500, plus 200
	assert.Equal(t, 20, stmt.PresentDays)
	assert.Equal(t, 2, stmt.HalfDays)
	assert.Equal(t, 42, stmt.TotalShiftsCompleted)
	assert.Equal(t, 2100.0, stmt.BaseSalary)
	assert.Equal(t, 1800.0, stmt.FinalTotal)
	assert.Equal(t, "₹1,800.00", stmt.FormattedTotal)
}

func TestSalary_MissingRangeIs400(t *testing.T) {
	srv := newTestServer(t)
	id := createWorker(t, srv)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/workers/"+id+"/salary", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPayments_RejectUnknownWorker(t *testing.T) {
	srv := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/api/payments", map[string]interface{}{
		"worker_id": "ghost", "amount": 100, "type": "advance", "date": "2025-06-10",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPayments_DeleteUnknownIs404(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/api/payments/ghost", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// =============================================================================
// ANALYTICS AND SETTINGS ENDPOINT TESTS
// =============================================================================

func TestAnalytics_EmptyStateIsZeros(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/analytics?months=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var dto struct {
		TotalWorkers int             `json:"total_workers"`
		CostTrends   json.RawMessage `json:"cost_trends"`
	}
	require.NoError(t, json.Unmarshal(body, &dto))
	assert.Equal(t, 0, dto.TotalWorkers)

	var trends []json.RawMessage
	require.NoError(t, json.Unmarshal(dto.CostTrends, &trends))
	assert.Len(t, trends, 3)
}

func TestAnalytics_RejectsBadMonths(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/api/analytics?months=0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSettings_DefaultsAndUpdate(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var settings map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "INR", settings["currency"])

	settings["currency"] = "USD"
	settings["currencySymbol"] = "$"
	resp, body = doJSON(t, http.MethodPut, srv.URL+"/api/settings", settings)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(body, &settings))
	assert.Equal(t, "USD", settings["currency"])
}

func TestSettings_RejectsUnknownCurrency(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/api/settings", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var settings map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &settings))

	settings["currency"] = "BTC"
	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/api/settings", settings)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestSeed_PopulatesWorkers(t *testing.T) {
	srv := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/api/seed", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/api/workers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(body, &list))
	assert.Len(t, list, 3)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
