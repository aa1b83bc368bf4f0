package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"railops/internal/domain/registry"
	"railops/internal/domain/stats"
	"railops/internal/platform/config"
)

func testConfig() config.Config {
	return config.Config{
		Addr:              ":0",
		Environment:       "test",
		JWTSecret:         "test-secret",
		FixtureSeed:       1234,
		RunSeed:           true,
		SeedAdminUsername: "admin",
		SeedAdminPassword: "letmein",
		MaxBodyBytes:      1 << 20,
		MetricsEnabled:    true,
	}
}

func newTestServer(t *testing.T) (*App, *httptest.Server) {
	t.Helper()
	app, err := New(testConfig())
	if err != nil {
		t.Fatalf("server setup failed: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return app, ts
}

type envelope struct {
	Success   bool            `json:"success"`
	Data      json.RawMessage `json:"data"`
	Error     *envelopeError  `json:"error"`
	RequestID string          `json:"requestId"`
}

type envelopeError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, url, err)
	}
	return resp, env
}

func TestHealthz(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatalf("healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("healthz status = %d", resp.StatusCode)
	}
}

func TestSeededListCounts(t *testing.T) {
	_, ts := newTestServer(t)

	cases := []struct {
		path string
		want int
	}{
		{"/api/v1/employees", 50},
		{"/api/v1/projects", 10},
		{"/api/v1/files", 30},
		{"/api/v1/vendors", 20},
		{"/api/v1/alerts", 3},
		{"/api/v1/training-programs", 2},
		{"/api/v1/field-activities", 2},
	}
	for _, tc := range cases {
		resp, env := doJSON(t, http.MethodGet, ts.URL+tc.path, nil)
		if resp.StatusCode != http.StatusOK || !env.Success {
			t.Errorf("%s: status %d success %v", tc.path, resp.StatusCode, env.Success)
			continue
		}
		var records []json.RawMessage
		if err := json.Unmarshal(env.Data, &records); err != nil {
			t.Errorf("%s: decode list: %v", tc.path, err)
			continue
		}
		if len(records) != tc.want {
			t.Errorf("%s: got %d records, want %d", tc.path, len(records), tc.want)
		}
	}
}

func TestEmployeeCRUDJourney(t *testing.T) {
	_, ts := newTestServer(t)
	base := ts.URL + "/api/v1/employees"

	insert := map[string]any{
		"name":        "Test Engineer",
		"employeeId":  "RDSO999",
		"role":        "JE",
		"designation": "Junior Engineer",
		"shift":       "Morning (6-14)",
		"status":      "Present",
		"department":  "Civil",
		"joinDate":    "2022-04-01T00:00:00Z",
		"skills":      []string{"Track Inspection"},
	}
	resp, env := doJSON(t, http.MethodPost, base, insert)
	if resp.StatusCode != http.StatusCreated || !env.Success {
		t.Fatalf("create: status %d, envelope %+v", resp.StatusCode, env)
	}
	var created registry.Employee
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created employee: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("created employee missing identity: %+v", created)
	}

	resp, env = doJSON(t, http.MethodGet, base+"/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get after create: status %d", resp.StatusCode)
	}

	resp, env = doJSON(t, http.MethodPut, base+"/"+created.ID, map[string]any{"status": "Absent"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: status %d", resp.StatusCode)
	}
	var updated registry.Employee
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode updated employee: %v", err)
	}
	if updated.Status != "Absent" {
		t.Errorf("status = %q after patch", updated.Status)
	}
	if updated.Name != "Test Engineer" {
		t.Errorf("patch touched unrelated field: name = %q", updated.Name)
	}

	resp, env = doJSON(t, http.MethodDelete, base+"/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("delete: status %d", resp.StatusCode)
	}
	var deleted map[string]bool
	if err := json.Unmarshal(env.Data, &deleted); err != nil {
		t.Fatalf("decode delete response: %v", err)
	}
	if !deleted["deleted"] {
		t.Error("delete reported false for existing record")
	}

	resp, env = doJSON(t, http.MethodGet, base+"/"+created.ID, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "employee_not_found" {
		t.Errorf("error envelope = %+v", env.Error)
	}

	resp, env = doJSON(t, http.MethodDelete, base+"/"+created.ID, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("second delete: status %d", resp.StatusCode)
	}
	if err := json.Unmarshal(env.Data, &deleted); err != nil {
		t.Fatalf("decode second delete: %v", err)
	}
	if deleted["deleted"] {
		t.Error("second delete reported true")
	}
}

func TestCreateEmployeeValidation(t *testing.T) {
	_, ts := newTestServer(t)

	resp, env := doJSON(t, http.MethodPost, ts.URL+"/api/v1/employees", map[string]any{
		"name":   "Missing Fields",
		"status": "present", // wrong case
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "validation_error" {
		t.Fatalf("error envelope = %+v", env.Error)
	}
	fields, ok := env.Error.Details["fields"].([]any)
	if !ok || len(fields) == 0 {
		t.Fatalf("expected field issues in details, got %+v", env.Error.Details)
	}
}

func TestMalformedPayloadRejected(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/v1/projects", "application/json", strings.NewReader("{not json"))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDashboardStatsMatchStore(t *testing.T) {
	app, ts := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/api/v1/dashboard/stats", nil)
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("stats: status %d", resp.StatusCode)
	}
	var dashboard stats.Dashboard
	if err := json.Unmarshal(env.Data, &dashboard); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}

	want := stats.Compute(
		app.Store.ListEmployees(),
		app.Store.ListProjects(),
		app.Store.ListFiles(),
		app.Store.ListVendors(),
		app.Store.ListAlerts(),
	)
	if dashboard != want {
		t.Errorf("dashboard = %+v, want %+v", dashboard, want)
	}
	if dashboard.Employees.Total != 50 || dashboard.Files.Total != 30 {
		t.Errorf("unexpected seeded totals: %+v", dashboard)
	}
}

func TestDashboardCharts(t *testing.T) {
	_, ts := newTestServer(t)

	resp, env := doJSON(t, http.MethodGet, ts.URL+"/api/v1/dashboard/charts", nil)
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("charts: status %d", resp.StatusCode)
	}
	var payload struct {
		FileAging           []stats.AgingBucket `json:"fileAging"`
		VendorsExpiringSoon []registry.Vendor   `json:"vendorsExpiringSoon"`
		RecentProjects      []registry.Project  `json:"recentProjects"`
		EmployeesByShift    map[string]int      `json:"employeesByShift"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode charts: %v", err)
	}

	if len(payload.FileAging) != 4 {
		t.Errorf("expected 4 aging buckets, got %d", len(payload.FileAging))
	}
	total := 0
	for _, bucket := range payload.FileAging {
		total += bucket.Count
	}
	if total != 30 {
		t.Errorf("aging buckets cover %d files, want 30", total)
	}
	if len(payload.RecentProjects) != 5 {
		t.Errorf("recent projects = %d, want 5", len(payload.RecentProjects))
	}
	if len(payload.VendorsExpiringSoon) == 0 {
		t.Error("expected VEN001 among expiring vendors")
	}
	shiftTotal := 0
	for _, count := range payload.EmployeesByShift {
		shiftTotal += count
	}
	if shiftTotal != 50 {
		t.Errorf("shift counts cover %d employees, want 50", shiftTotal)
	}
}

func TestLogin(t *testing.T) {
	_, ts := newTestServer(t)
	url := ts.URL + "/api/v1/auth/login"

	resp, env := doJSON(t, http.MethodPost, url, map[string]string{
		"username": "admin", "password": "letmein",
	})
	if resp.StatusCode != http.StatusOK || !env.Success {
		t.Fatalf("login: status %d, envelope %+v", resp.StatusCode, env)
	}
	var payload struct {
		Token string `json:"token"`
		User  struct {
			ID       string `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if payload.Token == "" || payload.User.Username != "admin" {
		t.Errorf("login payload = %+v", payload)
	}

	resp, env = doJSON(t, http.MethodPost, url, map[string]string{
		"username": "admin", "password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("bad password: status %d, want 401", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "invalid_credentials" {
		t.Errorf("bad password envelope = %+v", env.Error)
	}
}

func TestSummaryReportPDF(t *testing.T) {
	_, ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/api/v1/reports/summary.pdf")
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("report status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("content type = %q", ct)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Error("report body is not a PDF document")
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t)

	// Generate at least one observed request first.
	if _, err := http.Get(ts.URL + "/healthz"); err != nil {
		t.Fatalf("healthz: %v", err)
	}

	resp, err := http.Get(ts.URL + "/metrics")
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("metrics status = %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(body), "http_requests_total") {
		t.Error("expected http_requests_total in metrics exposition")
	}
}

func TestDeterministicSeedAcrossInstances(t *testing.T) {
	first, err := New(testConfig())
	if err != nil {
		t.Fatalf("first instance: %v", err)
	}
	second, err := New(testConfig())
	if err != nil {
		t.Fatalf("second instance: %v", err)
	}

	a := first.Store.ListEmployees()
	b := second.Store.ListEmployees()
	if len(a) != len(b) {
		t.Fatalf("employee counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].EmployeeID != b[i].EmployeeID || a[i].Status != b[i].Status {
			t.Errorf("employee %d differs: %s/%s vs %s/%s",
				i, a[i].EmployeeID, a[i].Status, b[i].EmployeeID, b[i].Status)
		}
	}
}

func TestRequestIDEchoedInEnvelope(t *testing.T) {
	_, ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/v1/employees", nil)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("X-Request-ID", "trace-42")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.RequestID != "trace-42" {
		t.Errorf("envelope requestId = %q, want trace-42", env.RequestID)
	}
}

func TestUnknownEntityRoutes(t *testing.T) {
	_, ts := newTestServer(t)

	for _, path := range []string{
		"/api/v1/projects/does-not-exist",
		"/api/v1/vendors/does-not-exist",
		"/api/v1/alerts/does-not-exist",
	} {
		resp, env := doJSON(t, http.MethodGet, ts.URL+path, nil)
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: status %d, want 404", path, resp.StatusCode)
		}
		if env.Error == nil || !strings.HasSuffix(env.Error.Code, "_not_found") {
			t.Errorf("%s: error envelope %+v", path, env.Error)
		}
	}
}

func TestBodyLimitRejectsOversizedPayload(t *testing.T) {
	cfg := testConfig()
	cfg.MaxBodyBytes = 2048
	app, err := New(cfg)
	if err != nil {
		t.Fatalf("server setup failed: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	defer ts.Close()

	oversized := fmt.Sprintf(`{"name":%q}`, strings.Repeat("x", 4096))
	resp, err := http.Post(ts.URL+"/api/v1/projects", "application/json", strings.NewReader(oversized))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for oversized body", resp.StatusCode)
	}
}
