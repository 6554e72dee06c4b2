package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"clocking/config"
	"clocking/metrics"
	"clocking/middleware"
	"clocking/models"
	"clocking/planner"
	"clocking/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type testApp struct {
	t      *testing.T
	store  *store.Store
	router http.Handler
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	logger := zaptest.NewLogger(t)
	cfg := &config.Config{
		JWTSecret:      "test-secret",
		JWTExpiration:  time.Hour,
		MetricsEnabled: true,
		MetricsPath:    "/metrics",
	}
	middleware.SetJWTSecret(cfg.JWTSecret)

	s, err := store.New(context.Background(), nil, logger)
	require.NoError(t, err)
	return &testApp{t: t, store: s, router: newRouter(cfg, s, metrics.New(), logger)}
}

func (a *testApp) do(method, path, token string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) login(name string) string {
	a.t.Helper()
	rec := a.do(http.MethodPost, "/api/login", "", map[string]string{"name": name})
	require.Equal(a.t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(a.t, resp.Token)
	return resp.Token
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func logBody(date string, hours float64) map[string]any {
	return map[string]any{
		"date":         date,
		"demandType":   models.DemandProject,
		"projectId":    "p-14",
		"phase":        models.PhasePE,
		"activityType": "Elaboração",
		"hours":        hours,
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)

	rec := app.do(http.MethodPost, "/api/login", "", map[string]string{"name": "Ninguém"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, store.ErrUserNotFound.Error(), errorOf(t, rec))

	rec = app.do(http.MethodPost, "/api/login", "", map[string]string{"name": " raphael "})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Set-Cookie"), middleware.TokenCookie+"=")

	var resp struct {
		Session store.Session `json:"session"`
		Token   string        `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "u-1", resp.Session.User.ID)
	assert.Equal(t, store.TabMyDay, resp.Session.Tab)

	rec = app.do(http.MethodGet, "/api/me", resp.Token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var me models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
	assert.Equal(t, "Raphael", me.Name)

	rec = app.do(http.MethodPost, "/api/logout", resp.Token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, signedIn := app.store.Session()
	assert.False(t, signedIn)
}

func TestRoleGating(t *testing.T) {
	app := newTestApp(t)
	collaborator := app.login("Raphael")
	coordinator := app.login("Alexandre Meneghel")
	director := app.login("Guilherme Rodrigues")

	cases := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"anonymous", http.MethodGet, "/api/me", "", http.StatusUnauthorized},
		{"collaborator logs", http.MethodGet, "/api/logs", collaborator, http.StatusOK},
		{"coordinator logs", http.MethodGet, "/api/logs", coordinator, http.StatusOK},
		{"director logs", http.MethodGet, "/api/logs", director, http.StatusForbidden},
		{"collaborator users", http.MethodGet, "/api/users", collaborator, http.StatusForbidden},
		{"collaborator planner", http.MethodGet, "/api/planner", collaborator, http.StatusForbidden},
		{"coordinator planner", http.MethodGet, "/api/planner", coordinator, http.StatusOK},
		{"director reports", http.MethodGet, "/api/reports/summary", director, http.StatusOK},
		{"collaborator projects", http.MethodGet, "/api/projects", collaborator, http.StatusOK},
		{"collaborator creates project", http.MethodPost, "/api/projects", collaborator, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := app.do(tc.method, tc.path, tc.token, nil)
			assert.Equal(t, tc.want, rec.Code, rec.Body.String())
		})
	}
}

func TestTimeLogFlow(t *testing.T) {
	app := newTestApp(t)
	token := app.login("Raphael")

	rec := app.do(http.MethodPost, "/api/logs", token, logBody("2025-03-03", 20))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created struct {
		models.TimeLog
		LongShift bool `json:"longShift"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Metrô BH", created.ProjectName)
	assert.True(t, created.LongShift)

	rec = app.do(http.MethodPost, "/api/logs", token, logBody("2025-03-03", 4.25))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.ErrDailyCapExceeded.Error(), errorOf(t, rec))

	rec = app.do(http.MethodPost, "/api/logs", token, logBody("2025-03-04", 0.3))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, models.ErrHoursStep.Error(), errorOf(t, rec))

	rec = app.do(http.MethodGet, "/api/logs?date=2025-03-03", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var day struct {
		Total float64          `json:"total"`
		Logs  []models.TimeLog `json:"logs"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &day))
	assert.Equal(t, 20.0, day.Total)
	assert.Len(t, day.Logs, 1)

	rec = app.do(http.MethodPut, "/api/logs/"+created.ID, token, map[string]any{"hours": 8})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	colleague := app.login("Abner Orra")
	rec = app.do(http.MethodDelete, "/api/logs/"+created.ID, colleague, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	coordinator := app.login("Alexandre Meneghel")
	rec = app.do(http.MethodDelete, "/api/logs/"+created.ID, coordinator, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = app.do(http.MethodDelete, "/api/logs/"+created.ID, coordinator, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMoveAllocation(t *testing.T) {
	app := newTestApp(t)
	token := app.login("Alexandre Meneghel")

	rec := app.do(http.MethodPut, "/api/allocations/a1/move", token, map[string]string{
		"userId":    "u-9",
		"startDate": "2025-02-01",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(http.MethodGet, "/api/planner/load?user=u-9&date=2025-02-02", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var load struct {
		Load     planner.DailyLoad `json:"load"`
		Capacity planner.Capacity  `json:"capacity"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &load))
	assert.Equal(t, 8.0, load.Load.Planned)
	assert.Equal(t, planner.CapacityNominal, load.Capacity)

	rec = app.do(http.MethodPut, "/api/allocations/missing/move", token, map[string]string{
		"userId":    "u-9",
		"startDate": "2025-02-01",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlannerGrid(t *testing.T) {
	app := newTestApp(t)
	token := app.login("Guilherme Rodrigues")

	rec := app.do(http.MethodGet, "/api/planner?mode=week&start=2025-01-06", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var grid planner.Grid
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &grid))
	assert.Len(t, grid.Days, 7)
	assert.Len(t, grid.Rows, 25, "the Admin account is not planned")

	rec = app.do(http.MethodGet, "/api/planner?mode=year", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessionUpdate(t *testing.T) {
	app := newTestApp(t)
	token := app.login("Alexandre Meneghel")

	rec := app.do(http.MethodPut, "/api/session", token, map[string]any{
		"tab":   store.TabPlanning,
		"mode":  "week",
		"start": "2025-01-06",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = app.do(http.MethodPut, "/api/session", token, map[string]any{"navigate": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	var sess store.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sess))
	assert.Equal(t, store.TabPlanning, sess.Tab)
	assert.Equal(t, models.NewDate(2025, 1, 13), sess.Window.Start)

	collaborator := app.login("Raphael")
	rec = app.do(http.MethodPut, "/api/session", collaborator, map[string]any{"tab": store.TabReports})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRosterImport(t *testing.T) {
	app := newTestApp(t)
	token := app.login("Alexandre Meneghel")

	rec := app.do(http.MethodPost, "/api/users/import", token, map[string]string{"names": "Alice\n\nBob \n"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var added []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &added))
	require.Len(t, added, 2)
	assert.Equal(t, "Bob", added[1].Name)

	rec = app.do(http.MethodPost, "/api/users", token, map[string]string{"name": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = app.do(http.MethodPost, "/api/users/"+added[0].ID+"/toggle", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var toggled models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &toggled))
	assert.False(t, toggled.Active)
}

func TestExportCSV(t *testing.T) {
	app := newTestApp(t)
	collaborator := app.login("Raphael")
	body := logBody("2025-03-03", 2)
	body["observation"] = "visita, campo"
	rec := app.do(http.MethodPost, "/api/logs", collaborator, body)
	require.Equal(t, http.StatusCreated, rec.Code)

	director := app.login("Guilherme Rodrigues")
	rec = app.do(http.MethodGet, "/api/reports/export.csv", director, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "consolidado_geee_")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Raphael,2025-03-03,Projeto,Metrô BH,PE,Elaboração,2,visita; campo", lines[1])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.do(http.MethodPost, "/api/login", "", map[string]string{"name": "Raphael"})

	rec := app.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `clocking_http_requests_total{method="POST",route="/api/login",status="200"} 1`)
}
