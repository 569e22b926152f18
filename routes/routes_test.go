package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/gtnglobal/gtn-backend/config"
	"github.com/gtnglobal/gtn-backend/database"
	"github.com/gtnglobal/gtn-backend/internal/session"
	"github.com/gtnglobal/gtn-backend/routes"
)

func newServer(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		AdminUser:     "admin",
		AdminPass:     "admin@123",
		SessionSecret: "test-secret",
		CookieSecure:  false,
		UploadDir:     t.TempDir(),
	}

	r := gin.New()
	routes.Setup(r, cfg, db)
	return r, cfg
}

func do(r *gin.Engine, method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) *http.Cookie {
	t.Helper()
	w := do(r, http.MethodPost, "/api/login", `{"username":"admin","password":"admin@123"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	t.Fatal("login did not set the session cookie")
	return nil
}

func TestHealth(t *testing.T) {
	r, _ := newServer(t)

	w := do(r, http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGuardedEndpointsRequireSession(t *testing.T) {
	r, _ := newServer(t)

	cases := []struct {
		method, path string
	}{
		{http.MethodPost, "/api/projects"},
		{http.MethodDelete, "/api/projects"},
		{http.MethodPost, "/api/events"},
		{http.MethodPost, "/api/news"},
		{http.MethodPost, "/api/blogs"},
		{http.MethodDelete, "/api/join"},
		{http.MethodGet, "/api/join"},
		{http.MethodPost, "/api/upload"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := do(r, tc.method, tc.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Contains(t, w.Body.String(), "Unauthorized")
		})
	}
}

func TestPublicEndpoints(t *testing.T) {
	r, _ := newServer(t)

	for _, path := range []string{"/api/projects", "/api/events", "/api/news", "/api/blogs"} {
		w := do(r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()), path)
	}

	// Join requests are submitted without a session.
	w := do(r, http.MethodPost, "/api/join", `{"full_name":"Ada Lovelace"}`, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func TestAdminLifecycleOverRoutes(t *testing.T) {
	r, _ := newServer(t)
	cookie := login(t, r)

	w := do(r, http.MethodPost, "/api/projects", `{"name":"  Acme  "}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"name":"Acme"`)

	w = do(r, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)

	w = do(r, http.MethodDelete, "/api/projects?id=1", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodDelete, "/api/projects?id=1", "", cookie)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteWithFormBody(t *testing.T) {
	r, _ := newServer(t)
	cookie := login(t, r)

	w := do(r, http.MethodPost, "/api/projects", `{"name":"First"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = do(r, http.MethodPost, "/api/projects", `{"name":"Second"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Legacy clients delete with a form-encoded body; when a query id is
	// also present the body takes precedence.
	req := httptest.NewRequest(http.MethodDelete, "/api/projects.php?id=999", strings.NewReader("id=1"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	w = do(r, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"name":"First"`)
	assert.Contains(t, w.Body.String(), `"name":"Second"`)
}

func TestEventDateRoundTrip(t *testing.T) {
	r, _ := newServer(t)
	cookie := login(t, r)

	w := do(r, http.MethodPost, "/api/events", `{"name":"Summit","event_date":"2024-03-01"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"event_date":"2024-03-01"`)

	w = do(r, http.MethodGet, "/api/events", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"event_date":"2024-03-01"`)
}

func TestJoinRequestListRequiresAdmin(t *testing.T) {
	r, _ := newServer(t)

	w := do(r, http.MethodPost, "/api/join", `{"full_name":"Ada Lovelace"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/join", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := login(t, r)
	w = do(r, http.MethodGet, "/api/join", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada Lovelace")
}

func TestLegacyAliasesResolveIdentically(t *testing.T) {
	r, _ := newServer(t)
	cookie := login(t, r)

	// Same handler behind both spellings.
	w := do(r, http.MethodPost, "/api/projects.php", `{"name":"Legacy"}`, cookie)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/api/projects", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Legacy")

	w = do(r, http.MethodGet, "/api/session.php", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)

	w = do(r, http.MethodGet, "/api/health.php", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSessionFlow(t *testing.T) {
	r, _ := newServer(t)

	w := do(r, http.MethodGet, "/api/session", "", nil)
	assert.Contains(t, w.Body.String(), `"authenticated":false`)

	cookie := login(t, r)
	w = do(r, http.MethodGet, "/api/session", "", cookie)
	assert.Contains(t, w.Body.String(), `"authenticated":true`)

	w = do(r, http.MethodPost, "/api/logout", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	// A forged cookie never authenticates.
	w = do(r, http.MethodGet, "/api/session", "", &http.Cookie{
		Name:  session.CookieName,
		Value: "admin|1700000000|deadbeef",
	})
	assert.Contains(t, w.Body.String(), `"authenticated":false`)
}
