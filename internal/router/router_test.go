package router

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"record-tracker/internal/config"
	"record-tracker/internal/database"
	"record-tracker/internal/export"
	"record-tracker/internal/models"
)

func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedDefaultAdmin(db))

	cfg := &config.Config{
		SessionSecret: "test-session-secret",
		TemplatesGlob: "../../web/templates/*.html",
		StaticDir:     "../../web/static",
	}
	return New(cfg, db), db
}

func do(engine *gin.Engine, method, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	var body *strings.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func register(t *testing.T, engine *gin.Engine, name, email, password string) {
	rec := do(engine, http.MethodPost, "/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/login", rec.Header().Get("Location"))
}

func login(t *testing.T, engine *gin.Engine, email, password string) []*http.Cookie {
	rec := do(engine, http.MethodPost, "/login", url.Values{
		"email":    {email},
		"password": {password},
	}, nil)
	require.Equal(t, http.StatusFound, rec.Code)
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies, "login must establish a session cookie")
	return cookies
}

func TestRootRedirectsByRole(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := do(engine, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	register(t, engine, "Alice", "alice@test.com", "pw123456")
	userCookies := login(t, engine, "alice@test.com", "pw123456")
	rec = do(engine, http.MethodGet, "/", nil, userCookies)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	adminCookies := login(t, engine, database.DefaultAdminEmail, database.DefaultAdminPassword)
	rec = do(engine, http.MethodGet, "/", nil, adminCookies)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestRegisterValidation(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := do(engine, http.MethodPost, "/register", url.Values{
		"name":  {"Alice"},
		"email": {"alice@test.com"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), models.MsgAllFieldsRequired)

	register(t, engine, "Alice", "alice@test.com", "pw123456")
	rec = do(engine, http.MethodPost, "/register", url.Values{
		"name":     {"Imposter"},
		"email":    {"ALICE@test.com"},
		"password": {"other"},
	}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), models.MsgEmailTaken)
	// The form keeps what the user typed.
	assert.Contains(t, rec.Body.String(), "Imposter")
}

func TestLoginFailuresAreIdentical(t *testing.T) {
	engine, _ := newTestRouter(t)
	register(t, engine, "Alice", "alice@test.com", "pw123456")

	wrongPassword := do(engine, http.MethodPost, "/login", url.Values{
		"email":    {"alice@test.com"},
		"password": {"wrong"},
	}, nil)
	unknownEmail := do(engine, http.MethodPost, "/login", url.Values{
		"email":    {"nobody@test.com"},
		"password": {"pw123456"},
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
	assert.Contains(t, wrongPassword.Body.String(), models.MsgInvalidCredentials)
}

func TestSubmitInvalidNumbersPersistsNothing(t *testing.T) {
	engine, db := newTestRouter(t)
	register(t, engine, "Alice", "alice@test.com", "pw123456")
	cookies := login(t, engine, "alice@test.com", "pw123456")

	rec := do(engine, http.MethodPost, "/records", url.Values{
		"input_value":  {"abc"},
		"output_value": {"30"},
	}, cookies)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), models.MsgInvalidNumbers)

	var count int64
	require.NoError(t, db.Model(&models.Record{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestGuardsRedirectToLogin(t *testing.T) {
	engine, _ := newTestRouter(t)

	for _, path := range []string{"/dashboard", "/admin", "/admin/export"} {
		rec := do(engine, http.MethodGet, path, nil, nil)
		assert.Equal(t, http.StatusFound, rec.Code, path)
		assert.Equal(t, "/login", rec.Header().Get("Location"), path)
	}
}

func TestNonAdminCannotExport(t *testing.T) {
	engine, _ := newTestRouter(t)
	register(t, engine, "Alice", "alice@test.com", "pw123456")
	cookies := login(t, engine, "alice@test.com", "pw123456")

	rec := do(engine, http.MethodGet, "/admin/export", nil, cookies)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"), "the file must never reach a non-admin")
}

func TestAdminRedirectedAwayFromDashboard(t *testing.T) {
	engine, _ := newTestRouter(t)
	cookies := login(t, engine, database.DefaultAdminEmail, database.DefaultAdminPassword)

	rec := do(engine, http.MethodGet, "/dashboard", nil, cookies)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/admin", rec.Header().Get("Location"))
}

func TestLogoutDestroysSession(t *testing.T) {
	engine, _ := newTestRouter(t)
	register(t, engine, "Alice", "alice@test.com", "pw123456")
	cookies := login(t, engine, "alice@test.com", "pw123456")

	rec := do(engine, http.MethodPost, "/logout", nil, cookies)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// The old cookie no longer maps to a server-side session.
	rec = do(engine, http.MethodGet, "/dashboard", nil, cookies)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSecurityHeadersPresent(t *testing.T) {
	engine, _ := newTestRouter(t)

	rec := do(engine, http.MethodGet, "/login", nil, nil)
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestEndToEndFlow(t *testing.T) {
	engine, _ := newTestRouter(t)

	// Register with mixed-case email, then log in lowercase.
	register(t, engine, "Alice", "Alice@Test.com", "pw123456")
	cookies := login(t, engine, "alice@test.com", "pw123456")

	rec := do(engine, http.MethodPost, "/records", url.Values{
		"input_value":  {"100"},
		"output_value": {"30"},
		"note":         {"x"},
	}, cookies)
	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "/dashboard", rec.Header().Get("Location"))

	rec = do(engine, http.MethodGet, "/dashboard", nil, cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "70")
	assert.Contains(t, body, "x")
	assert.Contains(t, body, "Alice")

	// Admin sees the same row and exports it.
	adminCookies := login(t, engine, database.DefaultAdminEmail, database.DefaultAdminPassword)

	rec = do(engine, http.MethodGet, "/admin", nil, adminCookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice@test.com")

	rec = do(engine, http.MethodGet, "/admin/export", nil, adminCookies)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), export.Filename)

	workbook, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer workbook.Close()

	rows, err := workbook.GetRows(export.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2, "header plus exactly one record")

	row := rows[1]
	assert.Equal(t, "Alice", row[1])
	assert.Equal(t, "alice@test.com", row[2])
	assert.Equal(t, "100", row[3])
	assert.Equal(t, "30", row[4])
	assert.Equal(t, "70", row[5])
	assert.Equal(t, "x", row[6])
	assert.NotEmpty(t, row[7])
}
