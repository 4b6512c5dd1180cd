package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	err = testDB.AutoMigrate(&models.User{}, &models.Session{})
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return testDB
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "success")
}

func TestRequireAuth(t *testing.T) {
	auth := services.NewAuthService(setupTestDB(t), zap.NewNop())
	e := echo.New()
	ctx := context.Background()

	user, err := auth.CreateUser(ctx, "Manager", "manager@example.com", "manager-pass", models.RoleShopManager)
	require.NoError(t, err)
	session, err := auth.CreateSession(ctx, user.ID, "127.0.0.1", "test-agent")
	require.NoError(t, err)

	handler := RequireAuth(auth)(okHandler)

	t.Run("ValidSession", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: session.Token})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID, GetCurrentUser(c).ID)
		assert.Equal(t, session.ID, GetCurrentSession(c).ID)
	})

	t.Run("NoCookieRedirects", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, LoginPath, rec.Header().Get("Location"))
	})

	t.Run("InvalidSessionOnAjax", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/admin-ajax", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "bogus"})
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), `"success":false`)
		assert.Contains(t, rec.Header().Get("Set-Cookie"), SessionCookieName+"=;")
	})
}

func TestRequireCapability(t *testing.T) {
	e := echo.New()
	handler := RequireCapability(models.CapabilityManageOptions)(okHandler)

	t.Run("Granted", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/settings", nil), rec)
		c.Set(ContextKeyUser, &models.User{Role: models.RoleAdministrator, IsActive: true})

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("DeniedPage", func(t *testing.T) {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/settings", nil), httptest.NewRecorder())
		c.Set(ContextKeyUser, &models.User{Role: models.RoleShopManager, IsActive: true})

		err := handler(c)
		require.Error(t, err)
		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("DeniedAjax", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/admin-ajax", nil), rec)
		c.Set(ContextKeyUser, &models.User{Role: models.RoleCustomer, IsActive: true})

		require.NoError(t, RequireCapability(models.CapabilityManageStore)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NoUser", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/settings", nil), rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
	})
}

func TestIsAJAX(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
	assert.False(t, IsAJAX(e.NewContext(req, httptest.NewRecorder())))

	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	assert.True(t, IsAJAX(e.NewContext(req, httptest.NewRecorder())))

	req = httptest.NewRequest(http.MethodGet, "/admin/categories", nil)
	req.Header.Set(echo.HeaderAccept, "application/json")
	assert.True(t, IsAJAX(e.NewContext(req, httptest.NewRecorder())))
}
