package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"product_slider_app_go/config"
	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = testDB.AutoMigrate(&models.Option{}, &models.Product{}, &models.User{}, &models.Session{})
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := testDB.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return testDB
}

type testEnv struct {
	db         *gorm.DB
	handler    *Handler
	catalog    *services.Catalog
	categories *services.CategoryStore
	settings   *services.SettingsService
	auth       *services.AuthService
	archiveDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	testDB := setupTestDB(t)
	log := zap.NewNop()
	cfg := &config.Config{Environment: "test"}

	options := services.NewOptionStore(testDB)
	catalog := services.NewCatalog(testDB)
	categories := services.NewCategoryStore(options, catalog, log)
	settings := services.NewSettingsService(options)
	auth := services.NewAuthService(testDB, log)
	archiveDir := t.TempDir()

	h := New(Deps{
		Config:     cfg,
		Log:        log,
		Catalog:    catalog,
		Categories: categories,
		Settings:   settings,
		Slider:     services.NewSliderService(categories, catalog, settings, log),
		Auth:       auth,
		Storage:    services.NewLocalStorage(archiveDir),
	})

	return &testEnv{
		db:         testDB,
		handler:    h,
		catalog:    catalog,
		categories: categories,
		settings:   settings,
		auth:       auth,
		archiveDir: archiveDir,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", &config.Config{
		Environment: "test",
	})

	return e, c, rec
}

// formContext builds a form post made by a logged in store manager
func formContext(path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(http.MethodPost, path, strings.NewReader(form.Encode()))
	c.Request().Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	c.Set(middleware.ContextKeyUser, testUser())
	c.Set(middleware.CSRFContextKey, "test-csrf")
	return c, rec
}

func getContext(path string) (echo.Context, *httptest.ResponseRecorder) {
	_, c, rec := setupEcho(http.MethodGet, path, nil)
	c.Set(middleware.ContextKeyUser, testUser())
	c.Set(middleware.CSRFContextKey, "test-csrf")
	return c, rec
}

func testUser() *models.User {
	return &models.User{ID: "user-1", Name: "Store Admin", Role: models.RoleAdministrator, IsActive: true}
}

type ajaxBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func decodeAjax(t *testing.T, rec *httptest.ResponseRecorder) ajaxBody {
	t.Helper()
	var body ajaxBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func decodeMessage(t *testing.T, body ajaxBody) ajaxMessage {
	t.Helper()
	var msg ajaxMessage
	require.NoError(t, json.Unmarshal(body.Data, &msg))
	return msg
}

func (env *testEnv) seedProducts(t *testing.T, count int) {
	t.Helper()
	now := time.Now()
	products := make([]models.Product, 0, count)
	for i := 1; i <= count; i++ {
		products = append(products, models.Product{
			ID:           i,
			Name:         fmt.Sprintf("Product %03d", i),
			SKU:          fmt.Sprintf("SKU-%03d", i),
			RegularPrice: decimal.NewFromInt(int64(10 + i)),
			Permalink:    fmt.Sprintf("/product/product-%03d", i),
			Status:       models.ProductStatusPublish,
			CreatedAt:    now.Add(-time.Duration(i) * time.Hour),
		})
	}
	require.NoError(t, env.db.Create(&products).Error)
}

func (env *testEnv) saveCategory(t *testing.T, c models.CustomCategory) {
	t.Helper()
	_, err := env.categories.Save(context.Background(), c)
	require.NoError(t, err)
}
