package services

import (
	"fmt"
	"testing"
	"time"

	"product_slider_app_go/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory database with every model migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique shared memory name isolates tests while every pooled connection sees the same data
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

type testServices struct {
	db         *gorm.DB
	options    *OptionStore
	catalog    *Catalog
	categories *CategoryStore
	settings   *SettingsService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	testDB := setupTestDB(t)
	options := NewOptionStore(testDB)
	catalog := NewCatalog(testDB)
	return &testServices{
		db:         testDB,
		options:    options,
		catalog:    catalog,
		categories: NewCategoryStore(options, catalog, zap.NewNop()),
		settings:   NewSettingsService(options),
	}
}

// seedProducts inserts count published products with ids 1..count.
// Product n is n hours old, so id 1 is the most recent.
func seedProducts(t *testing.T, testDB *gorm.DB, count int, now time.Time) []models.Product {
	t.Helper()
	products := make([]models.Product, 0, count)
	for i := 1; i <= count; i++ {
		products = append(products, models.Product{
			ID:           i,
			Name:         fmt.Sprintf("Product %03d", i),
			SKU:          fmt.Sprintf("SKU-%03d", i),
			Slug:         fmt.Sprintf("product-%03d", i),
			RegularPrice: decimal.NewFromInt(int64(10 + i)),
			Status:       models.ProductStatusPublish,
			CreatedAt:    now.Add(-time.Duration(i) * time.Hour),
		})
	}
	require.NoError(t, testDB.Create(&products).Error)
	return products
}
