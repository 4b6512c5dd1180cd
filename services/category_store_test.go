package services

import (
	"context"
	"testing"
	"time"

	"product_slider_app_go/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categoryIDs(categories []models.CustomCategory) []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	return ids
}

func saveAll(t *testing.T, store *CategoryStore, categories ...models.CustomCategory) {
	t.Helper()
	for _, c := range categories {
		_, err := store.Save(context.Background(), c)
		require.NoError(t, err)
	}
}

func TestCategoryStoreSaveAndGet(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()

	input := models.CustomCategory{
		Name:        "  <b>Summer</b>   Deals ",
		Description: "Hot <em>picks</em>\nfor July",
		ColorScheme: "green",
		Icon:        "<span>☀️</span>",
		Order:       2,
		Products:    []int{5, -1, 0, 7, 5},
		Visibility:  true,
	}

	saved, err := svc.categories.Save(ctx, input)
	require.NoError(t, err)

	want := models.CustomCategory{
		ID:          "summer-deals",
		Name:        "Summer Deals",
		Description: "Hot picks\nfor July",
		ColorScheme: "green",
		Icon:        "☀️",
		Order:       2,
		Products:    []int{5, 7, 5},
		Visibility:  true,
	}
	if diff := cmp.Diff(want, saved); diff != "" {
		t.Errorf("Save() mismatch (-want +got):\n%s", diff)
	}

	got, err := svc.categories.Get(ctx, "summer-deals")
	require.NoError(t, err)
	if diff := cmp.Diff(want, *got); diff != "" {
		t.Errorf("Get() mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryStoreSaveReplacesInPlace(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories,
		models.CustomCategory{ID: "a", Name: "A", ColorScheme: "pink", Order: 1},
		models.CustomCategory{ID: "b", Name: "B", ColorScheme: "pink", Order: 1},
	)

	_, err := svc.categories.Save(ctx, models.CustomCategory{ID: "a", Name: "A renamed", ColorScheme: "blue", Order: 1})
	require.NoError(t, err)

	all, err := svc.categories.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, categoryIDs(all))
	assert.Equal(t, "A renamed", all[0].Name)
}

func TestCategoryStoreListSortsStably(t *testing.T) {
	svc := newTestServices(t)
	saveAll(t, svc.categories,
		models.CustomCategory{ID: "late", Name: "Late", ColorScheme: "pink", Order: 3},
		models.CustomCategory{ID: "unordered", Name: "Unordered", ColorScheme: "pink"},
		models.CustomCategory{ID: "first-tie", Name: "First tie", ColorScheme: "pink", Order: 1},
		models.CustomCategory{ID: "second-tie", Name: "Second tie", ColorScheme: "pink", Order: 1},
	)

	all, err := svc.categories.List(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, []string{"first-tie", "second-tie", "late", "unordered"}, categoryIDs(all))

	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, sortPosition(all[i-1]), sortPosition(all[i]))
	}
}

func TestCategoryStoreListVisibleOnly(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories,
		models.CustomCategory{ID: "shown", Name: "Shown", ColorScheme: "pink", Order: 2, Visibility: true},
		models.CustomCategory{ID: "hidden", Name: "Hidden", ColorScheme: "pink", Order: 1},
		models.CustomCategory{ID: "also-shown", Name: "Also shown", ColorScheme: "pink", Order: 1, Visibility: true},
	)

	all, err := svc.categories.List(ctx, false)
	require.NoError(t, err)
	visible, err := svc.categories.List(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"also-shown", "shown"}, categoryIDs(visible))
	assert.Subset(t, categoryIDs(all), categoryIDs(visible))
	for _, c := range visible {
		assert.True(t, c.Visibility)
	}
}

func TestCategoryStoreListEmpty(t *testing.T) {
	svc := newTestServices(t)
	all, err := svc.categories.List(context.Background(), false)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestCategoryStoreDelete(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories,
		models.CustomCategory{ID: "a", Name: "A", ColorScheme: "pink", Order: 1},
		models.CustomCategory{ID: "b", Name: "B", ColorScheme: "pink", Order: 4},
		models.CustomCategory{ID: "c", Name: "C", ColorScheme: "pink", Order: 9},
	)

	require.NoError(t, svc.categories.Delete(ctx, "b"))

	_, err := svc.categories.Get(ctx, "b")
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	all, err := svc.categories.List(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, 9, all[1].Order)

	assert.ErrorIs(t, svc.categories.Delete(ctx, "b"), ErrCategoryNotFound)
}

func TestCategoryStoreReorder(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories,
		models.CustomCategory{ID: "a", Name: "A", ColorScheme: "pink", Order: 1},
		models.CustomCategory{ID: "z", Name: "Z", ColorScheme: "pink", Order: 2},
	)

	err := svc.categories.Reorder(ctx, []models.OrderAssignment{
		{ID: "a", Order: 5},
		{ID: "z", Order: 1},
		{ID: "ghost", Order: 3},
	})
	require.NoError(t, err)

	all, err := svc.categories.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"z", "a"}, categoryIDs(all))
}

func TestCategoryStoreBulkAction(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories,
		models.CustomCategory{ID: "bestsellers", Name: "Best Sellers", ColorScheme: "pink", Order: 1, Products: []int{10, 11}},
		models.CustomCategory{ID: "new-arrivals", Name: "New Arrivals", ColorScheme: "blue", Order: 2},
	)

	affected, err := svc.categories.BulkAction(ctx, models.BulkActionEnable, []string{"bestsellers", "new-arrivals"})
	require.NoError(t, err)
	assert.Equal(t, 2, affected)

	visible, err := svc.categories.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"bestsellers", "new-arrivals"}, categoryIDs(visible))

	affected, err = svc.categories.BulkAction(ctx, models.BulkActionDisable, []string{"new-arrivals", "missing"})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	visible, err = svc.categories.List(ctx, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"bestsellers"}, categoryIDs(visible))

	affected, err = svc.categories.BulkAction(ctx, models.BulkActionDelete, []string{"bestsellers"})
	require.NoError(t, err)
	assert.Equal(t, 1, affected)

	all, err := svc.categories.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"new-arrivals"}, categoryIDs(all))

	_, err = svc.categories.BulkAction(ctx, "archive", []string{"new-arrivals"})
	assert.ErrorIs(t, err, ErrInvalidBulkAction)
}

func TestCategoryStoreSetVisibility(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories, models.CustomCategory{ID: "a", Name: "A", ColorScheme: "pink", Order: 1})

	require.NoError(t, svc.categories.SetVisibility(ctx, "a", true))
	got, err := svc.categories.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, got.Visibility)

	assert.ErrorIs(t, svc.categories.SetVisibility(ctx, "nope", true), ErrCategoryNotFound)
}

func TestCategoryStoreValidate(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories, models.CustomCategory{ID: "taken", Name: "Taken", ColorScheme: "pink", Order: 1})

	tests := []struct {
		name     string
		category models.CustomCategory
		editing  bool
		errors   []string
	}{
		{
			name:     "valid new category",
			category: models.CustomCategory{Name: "Fresh", ColorScheme: "blue", Order: 1},
		},
		{
			name:     "empty name",
			category: models.CustomCategory{ID: "x", Name: "  ", ColorScheme: "blue", Order: 1},
			errors:   []string{"Category name is required."},
		},
		{
			name:     "no name and no id",
			category: models.CustomCategory{ColorScheme: "blue", Order: 1},
			errors:   []string{"Category name is required.", "Category ID is required."},
		},
		{
			name:     "unknown color scheme",
			category: models.CustomCategory{Name: "Odd", ColorScheme: "teal", Order: 1},
			errors:   []string{"Invalid color scheme selected."},
		},
		{
			name:     "zero order",
			category: models.CustomCategory{Name: "Odd", ColorScheme: "pink"},
			errors:   []string{"Order must be a positive number."},
		},
		{
			name:     "duplicate id on create",
			category: models.CustomCategory{ID: "taken", Name: "Other", ColorScheme: "pink", Order: 1},
			errors:   []string{"A category with this ID already exists."},
		},
		{
			name:     "same id when editing",
			category: models.CustomCategory{ID: "taken", Name: "Taken again", ColorScheme: "pink", Order: 1},
			editing:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.categories.Validate(ctx, tt.category, tt.editing)
			require.NoError(t, err)
			assert.Equal(t, len(tt.errors) == 0, result.Valid)
			assert.ElementsMatch(t, tt.errors, result.Errors)
		})
	}
}

func TestCategoryStoreProductsByCategory(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	seedProducts(t, svc.db, 5, time.Now())
	require.NoError(t, svc.db.Model(&models.Product{}).Where("id = ?", 3).Update("status", models.ProductStatusDraft).Error)

	saveAll(t, svc.categories, models.CustomCategory{
		ID: "picks", Name: "Picks", ColorScheme: "purple", Order: 1,
		Products: []int{4, 99, 3, 1, 2},
	})

	products, err := svc.categories.ProductsByCategory(ctx, "picks", 0)
	require.NoError(t, err)
	ids := make([]int, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}
	assert.Equal(t, []int{4, 1, 2}, ids)

	limited, err := svc.categories.ProductsByCategory(ctx, "picks", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	_, err = svc.categories.ProductsByCategory(ctx, "unknown", 0)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestSanitizeCategoryGeneratesID(t *testing.T) {
	clean := SanitizeCategory(models.CustomCategory{Name: "Új Termékek"})
	assert.Equal(t, "uj-termekek", clean.ID)
	assert.NotNil(t, clean.Products)
}
