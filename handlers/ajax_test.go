package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ajax(t *testing.T, env *testEnv, form url.Values) (ajaxBody, int) {
	t.Helper()
	c, rec := formContext("/admin-ajax", form)
	require.NoError(t, env.handler.AdminAjax(c))
	return decodeAjax(t, rec), rec.Code
}

func TestAdminAjaxUnknownAction(t *testing.T) {
	env := newTestEnv(t)

	body, code := ajax(t, env, url.Values{"action": {"drop_tables"}})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.False(t, body.Success)
	assert.Equal(t, "Unknown action.", decodeMessage(t, body).Message)
}

func TestAjaxSaveCategory(t *testing.T) {
	env := newTestEnv(t)

	t.Run("creates with generated id", func(t *testing.T) {
		body, code := ajax(t, env, url.Values{
			"action":       {ActionSaveCategory},
			"name":         {"Summer <b>Sale</b>"},
			"description":  {"Hot deals"},
			"color_scheme": {"orange"},
			"icon":         {"☀️"},
			"order":        {"4"},
			"products":     {"3, 1, 3, x, -2"},
			"visibility":   {"1"},
		})
		require.Equal(t, http.StatusOK, code)
		require.True(t, body.Success)

		var saved models.CustomCategory
		require.NoError(t, json.Unmarshal(body.Data, &saved))
		assert.Equal(t, "summer-sale", saved.ID)
		assert.Equal(t, "Summer Sale", saved.Name)
		assert.Equal(t, []int{3, 1}, saved.Products)
		assert.True(t, saved.Visibility)

		stored, err := env.categories.Get(context.Background(), "summer-sale")
		require.NoError(t, err)
		assert.Equal(t, saved, *stored)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		body, code := ajax(t, env, url.Values{
			"action":       {ActionSaveCategory},
			"name":         {""},
			"color_scheme": {"teal"},
			"order":        {"abc"},
		})
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.False(t, body.Success)
		msg := decodeMessage(t, body)
		assert.Contains(t, msg.Errors, "Category name is required.")
		assert.Contains(t, msg.Errors, "Invalid color scheme selected.")
		assert.Contains(t, msg.Errors, "Order must be a positive number.")
	})

	t.Run("duplicate id only allowed when editing", func(t *testing.T) {
		form := url.Values{
			"action":       {ActionSaveCategory},
			"id":           {"summer-sale"},
			"name":         {"Summer Sale v2"},
			"color_scheme": {"pink"},
			"order":        {"1"},
		}
		body, code := ajax(t, env, form)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Contains(t, decodeMessage(t, body).Errors, "A category with this ID already exists.")

		form.Set("_editing", "1")
		body, code = ajax(t, env, form)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, body.Success)

		all, err := env.categories.List(context.Background(), false)
		require.NoError(t, err)
		assert.Len(t, all, 1)
		assert.Equal(t, "Summer Sale v2", all[0].Name)
	})
}

func TestAjaxSaveCategoryOrder(t *testing.T) {
	env := newTestEnv(t)
	env.saveCategory(t, models.CustomCategory{ID: "a", Name: "A", ColorScheme: "pink", Order: 1})
	env.saveCategory(t, models.CustomCategory{ID: "z", Name: "Z", ColorScheme: "pink", Order: 2})

	body, code := ajax(t, env, url.Values{
		"action": {ActionSaveCategoryOrder},
		"order":  {`[{"id":"a","order":5},{"id":"z","order":1},{"id":"ghost","order":2}]`},
	})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)

	all, err := env.categories.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "z", all[0].ID)
	assert.Equal(t, "a", all[1].ID)

	_, code = ajax(t, env, url.Values{"action": {ActionSaveCategoryOrder}, "order": {"not json"}})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAjaxDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	env.saveCategory(t, models.CustomCategory{ID: "gone", Name: "Gone", ColorScheme: "pink", Order: 1})

	body, code := ajax(t, env, url.Values{"action": {ActionDeleteCategory}, "category_id": {"gone"}})
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Category deleted.", decodeMessage(t, body).Message)

	_, err := env.categories.Get(context.Background(), "gone")
	assert.ErrorIs(t, err, services.ErrCategoryNotFound)

	_, code = ajax(t, env, url.Values{"action": {ActionDeleteCategory}, "category_id": {"gone"}})
	assert.Equal(t, http.StatusNotFound, code)

	_, code = ajax(t, env, url.Values{"action": {ActionDeleteCategory}})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAjaxSearchProducts(t *testing.T) {
	env := newTestEnv(t)
	env.seedProducts(t, 60)

	body, code := ajax(t, env, url.Values{"action": {ActionSearchProducts}, "search": {""}, "page": {"1"}})
	require.Equal(t, http.StatusOK, code)

	var result services.ProductSearchResult
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Len(t, result.Products, services.DefaultSearchPageSize)
	assert.True(t, result.HasMore)
	assert.Equal(t, int64(60), result.Total)
	assert.Equal(t, 1, result.Products[0].ID)

	body, _ = ajax(t, env, url.Values{"action": {ActionSearchProducts}, "search": {"SKU-05"}, "page": {"1"}})
	require.NoError(t, json.Unmarshal(body.Data, &result))
	assert.Len(t, result.Products, 10)
	assert.False(t, result.HasMore)
}

func TestAjaxBulkCategoryAction(t *testing.T) {
	env := newTestEnv(t)
	env.saveCategory(t, models.CustomCategory{ID: "bestsellers", Name: "Bestsellers", ColorScheme: "pink", Order: 1})
	env.saveCategory(t, models.CustomCategory{ID: "new-arrivals", Name: "New Arrivals", ColorScheme: "blue", Order: 2})

	body, code := ajax(t, env, url.Values{
		"action":         {ActionBulkCategoryAction},
		"bulk_action":    {models.BulkActionEnable},
		"category_ids[]": {"bestsellers", "new-arrivals"},
	})
	require.Equal(t, http.StatusOK, code)
	assert.True(t, body.Success)

	visible, err := env.categories.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, visible, 2)

	_, code = ajax(t, env, url.Values{
		"action":         {ActionBulkCategoryAction},
		"bulk_action":    {"archive"},
		"category_ids[]": {"bestsellers"},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)

	_, code = ajax(t, env, url.Values{"action": {ActionBulkCategoryAction}, "bulk_action": {models.BulkActionDelete}})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
}

func TestAjaxToggleCategoryVisibility(t *testing.T) {
	env := newTestEnv(t)
	env.saveCategory(t, models.CustomCategory{ID: "deals", Name: "Deals", ColorScheme: "green", Order: 1, Visibility: true})

	body, code := ajax(t, env, url.Values{
		"action":      {ActionToggleCategoryVisibility},
		"category_id": {"deals"},
		"visible":     {"0"},
	})
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"visible":false}`, string(body.Data))

	stored, err := env.categories.Get(context.Background(), "deals")
	require.NoError(t, err)
	assert.False(t, stored.Visibility)

	_, code = ajax(t, env, url.Values{
		"action":      {ActionToggleCategoryVisibility},
		"category_id": {"missing"},
		"visible":     {"1"},
	})
	assert.Equal(t, http.StatusNotFound, code)
}
