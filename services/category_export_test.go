package services

import (
	"bytes"
	"context"
	"testing"

	"product_slider_app_go/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportThenParseCategories(t *testing.T) {
	categories := []models.CustomCategory{
		{ID: "bestsellers", Name: "Best Sellers", Description: "Top\nsellers", ColorScheme: "pink", Icon: "🔥", Order: 1, Products: []int{3, 1}, Visibility: true},
		{ID: "quiet", Name: "Quiet", ColorScheme: "green", Order: 2, Products: []int{}, Visibility: false},
	}

	buf, err := ExportCategoriesXLSX(categories)
	require.NoError(t, err)

	parsed, problems, err := ParseCategoriesXLSX(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Empty(t, problems)
	if diff := cmp.Diff(categories, parsed); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCategoriesReportsBadRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ID", "Name", "Description", "Color Scheme", "Icon", "Order", "Products", "Visible"})
	f.SetSheetRow("Sheet1", "A2", &[]interface{}{"ok", "OK", "", "blue", "", "1", "1, 2, x, 2", ""})
	f.SetSheetRow("Sheet1", "A3", &[]interface{}{"bad", "Bad", "", "blue", "", "first", "", "yes"})
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	parsed, problems, err := ParseCategoriesXLSX(buf)
	require.NoError(t, err)
	require.Len(t, parsed, 1)
	assert.Equal(t, []int{1, 2}, parsed[0].Products)
	assert.True(t, parsed[0].Visibility)
	assert.Equal(t, []string{`Row 3: order "first" is not a number`}, problems)
}

func TestCategoryStoreImport(t *testing.T) {
	svc := newTestServices(t)
	ctx := context.Background()
	saveAll(t, svc.categories, models.CustomCategory{ID: "existing", Name: "Existing", ColorScheme: "pink", Order: 1})

	buf, err := ExportCategoriesXLSX([]models.CustomCategory{
		{ID: "existing", Name: "Existing renamed", ColorScheme: "blue", Order: 3, Visibility: true},
		{ID: "fresh", Name: "Fresh", ColorScheme: "orange", Order: 2},
		{ID: "broken", Name: "Broken", ColorScheme: "teal", Order: 1},
	})
	require.NoError(t, err)

	result, err := svc.categories.Import(ctx, buf)
	require.NoError(t, err)
	assert.Equal(t, 3, result.TotalProcessed)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailedCount)
	assert.Equal(t, []string{"broken: Invalid color scheme selected."}, result.Errors)

	all, err := svc.categories.List(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh", "existing"}, categoryIDs(all))
	assert.Equal(t, "Existing renamed", all[1].Name)
}

func TestParseProductIDs(t *testing.T) {
	assert.Equal(t, []int{4, 2, 9}, ParseProductIDs(" 4,2, ,abc,-3,0,2,9"))
	assert.Equal(t, []int{}, ParseProductIDs(""))
	assert.Equal(t, "4,2,9", JoinProductIDs([]int{4, 2, 9}))
}
