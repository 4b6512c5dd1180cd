package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"product_slider_app_go/models"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const categorySheetName = "Categories"

var categoryColumns = []string{"ID", "Name", "Description", "Color Scheme", "Icon", "Order", "Products", "Visible"}

// ImportResult contains the summary of the import process
type ImportResult struct {
	TotalProcessed int      `json:"total_processed"`
	SuccessCount   int      `json:"success_count"`
	FailedCount    int      `json:"failed_count"`
	Errors         []string `json:"errors"`
}

// ExportCategoriesXLSX writes categories to a single-sheet workbook
func ExportCategoriesXLSX(categories []models.CustomCategory) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", categorySheetName)

	for i, header := range categoryColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(categorySheetName, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(categorySheetName, "A1", "H1", headerStyle)
	f.SetColWidth(categorySheetName, "A", "H", 20)
	f.SetColWidth(categorySheetName, "C", "C", 50)

	for i, c := range categories {
		row := i + 2
		values := []interface{}{
			c.ID,
			c.Name,
			c.Description,
			c.ColorScheme,
			c.Icon,
			c.Order,
			JoinProductIDs(c.Products),
			visibleLabel(c.Visibility),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(categorySheetName, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf, nil
}

// ParseCategoriesXLSX reads the rows written by ExportCategoriesXLSX.
// Rows that cannot be parsed are reported in the returned errors with their sheet row number.
func ParseCategoriesXLSX(file io.Reader) ([]models.CustomCategory, []string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("invalid excel format: no sheets")
	}
	sheet := sheets[0]
	if idx, _ := f.GetSheetIndex(categorySheetName); idx >= 0 {
		sheet = categorySheetName
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read categories sheet: %w", err)
	}

	var categories []models.CustomCategory
	var problems []string
	for i, row := range rows {
		if i == 0 {
			continue
		} // Header
		if isBlankRow(row) {
			continue
		}

		category, err := categoryFromRow(row)
		if err != nil {
			problems = append(problems, fmt.Sprintf("Row %d: %s", i+1, err.Error()))
			continue
		}
		categories = append(categories, category)
	}
	return categories, problems, nil
}

// Import upserts every category of the workbook. Each row is validated on its own;
// rows with an existing id are treated as edits.
func (s *CategoryStore) Import(ctx context.Context, file io.Reader) (*ImportResult, error) {
	categories, problems, err := ParseCategoriesXLSX(file)
	if err != nil {
		return nil, err
	}

	result, err := SeedCategories(ctx, s, categories)
	if err != nil {
		return nil, err
	}
	result.TotalProcessed += len(problems)
	result.FailedCount += len(problems)
	result.Errors = append(append([]string{}, problems...), result.Errors...)

	s.log.Info("Categories imported",
		zap.Int("processed", result.TotalProcessed),
		zap.Int("success", result.SuccessCount),
		zap.Int("failed", result.FailedCount),
	)
	return result, nil
}

// ParseProductIDs reads a comma separated list of product ids.
// Non-positive or non-numeric entries are dropped and duplicates keep their first position.
func ParseProductIDs(raw string) []int {
	seen := map[int]bool{}
	ids := []int{}
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || id <= 0 || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids
}

// JoinProductIDs is the inverse of ParseProductIDs
func JoinProductIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func categoryFromRow(row []string) (models.CustomCategory, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	order := 0
	if raw := cell(5); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.CustomCategory{}, fmt.Errorf("order %q is not a number", raw)
		}
		order = n
	}

	visible := true
	if raw := cell(7); raw != "" {
		visible = ParseBool(raw)
	}

	return models.CustomCategory{
		ID:          cell(0),
		Name:        cell(1),
		Description: cell(2),
		ColorScheme: strings.ToLower(cell(3)),
		Icon:        cell(4),
		Order:       order,
		Products:    ParseProductIDs(cell(6)),
		Visibility:  visible,
	}, nil
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

func visibleLabel(visible bool) string {
	if visible {
		return "yes"
	}
	return "no"
}

func displayID(c models.CustomCategory) string {
	if c.ID != "" {
		return c.ID
	}
	return "(no id)"
}
