package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"time"

	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/components"
	"product_slider_app_go/templates/pages"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// notices shown after a redirect back to the category list
var categoryNotices = map[string]string{
	"saved":   "Category saved.",
	"deleted": "Category deleted.",
}

// CategoriesPage lists custom categories as a table or a grid
func (h *Handler) CategoriesPage(c echo.Context) error {
	flash := components.FlashMessage{Kind: components.FlashSuccess}
	if msg, ok := categoryNotices[c.QueryParam("notice")]; ok {
		flash.Messages = []string{msg}
	}
	return h.renderCategories(c, http.StatusOK, flash)
}

func (h *Handler) renderCategories(c echo.Context, status int, flash components.FlashMessage) error {
	categories, err := h.categories.List(c.Request().Context(), false)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load categories")
	}

	view := pages.CategoryViewList
	if c.QueryParam("view") == pages.CategoryViewGrid {
		view = pages.CategoryViewGrid
	}

	return render(c, status, pages.Categories(pages.CategoriesPage{
		AdminPage: adminPage(c),
		Rows:      pages.NewCategoryRows(categories),
		View:      view,
		Flash:     flash,
	}))
}

// NewCategoryPage renders an empty category form
func (h *Handler) NewCategoryPage(c echo.Context) error {
	category := models.CustomCategory{
		ColorScheme: models.ColorSchemePink,
		Order:       1,
		Visibility:  true,
	}
	return h.renderCategoryForm(c, http.StatusOK, category, false, nil)
}

// EditCategoryPage renders the form for an existing category
func (h *Handler) EditCategoryPage(c echo.Context) error {
	category, err := h.categories.Get(c.Request().Context(), c.Param("id"))
	if errors.Is(err, services.ErrCategoryNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load category")
	}
	return h.renderCategoryForm(c, http.StatusOK, *category, true, nil)
}

func (h *Handler) renderCategoryForm(c echo.Context, status int, category models.CustomCategory, editing bool, problems []string) error {
	selected, err := h.catalog.ProductsByIDs(c.Request().Context(), category.Products)
	if err != nil {
		h.log.Error("Failed to load selected products", zap.String("category_id", category.ID), zap.Error(err))
		selected = nil
	}

	return render(c, status, pages.CategoryForm(pages.CategoryFormPage{
		AdminPage: adminPage(c),
		Category:  category,
		Editing:   editing,
		Errors:    problems,
		Selected:  selected,
	}))
}

// SaveCategory handles the category form post. Validation errors re-render the form.
func (h *Handler) SaveCategory(c echo.Context) error {
	var req SaveCategoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}

	saved, problems, err := h.storeCategory(c, req)
	if err != nil {
		h.log.Error("Failed to save category form", zap.Error(err))
		return h.renderCategoryForm(c, http.StatusInternalServerError, req.Category(), req.IsEditing(), []string{genericFailure})
	}
	if len(problems) > 0 {
		return h.renderCategoryForm(c, http.StatusUnprocessableEntity, saved, req.IsEditing(), problems)
	}
	return c.Redirect(http.StatusSeeOther, "/admin/categories?notice=saved")
}

// DeleteCategory handles the delete form post
func (h *Handler) DeleteCategory(c echo.Context) error {
	id := c.Param("id")
	err := h.categories.Delete(c.Request().Context(), id)
	if errors.Is(err, services.ErrCategoryNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Category not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete category")
	}

	h.log.Info("Category deleted", append(middleware.GetAuditContext(c).Fields(), zap.String("category_id", id))...)
	return c.Redirect(http.StatusSeeOther, "/admin/categories?notice=deleted")
}

// ExportCategories downloads every category as a workbook
func (h *Handler) ExportCategories(c echo.Context) error {
	buf, err := h.exportWorkbook(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to export categories")
	}

	filename := exportFilename(time.Now())
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, services.XLSXContentType, buf.Bytes())
}

// ArchiveCategories writes an export to archive storage and links to it
func (h *Handler) ArchiveCategories(c echo.Context) error {
	buf, err := h.exportWorkbook(c)
	if err != nil {
		return h.renderCategories(c, http.StatusInternalServerError, components.FlashMessage{
			Kind: components.FlashError, Messages: []string{"Failed to export categories."},
		})
	}

	ctx := c.Request().Context()
	key := services.GenerateArchiveKey("categories", exportFilename(time.Now()), time.Now())
	size := int64(buf.Len())
	object, err := h.storage.Put(ctx, key, buf, services.XLSXContentType, size)
	if err != nil {
		h.log.Error("Failed to archive export", zap.String("provider", h.storage.Name()), zap.Error(err))
		return h.renderCategories(c, http.StatusInternalServerError, components.FlashMessage{
			Kind: components.FlashError, Messages: []string{"Failed to store the export archive."},
		})
	}

	h.log.Info("Category export archived", append(middleware.GetAuditContext(c).Fields(),
		zap.String("provider", h.storage.Name()),
		zap.String("key", object.Key),
		zap.Int64("size", object.Size),
	)...)
	return h.renderCategories(c, http.StatusOK, components.FlashMessage{
		Kind:     components.FlashSuccess,
		Messages: []string{"Export archived: " + object.URL},
	})
}

// ImportCategories upserts categories from an uploaded workbook
func (h *Handler) ImportCategories(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return h.renderCategories(c, http.StatusBadRequest, components.FlashMessage{
			Kind: components.FlashError, Messages: []string{"No file uploaded."},
		})
	}
	if err := services.ValidateWorkbookUpload(fileHeader); err != nil {
		h.log.Warn("Rejected category upload", zap.String("file", fileHeader.Filename), zap.Error(err))
		return h.renderCategories(c, http.StatusUnprocessableEntity, components.FlashMessage{
			Kind: components.FlashError, Messages: []string{"Upload an .xlsx file of at most 5 MB."},
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to open file")
	}
	defer src.Close()

	result, err := h.categories.Import(c.Request().Context(), src)
	if err != nil {
		h.log.Warn("Category import failed", zap.String("file", fileHeader.Filename), zap.Error(err))
		return h.renderCategories(c, http.StatusUnprocessableEntity, components.FlashMessage{
			Kind: components.FlashError, Messages: []string{"The file could not be read as a category workbook."},
		})
	}

	h.log.Info("Categories imported", append(middleware.GetAuditContext(c).Fields(),
		zap.Int("success", result.SuccessCount),
		zap.Int("failed", result.FailedCount),
	)...)

	summary := fmt.Sprintf("Imported %d of %d categories.", result.SuccessCount, result.TotalProcessed)
	if result.FailedCount > 0 {
		return h.renderCategories(c, http.StatusOK, components.FlashMessage{
			Kind:     components.FlashError,
			Messages: append([]string{summary}, result.Errors...),
		})
	}
	return h.renderCategories(c, http.StatusOK, components.FlashMessage{
		Kind: components.FlashSuccess, Messages: []string{summary},
	})
}

func (h *Handler) exportWorkbook(c echo.Context) (*bytes.Buffer, error) {
	categories, err := h.categories.List(c.Request().Context(), false)
	if err != nil {
		return nil, err
	}
	buf, err := services.ExportCategoriesXLSX(categories)
	if err != nil {
		h.log.Error("Failed to build category workbook", zap.Error(err))
		return nil, err
	}
	return buf, nil
}

func exportFilename(now time.Time) string {
	return "custom_categories_" + now.Format("2006-01-02") + ".xlsx"
}
