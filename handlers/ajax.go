package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/services"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// AJAX actions accepted by AdminAjax
const (
	ActionSaveCategory             = "save_category"
	ActionSaveCategoryOrder        = "save_category_order"
	ActionDeleteCategory           = "delete_category"
	ActionSearchProducts           = "search_products"
	ActionBulkCategoryAction       = "bulk_category_action"
	ActionToggleCategoryVisibility = "toggle_category_visibility"
)

const genericFailure = "Something went wrong. Please try again."

// ajaxResponse is the {success, data} envelope every action answers with
type ajaxResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

type ajaxMessage struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func ajaxOK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, ajaxResponse{Success: true, Data: data})
}

func ajaxFail(c echo.Context, status int, message string, problems ...string) error {
	return c.JSON(status, ajaxResponse{Success: false, Data: ajaxMessage{Message: message, Errors: problems}})
}

// ajaxStoreError maps a store failure to a status and a message safe to show
func (h *Handler) ajaxStoreError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		return ajaxFail(c, http.StatusNotFound, "Category not found.")
	case errors.Is(err, services.ErrInvalidBulkAction):
		return ajaxFail(c, http.StatusUnprocessableEntity, "Invalid bulk action.")
	}
	h.log.Error("AJAX action failed", zap.String("action", c.FormValue("action")), zap.Error(err))
	return ajaxFail(c, http.StatusInternalServerError, genericFailure)
}

// AdminAjax dispatches POST /admin-ajax by its action field
func (h *Handler) AdminAjax(c echo.Context) error {
	switch action := c.FormValue("action"); action {
	case ActionSaveCategory:
		return h.saveCategory(c)
	case ActionSaveCategoryOrder:
		return h.saveCategoryOrder(c)
	case ActionDeleteCategory:
		return h.deleteCategory(c)
	case ActionSearchProducts:
		return h.searchProducts(c)
	case ActionBulkCategoryAction:
		return h.bulkCategoryAction(c)
	case ActionToggleCategoryVisibility:
		return h.toggleCategoryVisibility(c)
	default:
		return ajaxFail(c, http.StatusBadRequest, "Unknown action.")
	}
}

// SaveCategoryRequest is the category form as posted by the admin screens
type SaveCategoryRequest struct {
	ID          string `form:"id"`
	Name        string `form:"name"`
	Description string `form:"description"`
	ColorScheme string `form:"color_scheme"`
	Icon        string `form:"icon"`
	Order       string `form:"order"`
	Products    string `form:"products"`
	Visibility  string `form:"visibility"`
	Editing     string `form:"_editing"`
}

// Category converts the request into a record. An order that is not a number becomes 0 and fails validation.
func (r SaveCategoryRequest) Category() models.CustomCategory {
	order, _ := strconv.Atoi(strings.TrimSpace(r.Order))
	return models.CustomCategory{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ColorScheme: r.ColorScheme,
		Icon:        r.Icon,
		Order:       order,
		Products:    services.ParseProductIDs(r.Products),
		Visibility:  services.ParseBool(r.Visibility),
	}
}

// IsEditing reports whether the form edits an existing category
func (r SaveCategoryRequest) IsEditing() bool {
	return services.ParseBool(r.Editing)
}

func (h *Handler) saveCategory(c echo.Context) error {
	var req SaveCategoryRequest
	if err := c.Bind(&req); err != nil {
		return ajaxFail(c, http.StatusBadRequest, "Invalid request.")
	}

	saved, problems, err := h.storeCategory(c, req)
	if err != nil {
		return h.ajaxStoreError(c, err)
	}
	if len(problems) > 0 {
		return ajaxFail(c, http.StatusUnprocessableEntity, "Please fix the errors below.", problems...)
	}
	return ajaxOK(c, saved)
}

// storeCategory validates and saves a posted category. Validation problems are returned without saving.
func (h *Handler) storeCategory(c echo.Context, req SaveCategoryRequest) (models.CustomCategory, []string, error) {
	ctx := c.Request().Context()
	category := services.SanitizeCategory(req.Category())

	result, err := h.categories.Validate(ctx, category, req.IsEditing())
	if err != nil {
		return models.CustomCategory{}, nil, err
	}
	if !result.Valid {
		return category, result.Errors, nil
	}

	saved, err := h.categories.Save(ctx, category)
	if err != nil {
		return models.CustomCategory{}, nil, err
	}

	h.log.Info("Category saved", append(middleware.GetAuditContext(c).Fields(),
		zap.String("category_id", saved.ID),
		zap.Bool("editing", req.IsEditing()),
	)...)
	return saved, nil, nil
}

// SaveOrderRequest carries the drag and drop result as a JSON array
type SaveOrderRequest struct {
	Order string `form:"order"`
}

func (h *Handler) saveCategoryOrder(c echo.Context) error {
	var req SaveOrderRequest
	if err := c.Bind(&req); err != nil {
		return ajaxFail(c, http.StatusBadRequest, "Invalid request.")
	}

	var assignments []models.OrderAssignment
	if err := json.Unmarshal([]byte(req.Order), &assignments); err != nil {
		return ajaxFail(c, http.StatusBadRequest, "Invalid order data.")
	}

	if err := h.categories.Reorder(c.Request().Context(), assignments); err != nil {
		return h.ajaxStoreError(c, err)
	}

	h.log.Info("Category order saved", append(middleware.GetAuditContext(c).Fields(),
		zap.Int("categories", len(assignments)),
	)...)
	return ajaxOK(c, ajaxMessage{Message: "Category order saved."})
}

// CategoryIDRequest names one category
type CategoryIDRequest struct {
	CategoryID string `form:"category_id"`
}

func (h *Handler) deleteCategory(c echo.Context) error {
	var req CategoryIDRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.CategoryID) == "" {
		return ajaxFail(c, http.StatusBadRequest, "Missing category ID.")
	}

	if err := h.categories.Delete(c.Request().Context(), req.CategoryID); err != nil {
		return h.ajaxStoreError(c, err)
	}

	h.log.Info("Category deleted", append(middleware.GetAuditContext(c).Fields(),
		zap.String("category_id", req.CategoryID),
	)...)
	return ajaxOK(c, ajaxMessage{Message: "Category deleted."})
}

// SearchProductsRequest is one page of the product picker
type SearchProductsRequest struct {
	Search string `form:"search"`
	Page   string `form:"page"`
}

func (h *Handler) searchProducts(c echo.Context) error {
	var req SearchProductsRequest
	if err := c.Bind(&req); err != nil {
		return ajaxFail(c, http.StatusBadRequest, "Invalid request.")
	}
	page, _ := strconv.Atoi(req.Page)

	result, err := h.categories.SearchProducts(c.Request().Context(), services.SanitizeText(req.Search), page, services.DefaultSearchPageSize)
	if err != nil {
		return ajaxFail(c, http.StatusInternalServerError, "Product search failed.")
	}
	return ajaxOK(c, result)
}

// BulkActionRequest applies one action to the checked categories
type BulkActionRequest struct {
	Action      string   `form:"bulk_action"`
	CategoryIDs []string `form:"category_ids[]"`
}

func (h *Handler) bulkCategoryAction(c echo.Context) error {
	var req BulkActionRequest
	if err := c.Bind(&req); err != nil {
		return ajaxFail(c, http.StatusBadRequest, "Invalid request.")
	}
	if len(req.CategoryIDs) == 0 {
		return ajaxFail(c, http.StatusUnprocessableEntity, "No categories selected.")
	}

	affected, err := h.categories.BulkAction(c.Request().Context(), req.Action, req.CategoryIDs)
	if err != nil {
		return h.ajaxStoreError(c, err)
	}

	h.log.Info("Bulk category action", append(middleware.GetAuditContext(c).Fields(),
		zap.String("bulk_action", req.Action),
		zap.Int("affected", affected),
	)...)
	return ajaxOK(c, ajaxMessage{Message: "Bulk action completed."})
}

// ToggleVisibilityRequest shows or hides one category
type ToggleVisibilityRequest struct {
	CategoryID string `form:"category_id"`
	Visible    string `form:"visible"`
}

func (h *Handler) toggleCategoryVisibility(c echo.Context) error {
	var req ToggleVisibilityRequest
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.CategoryID) == "" {
		return ajaxFail(c, http.StatusBadRequest, "Missing category ID.")
	}
	visible := services.ParseBool(req.Visible)

	if err := h.categories.SetVisibility(c.Request().Context(), req.CategoryID, visible); err != nil {
		return h.ajaxStoreError(c, err)
	}

	h.log.Info("Category visibility changed", append(middleware.GetAuditContext(c).Fields(),
		zap.String("category_id", req.CategoryID),
		zap.Bool("visible", visible),
	)...)
	return ajaxOK(c, map[string]bool{"visible": visible})
}
