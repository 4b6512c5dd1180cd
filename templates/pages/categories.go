package pages

import (
	"context"
	"io"
	"net/url"
	"strconv"

	"product_slider_app_go/models"
	"product_slider_app_go/templates/components"
	"product_slider_app_go/templates/layouts"
	"product_slider_app_go/templates/partials"

	"github.com/a-h/templ"
)

// Categories renders the custom category overview
func Categories(page CategoriesPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div class="page-header"><h1>Custom Categories</h1>`)
		h.Raw(`<a class="button button-primary" href="/admin/categories/new">Add category</a></div>`)
		h.Component(ctx, components.Flash(page.Flash))

		h.Raw(`<div class="toolbar">`)
		h.Raw(`<nav class="view-switch" aria-label="Layout">`)
		viewLink(h, CategoryViewList, "List", page.View)
		viewLink(h, CategoryViewGrid, "Grid", page.View)
		h.Raw(`</nav>`)
		h.Raw(`<a class="button" href="/admin/categories/export">Export XLSX</a>`)
		h.Raw(`<form method="post" action="/admin/categories/export/archive" class="inline-form">`)
		h.Component(ctx, components.CSRFField(page.CSRFToken))
		h.Raw(`<button type="submit" class="button">Archive export</button></form>`)
		h.Raw(`<form method="post" action="/admin/categories/import" enctype="multipart/form-data" class="inline-form">`)
		h.Component(ctx, components.CSRFField(page.CSRFToken))
		h.Raw(`<input type="file" name="file" accept=".xlsx" required><button type="submit" class="button">Import</button></form>`)
		h.Raw(`</div>`)

		if len(page.Rows) == 0 {
			h.Raw(`<p class="empty-state">No custom categories yet.</p>`)
			return h.Err()
		}

		h.Raw(`<form id="bulk-form" class="bulk-actions" data-bulk-form>`)
		h.Raw(`<select name="bulk_action" aria-label="Bulk action"><option value="">Bulk actions</option>`)
		h.Raw(`<option value="`, models.BulkActionEnable, `">Show</option>`)
		h.Raw(`<option value="`, models.BulkActionDisable, `">Hide</option>`)
		h.Raw(`<option value="`, models.BulkActionDelete, `">Delete</option></select>`)
		h.Raw(`<button type="submit" class="button">Apply</button></form>`)

		if page.View == CategoryViewGrid {
			h.Raw(`<div class="category-grid" data-sortable>`)
			for _, row := range page.Rows {
				h.Component(ctx, categoryCard(row, page.CSRFToken))
			}
			h.Raw(`</div>`)
			return h.Err()
		}

		h.Raw(`<table class="category-table"><thead><tr>`)
		h.Raw(`<th class="check-column"><input type="checkbox" data-select-all aria-label="Select all"></th>`)
		h.Raw(`<th></th><th>Name</th><th>Products</th><th>Order</th><th>Visible</th><th>Actions</th></tr></thead>`)
		h.Raw(`<tbody data-sortable>`)
		for _, row := range page.Rows {
			h.Component(ctx, categoryRow(row, page.CSRFToken))
		}
		h.Raw(`</tbody></table>`)
		return h.Err()
	})
	page.Title = "Custom Categories"
	page.Active = "categories"
	return layouts.Admin(page.AdminPage, body)
}

func viewLink(h *components.HTML, view, label, current string) {
	h.Raw(`<a`)
	h.Attr("href", "/admin/categories?view="+url.QueryEscape(view))
	if view == current {
		h.Raw(` class="is-active" aria-current="page"`)
	}
	h.Raw(`>`)
	h.Text(label)
	h.Raw(`</a>`)
}

func categoryRow(row CategoryRow, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c := row.Category
		h := components.NewHTML(w)
		h.Raw(`<tr draggable="true"`)
		h.Attr("data-id", c.ID)
		h.Attr("data-order", strconv.Itoa(c.Order))
		h.Raw(`><td class="check-column"><input type="checkbox" name="category_ids[]"`)
		h.Attr("value", c.ID)
		h.Attr("form", "bulk-form")
		h.Raw(`></td><td><span class="drag-handle" aria-hidden="true">&#8942;&#8942;</span>`)
		swatch(h, c)
		h.Raw(`</td><td><strong>`)
		h.Text(c.Name)
		h.Raw(`</strong>`)
		if c.Description != "" {
			h.Raw(`<p class="description">`)
			h.Text(c.Description)
			h.Raw(`</p>`)
		}
		h.Raw(`</td><td>`)
		h.Text(partials.ProductCountLabel(row.ProductCount))
		h.Raw(`</td><td class="order-cell">`)
		h.Text(strconv.Itoa(c.Order))
		h.Raw(`</td><td>`)
		visibilityToggle(h, c)
		h.Raw(`</td><td class="row-actions">`)
		rowActions(ctx, h, c, csrfToken)
		h.Raw(`</td></tr>`)
		return h.Err()
	})
}

func categoryCard(row CategoryRow, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c := row.Category
		h := components.NewHTML(w)
		h.Raw(`<article class="category-card" draggable="true"`)
		h.Attr("data-id", c.ID)
		h.Attr("data-order", strconv.Itoa(c.Order))
		h.Raw(`><header class="category-card__header"`)
		h.Attr("style", "background: "+c.Gradient())
		h.Raw(`><input type="checkbox" name="category_ids[]"`)
		h.Attr("value", c.ID)
		h.Attr("form", "bulk-form")
		h.Attr("aria-label", "Select "+c.Name)
		h.Raw(`><span class="category-card__icon">`)
		h.Text(c.Icon)
		h.Raw(`</span></header><div class="category-card__body"><h2>`)
		h.Text(c.Name)
		h.Raw(`</h2><p class="description">`)
		h.Text(c.Description)
		h.Raw(`</p><p class="meta">`)
		h.Text(partials.ProductCountLabel(row.ProductCount))
		h.Raw(` · order <span class="order-cell">`)
		h.Text(strconv.Itoa(c.Order))
		h.Raw(`</span></p>`)
		visibilityToggle(h, c)
		h.Raw(`<div class="row-actions">`)
		rowActions(ctx, h, c, csrfToken)
		h.Raw(`</div></div></article>`)
		return h.Err()
	})
}

func swatch(h *components.HTML, c models.CustomCategory) {
	h.Raw(`<span class="category-swatch"`)
	h.Attr("style", "background: "+c.Gradient())
	h.Raw(`>`)
	h.Text(c.Icon)
	h.Raw(`</span>`)
}

func visibilityToggle(h *components.HTML, c models.CustomCategory) {
	h.Raw(`<label class="switch"><input type="checkbox" data-visibility-toggle`)
	h.Attr("data-id", c.ID)
	h.BoolAttr("checked", c.Visibility)
	h.Raw(`><span class="switch__label">`)
	if c.Visibility {
		h.Raw(`Visible`)
	} else {
		h.Raw(`Hidden`)
	}
	h.Raw(`</span></label>`)
}

func rowActions(ctx context.Context, h *components.HTML, c models.CustomCategory, csrfToken string) {
	h.Raw(`<a`)
	h.Attr("href", "/admin/categories/"+url.PathEscape(c.ID)+"/edit")
	h.Raw(`>Edit</a>`)
	h.Raw(`<form method="post" class="inline-form" data-confirm="Delete this category?"`)
	h.Attr("action", "/admin/categories/"+url.PathEscape(c.ID)+"/delete")
	h.Raw(`>`)
	h.Component(ctx, components.CSRFField(csrfToken))
	h.Raw(`<button type="submit" class="button-link danger" data-delete-category`)
	h.Attr("data-id", c.ID)
	h.Raw(`>Delete</button></form>`)
}
