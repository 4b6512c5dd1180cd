package pages

import (
	"context"
	"io"
	"strconv"

	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/components"
	"product_slider_app_go/templates/layouts"

	"github.com/a-h/templ"
)

// CategoryForm renders the create/edit form with its product picker
func CategoryForm(page CategoryFormPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		c := page.Category
		h := components.NewHTML(w)
		h.Raw(`<h1>`)
		if page.Editing {
			h.Raw(`Edit category`)
		} else {
			h.Raw(`Add category`)
		}
		h.Raw(`</h1>`)
		h.Component(ctx, components.Flash(components.FlashMessage{Kind: components.FlashError, Messages: page.Errors}))

		h.Raw(`<form method="post" action="/admin/categories" class="category-form" data-category-form>`)
		h.Component(ctx, components.CSRFField(page.CSRFToken))
		if page.Editing {
			h.Raw(`<input type="hidden" name="_editing" value="1"><input type="hidden" name="id"`)
			h.Attr("value", c.ID)
			h.Raw(`>`)
		} else {
			h.Raw(`<p class="field"><label for="id">Slug</label><input id="id" name="id" type="text" placeholder="generated from the name"`)
			h.Attr("value", c.ID)
			h.Raw(`></p>`)
		}

		h.Raw(`<p class="field"><label for="name">Name</label><input id="name" name="name" type="text" required`)
		h.Attr("value", c.Name)
		h.Raw(`></p>`)

		h.Raw(`<p class="field"><label for="description">Description</label><textarea id="description" name="description" rows="3">`)
		h.Text(c.Description)
		h.Raw(`</textarea></p>`)

		h.Raw(`<fieldset class="field color-schemes"><legend>Color scheme</legend>`)
		for _, scheme := range models.ColorSchemes {
			h.Raw(`<label class="color-scheme"><input type="radio" name="color_scheme"`)
			h.Attr("value", scheme)
			h.BoolAttr("checked", scheme == c.ColorScheme)
			h.Raw(`><span class="color-scheme__swatch"`)
			h.Attr("style", "background: "+models.ColorSchemeGradient(scheme))
			h.Raw(`></span>`)
			h.Text(scheme)
			h.Raw(`</label>`)
		}
		h.Raw(`</fieldset>`)

		h.Raw(`<p class="field"><label for="icon">Icon</label><input id="icon" name="icon" type="text" maxlength="16"`)
		h.Attr("value", c.Icon)
		h.Raw(`></p>`)

		h.Raw(`<p class="field"><label for="order">Order</label><input id="order" name="order" type="number" min="1"`)
		h.Attr("value", strconv.Itoa(c.Order))
		h.Raw(`></p>`)

		h.Raw(`<p class="field field-checkbox"><label><input type="checkbox" name="visibility" value="1"`)
		h.BoolAttr("checked", c.Visibility)
		h.Raw(`> Visible on the storefront</label></p>`)

		h.Raw(`<input type="hidden" name="products" data-product-ids`)
		h.Attr("value", services.JoinProductIDs(c.Products))
		h.Raw(`>`)
		h.Component(ctx, productPicker(page.Selected))

		h.Raw(`<p class="form-actions"><button type="submit" class="button button-primary">Save category</button>`)
		h.Raw(`<a href="/admin/categories" class="button">Cancel</a></p></form>`)
		return h.Err()
	})

	if page.Editing {
		page.Title = "Edit category"
	} else {
		page.Title = "Add category"
	}
	page.Active = "categories"
	return layouts.Admin(page.AdminPage, body)
}

func productPicker(selected []models.Product) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<section class="product-picker" data-product-picker><h2>Products</h2>`)
		h.Raw(`<input type="search" placeholder="Search products by name or SKU" data-product-search aria-label="Search products">`)
		h.Raw(`<ul class="product-picker__results" data-product-results></ul>`)
		h.Raw(`<button type="button" class="button" data-load-more hidden>Load more</button>`)
		h.Raw(`<h3>Selected</h3><ol class="product-picker__selected" data-selected-products>`)
		for _, p := range selected {
			h.Raw(`<li`)
			h.Attr("data-id", strconv.Itoa(p.ID))
			h.Raw(`>`)
			h.Text(p.Name)
			if p.SKU != "" {
				h.Raw(` <small>`)
				h.Text(p.SKU)
				h.Raw(`</small>`)
			}
			h.Raw(` <button type="button" class="button-link" data-remove-product aria-label="Remove">&times;</button></li>`)
		}
		h.Raw(`</ol></section>`)
		return h.Err()
	})
}
