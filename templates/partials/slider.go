package partials

import (
	"context"
	"io"
	"strconv"

	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/components"

	"github.com/a-h/templ"
)

// sliderConfig is handed to slider.js through a data attribute
type sliderConfig struct {
	Columns     int  `json:"columns"`
	ShowArrows  bool `json:"show_arrows"`
	EnableSwipe bool `json:"enable_swipe"`
	Autoplay    bool `json:"autoplay"`
}

var filterButtons = []struct{ tag, label string }{
	{"all", "All"},
	{"sale", "On Sale"},
	{"new", "New"},
	{"featured", "Featured"},
}

// Slider renders a resolved slider. An empty view renders nothing.
func Slider(view *services.SliderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if view == nil || len(view.Sections) == 0 {
			return nil
		}
		attrs := view.Attributes
		config := sliderConfig{
			Columns:     attrs.Columns,
			ShowArrows:  view.Settings.ShowArrows,
			EnableSwipe: view.Settings.EnableSwipe,
			Autoplay:    view.Settings.Autoplay,
		}

		h := components.NewHTML(w)
		h.Raw(`<section class="netflix-slider"`)
		h.Attr("data-config", components.JSON(config))
		h.Attr("style", "--slider-columns: "+strconv.Itoa(attrs.Columns))
		h.Raw(`>`)

		if len(view.Navigation) > 0 {
			h.Component(ctx, CategoryNav(view.Navigation))
		}

		if attrs.ShowFilters {
			h.Raw(`<div class="slider-filters" role="group" aria-label="Filter products">`)
			for i, f := range filterButtons {
				h.Raw(`<button type="button" class="slider-filter`)
				if i == 0 {
					h.Raw(` is-active`)
				}
				h.Raw(`"`)
				h.Attr("data-filter", f.tag)
				h.Raw(`>`)
				h.Text(f.label)
				h.Raw(`</button>`)
			}
			h.Raw(`</div>`)
		}

		for _, section := range view.Sections {
			h.Component(ctx, sliderRow(section, view))
		}

		h.Raw(`</section>`)
		return h.Err()
	})
}

func sliderRow(section services.SliderSection, view *services.SliderView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<div class="slider-row"`)
		if section.Category != nil {
			h.Attr("id", sectionAnchor(section.Category.ID))
			h.Attr("data-category", section.Category.ID)
		}
		h.Raw(`><header class="slider-row__header">`)
		if section.Category != nil && section.Category.Icon != "" {
			h.Raw(`<span class="slider-row__icon"`)
			h.Attr("style", "background: "+section.Category.Gradient())
			h.Raw(`>`)
			h.Text(section.Category.Icon)
			h.Raw(`</span>`)
		}
		h.Raw(`<div><h2 class="slider-row__title">`)
		h.Text(section.Title)
		h.Raw(`</h2>`)
		if section.Description != "" {
			h.Raw(`<p class="slider-row__description">`)
			h.Text(section.Description)
			h.Raw(`</p>`)
		}
		h.Raw(`</div></header>`)

		if len(section.Products) == 0 {
			h.Raw(`<p class="slider-empty">No products found.</p></div>`)
			return h.Err()
		}

		h.Raw(`<div class="slider-viewport">`)
		if view.Settings.ShowArrows {
			h.Raw(`<button type="button" class="slider-arrow slider-arrow--prev" aria-label="Previous">&#8249;</button>`)
		}
		h.Raw(`<div class="slider-track">`)
		for _, p := range section.Products {
			h.Component(ctx, ProductCard(p, view.Now, view.Settings.NewBadgeDays))
		}
		h.Raw(`</div>`)
		if view.Settings.ShowArrows {
			h.Raw(`<button type="button" class="slider-arrow slider-arrow--next" aria-label="Next">&#8250;</button>`)
		}
		h.Raw(`</div></div>`)
		return h.Err()
	})
}

// CategoryNav renders the jump buttons above a custom category overview
func CategoryNav(categories []models.CustomCategory) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<nav class="slider-category-nav" aria-label="Categories">`)
		for _, c := range categories {
			h.Raw(`<a class="slider-category-nav__item"`)
			h.Attr("href", "#"+sectionAnchor(c.ID))
			h.Attr("style", "background: "+c.Gradient())
			h.Raw(`>`)
			if c.Icon != "" {
				h.Raw(`<span class="slider-category-nav__icon">`)
				h.Text(c.Icon)
				h.Raw(`</span>`)
			}
			h.Text(c.Name)
			h.Raw(`</a>`)
		}
		h.Raw(`</nav>`)
		return h.Err()
	})
}
