package partials

import (
	"context"
	"io"
	"strconv"
	"time"

	"product_slider_app_go/models"
	"product_slider_app_go/services"
	"product_slider_app_go/templates/components"

	"github.com/a-h/templ"
)

// ProductCard renders one product tile of a slider
func ProductCard(p models.Product, now time.Time, newBadgeDays int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tags := services.ProductTags(p, now, newBadgeDays)

		h := components.NewHTML(w)
		h.Raw(`<article class="product-card"`)
		h.Attr("data-product-id", strconv.Itoa(p.ID))
		h.Attr("data-tags", joinTags(tags))
		h.Raw(`><a class="product-card__media"`)
		h.Attr("href", p.Permalink)
		h.Raw(`>`)
		if p.ImageURL != "" {
			h.Raw(`<img loading="lazy"`)
			h.Attr("src", p.ImageURL)
			h.Attr("alt", p.Name)
			h.Raw(`>`)
		} else {
			h.Raw(`<span class="product-card__placeholder" aria-hidden="true"></span>`)
		}

		h.Raw(`<span class="product-card__badges">`)
		for _, tag := range tags {
			h.Raw(`<span class="badge badge-`, tag, `">`)
			switch tag {
			case "sale":
				h.Text("-" + strconv.FormatInt(p.DiscountPercent(), 10) + "%")
			case "new":
				h.Text("New")
			case "featured":
				h.Text("Featured")
			}
			h.Raw(`</span>`)
		}
		h.Raw(`</span></a>`)

		h.Raw(`<div class="product-card__body"><h3 class="product-card__title"><a`)
		h.Attr("href", p.Permalink)
		h.Raw(`>`)
		h.Text(p.Name)
		h.Raw(`</a></h3><p class="product-card__price">`)
		if p.IsOnSale() {
			h.Raw(`<del>`)
			h.Text(formatPrice(p.RegularPrice))
			h.Raw(`</del> <ins>`)
			h.Text(formatPrice(p.SalePrice.Decimal))
			h.Raw(`</ins>`)
		} else {
			h.Text(formatPrice(p.RegularPrice))
		}
		h.Raw(`</p><a class="product-card__cta"`)
		h.Attr("href", p.Permalink)
		h.Raw(`>View product</a></div></article>`)
		return h.Err()
	})
}
