package layouts

import (
	"context"
	"io"

	"product_slider_app_go/middleware"
	"product_slider_app_go/models"
	"product_slider_app_go/templates/components"

	"github.com/a-h/templ"
)

// AdminPage carries what every admin screen needs
type AdminPage struct {
	Title     string
	Active    string // categories or settings
	User      *models.User
	CSRFToken string
}

type navItem struct {
	key, label, href, capability string
}

var adminNav = []navItem{
	{"categories", "Custom Categories", "/admin/categories", models.CapabilityManageStore},
	{"settings", "Slider Settings", "/admin/settings", models.CapabilityManageOptions},
}

// Admin wraps body in the admin chrome. Navigation is hidden when nobody is logged in.
func Admin(page AdminPage, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.Raw(`<meta name="csrf-token"`)
		h.Attr("content", page.CSRFToken)
		h.Raw(`><title>`)
		h.Text(page.Title)
		h.Raw(` · Product Slider</title>`)
		h.Raw(`<link rel="stylesheet"`)
		h.Attr("href", middleware.AssetURL("css/admin.css"))
		h.Raw(`></head><body class="admin">`)

		if page.User != nil {
			h.Raw(`<header class="admin-bar"><span class="admin-bar__brand">Product Slider</span><nav class="admin-nav">`)
			for _, item := range adminNav {
				if !page.User.Can(item.capability) {
					continue
				}
				h.Raw(`<a`)
				h.Attr("href", item.href)
				if item.key == page.Active {
					h.Raw(` class="is-active" aria-current="page"`)
				}
				h.Raw(`>`)
				h.Text(item.label)
				h.Raw(`</a>`)
			}
			h.Raw(`<a href="/" target="_blank" rel="noopener">View store</a></nav>`)
			h.Raw(`<form class="admin-bar__logout" method="post" action="/admin/logout">`)
			h.Component(ctx, components.CSRFField(page.CSRFToken))
			h.Raw(`<span>`)
			h.Text(page.User.Name)
			h.Raw(`</span><button type="submit">Log out</button></form></header>`)
		}

		h.Raw(`<main class="admin-main">`)
		h.Component(ctx, body)
		h.Raw(`</main>`)
		h.Component(ctx, components.Script(middleware.AssetURL("js/admin-categories.js")))
		h.Raw(`</body></html>`)
		return h.Err()
	})
}
