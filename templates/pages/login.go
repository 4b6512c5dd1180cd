package pages

import (
	"context"
	"io"

	"product_slider_app_go/templates/components"
	"product_slider_app_go/templates/layouts"

	"github.com/a-h/templ"
)

// Login renders the admin sign in form
func Login(page LoginPage) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := components.NewHTML(w)
		h.Raw(`<section class="login-card"><h1>Sign in</h1>`)
		if page.Error != "" {
			h.Component(ctx, components.Flash(components.FlashMessage{Kind: components.FlashError, Messages: []string{page.Error}}))
		}
		h.Raw(`<form method="post" action="/admin/login">`)
		h.Component(ctx, components.CSRFField(page.CSRFToken))
		h.Raw(`<label for="email">Email</label><input id="email" name="email" type="email" autocomplete="username" required`)
		h.Attr("value", page.Email)
		h.Raw(`><label for="password">Password</label>`)
		h.Raw(`<input id="password" name="password" type="password" autocomplete="current-password" required>`)
		h.Raw(`<button type="submit" class="button button-primary">Sign in</button></form></section>`)
		return h.Err()
	})
	return layouts.Admin(layouts.AdminPage{Title: "Sign in", CSRFToken: page.CSRFToken}, body)
}
