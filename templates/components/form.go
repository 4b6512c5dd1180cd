package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// CSRFFieldName is the form field the CSRF middleware reads
const CSRFFieldName = "nonce"

// CSRFField is the hidden token input every admin form carries
func CSRFField(token string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<input type="hidden"`)
		h.Attr("name", CSRFFieldName)
		h.Attr("value", token)
		h.Raw(`>`)
		return h.Err()
	})
}

// Flash kinds
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// FlashMessage is a notice shown above page content
type FlashMessage struct {
	Kind     string
	Messages []string
}

// Flash renders a notice box, nothing when there are no messages
func Flash(flash FlashMessage) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(flash.Messages) == 0 {
			return nil
		}
		kind := flash.Kind
		if kind != FlashSuccess {
			kind = FlashError
		}

		h := NewHTML(w)
		h.Raw(`<div class="notice notice-`, kind, `" role="alert">`)
		if len(flash.Messages) == 1 {
			h.Raw(`<p>`)
			h.Text(flash.Messages[0])
			h.Raw(`</p>`)
		} else {
			h.Raw(`<ul>`)
			for _, m := range flash.Messages {
				h.Raw(`<li>`)
				h.Text(m)
				h.Raw(`</li>`)
			}
			h.Raw(`</ul>`)
		}
		h.Raw(`</div>`)
		return h.Err()
	})
}

// Script renders an external script tag carrying the request's CSP nonce
func Script(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := NewHTML(w)
		h.Raw(`<script`)
		h.Attr("src", src)
		h.Attr("nonce", templ.GetNonce(ctx))
		h.Raw(` defer></script>`)
		return h.Err()
	})
}
