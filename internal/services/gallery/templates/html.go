package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + "=\"" + templ.EscapeString(value) + "\"")
}

func (h *htmlWriter) intAttr(name string, value int) {
	h.attr(name, strconv.Itoa(value))
}

// url writes a URL attribute after templ's scheme sanitization.
func (h *htmlWriter) url(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *htmlWriter) render(ctx context.Context, component templ.Component) {
	if h.err != nil || component == nil {
		return
	}
	h.err = component.Render(ctx, h.w)
}
