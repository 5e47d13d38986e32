package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Node wraps an HTML tree as a templ component.
func Node(n *html.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return html.Render(w, n)
	})
}

// Document builds the page shell with app as the only child of the body.
// app must not already be attached to another tree.
func Document(lang, title string, app *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(el("html", []html.Attribute{attr("lang", lang)},
		el("head", nil,
			element("meta", attr("charset", "utf-8")),
			element("meta", attr("name", "viewport"), attr("content", "width=device-width, initial-scale=1")),
			el("title", nil, text(title)),
			element("script", attr("src", htmxScript)),
		),
		el("body", nil, app),
	))
	return doc
}
