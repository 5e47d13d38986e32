package view

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func attr(key, val string) html.Attribute {
	return html.Attribute{Key: key, Val: val}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// el builds an element and appends children to it.
func el(tag string, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := element(tag, attrs...)
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}
