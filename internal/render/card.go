package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/drstein77/storefront/internal/storefront"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var cardTemplate = template.Must(template.New("card").Parse(
	`<div class="col-lg-3 col-md-6">` +
		`<div class="book-card">` +
		`<img src="{{.ImageURL}}" alt="{{.Alt}}" class="book-image" data-placeholder="{{.Placeholder}}">` +
		`<div class="book-card-body">` +
		`<h3 class="book-title">{{.Title}}</h3>` +
		`<p class="book-author">by {{.Author}}</p>` +
		`<div class="mb-3"><span class="book-badge">{{.Format}}</span></div>` +
		`<div class="d-flex justify-content-between align-items-center">` +
		`<span class="book-price">{{.Price}}</span>` +
		`<button type="button" class="btn btn-custom btn-sm add-to-cart" data-title="{{.Title}}">` +
		`<i class="fas fa-cart-plus"></i>` +
		`</button>` +
		`</div>` +
		`</div>` +
		`</div>` +
		`</div>`))

// cardContext is the parent element card fragments are parsed against.
var cardContext = &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}

// cardNodes renders a card and parses it into detached nodes.
func cardNodes(c storefront.Card) ([]*html.Node, error) {
	var buf bytes.Buffer
	if err := cardTemplate.Execute(&buf, c); err != nil {
		return nil, fmt.Errorf("execute card template: %w", err)
	}

	nodes, err := html.ParseFragment(&buf, cardContext)
	if err != nil {
		return nil, fmt.Errorf("parse card fragment: %w", err)
	}
	return nodes, nil
}
