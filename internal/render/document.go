// Package render applies storefront render instructions to an HTML page.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/drstein77/storefront/internal/storefront"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

type Log interface {
	Debug(string, ...zap.Field)
	Info(string, ...zap.Field)
}

// Document is a parsed page that instructions are applied to.
type Document struct {
	root *html.Node
}

func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}
	return &Document{root: root}, nil
}

// Apply executes the view's instructions in order. Instructions whose
// target element is missing are skipped.
func (d *Document) Apply(v storefront.View, log Log) error {
	for _, in := range v.Instructions {
		switch in := in.(type) {
		case storefront.ReplaceChildren:
			if err := d.replaceChildren(in, log); err != nil {
				return err
			}
		case storefront.SetImage:
			d.setImage(in, log)
		default:
			return fmt.Errorf("unsupported instruction %T", in)
		}
	}
	return nil
}

func (d *Document) replaceChildren(in storefront.ReplaceChildren, log Log) error {
	mount := d.ElementByID(in.MountID)
	if mount == nil {
		log.Debug("Mount point not found, skipping", zap.String("id", in.MountID))
		return nil
	}

	// build first so a failing card leaves the mount untouched
	var nodes []*html.Node
	for _, c := range in.Cards {
		n, err := cardNodes(c)
		if err != nil {
			return fmt.Errorf("render card %q: %w", c.Title, err)
		}
		nodes = append(nodes, n...)
	}

	for c := mount.FirstChild; c != nil; c = mount.FirstChild {
		mount.RemoveChild(c)
	}
	for _, n := range nodes {
		mount.AppendChild(n)
	}
	return nil
}

func (d *Document) setImage(in storefront.SetImage, log Log) {
	img := d.ElementByID(in.ElementID)
	if img == nil {
		log.Debug("Image element not found, skipping", zap.String("id", in.ElementID))
		return
	}

	setAttr(img, "src", in.Src)
	setAttr(img, "alt", in.Alt)
	log.Info("Hero image loaded", zap.String("src", in.Src))
}

// MarkAnchors tags in-page anchor links for smooth scrolling. A link
// whose target is missing gets an empty data-scroll-target and only has
// its default navigation suppressed by the client script.
func (d *Document) MarkAnchors() {
	var anchors []*html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "a" {
			href, ok := getAttr(n, "href")
			if ok && strings.HasPrefix(href, "#") && href != "#" {
				anchors = append(anchors, n)
			}
		}
		return true
	})

	for _, a := range anchors {
		href, _ := getAttr(a, "href")
		target := ""
		if id := href[1:]; d.ElementByID(id) != nil {
			target = id
		}
		setAttr(a, "data-scroll", "smooth")
		setAttr(a, "data-scroll-target", target)
	}
}

// ElementByID returns the first element with the given id, or nil.
func (d *Document) ElementByID(id string) *html.Node {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if v, ok := getAttr(n, "id"); ok && v == id {
				found = n
				return false
			}
		}
		return true
	})
	return found
}

func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

// walk visits n and its descendants depth-first until visit returns false.
func walk(n *html.Node, visit func(*html.Node) bool) bool {
	if !visit(n) {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walk(c, visit) {
			return false
		}
	}
	return true
}

func getAttr(n *html.Node, key string) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}
