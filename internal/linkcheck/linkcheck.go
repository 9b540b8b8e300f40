// Package linkcheck extracts link targets from rendered HTML. It backs the
// server tests that walk every page and check that internal references
// resolve to a served route.
package linkcheck

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Link is one reference found in a document.
type Link struct {
	URL  string
	Tag  string
	Attr string
}

// linkAttrs maps element names to the attribute carrying their target.
var linkAttrs = map[string]string{
	"a":      "href",
	"link":   "href",
	"img":    "src",
	"script": "src",
	"source": "src",
}

// Extract parses the document and returns every link carried by an anchor,
// stylesheet, image, script or media element.
func Extract(r io.Reader) ([]Link, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var links []Link
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if attr, ok := linkAttrs[n.Data]; ok {
				if v := attrValue(n, attr); v != "" {
					links = append(links, Link{URL: v, Tag: n.Data, Attr: attr})
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// Internal reports whether the link is a site-relative path this server can
// answer. Fragments and non-HTTP schemes (mailto, tel) are not checkable
// paths; absolute URLs belong to other hosts.
func Internal(raw string) bool {
	if raw == "" || strings.HasPrefix(raw, "#") {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return false
	}
	return strings.HasPrefix(u.Path, "/")
}
