package page

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// ErrBrokenAnchor is returned when an in-page link does not resolve to exactly one element.
var ErrBrokenAnchor = errors.New("page: broken in-page anchor")

// Anchors lists the in-page link targets and element ids found in a document.
type Anchors struct {
	// Links maps each "#target" href (without the hash) to the number of links using it.
	Links map[string]int
	// IDs maps each element id to the number of elements carrying it.
	IDs map[string]int
	// SectionOrder lists the ids of <section> elements in document order.
	SectionOrder []string
}

// ScanAnchors walks an HTML document and collects its anchors.
func ScanAnchors(doc []byte) (Anchors, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return Anchors{}, fmt.Errorf("page: parse document: %w", err)
	}
	a := Anchors{Links: map[string]int{}, IDs: map[string]int{}}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			for _, attr := range n.Attr {
				switch attr.Key {
				case "id":
					a.IDs[attr.Val]++
					if n.Data == "section" {
						a.SectionOrder = append(a.SectionOrder, attr.Val)
					}
				case "href":
					if n.Data == "a" && strings.HasPrefix(attr.Val, "#") && len(attr.Val) > 1 {
						a.Links[attr.Val[1:]]++
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return a, nil
}

// CheckAnchors verifies that every "#target" link in doc matches exactly one
// element id. Bare "#" links are ignored.
func CheckAnchors(doc []byte) error {
	a, err := ScanAnchors(doc)
	if err != nil {
		return err
	}
	var broken []string
	for target := range a.Links {
		if n := a.IDs[target]; n != 1 {
			broken = append(broken, fmt.Sprintf("#%s (%d matches)", target, n))
		}
	}
	if len(broken) == 0 {
		return nil
	}
	sort.Strings(broken)
	return fmt.Errorf("%w: %s", ErrBrokenAnchor, strings.Join(broken, ", "))
}
