package dom

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NewElement creates a detached element node.
func NewElement(tag string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// Retag renames an element in place, keeping its attributes and children.
func Retag(n *html.Node, tag string) {
	n.Data = tag
	n.DataAtom = atom.Lookup([]byte(tag))
}

// Attr returns the value of the attribute key, or "" when absent.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// HasAttr reports whether n carries the attribute key.
func HasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// SetAttr sets or replaces the attribute key on n.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// Children returns the element children of n.
func Children(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// ChildNodes returns a snapshot of every child of n, text included.
func ChildNodes(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Elements returns n (when it is an element) followed by every element
// below it, in document order.
func Elements(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

// Tags returns the descendants of n matching names. Results are grouped by
// name in argument order, and each group is in document order.
func Tags(n *html.Node, names ...string) []*html.Node {
	groups := make(map[string][]*html.Node, len(names))
	for _, name := range names {
		groups[name] = nil
	}
	for _, e := range Elements(n) {
		if e == n {
			continue
		}
		if _, ok := groups[e.Data]; ok {
			groups[e.Data] = append(groups[e.Data], e)
		}
	}
	var out []*html.Node
	for _, name := range names {
		out = append(out, groups[name]...)
		groups[name] = nil
	}
	return out
}

// ReverseTags is Tags with each group reversed.
func ReverseTags(n *html.Node, names ...string) []*html.Node {
	var out []*html.Node
	for _, name := range names {
		group := Tags(n, name)
		for i := len(group) - 1; i >= 0; i-- {
			out = append(out, group[i])
		}
	}
	return out
}

// ContainsAnyTag reports whether some descendant of n has a tag in tags.
func ContainsAnyTag(n *html.Node, tags map[string]bool) bool {
	for _, e := range Elements(n) {
		if e != n && tags[e.Data] {
			return true
		}
	}
	return false
}

// FindFirst returns the first element below n (n included) named tag.
func FindFirst(n *html.Node, tag string) *html.Node {
	for _, e := range Elements(n) {
		if e.Data == tag {
			return e
		}
	}
	return nil
}

// IsAttached reports whether n is root or sits below root.
func IsAttached(n, root *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

// DropTree detaches n together with its subtree. Sibling text stays in place.
func DropTree(n *html.Node) {
	if n != nil && n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// DropNodeAndEmptyParents detaches n, then keeps removing the former parent
// while it is left empty and is itself an element with a parent.
func DropNodeAndEmptyParents(n *html.Node) {
	for n != nil && n.Parent != nil {
		parent := n.Parent
		parent.RemoveChild(n)
		if parent.Type != html.ElementNode || parent.Parent == nil || !IsEmpty(parent) {
			return
		}
		n = parent
	}
}

// Describe renders a short css-like path of n for diagnostics, walking at
// most depth ancestors up.
func Describe(n *html.Node, depth int) string {
	if n == nil {
		return ""
	}
	parent := ""
	if depth > 0 && n.Parent != nil && n.Parent.Type == html.ElementNode {
		parent = Describe(n.Parent, depth-1) + ">"
	}
	return parent + describeNode(n)
}

func describeNode(n *html.Node) string {
	if n.Type != html.ElementNode {
		return fmt.Sprintf("[%d]", n.Type)
	}
	name := n.Data
	if id := Attr(n, "id"); id != "" {
		name += "#" + id
	}
	if class := strings.Fields(Attr(n, "class")); len(class) > 0 {
		name += "." + strings.Join(class, ".")
	}
	if strings.HasPrefix(name, "div#") || strings.HasPrefix(name, "div.") {
		name = name[3:]
	}
	return name
}
