package models

// NavigationItem is one node of the storefront menu tree. Children nest to
// any depth (Electronics > Mobile > Phones).
type NavigationItem struct {
	Label    string           `json:"label" yaml:"label"`
	Href     string           `json:"href" yaml:"href"`
	Children []NavigationItem `json:"children,omitempty" yaml:"children,omitempty"`
}

// Walk visits the node and every descendant in depth-first order. The walk
// stops early when fn returns false.
func (n NavigationItem) Walk(fn func(NavigationItem) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FindByHref returns the first node in the tree whose href matches.
func (n NavigationItem) FindByHref(href string) (NavigationItem, bool) {
	var found NavigationItem
	ok := !n.Walk(func(item NavigationItem) bool {
		if item.Href == href {
			found = item
			return false
		}
		return true
	})
	return found, ok
}

// NavigationTree groups the public menu and the extra entries shown to
// authenticated users.
type NavigationTree struct {
	Main          []NavigationItem `json:"main" yaml:"main"`
	Authenticated []NavigationItem `json:"authenticated" yaml:"authenticated"`
}
