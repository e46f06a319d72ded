package satsearch

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// BuildCategoryTree links categories into a forest using their parent ids
// and returns the roots. A category is a root when its parent is uuid.Nil or
// not present in categories. Roots and every Children slice are sorted by
// name. The input slice is not modified; the returned nodes are copies.
func BuildCategoryTree(categories []Category) []*Category {
	nodes := make(map[uuid.UUID]*Category, len(categories))
	ordered := make([]*Category, 0, len(categories))
	for i := range categories {
		c := categories[i]
		c.Children = nil
		node := &c
		nodes[c.UUID] = node
		ordered = append(ordered, node)
	}

	var roots []*Category
	for _, node := range ordered {
		parent, ok := nodes[node.Parent]
		if node.Parent == uuid.Nil || !ok || parent == node {
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	byName := func(a, b *Category) int { return strings.Compare(a.Name, b.Name) }
	for _, node := range ordered {
		slices.SortStableFunc(node.Children, byName)
	}
	slices.SortStableFunc(roots, byName)

	return roots
}

// Walk calls fn for c and each descendant, depth first, with the depth of
// each node relative to c.
func (c *Category) Walk(fn func(c *Category, depth int)) {
	c.walk(fn, 0)
}

func (c *Category) walk(fn func(*Category, int), depth int) {
	fn(c, depth)
	for _, child := range c.Children {
		child.walk(fn, depth+1)
	}
}
