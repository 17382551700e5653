package services

import (
	"github.com/learnspace/content-service/internal/models"
)

// BuildCategoryTree turns a flat category snapshot into a forest of nested
// nodes. Input order is preserved at every level: roots appear in the order
// their rows appeared, and so does each children slice.
//
// A node whose parent_id names a row not present in the snapshot is promoted
// to a root rather than dropped. A parent chain that loops never reaches a
// root, so cycles are detected by sweeping reachability from the roots and
// reported as a *CycleError naming the smallest unreached id.
//
// The sweep is iterative with an explicit stack, so arbitrarily deep chains
// cannot overflow the goroutine stack.
func BuildCategoryTree(categories []models.Category) ([]*models.CategoryTreeNode, error) {
	nodes := make(map[uint]*models.CategoryTreeNode, len(categories))
	for i := range categories {
		c := &categories[i]
		nodes[c.ID] = &models.CategoryTreeNode{
			ID:       c.ID,
			Title:    c.Title,
			Children: []*models.CategoryTreeNode{},
		}
	}

	roots := make([]*models.CategoryTreeNode, 0)
	for i := range categories {
		c := &categories[i]
		node := nodes[c.ID]
		if c.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		parent, ok := nodes[*c.ParentID]
		if !ok {
			// dangling parent reference: keep the subtree visible
			roots = append(roots, node)
			continue
		}
		parent.Children = append(parent.Children, node)
	}

	if err := checkReachable(nodes, roots); err != nil {
		return nil, err
	}

	return roots, nil
}

func checkReachable(nodes map[uint]*models.CategoryTreeNode, roots []*models.CategoryTreeNode) error {
	seen := make(map[uint]bool, len(nodes))
	stack := make([]*models.CategoryTreeNode, len(roots))
	copy(stack, roots)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[node.ID] {
			continue
		}
		seen[node.ID] = true
		stack = append(stack, node.Children...)
	}

	if len(seen) == len(nodes) {
		return nil
	}

	// every unreached node sits on or below a parent loop
	var cycleID uint
	for id := range nodes {
		if !seen[id] && (cycleID == 0 || id < cycleID) {
			cycleID = id
		}
	}
	return &CycleError{ID: cycleID}
}
