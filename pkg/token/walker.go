package token

import (
	"strings"

	"github.com/kataras/figma-tokens/pkg/figma"
)

// Walk returns the children of frame that take part in token extraction, last child first.
//
// Hidden children, children whose name starts with "_" and children whose lowercased name
// contains one of ignore are left out. The reverse order makes the first declared of two
// equally named siblings the last one written, and therefore the one that wins.
func Walk(frame *figma.Node, ignore []string) []*figma.Node {
	if frame == nil || len(frame.Children) == 0 {
		return nil
	}

	eligible := make([]*figma.Node, 0, len(frame.Children))
	for i := len(frame.Children) - 1; i >= 0; i-- {
		child := &frame.Children[i]
		if isEligible(child, ignore) {
			eligible = append(eligible, child)
		}
	}
	return eligible
}

func isEligible(node *figma.Node, ignore []string) bool {
	if !node.IsVisible() || strings.HasPrefix(node.Name, "_") {
		return false
	}

	name := strings.ToLower(node.Name)
	for _, keyword := range ignore {
		keyword = strings.ToLower(keyword)
		if keyword != "" && strings.Contains(name, keyword) {
			return false
		}
	}
	return true
}
