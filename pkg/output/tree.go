// Package output renders the bookmark tree for the terminal and
// exports it in portable formats.
package output

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/marks/pkg/bookmarks"
)

// RenderTree renders the directory and its descendants as a terminal
// tree
func RenderTree(root *bookmarks.Directory) (string, error) {
	node, err := treeNode(root)
	if err != nil {
		return "", err
	}
	return pterm.DefaultTree.WithRoot(node).Srender()
}

func treeNode(dir *bookmarks.Directory) (pterm.TreeNode, error) {
	node := pterm.TreeNode{
		Text: DirectoryStyle.Render(label(dir)),
	}

	children, err := dir.Children()
	if err != nil {
		return pterm.TreeNode{}, err
	}
	for _, child := range children {
		if sub, ok := child.(*bookmarks.Directory); ok {
			subNode, err := treeNode(sub)
			if err != nil {
				return pterm.TreeNode{}, err
			}
			node.Children = append(node.Children, subNode)
			continue
		}
		b := child.(*bookmarks.Bookmark)
		node.Children = append(node.Children, pterm.TreeNode{
			Text: fmt.Sprintf("%s %s", label(b), URLStyle.Render(b.URL())),
		})
	}
	return node, nil
}

func label(n bookmarks.Node) string {
	if name := n.DisplayName(); name != "" {
		return name
	}
	return n.ID()
}
