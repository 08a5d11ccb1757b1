package output

import (
	"cmp"
	"path/filepath"
	"slices"
	"strings"
)

const (
	treeEdge  = "├── "
	treeLast  = "└── "
	treeVert  = "│   "
	treeSpace = "    "

	// descriptionColumn is where file descriptions start.
	descriptionColumn = 30
)

// TreeNode represents a node in the file tree.
type TreeNode struct {
	Name        string
	Description string
	IsDir       bool
	Children    []*TreeNode
}

// child returns the named child, creating it when missing.
func (n *TreeNode) child(name string, isDir bool) *TreeNode {
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	c := &TreeNode{Name: name, IsDir: isDir}
	n.Children = append(n.Children, c)
	return c
}

// RenderFileTree renders a file tree with descriptions aligned at column 30.
// Files maps relative paths to their descriptions; rootName labels the root.
// Dotfiles are kept, so ".gitignore" renders like any other file.
func RenderFileTree(rootName string, files map[string]string) string {
	if len(files) == 0 {
		return ""
	}

	root := &TreeNode{Name: rootName, IsDir: true}
	for path, desc := range files {
		parts := strings.Split(filepath.ToSlash(path), "/")
		node := root
		for i, part := range parts {
			last := i == len(parts)-1
			node = node.child(part, !last)
			if last {
				node.Description = desc
			}
		}
	}
	sortTree(root)

	var sb strings.Builder
	sb.WriteString(StyleBold.Render(root.Name + "/"))
	sb.WriteString("\n")
	renderChildren(&sb, root, "")
	return sb.String()
}

// sortTree orders directories before files, then by name.
func sortTree(node *TreeNode) {
	slices.SortFunc(node.Children, func(a, b *TreeNode) int {
		if a.IsDir != b.IsDir {
			if a.IsDir {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	for _, c := range node.Children {
		sortTree(c)
	}
}

func renderChildren(sb *strings.Builder, node *TreeNode, prefix string) {
	for i, c := range node.Children {
		last := i == len(node.Children)-1

		connector, nextPrefix := treeEdge, prefix+treeVert
		if last {
			connector, nextPrefix = treeLast, prefix+treeSpace
		}

		name := c.Name
		if c.IsDir {
			name += "/"
		}
		line := prefix + connector + name

		if c.Description != "" {
			// Width is counted in runes so the box-drawing prefix aligns.
			padding := descriptionColumn - len([]rune(line))
			if padding < 2 {
				padding = 2
			}
			line += strings.Repeat(" ", padding) + StyleMuted.Render(c.Description)
		}

		sb.WriteString(line)
		sb.WriteString("\n")
		renderChildren(sb, c, nextPrefix)
	}
}

// RenderSimpleTree renders a tree without descriptions.
func RenderSimpleTree(rootName string, files []string) string {
	fileMap := make(map[string]string, len(files))
	for _, f := range files {
		fileMap[f] = ""
	}
	return RenderFileTree(rootName, fileMap)
}
