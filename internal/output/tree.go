package output

import (
	"fmt"
	"strings"
)

// TreeNode represents a node in a tree structure for rendering
type TreeNode struct {
	ID       string
	Title    string
	Kind     string
	Flags    []string
	Children []TreeNode
}

// TreeRenderOptions configures tree rendering behavior
type TreeRenderOptions struct {
	MaxDepth    int  // 0 = unlimited
	ShowKind    bool // Whether to prefix the node kind
	ShowFlags   bool // Whether to append flag markers
	Indentation int  // Base indentation level (for nested contexts)
}

// flagMark returns bracketed flag markers
func flagMark(flags []string) string {
	if len(flags) == 0 {
		return ""
	}
	return " [" + strings.Join(flags, ",") + "]"
}

// RenderTree renders a tree starting from a single root node
// Returns the complete tree as a string (without the root - just children)
func RenderTree(root TreeNode, opts TreeRenderOptions) string {
	lines := renderTreeNodes(root.Children, opts, 0, strings.Repeat("    ", opts.Indentation))
	return strings.Join(lines, "\n")
}

// RenderTreeLines renders multiple root nodes and returns individual lines
// Useful for embedding trees in other output
func RenderTreeLines(roots []TreeNode, opts TreeRenderOptions) []string {
	return renderTreeNodes(roots, opts, 0, strings.Repeat("    ", opts.Indentation))
}

// renderTreeNodes recursively renders tree nodes
func renderTreeNodes(nodes []TreeNode, opts TreeRenderOptions, depth int, prefix string) []string {
	if opts.MaxDepth > 0 && depth >= opts.MaxDepth {
		return nil
	}

	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── " // ├──
		if isLast {
			connector = "└── " // └──
		}

		var parts []string
		if opts.ShowKind && node.Kind != "" {
			parts = append(parts, node.Kind)
		}
		parts = append(parts, node.ID+":")
		if node.Title != "" {
			parts = append(parts, node.Title)
		}

		line := prefix + connector + strings.Join(parts, " ")
		if opts.ShowFlags {
			line += flagMark(node.Flags)
		}
		lines = append(lines, line)

		childPrefix := prefix
		if isLast {
			childPrefix += "    "
		} else {
			childPrefix += "│   " // │
		}

		lines = append(lines, renderTreeNodes(node.Children, opts, depth+1, childPrefix)...)
	}

	return lines
}

// RenderChildrenList renders nodes in a flat list format
func RenderChildrenList(nodes []TreeNode) []string {
	var lines []string

	for i, node := range nodes {
		isLast := i == len(nodes)-1

		connector := "├── " // ├──
		if isLast {
			connector = "└── " // └──
		}

		line := fmt.Sprintf("  %s%s: %s", connector, node.ID, node.Title)
		if node.Kind != "" {
			line += fmt.Sprintf(" (%s)", node.Kind)
		}
		lines = append(lines, line+flagMark(node.Flags))
	}

	return lines
}
