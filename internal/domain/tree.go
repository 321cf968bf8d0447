// Package domain holds the bucket board, the analysis client and the
// workflows behind each treesummary command.
package domain

import (
	"fmt"
	"path"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// FileTree is the flattened, immutable view of one or more namespaces.
// Every row is a drag source.
type FileTree struct {
	roots []m.PathNode
	rows  []m.TreeRow
}

// NewFileTree flattens roots once; the rows never change afterwards.
func NewFileTree(roots ...m.PathNode) *FileTree {
	var rows []m.TreeRow
	for _, root := range roots {
		rows = append(rows, Flatten(root)...)
	}

	return &FileTree{roots: roots, rows: rows}
}

// Roots returns the namespaces the tree was built from.
func (t *FileTree) Roots() []m.PathNode {
	return t.roots
}

// Rows returns every node in depth-first order.
func (t *FileTree) Rows() []m.TreeRow {
	return t.rows
}

// Len returns the number of rows.
func (t *FileTree) Len() int {
	return len(t.rows)
}

// StartDrag writes the path of row index into dt.
func (t *FileTree) StartDrag(index int, dt *m.DataTransfer) error {
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("tree row %d out of range", index)
	}

	StartDrag(t.rows[index], dt)

	return nil
}

// Flatten walks root depth-first, keeping declaration order.
func Flatten(root m.PathNode) []m.TreeRow {
	var rows []m.TreeRow

	flatten(root, "", 0, &rows)

	return rows
}

func flatten(node m.PathNode, prefix m.Path, depth int, rows *[]m.TreeRow) {
	full := m.JoinPath(prefix, node.Name)
	if !node.IsDir && node.FullPath != "" {
		full = node.FullPath
	}

	*rows = append(*rows, m.TreeRow{
		Name:     node.Name,
		FullPath: full,
		Depth:    depth,
		IsDir:    node.IsDir,
	})

	for _, child := range node.Children {
		flatten(child, full, depth+1, rows)
	}
}

// StartDrag puts the row path on the drag-data channel as plain text.
func StartDrag(row m.TreeRow, dt *m.DataTransfer) {
	dt.SetData(m.PlainTextFormat, string(row.FullPath))
}

// DemoNamespace returns a small sample project.
func DemoNamespace() m.PathNode {
	file := func(p string) m.PathNode {
		return m.NewFileNode(path.Base(p), m.Path(p))
	}

	return m.NewDirNode("project",
		m.NewDirNode("src",
			m.NewDirNode("components",
				file("project/src/components/Header.js"),
				file("project/src/components/Footer.js"),
			),
			m.NewDirNode("pages",
				file("project/src/pages/Home.js"),
				file("project/src/pages/About.js"),
			),
			file("project/src/App.js"),
		),
		m.NewDirNode("public",
			file("project/public/index.html"),
			file("project/public/styles.css"),
		),
		file("project/package.json"),
		file("project/README.md"),
	)
}
