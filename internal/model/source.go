// Package model holds the plain data types shared by the adapter, domain and
// controller layers.
package model

import "strings"

// Path is a slash-joined path inside the file namespace.
type Path string

// PathNode is one node of the file namespace: a file leaf or a directory.
type PathNode struct {
	Name     string
	FullPath Path
	IsDir    bool
	Children []PathNode
}

// NewFileNode builds a leaf carrying its full path.
func NewFileNode(name string, fullPath Path) PathNode {
	return PathNode{Name: name, FullPath: fullPath}
}

// NewDirNode builds a directory whose children keep the given order.
func NewDirNode(name string, children ...PathNode) PathNode {
	return PathNode{Name: name, IsDir: true, Children: children}
}

// Files returns every file path below the node in declaration order.
func (n PathNode) Files() []Path {
	if !n.IsDir {
		return []Path{n.FullPath}
	}

	var files []Path
	for _, child := range n.Children {
		files = append(files, child.Files()...)
	}

	return files
}

// JoinPath appends name to prefix with a slash; an empty prefix yields name.
func JoinPath(prefix Path, name string) Path {
	if prefix == "" {
		return Path(name)
	}

	return Path(strings.TrimSuffix(string(prefix), "/") + "/" + name)
}

// TreeRow is a flattened namespace node ready to be drawn.
type TreeRow struct {
	Name     string
	FullPath Path
	Depth    int
	IsDir    bool
}
