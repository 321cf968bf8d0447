// Package adapter contains the infrastructure adapters of treesummary: local
// filesystem, settings storage, report output and the analysis service.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	m "treesummary.dev/pkg/treesummary/internal/model"
)

// NamespaceOptions filters a directory walk.
type NamespaceOptions struct {
	// IgnorePaths prunes every path containing one of the fragments.
	IgnorePaths []string
	// Extensions keeps only files ending in one of them. Empty keeps all files.
	Extensions []string
}

// SourceFSAdapter turns a directory on disk into a file namespace so the domain
// layer never touches os directly.
type SourceFSAdapter interface {
	// Namespace walks root and returns it as a directory node named after root.
	Namespace(ctx context.Context, root m.Path, opts NamespaceOptions) (m.PathNode, error)
}

// LocalSourceFSAdapter reads the namespace from the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Namespace walks root depth-first. Entries are ordered by name, directories
// left empty by the filters are dropped.
func (a *LocalSourceFSAdapter) Namespace(ctx context.Context, root m.Path, opts NamespaceOptions) (m.PathNode, error) {
	rootStr := filepath.Clean(string(root))

	info, err := os.Stat(rootStr)
	if err != nil {
		return m.PathNode{}, fmt.Errorf("root path error: %w", err)
	}

	name := filepath.ToSlash(rootStr)
	if !info.IsDir() {
		return m.NewFileNode(filepath.Base(rootStr), m.Path(name)), nil
	}

	node, _, err := a.readDir(ctx, rootStr, m.Path(name), "", opts)
	if err != nil {
		return m.PathNode{}, err
	}

	node.Name = name

	return node, nil
}

// readDir walks dir; slashPath is the namespace path and rel the path below
// the walk root, which is what ignore fragments are matched against.
func (a *LocalSourceFSAdapter) readDir(ctx context.Context, dir string, slashPath, rel m.Path, opts NamespaceOptions) (m.PathNode, int, error) {
	if err := ctx.Err(); err != nil {
		return m.PathNode{}, 0, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return m.PathNode{}, 0, fmt.Errorf("read dir %s: %w", dir, err)
	}

	node := m.NewDirNode(filepath.Base(dir))
	files := 0

	for _, entry := range entries {
		childPath := m.JoinPath(slashPath, entry.Name())
		childRel := m.JoinPath(rel, entry.Name())

		if isIgnored(childRel, opts.IgnorePaths) {
			slog.Debug("skipping ignored path", "path", childPath)
			continue
		}

		if entry.IsDir() {
			child, count, err := a.readDir(ctx, filepath.Join(dir, entry.Name()), childPath, childRel, opts)
			if err != nil {
				return m.PathNode{}, 0, err
			}

			if count == 0 {
				continue
			}

			node.Children = append(node.Children, child)
			files += count

			continue
		}

		if !hasExtension(entry.Name(), opts.Extensions) {
			continue
		}

		node.Children = append(node.Children, m.NewFileNode(entry.Name(), childPath))
		files++
	}

	return node, files, nil
}

func isIgnored(path m.Path, fragments []string) bool {
	for _, fragment := range fragments {
		if fragment != "" && strings.Contains(string(path), fragment) {
			return true
		}
	}

	return false
}

func hasExtension(name string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}

	for _, ext := range extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext != "" && strings.HasSuffix(name, "."+ext) {
			return true
		}
	}

	return false
}
