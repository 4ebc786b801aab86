// Package dirtree builds an in-memory snapshot of a directory subtree and
// renders it as a plain-text file listing.
package dirtree

import (
	"io/fs"
	"path"
	"strings"

	"dirserve"
)

// Node is a snapshot of one directory taken at traversal time. Paths are
// slash-separated and relative to the filesystem the tree was built from;
// the root of the serving filesystem is ".".
//
// Files and Subdirs keep enumeration order. A node owns its children; Parent
// is a back-reference for upward navigation only and is nil on the tree root.
type Node struct {
	Path    string
	Parent  *Node
	Files   []string
	Subdirs []*Node
}

// Build walks dir recursively and returns its snapshot. Symbolic links are
// never followed into directories: a link could point back at an ancestor and
// recurse forever. A link whose target is a regular file is listed as a file;
// a link to a directory, or a broken link, is skipped entirely.
//
// Enumeration failure at any depth aborts the whole build with a
// dirserve.RequestError wrapping the I/O cause; there is no partial result.
func Build(fsys fs.FS, dir string) (*Node, error) {
	return build(fsys, nil, dir)
}

func build(fsys fs.FS, parent *Node, dir string) (*Node, error) {
	n := &Node{Path: dir, Parent: parent}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, dirserve.ListingFailed(dir, err)
	}

	for _, ent := range entries {
		name := path.Join(dir, ent.Name())
		switch {
		case ent.Type().IsRegular():
			n.Files = append(n.Files, name)
		case ent.Type()&fs.ModeSymlink != 0:
			if info, statErr := fs.Stat(fsys, name); statErr == nil && info.Mode().IsRegular() {
				n.Files = append(n.Files, name)
			}
		case ent.IsDir():
			child, err := build(fsys, n, name)
			if err != nil {
				return nil, err
			}
			n.Subdirs = append(n.Subdirs, child)
		}
	}

	return n, nil
}

// Render lists every file in the tree, one per line, the node's own files
// first and then each subdirectory depth-first in discovery order. A node
// with no files contributes nothing, so an empty tree renders as "" and a
// non-empty one always ends with exactly one trailing newline.
func Render(n *Node) string {
	var b strings.Builder
	render(&b, n)
	return b.String()
}

func render(b *strings.Builder, n *Node) {
	for _, f := range n.Files {
		b.WriteString(f)
		b.WriteByte('\n')
	}
	for _, sub := range n.Subdirs {
		render(b, sub)
	}
}
