package gltfnode

import (
	"errors"
	"fmt"

	"github.com/qmuntal/gltf"
	"honnef.co/go/linmath"
)

// WalkFunc is called by [Walk] for every node, with the node's index in the
// document and its transform relative to the root of the walk.
//
// Returning [SkipChildren] skips the node's children. Any other error stops
// the walk and is returned by Walk.
type WalkFunc func(index int, n *gltf.Node, world Transform) error

// Walk visits the hierarchy rooted at the node with the given index depth
// first, parents before their children. The transform of every node is the
// concatenation of its ancestors' local transforms and its own.
func Walk(doc *gltf.Document, root int, fn WalkFunc) error {
	w := walker{
		doc:      doc,
		fn:       fn,
		visiting: make(map[int]bool),
	}
	return w.walk(root, linmath.IdentityDecomposed3[float64, linmath.Quaternion[float64]]())
}

// WalkScene walks every root node of the scene with the given index.
func WalkScene(doc *gltf.Document, scene int, fn WalkFunc) error {
	if scene < 0 || scene >= len(doc.Scenes) {
		return fmt.Errorf("scene %d: %w", scene, ErrNodeIndex)
	}
	for _, root := range doc.Scenes[scene].Nodes {
		if err := Walk(doc, int(root), fn); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	doc      *gltf.Document
	fn       WalkFunc
	visiting map[int]bool
}

func (w *walker) walk(idx int, parent Transform) error {
	if idx < 0 || idx >= len(w.doc.Nodes) {
		return fmt.Errorf("node %d: %w", idx, ErrNodeIndex)
	}
	if w.visiting[idx] {
		return fmt.Errorf("node %d: %w", idx, ErrCycle)
	}

	n := w.doc.Nodes[idx]
	local, err := FromNode(n)
	if err != nil {
		return err
	}
	world := parent.Concat(local)
	if err := w.fn(idx, n, world); err != nil {
		if errors.Is(err, SkipChildren) {
			return nil
		}
		return err
	}

	w.visiting[idx] = true
	defer delete(w.visiting, idx)
	for _, child := range n.Children {
		if err := w.walk(int(child), world); err != nil {
			return err
		}
	}
	return nil
}
