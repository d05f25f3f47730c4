// Package tessera is a retained-mode UI layout kernel. It computes
// rectangles and render depths for a tree of nodes from per-node layout
// descriptors, a root rectangle, and an ambient font size.
//
// Nodes are addressed by /-separated paths and carry one of four
// descriptors: Boundary (pin to two parent-relative corners), Window
// (explicit position and size with an anchor pivot), Solid (fixed
// aspect ratio fitted or filled into the parent), and Div (a container
// that can flow its children with a Stack). Sizes and positions are
// unit expressions combining pixels, parent percentages, rem, and
// viewport percentages.
//
// The kernel draws nothing and handles no input. A host embeds it,
// calls Compute each frame (or whenever the tree changes), and reads
// the resulting rectangles back through Rect or Walk:
//
//	tree, _ := tessera.New(tessera.WithFontSize(16))
//	tree.Create("header", tessera.Boundary{
//		Pos1: tessera.AbsXY(20, 20),
//		Pos2: tessera.RelXY(100, 100).Sub(tessera.AbsXY(20, 20)),
//	})
//	diags := tree.Compute(tessera.NewRect(0, 0, 1920, 1080), 16)
//
// A Tree must not be mutated or read concurrently with Compute. Shard
// independent trees across goroutines for parallelism.
package tessera
