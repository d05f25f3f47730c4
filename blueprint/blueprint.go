// Package blueprint builds tessera trees from declarative TOML
// documents, so hosts can keep UI structure in data files instead of
// construction code.
//
// A document sets the ambient configuration at the top level and lists
// nodes in creation order:
//
//	font_size = 16
//
//	[[node]]
//	path = "header"
//	kind = "boundary"
//	pos1 = ["20", "20"]
//	pos2 = ["100% - 20", "60"]
//
//	[[node]]
//	path = "body"
//	kind = "div"
//	[node.stack]
//	direction = "row"
//	gap = ["10", "0"]
//
// Lengths are textual unit expressions parsed by ParseValue.
package blueprint

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/tessera-ui/tessera"
)

// ErrBadDocument indicates a structurally invalid document, such as an
// unknown node kind or alignment name.
var ErrBadDocument = errors.New("bad blueprint document")

// Document is the top-level TOML shape.
type Document struct {
	FontSize  float32    `toml:"font_size"`
	AbsScale  float32    `toml:"abs_scale"`
	DepthStep *float32   `toml:"depth_step"`
	Root      string     `toml:"root"`
	Nodes     []NodeSpec `toml:"node"`
}

// NodeSpec declares one node. Which fields apply depends on kind; the
// rest must be left unset.
type NodeSpec struct {
	Path string `toml:"path"`
	Kind string `toml:"kind"`

	// boundary
	Pos1 []string `toml:"pos1"`
	Pos2 []string `toml:"pos2"`

	// window
	Pos    []string  `toml:"pos"`
	Size   []string  `toml:"size"`
	Anchor []float32 `toml:"anchor"`

	// solid
	Ratio   []float32 `toml:"ratio"`
	Align   []float32 `toml:"align"`
	Scaling string    `toml:"scaling"`

	// div
	MinSize []string   `toml:"min_size"`
	MaxSize []string   `toml:"max_size"`
	Stack   *StackSpec `toml:"stack"`

	DepthBias float32 `toml:"depth_bias"`
	FontSize  float32 `toml:"font_size"`
}

// StackSpec declares the flow of a div's children.
type StackSpec struct {
	Direction   string   `toml:"direction"`
	Wrap        bool     `toml:"wrap"`
	Gap         []string `toml:"gap"`
	MarginStart string   `toml:"margin_start"`
	MarginEnd   string   `toml:"margin_end"`
	AlignMain   string   `toml:"align_main"`
	AlignCross  string   `toml:"align_cross"`
}

// Loader builds trees from TOML documents. The zero value is ready to
// use; set Logger to surface notices about ignored document keys.
type Loader struct {
	Logger *log.Logger
}

// Load reads a TOML document from r and builds a Tree. Extra options
// are applied after the document's own configuration, so they win.
func (l Loader) Load(r io.Reader, opts ...tessera.Option) (*tessera.Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return l.Build(data, opts...)
}

// Build parses a TOML document and constructs the tree it declares.
func (l Loader) Build(data []byte, opts ...tessera.Option) (*tessera.Tree, error) {
	var doc Document
	md, err := toml.Decode(string(data), &doc)
	if err != nil {
		return nil, fmt.Errorf("parse blueprint: %w", err)
	}
	if l.Logger != nil {
		for _, key := range md.Undecoded() {
			l.Logger.Warn("ignoring unknown blueprint key", "key", key.String())
		}
	}
	return buildTree(doc, opts)
}

// Load builds a Tree from a TOML document without notice logging.
func Load(r io.Reader, opts ...tessera.Option) (*tessera.Tree, error) {
	return Loader{}.Load(r, opts...)
}

func buildTree(doc Document, extra []tessera.Option) (*tessera.Tree, error) {
	var opts []tessera.Option
	if doc.FontSize != 0 {
		opts = append(opts, tessera.WithFontSize(doc.FontSize))
	}
	if doc.AbsScale != 0 {
		opts = append(opts, tessera.WithAbsScale(doc.AbsScale))
	}
	if doc.DepthStep != nil {
		opts = append(opts, tessera.WithDepthStep(*doc.DepthStep))
	}
	opts = append(opts, extra...)

	tree, err := tessera.NewWithRoot(doc.Root, opts...)
	if err != nil {
		return nil, err
	}

	for _, spec := range doc.Nodes {
		desc, err := spec.layout()
		if err != nil {
			return nil, fmt.Errorf("node %q: %w", spec.Path, err)
		}
		if _, err := tree.Create(spec.Path, desc); err != nil {
			return nil, err
		}
		if spec.Stack != nil {
			stack, err := spec.Stack.stack()
			if err != nil {
				return nil, fmt.Errorf("node %q: %w", spec.Path, err)
			}
			if err := tree.SetStack(spec.Path, stack); err != nil {
				return nil, err
			}
		}
		if spec.DepthBias != 0 {
			if err := tree.SetDepthBias(spec.Path, spec.DepthBias); err != nil {
				return nil, err
			}
		}
		if spec.FontSize != 0 {
			if err := tree.SetFontSize(spec.Path, spec.FontSize); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

func (spec NodeSpec) layout() (tessera.Layout, error) {
	switch spec.Kind {
	case "boundary":
		pos1, err := parseXY(spec.Pos1, "pos1")
		if err != nil {
			return nil, err
		}
		pos2, err := parseXY(spec.Pos2, "pos2")
		if err != nil {
			return nil, err
		}
		return tessera.Boundary{Pos1: pos1, Pos2: pos2}, nil

	case "window", "":
		if spec.Kind == "" && spec.Pos == nil && spec.Size == nil {
			return tessera.DefaultLayout(), nil
		}
		pos, err := parseXY(spec.Pos, "pos")
		if err != nil {
			return nil, err
		}
		size, err := parseXY(spec.Size, "size")
		if err != nil {
			return nil, err
		}
		anchor, err := pair(spec.Anchor, "anchor")
		if err != nil {
			return nil, err
		}
		return tessera.Window{Pos: pos, Size: size, Anchor: anchor}, nil

	case "solid":
		ratio, err := pair(spec.Ratio, "ratio")
		if err != nil {
			return nil, err
		}
		align, err := pair(spec.Align, "align")
		if err != nil {
			return nil, err
		}
		scaling, err := parseScaling(spec.Scaling)
		if err != nil {
			return nil, err
		}
		return tessera.Solid{
			Size:    ratio,
			AlignX:  tessera.Align(align.X),
			AlignY:  tessera.Align(align.Y),
			Scaling: scaling,
		}, nil

	case "div":
		minSize, err := parseXY(spec.MinSize, "min_size")
		if err != nil {
			return nil, err
		}
		maxSize, err := parseXY(spec.MaxSize, "max_size")
		if err != nil {
			return nil, err
		}
		return tessera.Div{MinSize: minSize, MaxSize: maxSize}, nil

	default:
		return nil, fmt.Errorf("unknown kind %q: %w", spec.Kind, ErrBadDocument)
	}
}

func (spec StackSpec) stack() (tessera.Stack, error) {
	var out tessera.Stack
	var err error
	if out.Direction, err = parseDirection(spec.Direction); err != nil {
		return out, err
	}
	if out.AlignMain, err = parseMainAlign(spec.AlignMain); err != nil {
		return out, err
	}
	if out.AlignCross, err = parseCrossAlign(spec.AlignCross); err != nil {
		return out, err
	}
	if out.Gap, err = parseXY(spec.Gap, "gap"); err != nil {
		return out, err
	}
	if spec.MarginStart != "" {
		if out.Margin.Start, err = ParseValue(spec.MarginStart); err != nil {
			return out, fmt.Errorf("margin_start: %w", err)
		}
	}
	if spec.MarginEnd != "" {
		if out.Margin.End, err = ParseValue(spec.MarginEnd); err != nil {
			return out, fmt.Errorf("margin_end: %w", err)
		}
	}
	out.Wrap = spec.Wrap
	return out, nil
}

func pair(vals []float32, field string) (tessera.Vec2, error) {
	switch len(vals) {
	case 0:
		return tessera.Vec2{}, nil
	case 2:
		return tessera.Vec2{X: vals[0], Y: vals[1]}, nil
	default:
		return tessera.Vec2{}, fmt.Errorf("%s: want [x, y], got %d elements: %w", field, len(vals), ErrBadDocument)
	}
}

func parseDirection(s string) (tessera.Direction, error) {
	switch s {
	case "row", "":
		return tessera.Row, nil
	case "column":
		return tessera.Column, nil
	case "row-reverse":
		return tessera.RowReverse, nil
	case "column-reverse":
		return tessera.ColumnReverse, nil
	default:
		return 0, fmt.Errorf("unknown direction %q: %w", s, ErrBadDocument)
	}
}

func parseMainAlign(s string) (tessera.MainAlign, error) {
	switch s {
	case "start", "":
		return tessera.MainStart, nil
	case "center":
		return tessera.MainCenter, nil
	case "end":
		return tessera.MainEnd, nil
	case "space-between":
		return tessera.MainSpaceBetween, nil
	case "space-around":
		return tessera.MainSpaceAround, nil
	default:
		return 0, fmt.Errorf("unknown align_main %q: %w", s, ErrBadDocument)
	}
}

func parseCrossAlign(s string) (tessera.CrossAlign, error) {
	switch s {
	case "start", "":
		return tessera.CrossStart, nil
	case "center":
		return tessera.CrossCenter, nil
	case "end":
		return tessera.CrossEnd, nil
	case "stretch":
		return tessera.CrossStretch, nil
	default:
		return 0, fmt.Errorf("unknown align_cross %q: %w", s, ErrBadDocument)
	}
}

func parseScaling(s string) (tessera.Scaling, error) {
	switch s {
	case "fit", "":
		return tessera.ScaleFit, nil
	case "fill":
		return tessera.ScaleFill, nil
	case "hor-fill":
		return tessera.ScaleHorFill, nil
	case "ver-fill":
		return tessera.ScaleVerFill, nil
	default:
		return 0, fmt.Errorf("unknown scaling %q: %w", s, ErrBadDocument)
	}
}
