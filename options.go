package tessera

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Logger is the structured logger the kernel emits warnings through.
type Logger = log.Logger

// Defaults applied by New. Every one can be overridden with an option.
const (
	// DefaultFontSize is the ambient font size in pixels used when
	// Compute is called with a non-positive font size.
	DefaultFontSize float32 = 16

	// DefaultDepthStep is the depth added to each level of the tree so
	// children paint above their parents.
	DefaultDepthStep float32 = 10
)

func discardLogger() *Logger {
	return log.New(io.Discard)
}

// Option configures a Tree at construction time.
type Option func(*Tree) error

// WithFontSize sets the ambient font size in pixels. Must be positive.
func WithFontSize(px float32) Option {
	return func(t *Tree) error {
		if px <= 0 {
			return fmt.Errorf("font size must be positive, got %v", px)
		}
		t.fontSize = px
		return nil
	}
}

// WithAbsScale scales every absolute (pixel) term during evaluation.
// Useful for DPI-scaled hosts. Must be positive; default is 1.
func WithAbsScale(scale float32) Option {
	return func(t *Tree) error {
		if scale <= 0 {
			return fmt.Errorf("abs scale must be positive, got %v", scale)
		}
		t.absScale = scale
		return nil
	}
}

// WithDepthStep sets the depth added per tree level. Must not be
// negative; default is DefaultDepthStep.
func WithDepthStep(step float32) Option {
	return func(t *Tree) error {
		if step < 0 {
			return fmt.Errorf("depth step must not be negative, got %v", step)
		}
		t.depthStep = step
		return nil
	}
}

// WithLogger sets the logger solver warnings are written to. The
// default discards everything.
func WithLogger(l *Logger) Option {
	return func(t *Tree) error {
		if l == nil {
			return fmt.Errorf("logger must not be nil")
		}
		t.logger = l
		return nil
	}
}
