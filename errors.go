package tessera

import "errors"

// Sentinel errors returned by tree mutations and reported by the
// solver. Match with errors.Is; returned errors wrap these with the
// offending path or name.
var (
	// ErrPathConflict indicates a malformed path: an empty path or an
	// empty segment ("a//b", leading or trailing slash).
	ErrPathConflict = errors.New("path conflict")

	// ErrDuplicateName indicates the terminal segment of a create
	// already exists among its siblings.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrNotFound indicates no node exists at the given path.
	ErrNotFound = errors.New("node not found")

	// ErrMergeCollision indicates a merge would insert a child whose
	// name already exists under the target. The tree is unchanged.
	ErrMergeCollision = errors.New("merge collision")

	// ErrInvalidDescriptor is reported by the solver for descriptors
	// that cannot be evaluated, such as a Solid with a zero or
	// negative ratio axis.
	ErrInvalidDescriptor = errors.New("invalid layout descriptor")

	// ErrNumericOverflow is reported by the solver when a computed
	// rectangle contains NaN or Inf. The subtree is hidden.
	ErrNumericOverflow = errors.New("numeric overflow")
)
