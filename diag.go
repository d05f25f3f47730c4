package tessera

import "fmt"

// Diagnostic records a solver problem at a node. The solver never
// aborts: offending subtrees are hidden and reported here instead.
type Diagnostic struct {
	Path string
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %v", d.Path, d.Err)
}

// Unwrap exposes the cause for errors.Is checks against the package
// sentinels.
func (d Diagnostic) Unwrap() error {
	return d.Err
}
