// Sentinel errors for the builder package.
//
// Error policy, matching the rest of the module:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Constructors attach context by wrapping a sentinel with the
//     constructor name via %w; sentinels themselves stay unformatted.
//   - Constructors never panic.
package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a size parameter below the constructor's
// minimum (Path/Complete/Star need n ≥ 1, Cycle needs n ≥ 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrEdgeRejected indicates the target graph refused an edge required by
// the topology. With a simple representation this means the ordered pair
// was already connected before the constructor ran.
var ErrEdgeRejected = errors.New("builder: edge rejected by graph")

// wrapf prefixes err with the constructor name and formatted context,
// preserving the sentinel for errors.Is.
func wrapf(constructor, format string, err error, args ...any) error {
	return fmt.Errorf("%s: %s: %w", constructor, fmt.Sprintf(format, args...), err)
}
