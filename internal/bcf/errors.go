package bcf

import (
	"errors"
	"fmt"
)

// ErrParse marks a malformed BCF package. An import that fails with ErrParse
// has not produced any partial result.
var ErrParse = errors.New("malformed bcf package")

// ErrNoViewpoint marks an export attempt for a topic with no resolvable
// viewpoint.
var ErrNoViewpoint = errors.New("topic has no viewpoint")

func parseErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrParse, fmt.Sprintf(format, args...))
}
