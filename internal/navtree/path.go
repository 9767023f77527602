package navtree

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPath = errors.New("invalid nav path")

// ParsePath splits a dotted path like "Apps.Demo" into its segments.
// Segment names cannot contain the separator, hence empty segments are always a caller error.
func ParsePath(dotted string) (Path, error) {
	if dotted == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	segments := strings.Split(dotted, Separator)
	for i, segment := range segments {
		if segment == "" {
			return nil, fmt.Errorf(`%w: segment %d of "%s" is empty`, ErrInvalidPath, i+1, dotted)
		}
	}
	return Path(segments), nil
}

func (p Path) String() string {
	return strings.Join(p, Separator)
}

// Last returns the final segment, i.e. the name of the addressed entry.
func (p Path) Last() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// Parent returns all segments but the last.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1]
}

// Child appends a segment without modifying the receiver.
func (p Path) Child(name string) Path {
	child := make(Path, len(p), len(p)+1)
	copy(child, p)
	return append(child, name)
}
