package ising

// Boundary selects how edge-site neighbors are derived during a sweep.
type Boundary uint8

const (
	// Open treats neighbors beyond a grid edge as spin 0.
	Open Boundary = iota
	// Periodic wraps the grid toroidally.
	Periodic
)

// ParseBoundary maps the external selector strings "OBC" and "PBC" onto
// boundary policies. Any other value is rejected with ErrInvalidBoundary.
func ParseBoundary(s string) (Boundary, error) {
	switch s {
	case "OBC":
		return Open, nil
	case "PBC":
		return Periodic, nil
	default:
		return 0, ErrInvalidBoundary
	}
}

func (b Boundary) String() string {
	switch b {
	case Open:
		return "OBC"
	case Periodic:
		return "PBC"
	default:
		return "invalid"
	}
}

func (b Boundary) valid() bool {
	return b == Open || b == Periodic
}
