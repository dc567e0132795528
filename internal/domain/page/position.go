package page

// Position is where a moved page lands relative to the target page.
type Position string

// Supported move positions.
const (
	PositionLastChild Position = "last-child"
	PositionLeft      Position = "left"
	PositionRight     Position = "right"
)

// IsValid reports whether p is a supported move position.
func (p Position) IsValid() bool {
	switch p {
	case PositionLastChild, PositionLeft, PositionRight:
		return true
	default:
		return false
	}
}

// String returns the position's wire form.
func (p Position) String() string {
	return string(p)
}

// NewParent returns the parent the moved page will have after landing at p
// relative to target: the target itself for last-child, otherwise the
// target's own parent.
func (p Position) NewParent(target *Page) *int64 {
	if p == PositionLastChild {
		id := target.ID
		return &id
	}
	if target.ParentID == nil {
		return nil
	}
	parent := *target.ParentID
	return &parent
}
