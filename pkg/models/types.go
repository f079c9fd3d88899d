package models

// Segment is one step of a Path: either an object key or an array index.
type Segment struct {
	Key   string
	Index int
	IsKey bool
}

// Key builds an object-key segment.
func Key(k string) Segment {
	return Segment{Key: k, IsKey: true}
}

// Index builds an array-index segment.
func Index(i int) Segment {
	return Segment{Index: i}
}

// Path locates a value inside a document. The empty path is the root.
// A Path captured for an edit is never mutated afterwards; Clone before
// storing one that outlives its source.
type Path []Segment

func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Child returns a new path extended by one segment.
func (p Path) Child(seg Segment) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, seg)
}

// RowType tags what kind of child a row represents.
type RowType int

const (
	RowScalar RowType = iota
	RowArray
	RowObject
)

// Row is one displayable unit of a node: an optional key, an optional
// scalar value, and a type tag. Container rows carry no scalar value.
type Row struct {
	Key    string
	HasKey bool
	Value  any
	Type   RowType
}

// NodeData is an immutable snapshot of one node of the visualized
// structure: its identity, its address, and its rows in display order.
type NodeData struct {
	ID   string
	Path Path
	Rows []Row
}

// Format carries the formatting options used when new text is written
// into a document.
type Format struct {
	Indent int
}

// DefaultFormat matches the two-space indentation the editor displays.
func DefaultFormat() Format {
	return Format{Indent: 2}
}
