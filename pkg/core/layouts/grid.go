// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package layouts

// GridLayout describes the axis ordering of the arrays holding sensor or laser (illumination) positions.
//
// The last axis of every concrete layout has length 3 and holds the Cartesian coordinates.
type GridLayout int

const (
	// GridUnknown is the transitional value before the layout is known. It can't be used for indexing.
	GridUnknown GridLayout = iota // UNKNOWN

	// GridN3 is a flattened list of points, a 2D array (N, 3).
	// Prefer GridXY3 if the points do form a regular 2D grid: some algorithms exploit that.
	GridN3 // N_3

	// GridXY3 is a 2D grid of points, a 3D array (X, Y, 3).
	GridXY3 // X_Y_3
)

//go:generate go tool enumer -type=GridLayout -linecomment -values -text -json -yaml -output=gen_gridlayout_enumer.go grid.go

// IsKnown returns whether l is a concrete layout. It never panics.
func (l GridLayout) IsKnown() bool {
	return l != GridUnknown && l.IsAGridLayout()
}

func (l GridLayout) axes(query string) []string {
	switch l {
	case GridN3:
		return []string{AxisPoint, AxisXYZ}
	case GridXY3:
		return []string{AxisX, AxisY, AxisXYZ}
	default:
		throwPrecondition(l, query)
	}
	return nil
}

// XYZIsLastAxis returns true: the coordinates axis is always the last one.
//
// It panics with a *PreconditionError if l is GridUnknown or not a valid GridLayout.
func (l GridLayout) XYZIsLastAxis() bool {
	_ = l.axes("GridLayout.XYZIsLastAxis")
	return true
}

// XYZAxis returns the index of the coordinates axis.
func (l GridLayout) XYZAxis() int {
	return len(l.axes("GridLayout.XYZAxis")) - 1
}

// Rank returns the number of axes of a grid array with this layout.
func (l GridLayout) Rank() int {
	return len(l.axes("GridLayout.Rank"))
}

// AxisNames returns the names of the axes, in order.
func (l GridLayout) AxisNames() []string {
	return l.axes("GridLayout.AxisNames")
}

// PointAxes returns the indices of the axes that index points (all but the last).
func (l GridLayout) PointAxes() []int {
	return pointAxes(l.axes("GridLayout.PointAxes"))
}

// IsStructured returns whether the points are laid out as a regular grid, as opposed to a flat list.
func (l GridLayout) IsStructured() bool {
	return len(l.axes("GridLayout.IsStructured")) > 2
}

// Bind checks the dimensions of a grid array against the layout, and returns the size of each named axis.
// The last dimension must be 3.
func (l GridLayout) Bind(dims []int) (AxisBindings, error) {
	if !l.IsKnown() {
		return nil, newPreconditionError(l, "GridLayout.Bind")
	}
	return bindAxes(l, l.axes("GridLayout.Bind"), dims)
}
