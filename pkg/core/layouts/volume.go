// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package layouts

// VolumeLayout describes the axis ordering of the arrays holding the points of the hidden scene where a
// reconstruction is evaluated.
//
// The last axis of every concrete layout has length 3 and holds the Cartesian coordinates.
type VolumeLayout int

const (
	// VolumeUnknown is the transitional value before the layout is known. It can't be used for indexing:
	// be explicit about the layout of the volume passed to a reconstruction.
	VolumeUnknown VolumeLayout = iota // UNKNOWN

	// VolumeN3 is a flattened list of points, a 2D array (N, 3).
	// Prefer VolumeXYZ3 or VolumeXY3 if the points form a regular grid.
	VolumeN3 // N_3

	// VolumeXYZ3 is a 3D grid of points, a 4D array (X, Y, Z, 3).
	VolumeXYZ3 // X_Y_Z_3

	// VolumeXY3 is a 2D grid of points, a 3D array (X, Y, 3).
	VolumeXY3 // X_Y_3
)

//go:generate go tool enumer -type=VolumeLayout -linecomment -values -text -json -yaml -output=gen_volumelayout_enumer.go volume.go

// IsKnown returns whether l is a concrete layout. It never panics.
func (l VolumeLayout) IsKnown() bool {
	return l != VolumeUnknown && l.IsAVolumeLayout()
}

func (l VolumeLayout) axes(query string) []string {
	switch l {
	case VolumeN3:
		return []string{AxisPoint, AxisXYZ}
	case VolumeXYZ3:
		return []string{AxisX, AxisY, AxisZ, AxisXYZ}
	case VolumeXY3:
		return []string{AxisX, AxisY, AxisXYZ}
	default:
		throwPrecondition(l, query)
	}
	return nil
}

// XYZIsLastAxis returns true: the coordinates axis is always the last one.
//
// It panics with a *PreconditionError if l is VolumeUnknown or not a valid VolumeLayout.
func (l VolumeLayout) XYZIsLastAxis() bool {
	_ = l.axes("VolumeLayout.XYZIsLastAxis")
	return true
}

// XYZAxis returns the index of the coordinates axis.
func (l VolumeLayout) XYZAxis() int {
	return len(l.axes("VolumeLayout.XYZAxis")) - 1
}

// Rank returns the number of axes of a volume array with this layout.
func (l VolumeLayout) Rank() int {
	return len(l.axes("VolumeLayout.Rank"))
}

// AxisNames returns the names of the axes, in order.
func (l VolumeLayout) AxisNames() []string {
	return l.axes("VolumeLayout.AxisNames")
}

// PointAxes returns the indices of the axes that index points (all but the last).
func (l VolumeLayout) PointAxes() []int {
	return pointAxes(l.axes("VolumeLayout.PointAxes"))
}

// IsStructured returns whether the points are laid out as a regular grid.
func (l VolumeLayout) IsStructured() bool {
	return len(l.axes("VolumeLayout.IsStructured")) > 2
}

// Bind checks the dimensions of a volume array against the layout, and returns the size of each named axis.
// The last dimension must be 3.
func (l VolumeLayout) Bind(dims []int) (AxisBindings, error) {
	if !l.IsKnown() {
		return nil, newPreconditionError(l, "VolumeLayout.Bind")
	}
	return bindAxes(l, l.axes("VolumeLayout.Bind"), dims)
}

func pointAxes(axes []string) []int {
	indices := make([]int, len(axes)-1)
	for ii := range indices {
		indices[ii] = ii
	}
	return indices
}
