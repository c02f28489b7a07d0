// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

// Package layouts defines the axis-ordering conventions of the arrays exchanged between capture-data loaders
// and reconstruction engines: the impulse response H, the sensor/laser grids and the reconstruction volumes.
//
// Numeric code should never hardcode axis positions inline: it asks the layout instead (e.g. HLayout.TimeAxis
// or VolumeLayout.XYZAxis).
//
// Each layout type has an Unknown value. It is a valid transitional state (e.g. before a loader has read
// the layout from the file metadata), but it is a programming error to use it for indexing: every
// introspection query panics with a *PreconditionError on it. Use the Known* types (KnownH, KnownGrid and
// KnownVolume) to carry layouts that are guaranteed to be concrete.
package layouts

import (
	"slices"
)

// Axis names used by the layouts and by AxisBindings.
const (
	AxisTime        = "T"
	AxisLaserX      = "Lx"
	AxisLaserY      = "Ly"
	AxisLaserIndex  = "Li"
	AxisSensorX     = "Sx"
	AxisSensorY     = "Sy"
	AxisSensorIndex = "Si"

	AxisPoint = "N"
	AxisX     = "X"
	AxisY     = "Y"
	AxisZ     = "Z"

	// AxisXYZ is the last axis of grids and volumes, always of length 3 (the Cartesian coordinates).
	AxisXYZ = "XYZ"
)

// HLayout describes the axis ordering of an impulse response array H.
//
// For every concrete layout the time axis is the first one (axis 0).
type HLayout int

const (
	// HUnknown is the transitional value before the layout is known. It can't be used for indexing.
	HUnknown HLayout = iota // UNKNOWN

	// HTSxSy is a 3D array (T, Sx, Sy). Confocal or not: sensor axes may be singleton.
	HTSxSy // T_Sx_Sy

	// HTLxLySxSy is a 5D array (T, Lx, Ly, Sx, Sy).
	HTLxLySxSy // T_Lx_Ly_Sx_Sy

	// HTSi is a 2D array (T, Si), with a flattened sensor index. Confocal or not.
	HTSi // T_Si

	// HTLiSi is a 3D array (T, Li, Si), with flattened laser and sensor indices.
	HTLiSi // T_Li_Si
)

//go:generate go tool enumer -type=HLayout -linecomment -values -text -json -yaml -output=gen_hlayout_enumer.go h.go

// IsKnown returns whether l is a concrete layout, that is, a member of the enum other than HUnknown.
// It never panics.
func (l HLayout) IsKnown() bool {
	return l != HUnknown && l.IsAHLayout()
}

// axes returns the axis names of the layout, or panics with a *PreconditionError naming query.
func (l HLayout) axes(query string) []string {
	switch l {
	case HTSxSy:
		return []string{AxisTime, AxisSensorX, AxisSensorY}
	case HTLxLySxSy:
		return []string{AxisTime, AxisLaserX, AxisLaserY, AxisSensorX, AxisSensorY}
	case HTSi:
		return []string{AxisTime, AxisSensorIndex}
	case HTLiSi:
		return []string{AxisTime, AxisLaserIndex, AxisSensorIndex}
	default:
		throwPrecondition(l, query)
	}
	return nil
}

// TimeAxis returns the index of the time (T) axis, which is always 0.
//
// It panics with a *PreconditionError if l is HUnknown or not a valid HLayout.
func (l HLayout) TimeAxis() int {
	_ = l.axes("HLayout.TimeAxis")
	return 0
}

// Rank returns the number of axes of an H array with this layout.
func (l HLayout) Rank() int {
	return len(l.axes("HLayout.Rank"))
}

// AxisNames returns the names of the axes, in order. The returned slice is owned by the caller.
func (l HLayout) AxisNames() []string {
	return l.axes("HLayout.AxisNames")
}

// SensorAxes returns the indices of the sensor axes (Sx and Sy, or Si).
func (l HLayout) SensorAxes() []int {
	return axesIn(l.axes("HLayout.SensorAxes"), AxisSensorX, AxisSensorY, AxisSensorIndex)
}

// LaserAxes returns the indices of the laser axes (Lx and Ly, or Li).
// It is empty for layouts that carry a single illumination point.
func (l HLayout) LaserAxes() []int {
	return axesIn(l.axes("HLayout.LaserAxes"), AxisLaserX, AxisLaserY, AxisLaserIndex)
}

// HasLaserAxes returns whether the layout can hold multiple illumination points,
// as required by the projector camera systems.
func (l HLayout) HasLaserAxes() bool {
	return len(l.LaserAxes()) > 0
}

// IsFlattened returns whether the sensor (and laser, if present) points are flattened into a single index axis.
func (l HLayout) IsFlattened() bool {
	axes := l.axes("HLayout.IsFlattened")
	return slices.Contains(axes, AxisSensorIndex)
}

// Bind checks the dimensions of an H array against the layout, and returns the size of each named axis.
//
// It returns a *PreconditionError if l is not known, or an error if the rank doesn't match.
func (l HLayout) Bind(dims []int) (AxisBindings, error) {
	if !l.IsKnown() {
		return nil, newPreconditionError(l, "HLayout.Bind")
	}
	return bindAxes(l, l.axes("HLayout.Bind"), dims)
}

// axesIn returns the indices of the axes whose name is one of names.
func axesIn(axes []string, names ...string) []int {
	var indices []int
	for ii, axis := range axes {
		if slices.Contains(names, axis) {
			indices = append(indices, ii)
		}
	}
	return indices
}
