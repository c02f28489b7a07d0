// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package layouts

// KnownH is an HLayout that is guaranteed to be concrete: it can only be built from a known layout
// with NewKnownH or MustKnownH.
//
// The zero value is invalid (see IsValid).
type KnownH struct {
	layout HLayout
}

// NewKnownH returns a KnownH, or a *PreconditionError if l is HUnknown or invalid.
func NewKnownH(l HLayout) (KnownH, error) {
	if !l.IsKnown() {
		return KnownH{}, newPreconditionError(l, "NewKnownH")
	}
	return KnownH{layout: l}, nil
}

// MustKnownH is like NewKnownH, but panics on error.
func MustKnownH(l HLayout) KnownH {
	k, err := NewKnownH(l)
	if err != nil {
		panic(err)
	}
	return k
}

// Layout returns the underlying HLayout.
func (k KnownH) Layout() HLayout { return k.layout }

// IsValid returns false only for the zero value.
func (k KnownH) IsValid() bool { return k.layout.IsKnown() }

// TimeAxis returns the index of the time axis, always 0.
func (k KnownH) TimeAxis() int { return k.layout.TimeAxis() }

// String implements fmt.Stringer.
func (k KnownH) String() string { return k.layout.String() }

// KnownGrid is a GridLayout that is guaranteed to be concrete. The zero value is invalid.
type KnownGrid struct {
	layout GridLayout
}

// NewKnownGrid returns a KnownGrid, or a *PreconditionError if l is GridUnknown or invalid.
func NewKnownGrid(l GridLayout) (KnownGrid, error) {
	if !l.IsKnown() {
		return KnownGrid{}, newPreconditionError(l, "NewKnownGrid")
	}
	return KnownGrid{layout: l}, nil
}

// MustKnownGrid is like NewKnownGrid, but panics on error.
func MustKnownGrid(l GridLayout) KnownGrid {
	k, err := NewKnownGrid(l)
	if err != nil {
		panic(err)
	}
	return k
}

func (k KnownGrid) Layout() GridLayout { return k.layout }
func (k KnownGrid) IsValid() bool      { return k.layout.IsKnown() }
func (k KnownGrid) XYZAxis() int       { return k.layout.XYZAxis() }
func (k KnownGrid) String() string     { return k.layout.String() }

// KnownVolume is a VolumeLayout that is guaranteed to be concrete. The zero value is invalid.
type KnownVolume struct {
	layout VolumeLayout
}

// NewKnownVolume returns a KnownVolume, or a *PreconditionError if l is VolumeUnknown or invalid.
func NewKnownVolume(l VolumeLayout) (KnownVolume, error) {
	if !l.IsKnown() {
		return KnownVolume{}, newPreconditionError(l, "NewKnownVolume")
	}
	return KnownVolume{layout: l}, nil
}

// MustKnownVolume is like NewKnownVolume, but panics on error.
func MustKnownVolume(l VolumeLayout) KnownVolume {
	k, err := NewKnownVolume(l)
	if err != nil {
		panic(err)
	}
	return k
}

func (k KnownVolume) Layout() VolumeLayout { return k.layout }
func (k KnownVolume) IsValid() bool        { return k.layout.IsKnown() }
func (k KnownVolume) XYZAxis() int         { return k.layout.XYZAxis() }
func (k KnownVolume) String() string       { return k.layout.String() }
