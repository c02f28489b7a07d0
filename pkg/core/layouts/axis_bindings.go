// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package layouts

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// AxisBindings maps axis names (see the Axis* constants) to the concrete size of that axis in an array.
// Bindings from different arrays (H, grids, volume) can be merged to check they are consistent.
type AxisBindings map[string]int

// Key formats the bindings as "name=size" pairs joined by commas, in axis-name order, so equal bindings
// always produce the same string. It is "" for empty bindings.
func (ab AxisBindings) Key() string {
	var sb strings.Builder
	for ii, name := range slices.Sorted(maps.Keys(ab)) {
		if ii > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(strconv.Itoa(ab[name]))
	}
	return sb.String()
}

// Clone returns an independent copy, nil if ab is nil.
func (ab AxisBindings) Clone() AxisBindings {
	return maps.Clone(ab)
}

// Merge combines bindings from another AxisBindings into this one.
// Returns an error if there are conflicting sizes for the same axis name, in which case ab is left
// unchanged.
func (ab AxisBindings) Merge(other AxisBindings) error {
	for name, val := range other {
		if existing, ok := ab[name]; ok && existing != val {
			return errors.Errorf("conflicting sizes for axis %q: %d vs %d", name, existing, val)
		}
	}
	for name, val := range other {
		ab[name] = val
	}
	return nil
}

// Rename returns a copy of the bindings with the axes renamed according to names.
// Axes not listed in names keep their name.
//
// It is used to bind a generic grid (axes X, Y or N) to the sensor or laser axes of H.
func (ab AxisBindings) Rename(names map[string]string) AxisBindings {
	renamed := make(AxisBindings, len(ab))
	for name, val := range ab {
		if newName, found := names[name]; found {
			name = newName
		}
		renamed[name] = val
	}
	return renamed
}

// bindAxes matches dims to the axes names of layout.
func bindAxes(layout fmt.Stringer, axes []string, dims []int) (AxisBindings, error) {
	if len(dims) != len(axes) {
		return nil, errors.Errorf("rank mismatch: layout %s has %d axes %v, array has %d dimensions %v",
			layout, len(axes), axes, len(dims), dims)
	}
	bindings := make(AxisBindings, len(axes))
	for ii, axis := range axes {
		if dims[ii] < 0 {
			return nil, errors.Errorf("invalid dimension %d for axis %q of layout %s", dims[ii], axis, layout)
		}
		if axis == AxisXYZ && dims[ii] != 3 {
			return nil, errors.Errorf("layout %s requires the last axis to hold xyz coordinates (size 3), got %d",
				layout, dims[ii])
		}
		bindings[axis] = dims[ii]
	}
	return bindings, nil
}
