// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package recon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transientlab/nlos/pkg/core/layouts"
)

func TestCheckShapes(t *testing.T) {
	c := confocalConfig()
	bindings, err := c.CheckShapes([]int{1024, 64, 32}, []int{64, 32, 3}, nil, []int{16, 16, 16, 3})
	require.NoError(t, err)
	assert.Equal(t, layouts.AxisBindings{
		"T": 1024, "Sx": 64, "Sy": 32, "XYZ": 3, "X": 16, "Y": 16, "Z": 16,
	}, bindings)

	// Flattened sensor grid against a structured H.
	c.SensorGrid = layouts.GridN3
	bindings, err = c.CheckShapes([]int{1024, 64, 32}, []int{2048, 3}, nil, []int{16, 16, 16, 3})
	require.NoError(t, err)
	assert.Equal(t, 2048, bindings["Si"])
	_, err = c.CheckShapes([]int{1024, 64, 32}, []int{2000, 3}, nil, []int{16, 16, 16, 3})
	require.ErrorContains(t, err, "sensor grid")

	// Mismatched sensor sizes.
	c.SensorGrid = layouts.GridXY3
	_, err = c.CheckShapes([]int{1024, 64, 32}, []int{32, 64, 3}, nil, []int{16, 16, 16, 3})
	require.ErrorContains(t, err, "conflicting sizes")

	// Bad ranks and coordinates.
	_, err = c.CheckShapes([]int{1024, 64}, []int{64, 32, 3}, nil, []int{16, 16, 16, 3})
	require.ErrorContains(t, err, "rank mismatch")
	_, err = c.CheckShapes([]int{1024, 64, 32}, []int{64, 32, 2}, nil, []int{16, 16, 16, 3})
	require.ErrorContains(t, err, "size 3")
	_, err = c.CheckShapes([]int{1024, 64, 32}, []int{64, 32, 3}, nil, []int{16, 16, 16})
	require.ErrorContains(t, err, "volume")

	// Unknown layouts.
	c.H = layouts.HUnknown
	_, err = c.CheckShapes([]int{1024, 64, 32}, []int{64, 32, 3}, nil, []int{16, 16, 16, 3})
	require.Error(t, err)
	assert.True(t, layouts.IsPreconditionError(err))
}

func TestCheckShapesLaserGrid(t *testing.T) {
	c := projectorConfig()
	hDims := []int{256, 8, 8, 32, 32}
	bindings, err := c.CheckShapes(hDims, []int{32, 32, 3}, []int{8, 8, 3}, []int{16, 16, 16, 3})
	require.NoError(t, err)
	assert.Equal(t, 8, bindings["Lx"])
	assert.Equal(t, 8, bindings["Ly"])

	_, err = c.CheckShapes(hDims, []int{32, 32, 3}, nil, []int{16, 16, 16, 3})
	require.ErrorContains(t, err, "laser grid is required")
	_, err = c.CheckShapes(hDims, []int{32, 32, 3}, []int{8, 4, 3}, []int{16, 16, 16, 3})
	require.ErrorContains(t, err, "laser grid")

	c.H = layouts.HTLiSi
	c.LaserGrid = layouts.GridXY3
	c.SensorGrid = layouts.GridN3
	bindings, err = c.CheckShapes([]int{256, 64, 1024}, []int{1024, 3}, []int{8, 8, 3}, []int{4096, 3})
	require.NoError(t, err)
	assert.Equal(t, 64, bindings["Li"])
	assert.Equal(t, 4096, bindings["N"])
	_, err = c.CheckShapes([]int{256, 60, 1024}, []int{1024, 3}, []int{8, 8, 3}, []int{4096, 3})
	require.ErrorContains(t, err, "Li=60")
}
