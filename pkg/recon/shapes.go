// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package recon

import (
	"github.com/pkg/errors"
	"github.com/transientlab/nlos/pkg/core/layouts"
)

var (
	sensorGridAxes = map[string]string{
		layouts.AxisX:     layouts.AxisSensorX,
		layouts.AxisY:     layouts.AxisSensorY,
		layouts.AxisPoint: layouts.AxisSensorIndex,
	}
	laserGridAxes = map[string]string{
		layouts.AxisX:     layouts.AxisLaserX,
		layouts.AxisY:     layouts.AxisLaserY,
		layouts.AxisPoint: layouts.AxisLaserIndex,
	}
)

// CheckShapes binds the dimensions of the input arrays to the configured layouts, and checks they are
// consistent: the sensor (and laser) grid must have as many points as the sensor (and laser) axes of H.
//
// laserGridDims may be nil if H has no laser axes. The returned bindings use the axis names of H for the
// grids and the volume axis names for the volume.
func (c *Config) CheckShapes(hDims, sensorGridDims, laserGridDims, volumeDims []int) (layouts.AxisBindings, error) {
	bindings, err := c.H.Bind(hDims)
	if err != nil {
		return nil, errors.WithMessage(err, "H")
	}

	sensor, err := c.SensorGrid.Bind(sensorGridDims)
	if err != nil {
		return nil, errors.WithMessage(err, "sensor grid")
	}
	if err := mergeGrid(bindings, sensor.Rename(sensorGridAxes),
		layouts.AxisSensorX, layouts.AxisSensorY, layouts.AxisSensorIndex); err != nil {
		return nil, errors.WithMessage(err, "sensor grid doesn't match H")
	}

	if c.H.HasLaserAxes() {
		if laserGridDims == nil {
			return nil, errors.Errorf("H layout %s has laser axes, a laser grid is required", c.H)
		}
		laser, err := c.LaserGrid.Bind(laserGridDims)
		if err != nil {
			return nil, errors.WithMessage(err, "laser grid")
		}
		if err := mergeGrid(bindings, laser.Rename(laserGridAxes),
			layouts.AxisLaserX, layouts.AxisLaserY, layouts.AxisLaserIndex); err != nil {
			return nil, errors.WithMessage(err, "laser grid doesn't match H")
		}
	}

	volume, err := c.Volume.Bind(volumeDims)
	if err != nil {
		return nil, errors.WithMessage(err, "volume")
	}
	if err := bindings.Merge(volume); err != nil {
		return nil, errors.WithMessage(err, "volume")
	}
	return bindings, nil
}

// mergeGrid merges the grid bindings into the H bindings. When one side is flattened (index axis) and the
// other is not (x and y axes), the number of points must match.
func mergeGrid(bindings, grid layouts.AxisBindings, xAxis, yAxis, indexAxis string) error {
	if err := bindings.Merge(grid); err != nil {
		return err
	}
	x, hasX := bindings[xAxis]
	y, hasY := bindings[yAxis]
	index, hasIndex := bindings[indexAxis]
	if hasX && hasY && hasIndex && x*y != index {
		return errors.Errorf("%s=%d points don't match %s x %s = %d x %d", indexAxis, index, xAxis, yAxis, x, y)
	}
	return nil
}
