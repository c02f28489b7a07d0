// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package recon

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/transientlab/nlos/pkg/core/camera"
	"github.com/transientlab/nlos/pkg/core/layouts"
	"k8s.io/klog/v2"
)

// Plan is the numerical strategy derived from a validated Config: the branches a reconstruction engine
// dispatches to.
type Plan struct {
	Camera camera.CameraSystem

	// TimeResolved selects a transient reconstruction loop, producing one volume per time bin,
	// instead of a single-frame reconstruction.
	TimeResolved bool

	// InverseSquareCorrection divides the backprojection by the squared propagation distance.
	InverseSquareCorrection bool

	// ProjectorPrepass runs the illumination-focusing pre-pass.
	ProjectorPrepass bool

	// EvaluateAtT0 evaluates the camera only at t = 0.
	EvaluateAtT0 bool

	H          layouts.KnownH
	SensorGrid layouts.KnownGrid
	Volume     layouts.KnownVolume

	// LaserGrid is only valid if H has laser axes.
	LaserGrid layouts.KnownGrid

	// OutputAxes are the axis names of the reconstruction: the point axes of the volume, preceded by
	// the time axis if TimeResolved.
	OutputAxes []string
}

// Plan validates the configuration and derives the reconstruction strategy from it.
func (c *Config) Plan() (*Plan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	props := c.Camera.Properties()
	p := &Plan{
		Camera:                  c.Camera,
		TimeResolved:            props.IsTransient,
		InverseSquareCorrection: props.AccountsForInverseSquareFalloff,
		ProjectorPrepass:        props.ImplementsProjector,
		EvaluateAtT0:            c.Camera.EvaluatesAtTimeZero(),
		H:                       layouts.MustKnownH(c.H),
		SensorGrid:              layouts.MustKnownGrid(c.SensorGrid),
		Volume:                  layouts.MustKnownVolume(c.Volume),
	}
	if c.H.HasLaserAxes() {
		p.LaserGrid = layouts.MustKnownGrid(c.LaserGrid)
	}

	volumeAxes := c.Volume.AxisNames()
	for _, axis := range c.Volume.PointAxes() {
		p.OutputAxes = append(p.OutputAxes, volumeAxes[axis])
	}
	if p.TimeResolved {
		p.OutputAxes = slices.Insert(p.OutputAxes, 0, layouts.AxisTime)
	}
	klog.V(1).Infof("recon: %s", p)
	return p, nil
}

// OutputShape returns the shape of the reconstruction for a volume array of the given dimensions.
// numTimeBins is only used if the plan is TimeResolved.
func (p *Plan) OutputShape(volumeDims []int, numTimeBins int) ([]int, error) {
	bindings, err := p.Volume.Layout().Bind(volumeDims)
	if err != nil {
		return nil, err
	}
	if p.TimeResolved {
		if numTimeBins <= 0 {
			return nil, errors.Errorf("time-resolved camera %s requires a positive number of time bins, got %d",
				p.Camera, numTimeBins)
		}
		bindings[layouts.AxisTime] = numTimeBins
	}
	shape := make([]int, len(p.OutputAxes))
	for ii, axis := range p.OutputAxes {
		shape[ii] = bindings[axis]
	}
	return shape, nil
}

// String implements fmt.Stringer.
func (p *Plan) String() string {
	return fmt.Sprintf("Plan{camera=%s, time_resolved=%t, inverse_square=%t, projector=%t, t0=%t, "+
		"h=%s, volume=%s, output=%v}",
		p.Camera, p.TimeResolved, p.InverseSquareCorrection, p.ProjectorPrepass, p.EvaluateAtT0,
		p.H, p.Volume, p.OutputAxes)
}
