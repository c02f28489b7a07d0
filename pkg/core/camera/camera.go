// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

// Package camera defines the virtual camera systems emulated by NLOS reconstructions.
//
// Reconstruction algorithms work as a virtual camera system, which can focus at different points of the
// hidden scene and virtually illuminate other points. The CameraSystem chooses the behaviour of that virtual
// camera, and reconstruction engines query its derived properties (see Properties) to select which
// numerical branch to run:
//
//   - AccountsForInverseSquareFalloff: whether backprojection divides by the squared propagation distance.
//   - IsTransient: whether the result is a time-indexed sequence of volumes, instead of a single volume.
//   - ImplementsProjector: whether the illumination-side focusing pre-pass is run.
//
// See the supplementary material of "Non-Line-of-Sight Imaging using Phasor Field Virtual Wave Optics"
// (section A and tables S.2 and S.3) for the camera systems, and "Virtual light transport matrices for
// non-line-of-sight imaging" for the projector cameras.
package camera

import (
	"github.com/gomlx/exceptions"
)

// CameraSystem selects the virtual imaging modality of a reconstruction.
// It is configured once per reconstruction run and never changes during it.
//
// The zero value is DirectLight.
type CameraSystem int

const (
	// DirectLight is a confocal camera evaluated at t = 0. The most common NLOS reconstruction system.
	DirectLight CameraSystem = iota // DIRECT_LIGHT

	// ConfocalTimeGated is a confocal camera with time gating (pulsed focused light).
	// It computes a video of the scene (t >= 0): the reconstruction has an extra time axis.
	ConfocalTimeGated // CONFOCAL_TIME_GATED

	// ProjectorCamera focuses the illumination aperture to a point in the hidden volume.
	// It requires data with multiple illumination points.
	ProjectorCamera // PROJECTOR_CAMERA

	// ProjectorCameraT0 is ProjectorCamera evaluated at t = 0.
	ProjectorCameraT0 // PROJECTOR_CAMERA_T0

	// Transient is a non-confocal camera with a pulsed point light.
	// It computes a video of the scene (t >= 0): the reconstruction has an extra time axis.
	Transient // TRANSIENT

	// TransientT0 is Transient evaluated at t = 0.
	TransientT0 // TRANSIENT_T0
)

//go:generate go tool enumer -type=CameraSystem -linecomment -values -text -json -yaml -output=gen_camerasystem_enumer.go camera.go

// Properties are the behavior flags derived from a CameraSystem.
type Properties struct {
	// AccountsForInverseSquareFalloff governs whether the backprojection integral divides by the squared
	// propagation distance.
	AccountsForInverseSquareFalloff bool

	// IsTransient governs whether the reconstruction produces a time-indexed sequence of volumes.
	IsTransient bool

	// ImplementsProjector governs whether the illumination-side focusing logic is invoked.
	ImplementsProjector bool
}

// Properties returns the derived behavior flags of the camera system.
//
// This is the only place where the behavior table is defined: new camera systems must be added here
// before they can be used.
// It panics if c is not a valid CameraSystem.
func (c CameraSystem) Properties() Properties {
	switch c {
	case DirectLight:
		return Properties{AccountsForInverseSquareFalloff: true}
	case ConfocalTimeGated:
		return Properties{AccountsForInverseSquareFalloff: true, IsTransient: true}
	case ProjectorCamera:
		return Properties{AccountsForInverseSquareFalloff: true, IsTransient: true, ImplementsProjector: true}
	case ProjectorCameraT0:
		return Properties{AccountsForInverseSquareFalloff: true, ImplementsProjector: true}
	case Transient:
		return Properties{IsTransient: true}
	case TransientT0:
		return Properties{}
	default:
		exceptions.Panicf("invalid camera system %s: options are %v", c, CameraSystemValues())
	}
	return Properties{}
}

// AccountsForInverseSquareFalloff returns whether the backprojection must divide by the squared propagation
// distance.
func (c CameraSystem) AccountsForInverseSquareFalloff() bool {
	return c.Properties().AccountsForInverseSquareFalloff
}

// IsTransient returns whether the reconstruction is a time-resolved video (an extra time axis)
// instead of a single volume.
func (c CameraSystem) IsTransient() bool {
	return c.Properties().IsTransient
}

// ImplementsProjector returns whether the camera focuses the illumination aperture.
func (c CameraSystem) ImplementsProjector() bool {
	return c.Properties().ImplementsProjector
}

// RequiresMultipleIlluminationPoints returns whether the capture data must have multiple laser points.
func (c CameraSystem) RequiresMultipleIlluminationPoints() bool {
	return c.ImplementsProjector()
}

// EvaluatesAtTimeZero returns whether the camera is evaluated only at t = 0.
func (c CameraSystem) EvaluatesAtTimeZero() bool {
	switch c {
	case DirectLight, ProjectorCameraT0, TransientT0:
		return true
	case ConfocalTimeGated, ProjectorCamera, Transient:
		return false
	default:
		exceptions.Panicf("invalid camera system %s: options are %v", c, CameraSystemValues())
	}
	return false
}

// IsConfocal returns whether the virtual illumination and sensing share the same point.
// It panics if c is not a valid CameraSystem.
func (c CameraSystem) IsConfocal() bool {
	switch c {
	case DirectLight, ConfocalTimeGated:
		return true
	case ProjectorCamera, ProjectorCameraT0, Transient, TransientT0:
		return false
	default:
		exceptions.Panicf("invalid camera system %s: options are %v", c, CameraSystemValues())
	}
	return false
}

// PropertyTable returns the derived properties of every camera system.
// The returned map is owned by the caller.
func PropertyTable() map[CameraSystem]Properties {
	table := make(map[CameraSystem]Properties, len(CameraSystemValues()))
	for _, c := range CameraSystemValues() {
		table[c] = c.Properties()
	}
	return table
}

// FromName converts the name of a camera system (e.g. "direct_light" or "TRANSIENT_T0") to its value.
// An empty name is converted to the default, DirectLight.
// It panics with a helpful message if name is invalid.
func FromName(name string) CameraSystem {
	if name == "" {
		return DirectLight
	}
	c, err := CameraSystemString(name)
	if err != nil {
		exceptions.Panicf("invalid camera system name %q: options are %v", name, CameraSystemValues())
	}
	return c
}
