// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

// Package recon holds the configuration of a reconstruction run, and derives from it the numerical
// strategy (Plan) a reconstruction engine should follow.
//
// A Config combines the declared capture format, the virtual camera system and the layouts of the input
// arrays. It is loaded once per run (see LoadConfig), validated, and then never changes.
package recon

import (
	"bytes"
	stderrors "errors"
	"os"

	"github.com/pkg/errors"
	"github.com/transientlab/nlos/pkg/core/camera"
	"github.com/transientlab/nlos/pkg/core/formats"
	"github.com/transientlab/nlos/pkg/core/layouts"
	"github.com/transientlab/nlos/pkg/support/fsutil"
	"gopkg.in/yaml.v3"
)

// Config of a reconstruction run.
//
// Enum fields are (un)marshaled by name, e.g.:
//
//	format: AUTODETECT
//	camera: CONFOCAL_TIME_GATED
//	h_layout: T_Sx_Sy
//	sensor_grid_layout: X_Y_3
//	volume_layout: X_Y_Z_3
type Config struct {
	// Format is the declared format of the capture file, FormatAutodetect to resolve it from the file.
	Format formats.FormatKind `json:"format" yaml:"format"`

	// Camera is the virtual camera system emulated. It defaults to camera.DirectLight.
	Camera camera.CameraSystem `json:"camera" yaml:"camera"`

	H          layouts.HLayout    `json:"h_layout" yaml:"h_layout"`
	SensorGrid layouts.GridLayout `json:"sensor_grid_layout" yaml:"sensor_grid_layout"`

	// LaserGrid is only required if H has laser axes (multiple illumination points).
	LaserGrid layouts.GridLayout `json:"laser_grid_layout,omitempty" yaml:"laser_grid_layout,omitempty"`

	Volume layouts.VolumeLayout `json:"volume_layout" yaml:"volume_layout"`
}

// DefaultConfig returns a configuration with an autodetected format, the DirectLight camera and all
// layouts unknown: the layouts must be filled by the loader or the user before it validates.
func DefaultConfig() *Config {
	return &Config{
		Format: formats.FormatAutodetect,
		Camera: camera.DirectLight,
	}
}

// ParseConfig parses a YAML configuration on top of DefaultConfig. Unknown fields are an error.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	if len(bytes.TrimSpace(data)) == 0 {
		return c, nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(c); err != nil {
		return nil, errors.Wrap(err, "failed to parse reconstruction configuration")
	}
	return c, nil
}

// LoadConfig reads a YAML configuration file. A leading "~" in path is expanded to the home directory.
// The configuration is not validated, see Config.Validate.
func LoadConfig(path string) (*Config, error) {
	path, err := fsutil.ExpandPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read reconstruction configuration %q", path)
	}
	c, err := ParseConfig(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "in %q", path)
	}
	return c, nil
}

// Validate checks that the configuration can be used for a reconstruction:
//
//   - The format is valid (FormatAutodetect is accepted, it is resolved when loading the capture).
//   - The camera system is valid.
//   - The H, sensor grid and volume layouts are known (a *layouts.PreconditionError otherwise).
//   - The laser grid layout is known if H has laser axes.
//   - Projector cameras are only used with H layouts that have laser axes.
//
// All problems found are reported, joined in one error.
func (c *Config) Validate() error {
	var errs []error
	if !c.Format.IsAFormatKind() {
		errs = append(errs, errors.Errorf("invalid format %s: options are %v", c.Format, formats.FormatKindValues()))
	}
	if !c.Camera.IsACameraSystem() {
		errs = append(errs, errors.Errorf("invalid camera system %s: options are %v",
			c.Camera, camera.CameraSystemValues()))
	}
	if _, err := layouts.NewKnownH(c.H); err != nil {
		errs = append(errs, errors.WithMessage(err, "h_layout"))
	}
	if _, err := layouts.NewKnownGrid(c.SensorGrid); err != nil {
		errs = append(errs, errors.WithMessage(err, "sensor_grid_layout"))
	}
	if _, err := layouts.NewKnownVolume(c.Volume); err != nil {
		errs = append(errs, errors.WithMessage(err, "volume_layout"))
	}

	if c.H.IsKnown() {
		hasLasers := c.H.HasLaserAxes()
		if hasLasers {
			if _, err := layouts.NewKnownGrid(c.LaserGrid); err != nil {
				errs = append(errs, errors.WithMessagef(err, "laser_grid_layout (required by h_layout %s)", c.H))
			}
		} else if c.LaserGrid != layouts.GridUnknown && !c.LaserGrid.IsKnown() {
			errs = append(errs, errors.Errorf("invalid laser_grid_layout %s", c.LaserGrid))
		}
		if c.Camera.IsACameraSystem() && c.Camera.RequiresMultipleIlluminationPoints() && !hasLasers {
			errs = append(errs, errors.Errorf(
				"camera %s requires multiple illumination points, but h_layout %s has no laser axes",
				c.Camera, c.H))
		}
	}
	return stderrors.Join(errs...)
}
