// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package recon

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transientlab/nlos/pkg/core/camera"
	"github.com/transientlab/nlos/pkg/core/formats"
	"github.com/transientlab/nlos/pkg/core/layouts"
	"gopkg.in/yaml.v3"
)

// confocalConfig is a valid single-illumination configuration.
func confocalConfig() *Config {
	return &Config{
		Format:     formats.FormatHDF5TAL,
		Camera:     camera.ConfocalTimeGated,
		H:          layouts.HTSxSy,
		SensorGrid: layouts.GridXY3,
		Volume:     layouts.VolumeXYZ3,
	}
}

// projectorConfig is a valid multi-illumination configuration.
func projectorConfig() *Config {
	return &Config{
		Format:     formats.FormatAutodetect,
		Camera:     camera.ProjectorCamera,
		H:          layouts.HTLxLySxSy,
		SensorGrid: layouts.GridXY3,
		LaserGrid:  layouts.GridXY3,
		Volume:     layouts.VolumeXYZ3,
	}
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	assert.Equal(t, formats.FormatAutodetect, c.Format)
	assert.Equal(t, camera.DirectLight, c.Camera)
	assert.Equal(t, layouts.HUnknown, c.H)

	// Layouts must be set before it validates.
	err := c.Validate()
	require.Error(t, err)
	assert.True(t, layouts.IsPreconditionError(err))
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`
format: hdf5_tal
camera: PROJECTOR_CAMERA_T0
h_layout: T_Li_Si
sensor_grid_layout: N_3
laser_grid_layout: N_3
volume_layout: N_3
`))
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Format:     formats.FormatHDF5TAL,
		Camera:     camera.ProjectorCameraT0,
		H:          layouts.HTLiSi,
		SensorGrid: layouts.GridN3,
		LaserGrid:  layouts.GridN3,
		Volume:     layouts.VolumeN3,
	}, c)
	require.NoError(t, c.Validate())

	// Missing fields take the default values.
	c, err = ParseConfig([]byte("h_layout: T_Sx_Sy\n"))
	require.NoError(t, err)
	assert.Equal(t, camera.DirectLight, c.Camera)
	assert.Equal(t, formats.FormatAutodetect, c.Format)
	assert.Equal(t, layouts.HTSxSy, c.H)

	c, err = ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	_, err = ParseConfig([]byte("camera: PINHOLE\n"))
	require.Error(t, err)

	_, err = ParseConfig([]byte("lens: 50mm\n"))
	require.Error(t, err, "unknown fields should be rejected")
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recon.yaml")
	data, err := yaml.Marshal(projectorConfig())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, projectorConfig(), c)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestConfigMarshaling(t *testing.T) {
	c := confocalConfig()
	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"format":"HDF5_TAL", "camera":"CONFOCAL_TIME_GATED", "h_layout":"T_Sx_Sy",
		"sensor_grid_layout":"X_Y_3", "volume_layout":"X_Y_Z_3"}`, string(data))
	var decoded Config
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *c, decoded)

	data, err = yaml.Marshal(c)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "laser_grid_layout")
	assert.Contains(t, string(data), "camera: CONFOCAL_TIME_GATED")
}

func TestValidate(t *testing.T) {
	require.NoError(t, confocalConfig().Validate())
	require.NoError(t, projectorConfig().Validate())

	testCases := []struct {
		name       string
		modify     func(c *Config)
		contains   []string
		precondErr bool
	}{
		{"invalid format", func(c *Config) { c.Format = formats.FormatKind(17) }, []string{"invalid format"}, false},
		{"invalid camera", func(c *Config) { c.Camera = camera.CameraSystem(-1) }, []string{"invalid camera"}, false},
		{"unknown h", func(c *Config) { c.H = layouts.HUnknown }, []string{"h_layout"}, true},
		{"unknown sensor grid", func(c *Config) { c.SensorGrid = layouts.GridUnknown },
			[]string{"sensor_grid_layout"}, true},
		{"unknown volume", func(c *Config) { c.Volume = layouts.VolumeUnknown }, []string{"volume_layout"}, true},
		{"missing laser grid", func(c *Config) {
			c.H = layouts.HTLiSi
			c.Camera = camera.Transient
		}, []string{"laser_grid_layout"}, true},
		{"projector without laser axes", func(c *Config) { c.Camera = camera.ProjectorCamera },
			[]string{"requires multiple illumination points"}, false},
		{"invalid laser grid", func(c *Config) { c.LaserGrid = layouts.GridLayout(9) },
			[]string{"invalid laser_grid_layout"}, false},
		{"all errors are reported", func(c *Config) {
			c.SensorGrid = layouts.GridUnknown
			c.Volume = layouts.VolumeUnknown
			c.Camera = camera.ProjectorCameraT0
		}, []string{"sensor_grid_layout", "volume_layout", "PROJECTOR_CAMERA_T0"}, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := confocalConfig()
			tc.modify(c)
			err := c.Validate()
			require.Error(t, err)
			for _, s := range tc.contains {
				assert.Contains(t, err.Error(), s)
			}
			assert.Equal(t, tc.precondErr, layouts.IsPreconditionError(err))
		})
	}
}
