// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package camera

import (
	"testing"

	"github.com/gomlx/exceptions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPropertyTable(t *testing.T) {
	// (accountsForInverseSquareFalloff, isTransient, implementsProjector)
	want := map[CameraSystem][3]bool{
		DirectLight:       {true, false, false},
		ConfocalTimeGated: {true, true, false},
		ProjectorCamera:   {true, true, true},
		ProjectorCameraT0: {true, false, true},
		Transient:         {false, true, false},
		TransientT0:       {false, false, false},
	}
	table := PropertyTable()
	require.Len(t, table, len(want))
	for c, flags := range want {
		t.Run(c.String(), func(t *testing.T) {
			assert.Equal(t, flags[0], c.AccountsForInverseSquareFalloff())
			assert.Equal(t, flags[1], c.IsTransient())
			assert.Equal(t, flags[2], c.ImplementsProjector())
			assert.Equal(t, Properties{
				AccountsForInverseSquareFalloff: flags[0],
				IsTransient:                     flags[1],
				ImplementsProjector:             flags[2],
			}, table[c])
		})
	}
}

func TestPropertiesArePure(t *testing.T) {
	for _, c := range CameraSystemValues() {
		assert.Equal(t, c.Properties(), c.Properties())
		assert.Equal(t, c.IsTransient(), c.IsTransient())
	}
}

func TestPropertyTableIsACopy(t *testing.T) {
	table := PropertyTable()
	table[DirectLight] = Properties{IsTransient: true}
	assert.False(t, DirectLight.IsTransient())
	assert.False(t, PropertyTable()[DirectLight].IsTransient)
}

func TestInvalidCameraSystem(t *testing.T) {
	err := exceptions.TryCatch[error](func() { _ = CameraSystem(6).IsTransient() })
	require.ErrorContains(t, err, "invalid camera system CameraSystem(6)")
	err = exceptions.TryCatch[error](func() { _ = CameraSystem(-1).EvaluatesAtTimeZero() })
	require.Error(t, err)
	err = exceptions.TryCatch[error](func() { _ = CameraSystem(7).IsConfocal() })
	require.ErrorContains(t, err, "invalid camera system CameraSystem(7)")
	err = exceptions.TryCatch[error](func() { _ = CameraSystem(-1).RequiresMultipleIlluminationPoints() })
	require.Error(t, err)
}

func TestDerivedHelpers(t *testing.T) {
	assert.True(t, DirectLight.EvaluatesAtTimeZero())
	assert.True(t, TransientT0.EvaluatesAtTimeZero())
	assert.True(t, ProjectorCameraT0.EvaluatesAtTimeZero())
	assert.False(t, ConfocalTimeGated.EvaluatesAtTimeZero())

	assert.True(t, ProjectorCamera.RequiresMultipleIlluminationPoints())
	assert.False(t, Transient.RequiresMultipleIlluminationPoints())

	assert.True(t, DirectLight.IsConfocal())
	assert.True(t, ConfocalTimeGated.IsConfocal())
	assert.False(t, Transient.IsConfocal())

	// Time-zero variants are never transient.
	for _, c := range CameraSystemValues() {
		if c.EvaluatesAtTimeZero() {
			assert.False(t, c.IsTransient(), "camera %s", c)
		}
	}
}

func TestFromName(t *testing.T) {
	assert.Equal(t, DirectLight, FromName(""))
	assert.Equal(t, ProjectorCameraT0, FromName("projector_camera_t0"))
	assert.Equal(t, Transient, FromName("TRANSIENT"))
	err := exceptions.TryCatch[error](func() { FromName("photo_camera") })
	require.ErrorContains(t, err, "photo_camera")
}

func TestYAML(t *testing.T) {
	type config struct {
		Camera CameraSystem `yaml:"camera"`
	}
	out, err := yaml.Marshal(config{Camera: ConfocalTimeGated})
	require.NoError(t, err)
	assert.Equal(t, "camera: CONFOCAL_TIME_GATED\n", string(out))

	var c config
	require.NoError(t, yaml.Unmarshal([]byte("camera: transient_t0"), &c))
	assert.Equal(t, TransientT0, c.Camera)
	require.Error(t, yaml.Unmarshal([]byte("camera: steady_state"), &c))
}
