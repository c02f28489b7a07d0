// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKind(t *testing.T) {
	assert.False(t, FormatAutodetect.IsConcrete())
	assert.False(t, FormatKind(6).IsConcrete())
	for _, f := range FormatKindValues() {
		if f == FormatAutodetect {
			continue
		}
		assert.True(t, f.IsConcrete(), "format %s", f)
		assert.NotEqual(t, ContainerUnknown, f.Container(), "format %s", f)
	}
	assert.Equal(t, ContainerUnknown, FormatAutodetect.Container())
	assert.Equal(t, ContainerHDF5, FormatHDF5ZNLOS.Container())
	assert.Equal(t, ContainerMAT, FormatMATPhasorFieldDiffraction.Container())

	for _, f := range FormatKindValues() {
		assert.Equal(t, f == FormatHDF5NLOSDirac, f.IsDeprecated(), "format %s", f)
	}
}

func TestFormatKindNames(t *testing.T) {
	f, err := FormatKindString("hdf5_tal")
	require.NoError(t, err)
	assert.Equal(t, FormatHDF5TAL, f)
	assert.Equal(t, "MAT_PHASOR_FIELD_DIFFRACTION", FormatMATPhasorFieldDiffraction.String())

	var decoded struct {
		Format FormatKind `json:"format"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"format": "HDF5_NLOS_DIRAC"}`), &decoded))
	assert.Equal(t, FormatHDF5NLOSDirac, decoded.Format)
	require.Error(t, json.Unmarshal([]byte(`{"format": "HDF5_FOO"}`), &decoded))
}

func TestMarkers(t *testing.T) {
	markers := Markers(ContainerHDF5)
	assert.Equal(t, []string{"H", "H_format"}, markers[FormatHDF5TAL])
	assert.Equal(t, []string{"data", "cameraGridPositions"}, markers[FormatHDF5ZNLOS])
	assert.Len(t, markers, 3)
	assert.Len(t, Markers(ContainerMAT), 2)
	assert.Empty(t, Markers(ContainerUnknown))

	// Every concrete format is reachable from exactly one rule of its own container.
	for _, f := range FormatKindValues() {
		if !f.IsConcrete() {
			continue
		}
		_, found := Markers(f.Container())[f]
		assert.True(t, found, "format %s has no markers", f)
	}
}
