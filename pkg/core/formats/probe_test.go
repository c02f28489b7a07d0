// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"bytes"
	"context"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/scigolib/hdf5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeHDF5 writes an HDF5 file with one small float64 dataset per name, at the root group.
func writeHDF5(t *testing.T, path string, names ...string) {
	t.Helper()
	fw, err := hdf5.CreateForWrite(path, hdf5.CreateTruncate)
	require.NoError(t, err)
	for ii, name := range names {
		ds, err := fw.CreateDataset("/"+name, hdf5.Float64, []uint64{3})
		require.NoError(t, err)
		require.NoError(t, ds.Write([]float64{float64(ii), 1, 2}))
	}
	require.NoError(t, fw.Close())
}

// writeMATv5 writes an uncompressed MAT v5 file with one 1x1 double variable per name.
func writeMATv5(t *testing.T, path string, names ...string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, matV5Bytes(t, names...), 0o644))
}

// matV5Bytes encodes an uncompressed MAT v5 file with one 1x1 double variable per name.
func matV5Bytes(t *testing.T, names ...string) []byte {
	t.Helper()
	var buf bytes.Buffer
	header := make([]byte, 116)
	copy(header, matV5Header())
	for ii := len(matV5Header()); ii < len(header); ii++ {
		header[ii] = ' '
	}
	buf.Write(header)
	buf.Write(make([]byte, 8)) // Subsystem data offset.
	le := binary.LittleEndian
	writeU16 := func(v uint16) { require.NoError(t, binary.Write(&buf, le, v)) }
	writeU32 := func(v uint32) { require.NoError(t, binary.Write(&buf, le, v)) }
	writeU16(0x0100)
	buf.WriteString("IM")

	const (
		miINT8     = 1
		miINT32    = 5
		miUINT32   = 6
		miDOUBLE   = 9
		miMATRIX   = 14
		mxDOUBLE   = 6
		tagLen     = 8
		paddedTo   = 8
		valueBytes = 8
	)
	for ii, name := range names {
		namePadded := (len(name) + paddedTo - 1) / paddedTo * paddedTo
		size := (tagLen + 8) + (tagLen + 8) + (tagLen + namePadded) + (tagLen + valueBytes)
		writeU32(miMATRIX)
		writeU32(uint32(size))
		// Array flags.
		writeU32(miUINT32)
		writeU32(8)
		writeU32(mxDOUBLE)
		writeU32(0)
		// Dimensions: 1x1.
		writeU32(miINT32)
		writeU32(8)
		writeU32(1)
		writeU32(1)
		// Name.
		writeU32(miINT8)
		writeU32(uint32(len(name)))
		nameBytes := make([]byte, namePadded)
		copy(nameBytes, name)
		buf.Write(nameBytes)
		// Real part.
		writeU32(miDOUBLE)
		writeU32(valueBytes)
		writeU32(uint32(math.Float64bits(float64(ii))))
		writeU32(uint32(math.Float64bits(float64(ii)) >> 32))
	}
	return buf.Bytes()
}

func TestHDF5Files(t *testing.T) {
	dir := t.TempDir()
	talPath := filepath.Join(dir, "tal_capture.hdf5")
	writeHDF5(t, talPath, "H", "H_format", "sensor_grid_xyz", "delta_t")
	znlosPath := filepath.Join(dir, "znlos_capture.h5")
	writeHDF5(t, znlosPath, "data", "cameraGridPositions", "laserGridPositions", "deltaT")
	otherPath := filepath.Join(dir, "other.h5")
	writeHDF5(t, otherPath, "temperature")

	names, err := HDF5Probe{}.Names(talPath, nil)
	require.NoError(t, err)
	assert.True(t, names.HasAll("H", "H_format", "sensor_grid_xyz", "delta_t"))

	got, err := Resolve(talPath, FormatAutodetect)
	require.NoError(t, err)
	assert.Equal(t, FormatHDF5TAL, got)

	got, err = Resolve(znlosPath, FormatAutodetect)
	require.NoError(t, err)
	assert.Equal(t, FormatHDF5ZNLOS, got)

	_, err = Resolve(otherPath, FormatAutodetect)
	require.True(t, IsFormatResolutionError(err))

	// Explicit declarations win over the contents.
	got, err = Resolve(znlosPath, FormatHDF5TAL)
	require.NoError(t, err)
	assert.Equal(t, FormatHDF5TAL, got)
}

func TestMATFiles(t *testing.T) {
	dir := t.TempDir()
	phasorPath := filepath.Join(dir, "phasor.mat")
	writeMATv5(t, phasorPath, "data", "laserPos")
	diffractionPath := filepath.Join(dir, "fastnlos.mat")
	writeMATv5(t, diffractionPath, "rect_data", "width")

	names, err := MATProbe{}.Names(phasorPath, []string{"data", "rect_data"})
	require.NoError(t, err)
	assert.True(t, names.Has("data"))
	assert.False(t, names.Has("rect_data"))

	got, err := Resolve(phasorPath, FormatAutodetect)
	require.NoError(t, err)
	assert.Equal(t, FormatMATPhasorFields, got)

	got, err = Resolve(diffractionPath, FormatAutodetect)
	require.NoError(t, err)
	assert.Equal(t, FormatMATPhasorFieldDiffraction, got)
}

func TestMATFilesCorrupt(t *testing.T) {
	dir := t.TempDir()
	le := binary.LittleEndian

	// A top-level element that is neither a matrix nor compressed: the MAT reader panics on it.
	unsupported := matV5Bytes(t)
	unsupported = le.AppendUint32(unsupported, 1) // miINT8
	unsupported = le.AppendUint32(unsupported, 4)
	unsupported = append(unsupported, 'd', 'a', 't', 'a', 0, 0, 0, 0)
	unsupportedPath := filepath.Join(dir, "unsupported.mat")
	require.NoError(t, os.WriteFile(unsupportedPath, unsupported, 0o644))

	// A valid capture followed by a truncated miMATRIX tag.
	truncated := matV5Bytes(t, "data", "laserPos")
	truncated = le.AppendUint32(truncated, 14) // miMATRIX
	truncated = le.AppendUint32(truncated, 64)
	truncated = append(truncated, 0, 0)
	truncatedPath := filepath.Join(dir, "truncated.mat")
	require.NoError(t, os.WriteFile(truncatedPath, truncated, 0o644))

	for _, path := range []string{unsupportedPath, truncatedPath} {
		t.Run(filepath.Base(path), func(t *testing.T) {
			var err error
			require.NotPanics(t, func() {
				_, err = MATProbe{}.Names(path, []string{"data", "rect_data"})
			})
			require.ErrorContains(t, err, "failed to parse MAT file")

			var got FormatKind
			require.NotPanics(t, func() {
				got, err = Resolve(path, FormatAutodetect)
			})
			assert.Equal(t, FormatAutodetect, got)
			var rErr *FormatResolutionError
			require.True(t, errors.As(err, &rErr), "unexpected error type %T", err)
			assert.Equal(t, ContainerMAT, rErr.Container)
			assert.Equal(t, "failed to list contents", rErr.Reason)
			require.Error(t, rErr.Unwrap())
		})
	}

	// One bad file doesn't affect the others.
	goodPath := filepath.Join(dir, "good.mat")
	writeMATv5(t, goodPath, "data")
	var results []Resolution
	require.NotPanics(t, func() {
		var err error
		results, err = ResolveAll(context.Background(), []string{unsupportedPath, goodPath, truncatedPath},
			FormatAutodetect, 2)
		require.NoError(t, err)
	})
	require.Len(t, results, 3)
	assert.Error(t, results[0].Err)
	require.NoError(t, results[1].Err)
	assert.Equal(t, FormatMATPhasorFields, results[1].Format)
	assert.Error(t, results[2].Err)
}
