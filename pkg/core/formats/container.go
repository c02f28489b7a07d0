// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Container is the file container family shared by several formats.
type Container int

const (
	ContainerUnknown Container = iota // unknown
	ContainerHDF5                     // hdf5
	ContainerMAT                      // mat
)

//go:generate go tool enumer -type=Container -linecomment -values -text -json -yaml -output=gen_container_enumer.go container.go

// defaultExtensions maps lower-case file extensions to their container.
var defaultExtensions = map[string]Container{
	".h5":   ContainerHDF5,
	".hdf5": ContainerHDF5,
	".hdf":  ContainerHDF5,
	".mat":  ContainerMAT,
}

var (
	// hdf5Signature is the HDF5 format signature. It is found at offset 0, or at 512, 1024, 2048, ... when
	// the file has a user block (MAT v7.3 files use a 512 bytes one).
	hdf5Signature = []byte{0x89, 'H', 'D', 'F', '\r', '\n', 0x1a, '\n'}

	// matHeaderPrefix starts the 116 bytes descriptive text of MAT files (v5 and v7.3).
	matHeaderPrefix = []byte("MATLAB ")

	// matV5HeaderPrefix is the descriptive text of MAT v5 files, which are not HDF5 based.
	matV5HeaderPrefix = []byte("MATLAB 5.0 MAT-file")
)

// containerFromExtension returns the container associated with the extension of path, or ContainerUnknown.
func containerFromExtension(extensions map[string]Container, path string) Container {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// sniffed is the result of inspecting the magic bytes of a file.
type sniffed struct {
	// family is the container suggested by the header: a MAT header implies ContainerMAT even for
	// HDF5-encoded MAT v7.3 files.
	family Container

	// encoding is the physical container, which selects the Probe used to list the names in the file.
	encoding Container
}

// sniffContainer inspects the magic bytes of the file at path.
func sniffContainer(path string) (sniffed, error) {
	f, err := os.Open(path)
	if err != nil {
		return sniffed{}, errors.Wrapf(err, "failed to open %q", path)
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	if err != nil {
		return sniffed{}, errors.Wrapf(err, "failed to stat %q", path)
	}
	return sniffReader(f, info.Size())
}

// sniffReader implements sniffContainer on any io.ReaderAt of the given size.
func sniffReader(r io.ReaderAt, size int64) (s sniffed, err error) {
	header := make([]byte, len(matV5HeaderPrefix))
	n, err := r.ReadAt(header, 0)
	if err != nil && !errors.Is(err, io.EOF) {
		return s, errors.Wrap(err, "failed to read file header")
	}
	header = header[:n]
	isMAT := bytes.HasPrefix(header, matHeaderPrefix)
	if isMAT {
		s.family = ContainerMAT
	}

	found, err := hasHDF5Signature(r, size)
	if err != nil {
		return s, err
	}
	switch {
	case found:
		s.encoding = ContainerHDF5
		if !isMAT {
			s.family = ContainerHDF5
		}
	case bytes.HasPrefix(header, matV5HeaderPrefix):
		s.encoding = ContainerMAT
	}
	return s, nil
}

// hasHDF5Signature looks for the HDF5 signature at offset 0 and at every power of two from 512 on.
func hasHDF5Signature(r io.ReaderAt, size int64) (bool, error) {
	buf := make([]byte, len(hdf5Signature))
	for offset := int64(0); offset+int64(len(buf)) <= size; {
		if _, err := r.ReadAt(buf, offset); err != nil {
			return false, errors.Wrapf(err, "failed to read file at offset %d", offset)
		}
		if bytes.Equal(buf, hdf5Signature) {
			return true, nil
		}
		if offset == 0 {
			offset = 512
		} else {
			offset *= 2
		}
	}
	return false, nil
}
