// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"io"
	"os"
	"strings"

	"github.com/daniellowtw/matlab"
	"github.com/gomlx/exceptions"
	"github.com/pkg/errors"
	"github.com/scigolib/hdf5"
	"github.com/transientlab/nlos/pkg/support/sets"
)

// Probe lists the top-level names (HDF5 datasets and groups, or MAT variables) found in a container file.
//
// candidates are the names the caller is interested in: probes that cannot enumerate the file contents
// only check those. Probes that can enumerate may return more names. A Probe only reads the file, and
// must be safe for concurrent use.
type Probe interface {
	Names(path string, candidates []string) (sets.Set[string], error)
}

// ProbeFunc is a function that implements Probe.
type ProbeFunc func(path string, candidates []string) (sets.Set[string], error)

// Names implements Probe.
func (fn ProbeFunc) Names(path string, candidates []string) (sets.Set[string], error) {
	return fn(path, candidates)
}

// HDF5Probe lists the objects at the root group of an HDF5 file, including MAT v7.3 files.
type HDF5Probe struct{}

// Names implements Probe.
func (HDF5Probe) Names(path string, _ []string) (sets.Set[string], error) {
	f, err := hdf5.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open HDF5 file %q", path)
	}
	defer func() { _ = f.Close() }()

	names := sets.Make[string]()
	f.Walk(func(objPath string, _ hdf5.Object) {
		name := strings.Trim(objPath, "/")
		if name != "" && !strings.Contains(name, "/") {
			names.Insert(name)
		}
	})
	return names, nil
}

// MATProbe checks which of the candidate variables are present in a MAT v5 file.
//
// The MAT reader decodes (and inflates) every variable of the file when it is first queried, so probing a
// large capture loads all of it in memory: ResolveAll holds up to parallelism such files at once.
type MATProbe struct{}

// matHeaderSize is the size of the MAT v5 file header: 116 bytes of text, 8 bytes of subsystem offset,
// version and endian indicator.
const matHeaderSize = 128

// Names implements Probe.
func (MATProbe) Names(path string, candidates []string) (names sets.Set[string], err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open MAT file %q", path)
	}
	defer func() { _ = f.Close() }()
	info, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat MAT file %q", path)
	}

	// The MAT reader panics on elements it doesn't support.
	exception := exceptions.Try(func() {
		names, err = matNames(f, info.Size(), candidates)
	})
	if exception != nil {
		if exceptionErr, ok := exception.(error); ok {
			err = errors.Wrapf(exceptionErr, "failed to parse MAT file %q", path)
		} else {
			err = errors.Errorf("failed to parse MAT file %q: %v", path, exception)
		}
		return nil, err
	}
	if err != nil {
		return nil, errors.WithMessagef(err, "failed to parse MAT file %q", path)
	}
	return names, nil
}

// matNames returns which of candidates are variables of the MAT file read from r.
func matNames(r io.Reader, size int64, candidates []string) (sets.Set[string], error) {
	matFile, err := matlab.NewFileFromReader(r)
	if err != nil {
		return nil, err
	}
	names := sets.Make[string]()
	for _, name := range candidates {
		if _, found := matFile.GetVar(name); found {
			names.Insert(name)
		}
	}
	// The reader reports a corrupt file as a file with no variables.
	if matFile.GetVarsNames() == nil && size > matHeaderSize {
		return nil, errors.Errorf("corrupt or truncated data after the %d bytes header (file has %d bytes)",
			matHeaderSize, size)
	}
	return names, nil
}
