// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

// Package formats is the catalog of NLOS capture-data file formats, and resolves the format of a file.
//
// A loader either declares the format of a file, in which case it is trusted as is, or passes
// FormatAutodetect and lets Resolve decide from the file extension, magic bytes and the names of the
// datasets (HDF5) or variables (MAT) found in the file. Resolution only reads the file.
//
// Example:
//
//	format, err := formats.Resolve("capture.hdf5", formats.FormatAutodetect)
//	if err != nil {
//		return err
//	}
//	switch format {
//	case formats.FormatHDF5TAL:
//		…
//	}
package formats

// FormatKind identifies the format of an NLOS capture-data file.
//
// It is chosen once, at load time, and is carried alongside the loaded data as provenance.
// FormatAutodetect is never a terminal value: Resolve always turns it into a concrete format.
type FormatKind int

const (
	// FormatAutodetect chooses the format based on the file extension and contents.
	FormatAutodetect FormatKind = iota // AUTODETECT

	// FormatHDF5ZNLOS is the HDF5 format used in the Zaragoza NLOS dataset
	// (https://graphics.unizar.es/nlos_dataset/).
	FormatHDF5ZNLOS // HDF5_ZNLOS

	// FormatHDF5NLOSDirac is a deprecated HDF5 format, kept for compatibility with older captures.
	FormatHDF5NLOSDirac // HDF5_NLOS_DIRAC

	// FormatHDF5TAL is the HDF5 format generated by the TAL renderer.
	FormatHDF5TAL // HDF5_TAL

	// FormatMATPhasorFields is the MAT format used in "Non-Line-of-Sight Imaging using Phasor Field
	// Virtual Wave Optics".
	FormatMATPhasorFields // MAT_PHASOR_FIELDS

	// FormatMATPhasorFieldDiffraction is the MAT format used in "Phasor Field Diffraction Based
	// Reconstruction for Fast Non-Line-of-Sight Imaging Systems".
	FormatMATPhasorFieldDiffraction // MAT_PHASOR_FIELD_DIFFRACTION
)

//go:generate go tool enumer -type=FormatKind -linecomment -values -text -json -yaml -output=gen_formatkind_enumer.go formats.go

// IsConcrete returns whether f is a resolved format: a valid FormatKind other than FormatAutodetect.
func (f FormatKind) IsConcrete() bool {
	return f != FormatAutodetect && f.IsAFormatKind()
}

// IsDeprecated returns whether the format is only kept for compatibility.
// Deprecated formats carry no other special behavior.
func (f FormatKind) IsDeprecated() bool {
	return f == FormatHDF5NLOSDirac
}

// Container returns the container type of the format: ContainerHDF5 or ContainerMAT.
// It returns ContainerUnknown for FormatAutodetect and invalid values.
func (f FormatKind) Container() Container {
	switch f {
	case FormatHDF5ZNLOS, FormatHDF5NLOSDirac, FormatHDF5TAL:
		return ContainerHDF5
	case FormatMATPhasorFields, FormatMATPhasorFieldDiffraction:
		return ContainerMAT
	default:
		return ContainerUnknown
	}
}
