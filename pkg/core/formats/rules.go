// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"slices"

	"github.com/transientlab/nlos/pkg/support/sets"
)

// markerRule classifies a file as format if all the required names are present and none of the absent ones.
type markerRule struct {
	format   FormatKind
	required []string
	absent   []string
}

// Rules are evaluated in order, the first match wins.
var (
	hdf5Rules = []markerRule{
		{format: FormatHDF5TAL, required: []string{"H", "H_format"}},
		{format: FormatHDF5NLOSDirac, required: []string{"H"}, absent: []string{"H_format"}},
		{format: FormatHDF5ZNLOS, required: []string{"data", "cameraGridPositions"}},
	}
	matRules = []markerRule{
		{format: FormatMATPhasorFieldDiffraction, required: []string{"rect_data"}},
		{format: FormatMATPhasorFields, required: []string{"data"}},
	}
)

func rulesFor(container Container) []markerRule {
	switch container {
	case ContainerHDF5:
		return hdf5Rules
	case ContainerMAT:
		return matRules
	default:
		return nil
	}
}

// markerNames returns all the names mentioned by rules, sorted.
func markerNames(rules []markerRule) []string {
	names := sets.Make[string]()
	for _, rule := range rules {
		names.Insert(rule.required...)
		names.Insert(rule.absent...)
	}
	return sets.Sorted(names)
}

// classify returns the format of the first rule matching names.
func classify(rules []markerRule, names sets.Set[string]) (FormatKind, bool) {
	for _, rule := range rules {
		if names.HasAll(rule.required...) && !names.HasAny(rule.absent...) {
			return rule.format, true
		}
	}
	return FormatAutodetect, false
}

// Markers returns, for each format of the container, the names of the datasets or variables that must be
// present in a file for it to be classified as that format.
func Markers(container Container) map[FormatKind][]string {
	markers := make(map[FormatKind][]string)
	for _, rule := range rulesFor(container) {
		markers[rule.format] = slices.Clone(rule.required)
	}
	return markers
}
