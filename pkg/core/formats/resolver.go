// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"maps"
	"strings"

	"github.com/transientlab/nlos/pkg/support/sets"
	"k8s.io/klog/v2"
)

// Resolver resolves the format of capture-data files. It holds no mutable state after construction and
// is safe for concurrent use.
//
// The zero value is not usable, create one with NewResolver.
type Resolver struct {
	extensions map[string]Container
	probes     map[Container]Probe
}

// Option configures a Resolver.
type Option func(r *Resolver)

// WithHDF5Probe replaces the Probe used for HDF5 encoded files (including MAT v7.3 files).
func WithHDF5Probe(p Probe) Option {
	return func(r *Resolver) {
		r.probes[ContainerHDF5] = p
	}
}

// WithMATProbe replaces the Probe used for MAT v5 files.
func WithMATProbe(p Probe) Option {
	return func(r *Resolver) {
		r.probes[ContainerMAT] = p
	}
}

// WithExtension associates a file extension (e.g. ".nlos") with a container.
// Passing ContainerUnknown removes the association, forcing the magic bytes to be used.
func WithExtension(ext string, container Container) Option {
	return func(r *Resolver) {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if container == ContainerUnknown {
			delete(r.extensions, ext)
			return
		}
		r.extensions[ext] = container
	}
}

// NewResolver returns a Resolver using the HDF5Probe and MATProbe, configured by the given options.
func NewResolver(options ...Option) *Resolver {
	r := &Resolver{
		extensions: maps.Clone(defaultExtensions),
		probes: map[Container]Probe{
			ContainerHDF5: HDF5Probe{},
			ContainerMAT:  MATProbe{},
		},
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var defaultResolver = NewResolver()

// Resolve returns the concrete format of the file at path using the default Resolver.
// See Resolver.Resolve.
func Resolve(path string, declared FormatKind) (FormatKind, error) {
	return defaultResolver.Resolve(path, declared)
}

// Resolve returns the concrete format of the file at path.
//
// If declared is a concrete format it is returned unchanged, and the file is not even opened: explicit
// declarations are always trusted.
//
// If declared is FormatAutodetect, the container is chosen by the file extension (or the magic bytes, for
// unknown extensions), and the format by the names of the datasets or variables in the file.
// A *FormatResolutionError is returned if no format matches.
func (r *Resolver) Resolve(path string, declared FormatKind) (FormatKind, error) {
	if declared.IsConcrete() {
		return declared, nil
	}
	if declared != FormatAutodetect {
		return FormatAutodetect, &FormatResolutionError{
			Path:   path,
			Reason: "declared format " + declared.String() + " is not a valid format",
		}
	}

	family := containerFromExtension(r.extensions, path)
	sniff, err := sniffContainer(path)
	if err != nil {
		return FormatAutodetect, &FormatResolutionError{Path: path, Container: family,
			Reason: "failed to inspect file", Err: err}
	}
	if family == ContainerUnknown {
		family = sniff.family
		klog.V(2).Infof("formats: %q has no known extension, magic bytes suggest container %s", path, family)
	}
	if family == ContainerUnknown {
		return FormatAutodetect, &FormatResolutionError{Path: path,
			Reason: "unknown file extension and no HDF5 or MAT signature"}
	}
	if sniff.encoding == ContainerUnknown || (family == ContainerHDF5 && sniff.encoding != ContainerHDF5) {
		return FormatAutodetect, &FormatResolutionError{Path: path, Container: family,
			Reason: "file content doesn't match its container (no valid signature found)"}
	}

	probe, found := r.probes[sniff.encoding]
	if !found || probe == nil {
		return FormatAutodetect, &FormatResolutionError{Path: path, Container: family,
			Reason: "no probe configured for " + sniff.encoding.String() + " files"}
	}
	rules := rulesFor(family)
	names, err := probe.Names(path, markerNames(rules))
	if err != nil {
		return FormatAutodetect, &FormatResolutionError{Path: path, Container: family,
			Reason: "failed to list contents", Err: err}
	}
	klog.V(2).Infof("formats: %q (%s encoded as %s) contains %v", path, family, sniff.encoding, sets.Sorted(names))

	format, found := classify(rules, names)
	if !found {
		return FormatAutodetect, &FormatResolutionError{Path: path, Container: family,
			Reason: "contents match no known format, markers looked for: " + strings.Join(markerNames(rules), ", ")}
	}
	klog.V(1).Infof("formats: resolved %q as %s", path, format)
	return format, nil
}
