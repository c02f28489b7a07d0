// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package formats

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Resolution is the outcome of resolving one file with ResolveAll.
type Resolution struct {
	Path   string
	Format FormatKind

	// Err is set if the format could not be resolved, usually a *FormatResolutionError.
	Err error
}

// ResolveAll resolves the format of independent files concurrently, with at most parallelism files
// inspected at a time (no limit if parallelism <= 0).
//
// The results are returned in the same order as paths, and failures are reported per file in
// Resolution.Err. The returned error is only set if ctx is cancelled before all files are resolved.
func (r *Resolver) ResolveAll(ctx context.Context, paths []string, declared FormatKind, parallelism int) (
	[]Resolution, error) {
	results := make([]Resolution, len(paths))
	g, gCtx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for ii, path := range paths {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			format, err := r.Resolve(path, declared)
			results[ii] = Resolution{Path: path, Format: format, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrapf(err, "ResolveAll interrupted")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(err, "ResolveAll interrupted")
	}
	return results, nil
}

// ResolveAll resolves the format of the files using the default Resolver. See Resolver.ResolveAll.
func ResolveAll(ctx context.Context, paths []string, declared FormatKind, parallelism int) ([]Resolution, error) {
	return defaultResolver.ResolveAll(ctx, paths, declared, parallelism)
}
