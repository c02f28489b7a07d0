// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

// Package fsutil contains utilities to handle the paths of capture files and configurations.
package fsutil

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// FileExists returns whether the file or directory exists or an error if something went wrong in the filesystem.
func FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, "failed to FileExists(%q)", path)
}

// FileSize returns the size in bytes of the regular file at path.
func FileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to stat %q", path)
	}
	if !info.Mode().IsRegular() {
		return 0, errors.Errorf("%q is not a regular file", path)
	}
	return info.Size(), nil
}

// ExpandPath replaces a leading "~" or "~user" by the user's home directory. Other paths are returned unchanged.
//
// It returns an error if the user is unknown (e.g.: `~unknown/capture.hdf5`).
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	var userName string
	if path != "~" && !strings.HasPrefix(path, "~/") {
		if sepIdx := strings.IndexRune(path, '/'); sepIdx == -1 {
			userName = path[1:]
		} else {
			userName = path[1:sepIdx]
		}
	}
	var usr *user.User
	var err error
	if userName == "" {
		usr, err = user.Current()
	} else {
		usr, err = user.Lookup(userName)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to lookup home directory for user in path %q", path)
	}
	return filepath.Join(usr.HomeDir, path[1+len(userName):]), nil
}

// MustExpandPath is like ExpandPath, but panics on error.
func MustExpandPath(path string) string {
	path, err := ExpandPath(path)
	if err != nil {
		panic(err)
	}
	return path
}
