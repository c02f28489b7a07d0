// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

// nlosinfo resolves the format of NLOS capture files and prints the reconstruction strategy of a camera
// system.
//
// Usage:
//
//	nlosinfo [-format=AUTODETECT] [-camera=DIRECT_LIGHT] [-config=recon.yaml] [-parallel=N] files...
//
// It exits with code 1 if any of the files fails to resolve, or if the configuration is invalid.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/janpfeifer/must"
	"github.com/transientlab/nlos/pkg/core/camera"
	"github.com/transientlab/nlos/pkg/core/formats"
	"github.com/transientlab/nlos/pkg/recon"
	"github.com/transientlab/nlos/pkg/support/fsutil"
	"k8s.io/klog/v2"
)

var (
	flagFormat   = formats.FormatAutodetect
	flagCamera   = camera.DirectLight
	flagConfig   = flag.String("config", "", "YAML reconstruction configuration. Its format and camera are used unless -format or -camera are given.")
	flagParallel = flag.Int("parallel", runtime.NumCPU(), "Maximum number of files inspected concurrently.")
)

func init() {
	flag.TextVar(&flagFormat, "format", formats.FormatAutodetect,
		fmt.Sprintf("Declared format of the files, one of %v. AUTODETECT inspects the files.", formats.FormatKindStrings()))
	flag.TextVar(&flagCamera, "camera", camera.DirectLight,
		fmt.Sprintf("Camera system, one of %v.", camera.CameraSystemStrings()))
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	args := flag.Args()
	config, err := buildConfig(*flagConfig, explicitFlags())
	if err != nil {
		klog.Errorf("%+v", err)
		os.Exit(1)
	}
	if len(args) == 0 && *flagConfig == "" {
		klog.Errorf("Missing capture files to inspect. See 'nlosinfo -help'")
		os.Exit(1)
	}

	ok := true
	if *flagConfig != "" {
		ok = reportPlan(os.Stdout, config)
	} else {
		reportCamera(os.Stdout, config.Camera)
	}
	if len(args) > 0 {
		paths := make([]string, len(args))
		for ii, arg := range args {
			paths[ii] = must.M1(fsutil.ExpandPath(arg))
		}
		results, err := formats.ResolveAll(context.Background(), paths, config.Format, *flagParallel)
		if err != nil {
			klog.Errorf("%+v", err)
			os.Exit(1)
		}
		ok = reportFiles(os.Stdout, results) && ok
	}
	if !ok {
		os.Exit(1)
	}
}

// explicitFlags returns the names of the flags set in the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

// buildConfig loads the configuration file, if given, and overrides it with the flags explicitly set.
func buildConfig(configPath string, explicit map[string]bool) (*recon.Config, error) {
	config := recon.DefaultConfig()
	if configPath != "" {
		var err error
		config, err = recon.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
	}
	if configPath == "" || explicit["format"] {
		config.Format = flagFormat
	}
	if configPath == "" || explicit["camera"] {
		config.Camera = flagCamera
	}
	return config, nil
}
