// Copyright 2026 The TransientLab Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/transientlab/nlos/pkg/core/camera"
	"github.com/transientlab/nlos/pkg/core/formats"
	"github.com/transientlab/nlos/pkg/recon"
	"github.com/transientlab/nlos/pkg/support/fsutil"
)

// reportFiles prints one row per resolved file, and returns false if any of them failed.
func reportFiles(w io.Writer, results []formats.Resolution) bool {
	_, _ = fmt.Fprintln(w, titleStyle.Render("Capture files"))
	table := newStatusTable([]string{"Path", "Size", "Container", "Format", "Error"},
		lipgloss.Left, lipgloss.Right, lipgloss.Left)
	ok := true
	for _, r := range results {
		size := "-"
		if n, err := fsutil.FileSize(r.Path); err == nil {
			size = humanize.Bytes(uint64(n))
		}
		if r.Err != nil {
			ok = false
			table.Row(true, r.Path, size, containerOf(r.Err), "-", r.Err.Error())
			continue
		}
		format := r.Format.String()
		if r.Format.IsDeprecated() {
			format += " (deprecated)"
		}
		table.Row(false, r.Path, size, r.Format.Container().String(), format, "")
	}
	_, _ = fmt.Fprintln(w, table.Render())
	return ok
}

// containerOf returns the container reported by a resolution error, if any.
func containerOf(err error) string {
	var resErr *formats.FormatResolutionError
	if errors.As(err, &resErr) && resErr.Container != formats.ContainerUnknown {
		return resErr.Container.String()
	}
	return "-"
}

// reportCamera prints the behavior flags of the camera system.
func reportCamera(w io.Writer, cam camera.CameraSystem) {
	_, _ = fmt.Fprintln(w, titleStyle.Render("Camera system"))
	table := newStatusTable([]string{"Property", "Value"}, lipgloss.Right, lipgloss.Left)
	props := cam.Properties()
	table.Row(false, "camera", cam.String())
	table.Row(false, "inverse square falloff", yesNo(props.AccountsForInverseSquareFalloff))
	table.Row(false, "transient", yesNo(props.IsTransient))
	table.Row(false, "projector", yesNo(props.ImplementsProjector))
	table.Row(false, "evaluated at t=0", yesNo(cam.EvaluatesAtTimeZero()))
	table.Row(false, "confocal", yesNo(cam.IsConfocal()))
	_, _ = fmt.Fprintln(w, table.Render())
}

// reportPlan validates the configuration and prints its reconstruction plan.
// It returns false if the configuration is invalid.
func reportPlan(w io.Writer, config *recon.Config) bool {
	_, _ = fmt.Fprintln(w, titleStyle.Render("Reconstruction plan"))
	table := newStatusTable([]string{"Property", "Value"}, lipgloss.Right, lipgloss.Left)
	plan, err := config.Plan()
	if err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			table.Row(true, "error", line)
		}
		_, _ = fmt.Fprintln(w, table.Render())
		return false
	}
	table.Row(false, "format", config.Format.String())
	table.Row(false, "camera", plan.Camera.String())
	table.Row(false, "H layout", plan.H.String())
	table.Row(false, "sensor grid", plan.SensorGrid.String())
	if plan.LaserGrid.IsValid() {
		table.Row(false, "laser grid", plan.LaserGrid.String())
	}
	table.Row(false, "volume", plan.Volume.String())
	table.Row(false, "time resolved", yesNo(plan.TimeResolved))
	table.Row(false, "inverse square correction", yesNo(plan.InverseSquareCorrection))
	table.Row(false, "projector pre-pass", yesNo(plan.ProjectorPrepass))
	table.Row(false, "evaluated at t=0", yesNo(plan.EvaluateAtT0))
	table.Row(false, "output axes", strings.Join(plan.OutputAxes, ", "))
	_, _ = fmt.Fprintln(w, table.Render())
	return true
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
