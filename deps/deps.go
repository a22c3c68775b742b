// Package deps checks for the external tools the gallery shells out to.
package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL    = "https://mpv.io/installation/"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckMpv checks if mpv is installed and available in PATH.
// mpv is required for playing angles.
func CheckMpv() error {
	_, err := exec.LookPath("mpv")
	if err != nil {
		return &DependencyError{
			Name:       "mpv",
			InstallURL: MpvInstallURL,
		}
	}
	return nil
}

// CheckFfmpeg checks if ffmpeg is installed and available in PATH.
// ffmpeg is optional; without it mpv falls back to its internal demuxers
// for some stream formats.
func CheckFfmpeg() error {
	_, err := exec.LookPath("ffmpeg")
	if err != nil {
		return &DependencyError{
			Name:       "ffmpeg",
			InstallURL: FfmpegInstallURL,
		}
	}
	return nil
}

// Status is one line of the doctor report.
type Status struct {
	Name     string
	Required bool
	Err      error
}

// Report checks every external tool and returns one Status per tool,
// found or not.
func Report() []Status {
	return []Status{
		{Name: "mpv", Required: true, Err: CheckMpv()},
		{Name: "ffmpeg", Required: false, Err: CheckFfmpeg()},
	}
}
