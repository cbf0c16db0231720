// Package version reports how the tincture binary was built.
//
// Release builds set Version, Commit and Date with -ldflags "-X". Builds made
// with `go install` or `go build` in a checkout fall back to the module and
// VCS details the Go toolchain embeds.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at link time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Build describes one binary.
type Build struct {
	Version  string `json:"version"`
	Commit   string `json:"commit"`
	Date     string `json:"date"`
	Modified bool   `json:"modified"`
	Go       string `json:"go"`
	Platform string `json:"platform"`
}

var readBuildInfo = debug.ReadBuildInfo

// Current returns the build description, filling anything not set at link
// time from the embedded build info.
func Current() Build {
	b := Build{
		Version:  Version,
		Commit:   Commit,
		Date:     Date,
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	info, ok := readBuildInfo()
	if !ok {
		return b
	}
	if b.Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		b.Version = strings.TrimPrefix(info.Main.Version, "v")
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if b.Commit == "unknown" {
				b.Commit = s.Value
			}
		case "vcs.time":
			if b.Date == "unknown" {
				b.Date = s.Value
			}
		case "vcs.modified":
			b.Modified = s.Value == "true"
		}
	}
	return b
}

// String returns a one line description for `tincture version`.
func String() string {
	return Current().String()
}

func (b Build) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tincture version %s", b.Version)

	var details []string
	if b.Commit != "unknown" {
		c := shortCommit(b.Commit)
		if b.Modified {
			c += "-dirty"
		}
		details = append(details, "commit: "+c)
	}
	if b.Date != "unknown" {
		details = append(details, "built: "+b.Date)
	}
	details = append(details, b.Go, b.Platform)

	fmt.Fprintf(&sb, " (%s)", strings.Join(details, ", "))
	return sb.String()
}

// Short returns the bare version, used by --version.
func Short() string {
	return Current().Version
}

func shortCommit(c string) string {
	if len(c) > 8 {
		return c[:8]
	}
	return c
}
