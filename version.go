package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/alecthomas/kong"
)

var _version = "dev"

var (
	_debugReadBuildInfo  = debug.ReadBuildInfo
	_generateBuildReport = generateBuildReport
)

type versionFlag bool

func (v versionFlag) BeforeReset(app *kong.Kong) error {
	fmt.Fprint(app.Stdout, "textalign ", _version)
	if report := _generateBuildReport(); report != "" {
		fmt.Fprintf(app.Stdout, " (%v)", report)
	}
	fmt.Fprintln(app.Stdout)
	app.Exit(0)
	return nil
}

// generateBuildReport reports the VCS revision and time
// the binary was built from, if known.
func generateBuildReport() string {
	info, ok := _debugReadBuildInfo()
	if !ok {
		return ""
	}

	var revision, modified, time string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			time = s.Value
		}
	}
	if revision != "" && modified == "true" {
		revision += "-dirty"
	}

	var parts []string
	for _, p := range []string{revision, time} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
