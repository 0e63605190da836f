// Package buildinfo exposes the version stamped into the binary at build
// time, for the CLI --version output and the API health response.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/linarr-project/linarr/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/linarr-project/linarr/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/linarr-project/linarr/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// Info bundles the stamped values for structured output.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"built"`
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String formats the build information on one line.
func (i Info) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", i.Version, i.Commit, i.Date)
}
