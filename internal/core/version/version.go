// Package version provides information about the build version of the engine.
package version

// BuildInfo holds version information about the engine build.
type BuildInfo struct {
	Service string `json:"service" yaml:"service"`
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
}

// String renders "chetna v0.3.1 (abcd, 2026-10-01)"
func (b BuildInfo) String() string {
	return b.Service + " " + b.Version + " (" + b.Commit + ", " + b.Date + ")"
}

// Info returns the build information. The version, commit, and date variables
// are intended to be set at build time using -ldflags.
func Info() BuildInfo {
	// Set via -ldflags "-X 'github.com/ajitrahul/chetna-sub000/internal/core/version.version=v0.1.0'
	// -X 'github.com/ajitrahul/chetna-sub000/internal/core/version.commit=abcd'
	// -X 'github.com/ajitrahul/chetna-sub000/internal/core/version.date=2026-10-01'"
	return BuildInfo{
		Service: "chetna",
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
