// Package version provides information about the build version of the service.
package version

// Service is the binary's service name
const Service = "contentgate-api"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information. Version, commit and date are stamped with
// -ldflags "-X 'contentgate/internal/core/version.version=v1.0.0' ...".
func Info() BuildInfo {
	return BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

var (
	version = "1.0.0"
	commit  = "none"
	date    = "unknown"
)
