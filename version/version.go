package version

import (
	"fmt"
	"runtime/debug"
)

// Version is set at build time using -ldflags. Defaults to "dev".
var Version = "dev"

// Short returns the version, with the VCS revision appended when the
// binary carries build info.
func Short() string {
	if commit := vcsRevision(); commit != "" {
		return fmt.Sprintf("%s-%s", Version, commit)
	}
	return Version
}

// UserAgent returns the User-Agent string sent by default on requests.
func UserAgent() string {
	return "restclient/" + Version
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			rev := setting.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}
			return rev
		}
	}
	return ""
}
