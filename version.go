package main

import "fmt"

var (
	version   string = "0.1.0"
	gitSHA1   string = "unknown"
	gitDirty  string = "unknown"
	buildDate string = "unknown"
)

// Version renders the build metadata injected with -ldflags.
func Version() string {
	v := fmt.Sprintf("probetable %s (git:%s", version, gitSHA1)
	if gitDirty != "unknown" && gitDirty != "0" {
		v += "-dirty"
	}
	return fmt.Sprintf("%s, built %s)", v, buildDate)
}
