// Package misc carries build time information about the program.
package misc

// Values below are replaced by the linker during release builds:
// -ldflags "-X chtlc/misc.version=... -X chtlc/misc.gitHash=...".
var (
	appName = "chtlc"
	version = "0.1.0-dev"
	gitHash = "unknown"
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return gitHash
}
