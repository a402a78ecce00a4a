// SPDX-License-Identifier: Apache-2.0

package models

// AppBuildInfo holds the version, date and commit stamped into the binary
// at link time. The fields are unexported so a value constructed at startup
// cannot be altered afterwards; the zero value renders as N/A everywhere it
// is shown.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: buildVersion,
		buildDate:    buildDate,
		buildCommit:  buildCommit,
	}
}

// BuildVersion returns the stamped release version.
func (a AppBuildInfo) BuildVersion() string {
	return a.buildVersion
}

// BuildDate returns the stamped build timestamp.
func (a AppBuildInfo) BuildDate() string {
	return a.buildDate
}

// BuildCommit returns the stamped source commit hash.
func (a AppBuildInfo) BuildCommit() string {
	return a.buildCommit
}
